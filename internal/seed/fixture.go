package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes the records to insert. Students, employees and exams carry a key that later entries reference.
type Fixture struct {
	Users      []UserFixture       `yaml:"users"`
	Employees  []EmployeeFixture   `yaml:"employees"`
	Students   []StudentFixture    `yaml:"students"`
	Classrooms []ClassroomFixture  `yaml:"classrooms"`
	Schedules  []ScheduleFixture   `yaml:"schedules"`
	Attendance []AttendanceFixture `yaml:"attendance"`
	Payments   []PaymentFixture    `yaml:"payments"`
	Exams      []ExamFixture       `yaml:"exams"`
	Results    []ResultFixture     `yaml:"results"`
}

type UserFixture struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type EmployeeFixture struct {
	Key       string   `yaml:"key"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Email     string   `yaml:"email"`
	Phone     string   `yaml:"phone"`
	Role      string   `yaml:"role"`
	Subjects  []string `yaml:"subjects"`
	Shift     string   `yaml:"shift"`
	Salary    float64  `yaml:"salary"`
	HireDate  string   `yaml:"hire_date"`
}

type StudentFixture struct {
	Key              string `yaml:"key"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Gender           string `yaml:"gender"`
	DateOfBirth      string `yaml:"date_of_birth"`
	Section          string `yaml:"section"`
	ClassName        string `yaml:"class_name"`
	Email            string `yaml:"email"`
	Phone            string `yaml:"phone"`
	Address          string `yaml:"address"`
	GuardianName     string `yaml:"guardian_name"`
	GuardianPhone    string `yaml:"guardian_phone"`
	GuardianRelation string `yaml:"guardian_relation"`
}

type ClassroomFixture struct {
	Name     string `yaml:"name"`
	Section  string `yaml:"section"`
	Capacity int    `yaml:"capacity"`
	Teacher  string `yaml:"teacher"`
}

type ScheduleFixture struct {
	Section   string `yaml:"section"`
	ClassName string `yaml:"class_name"`
	Day       string `yaml:"day"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Subject   string `yaml:"subject"`
	Teacher   string `yaml:"teacher"`
	Classroom string `yaml:"classroom"`
}

type AttendanceFixture struct {
	Student string `yaml:"student"`
	Date    string `yaml:"date"`
	Status  string `yaml:"status"`
	Remarks string `yaml:"remarks"`
}

type PaymentFixture struct {
	Student     string   `yaml:"student"`
	Amount      float64  `yaml:"amount"`
	Date        string   `yaml:"date"`
	Status      string   `yaml:"status"`
	PaidAmount  *float64 `yaml:"paid_amount"`
	Method      string   `yaml:"method"`
	Description string   `yaml:"description"`
}

type ExamFixture struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	Section   string   `yaml:"section"`
	ClassName string   `yaml:"class_name"`
	Date      string   `yaml:"date"`
	Subjects  []string `yaml:"subjects"`
}

type ResultFixture struct {
	Exam    string  `yaml:"exam"`
	Student string  `yaml:"student"`
	Subject string  `yaml:"subject"`
	Score   float64 `yaml:"score"`
	Total   float64 `yaml:"total"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML fixture content.
func Parse(raw []byte) (*Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &fixture, nil
}
