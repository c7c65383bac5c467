package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
)

type userCreator interface {
	Create(ctx context.Context, req service.CreateUserRequest) (*models.User, error)
}

type employeeCreator interface {
	Create(ctx context.Context, req service.CreateEmployeeRequest) (*models.Employee, error)
}

type studentCreator interface {
	Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error)
}

type classroomCreator interface {
	Create(ctx context.Context, req service.CreateClassroomRequest) (*models.Classroom, error)
}

type scheduleCreator interface {
	Create(ctx context.Context, req service.CreateScheduleRequest) (*models.Schedule, error)
}

type attendanceCreator interface {
	Create(ctx context.Context, req service.CreateAttendanceRequest) (*models.Attendance, error)
}

type paymentCreator interface {
	Create(ctx context.Context, req service.CreatePaymentRequest) (*models.Payment, error)
}

type examCreator interface {
	Create(ctx context.Context, req service.CreateExamRequest) (*models.Exam, error)
}

type resultCreator interface {
	Create(ctx context.Context, req service.CreateResultRequest) (*models.Result, error)
}

// Services are the write paths the seeder inserts through, so fixtures get the same validation as API payloads.
type Services struct {
	Users      userCreator
	Employees  employeeCreator
	Students   studentCreator
	Classrooms classroomCreator
	Schedules  scheduleCreator
	Attendance attendanceCreator
	Payments   paymentCreator
	Exams      examCreator
	Results    resultCreator
}

// Summary counts the records inserted per collection.
type Summary map[string]int

// Seeder inserts fixtures in dependency order.
type Seeder struct {
	svc    Services
	logger *zap.Logger
}

// New constructs a Seeder.
func New(svc Services, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{svc: svc, logger: logger}
}

type refs map[string]int64

func (r refs) resolve(kind, key string) (int64, error) {
	id, ok := r[key]
	if !ok {
		return 0, fmt.Errorf("unknown %s reference %q", kind, key)
	}
	return id, nil
}

func (r refs) optional(kind, key string) (*int64, error) {
	if key == "" {
		return nil, nil
	}
	id, err := r.resolve(kind, key)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r refs) remember(key string, id int64) {
	if key != "" {
		r[key] = id
	}
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Run inserts every fixture entry. It stops at the first failure and reports which entry caused it.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Summary, error) {
	summary := Summary{}
	employees, students, exams := refs{}, refs{}, refs{}

	for i, u := range f.Users {
		if _, err := s.svc.Users.Create(ctx, service.CreateUserRequest{
			Username: u.Username,
			Email:    u.Email,
			Role:     models.UserRole(u.Role),
			Password: u.Password,
		}); err != nil {
			return summary, fmt.Errorf("users[%d]: %w", i, err)
		}
		summary["users"]++
	}

	for i, e := range f.Employees {
		employee, err := s.svc.Employees.Create(ctx, service.CreateEmployeeRequest{
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Email:     e.Email,
			Phone:     e.Phone,
			Role:      models.EmployeeRole(e.Role),
			Subjects:  e.Subjects,
			Shift:     models.Shift(e.Shift),
			Salary:    e.Salary,
			HireDate:  optionalString(e.HireDate),
		})
		if err != nil {
			return summary, fmt.Errorf("employees[%d]: %w", i, err)
		}
		employees.remember(e.Key, employee.ID)
		summary["employees"]++
	}

	for i, st := range f.Students {
		student, err := s.svc.Students.Create(ctx, service.CreateStudentRequest{
			FirstName:        st.FirstName,
			LastName:         st.LastName,
			Gender:           models.Gender(st.Gender),
			DateOfBirth:      st.DateOfBirth,
			Section:          models.Section(st.Section),
			ClassName:        st.ClassName,
			Email:            st.Email,
			Phone:            st.Phone,
			Address:          st.Address,
			GuardianName:     st.GuardianName,
			GuardianPhone:    st.GuardianPhone,
			GuardianRelation: st.GuardianRelation,
		})
		if err != nil {
			return summary, fmt.Errorf("students[%d]: %w", i, err)
		}
		students.remember(st.Key, student.ID)
		summary["students"]++
	}

	for i, c := range f.Classrooms {
		teacherID, err := employees.optional("teacher", c.Teacher)
		if err != nil {
			return summary, fmt.Errorf("classrooms[%d]: %w", i, err)
		}
		if _, err := s.svc.Classrooms.Create(ctx, service.CreateClassroomRequest{
			Name:      c.Name,
			Section:   models.Section(c.Section),
			Capacity:  c.Capacity,
			TeacherID: teacherID,
		}); err != nil {
			return summary, fmt.Errorf("classrooms[%d]: %w", i, err)
		}
		summary["classrooms"]++
	}

	for i, sc := range f.Schedules {
		teacherID, err := employees.optional("teacher", sc.Teacher)
		if err != nil {
			return summary, fmt.Errorf("schedules[%d]: %w", i, err)
		}
		if _, err := s.svc.Schedules.Create(ctx, service.CreateScheduleRequest{
			Section:   models.Section(sc.Section),
			ClassName: sc.ClassName,
			Day:       models.Weekday(sc.Day),
			StartTime: sc.StartTime,
			EndTime:   sc.EndTime,
			Subject:   sc.Subject,
			TeacherID: teacherID,
			Classroom: sc.Classroom,
		}); err != nil {
			return summary, fmt.Errorf("schedules[%d]: %w", i, err)
		}
		summary["schedules"]++
	}

	for i, a := range f.Attendance {
		studentID, err := students.resolve("student", a.Student)
		if err != nil {
			return summary, fmt.Errorf("attendance[%d]: %w", i, err)
		}
		if _, err := s.svc.Attendance.Create(ctx, service.CreateAttendanceRequest{
			StudentID: studentID,
			Date:      optionalString(a.Date),
			Status:    models.AttendanceStatus(a.Status),
			Remarks:   a.Remarks,
		}); err != nil {
			return summary, fmt.Errorf("attendance[%d]: %w", i, err)
		}
		summary["attendance"]++
	}

	for i, p := range f.Payments {
		studentID, err := students.resolve("student", p.Student)
		if err != nil {
			return summary, fmt.Errorf("payments[%d]: %w", i, err)
		}
		if _, err := s.svc.Payments.Create(ctx, service.CreatePaymentRequest{
			StudentID:   studentID,
			Amount:      p.Amount,
			Date:        optionalString(p.Date),
			Status:      models.PaymentStatus(p.Status),
			PaidAmount:  p.PaidAmount,
			Method:      p.Method,
			Description: p.Description,
		}); err != nil {
			return summary, fmt.Errorf("payments[%d]: %w", i, err)
		}
		summary["payments"]++
	}

	for i, e := range f.Exams {
		exam, err := s.svc.Exams.Create(ctx, service.CreateExamRequest{
			Name:      e.Name,
			Section:   models.Section(e.Section),
			ClassName: e.ClassName,
			Date:      optionalString(e.Date),
			Subjects:  e.Subjects,
		})
		if err != nil {
			return summary, fmt.Errorf("exams[%d]: %w", i, err)
		}
		exams.remember(e.Key, exam.ID)
		summary["exams"]++
	}

	for i, r := range f.Results {
		examID, err := exams.resolve("exam", r.Exam)
		if err != nil {
			return summary, fmt.Errorf("results[%d]: %w", i, err)
		}
		studentID, err := students.resolve("student", r.Student)
		if err != nil {
			return summary, fmt.Errorf("results[%d]: %w", i, err)
		}
		if _, err := s.svc.Results.Create(ctx, service.CreateResultRequest{
			ExamID:    examID,
			StudentID: studentID,
			Subject:   r.Subject,
			Score:     r.Score,
			Total:     r.Total,
		}); err != nil {
			return summary, fmt.Errorf("results[%d]: %w", i, err)
		}
		summary["results"]++
	}

	s.logger.Info("seed complete", zap.Any("inserted", summary))
	return summary, nil
}
