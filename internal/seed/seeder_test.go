package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
)

type fakeCreator[Req any, Out any] struct {
	requests []Req
	build    func(id int64) *Out
}

func (f *fakeCreator[Req, Out]) Create(_ context.Context, req Req) (*Out, error) {
	f.requests = append(f.requests, req)
	return f.build(int64(len(f.requests)) * 10), nil
}

type fakeServices struct {
	users      *fakeCreator[service.CreateUserRequest, models.User]
	employees  *fakeCreator[service.CreateEmployeeRequest, models.Employee]
	students   *fakeCreator[service.CreateStudentRequest, models.Student]
	classrooms *fakeCreator[service.CreateClassroomRequest, models.Classroom]
	schedules  *fakeCreator[service.CreateScheduleRequest, models.Schedule]
	attendance *fakeCreator[service.CreateAttendanceRequest, models.Attendance]
	payments   *fakeCreator[service.CreatePaymentRequest, models.Payment]
	exams      *fakeCreator[service.CreateExamRequest, models.Exam]
	results    *fakeCreator[service.CreateResultRequest, models.Result]
}

func newFakeServices() *fakeServices {
	return &fakeServices{
		users:      &fakeCreator[service.CreateUserRequest, models.User]{build: func(id int64) *models.User { return &models.User{ID: id} }},
		employees:  &fakeCreator[service.CreateEmployeeRequest, models.Employee]{build: func(id int64) *models.Employee { return &models.Employee{ID: id} }},
		students:   &fakeCreator[service.CreateStudentRequest, models.Student]{build: func(id int64) *models.Student { return &models.Student{ID: id} }},
		classrooms: &fakeCreator[service.CreateClassroomRequest, models.Classroom]{build: func(id int64) *models.Classroom { return &models.Classroom{ID: id} }},
		schedules:  &fakeCreator[service.CreateScheduleRequest, models.Schedule]{build: func(id int64) *models.Schedule { return &models.Schedule{ID: id} }},
		attendance: &fakeCreator[service.CreateAttendanceRequest, models.Attendance]{build: func(id int64) *models.Attendance { return &models.Attendance{ID: id} }},
		payments:   &fakeCreator[service.CreatePaymentRequest, models.Payment]{build: func(id int64) *models.Payment { return &models.Payment{ID: id} }},
		exams:      &fakeCreator[service.CreateExamRequest, models.Exam]{build: func(id int64) *models.Exam { return &models.Exam{ID: id} }},
		results:    &fakeCreator[service.CreateResultRequest, models.Result]{build: func(id int64) *models.Result { return &models.Result{ID: id} }},
	}
}

func (f *fakeServices) services() Services {
	return Services{
		Users:      f.users,
		Employees:  f.employees,
		Students:   f.students,
		Classrooms: f.classrooms,
		Schedules:  f.schedules,
		Attendance: f.attendance,
		Payments:   f.payments,
		Exams:      f.exams,
		Results:    f.results,
	}
}

const fixtureYAML = `
users:
  - username: admin
    role: admin
    password: change-me-please
employees:
  - key: joko
    first_name: Joko
    role: teacher
    subjects: [Math]
    shift: morning
    hire_date: "2020-07-01"
students:
  - key: ana
    first_name: Ana
    gender: female
    date_of_birth: "2012-03-04"
    section: primary
    class_name: P6
  - key: budi
    first_name: Budi
    gender: male
    date_of_birth: "2009-01-10"
    section: secondary
    class_name: S3
classrooms:
  - name: P6
    section: primary
    capacity: 30
    teacher: joko
schedules:
  - section: primary
    class_name: P6
    day: monday
    start_time: "08:00"
    end_time: "09:00"
    subject: Math
    teacher: joko
attendance:
  - student: budi
    date: "2024-06-10"
    status: late
payments:
  - student: ana
    amount: 500
    status: partial
    paid_amount: 200
exams:
  - key: midterm
    name: Midterm
    section: primary
    class_name: P6
    subjects: [Math]
results:
  - exam: midterm
    student: budi
    subject: Math
    score: 42
    total: 50
`

func TestRunResolvesReferences(t *testing.T) {
	fixture, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	fakes := newFakeServices()
	summary, err := New(fakes.services(), nil).Run(context.Background(), fixture)
	require.NoError(t, err)

	assert.Equal(t, Summary{
		"users": 1, "employees": 1, "students": 2, "classrooms": 1, "schedules": 1,
		"attendance": 1, "payments": 1, "exams": 1, "results": 1,
	}, summary)

	require.Len(t, fakes.classrooms.requests, 1)
	assert.Equal(t, int64(10), *fakes.classrooms.requests[0].TeacherID)
	assert.Equal(t, int64(10), *fakes.schedules.requests[0].TeacherID)

	assert.Equal(t, int64(20), fakes.attendance.requests[0].StudentID)
	assert.Equal(t, "2024-06-10", *fakes.attendance.requests[0].Date)

	payment := fakes.payments.requests[0]
	assert.Equal(t, int64(10), payment.StudentID)
	assert.Nil(t, payment.Date)
	require.NotNil(t, payment.PaidAmount)
	assert.Equal(t, 200.0, *payment.PaidAmount)

	result := fakes.results.requests[0]
	assert.Equal(t, int64(10), result.ExamID)
	assert.Equal(t, int64(20), result.StudentID)

	assert.Equal(t, models.RoleAdmin, fakes.users.requests[0].Role)
	assert.Equal(t, []string{"Math"}, fakes.employees.requests[0].Subjects)
}

func TestRunRejectsUnknownReference(t *testing.T) {
	fixture := &Fixture{
		Students: []StudentFixture{{Key: "ana", FirstName: "Ana"}},
		Payments: []PaymentFixture{{Student: "ghost", Amount: 100, Status: "paid"}},
	}

	fakes := newFakeServices()
	summary, err := New(fakes.services(), nil).Run(context.Background(), fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `payments[0]: unknown student reference "ghost"`)
	assert.Equal(t, 1, summary["students"])
	assert.Empty(t, fakes.payments.requests)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("students: [unterminated"))
	require.Error(t, err)
}
