package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/repository"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type memoryCache struct {
	entries     map[string][]byte
	invalidated []string
	getErr      error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	m.invalidated = append(m.invalidated, pattern)
	removed := len(m.entries)
	m.entries = map[string][]byte{}
	return removed, nil
}

func newTestHooks() (*WriteHooks, *memoryCache) {
	cache := newMemoryCache()
	return NewWriteHooks(NewCacheService(cache, nil, time.Minute, nil, true), nil), cache
}

type fakeStudentRepo struct {
	students  map[int64]*models.Student
	nextID    int64
	updates   int
	updateErr error
	deleteErr error
}

func newFakeStudentRepo(students ...models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[int64]*models.Student{}, nextID: 1}
	for i := range students {
		s := students[i]
		repo.students[s.ID] = &s
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
	}
	return repo
}

func (f *fakeStudentRepo) List(context.Context, models.StudentFilter) ([]models.Student, int, error) {
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = f.nextID
	student.CreatedAt = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	f.nextID++
	clone := *student
	f.students[student.ID] = &clone
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *student
	f.students[student.ID] = &clone
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	_, ok := f.students[id]
	delete(f.students, id)
	return ok, nil
}

func validStudentRequest() CreateStudentRequest {
	return CreateStudentRequest{
		FirstName:    "Ana",
		LastName:     "Putri",
		Gender:       models.GenderFemale,
		DateOfBirth:  "2012-04-05",
		Section:      models.SectionPrimary,
		ClassName:    "P5",
		Email:        "ana@example.com",
		GuardianName: "Sari",
	}
}

func TestStudentServiceCreateThenGetRoundTrip(t *testing.T) {
	repo := newFakeStudentRepo()
	hooks, cache := newTestHooks()
	svc := NewStudentService(repo, hooks, nil, nil)

	created, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "2012-04-05", fetched.DateOfBirth.Format(dateLayout))
	assert.Equal(t, "Sari", fetched.GuardianName)
	assert.Equal(t, []string{analyticsCachePattern}, cache.invalidated)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), nil, nil, nil)
	req := validStudentRequest()
	req.FirstName = ""
	req.Section = "college"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	fields := map[string]string{}
	for _, fe := range appErr.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "is required", fields["firstName"])
	assert.Contains(t, fields["section"], "must be one of")
}

func TestStudentServiceEmptyPatchPerformsNoWrite(t *testing.T) {
	existing := models.Student{ID: 4, FirstName: "Budi", Section: models.SectionSecondary, ClassName: "S2"}
	repo := newFakeStudentRepo(existing)
	hooks, cache := newTestHooks()
	svc := NewStudentService(repo, hooks, nil, nil)

	patched, err := svc.Patch(context.Background(), 4, PatchStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, existing, *patched)
	assert.Zero(t, repo.updates)
	assert.Empty(t, cache.invalidated)
}

func TestStudentServicePatchChangesOnlySuppliedFields(t *testing.T) {
	repo := newFakeStudentRepo(models.Student{ID: 4, FirstName: "Budi", LastName: "Santoso", Section: models.SectionSecondary, ClassName: "S2"})
	svc := NewStudentService(repo, nil, nil, nil)

	className := "S3"
	patched, err := svc.Patch(context.Background(), 4, PatchStudentRequest{ClassName: &className})
	require.NoError(t, err)
	assert.Equal(t, "S3", patched.ClassName)
	assert.Equal(t, "Santoso", patched.LastName)
	assert.Equal(t, 1, repo.updates)
}

func TestStudentServicePatchRowVanished(t *testing.T) {
	repo := newFakeStudentRepo(models.Student{ID: 4, FirstName: "Budi", Section: models.SectionSecondary, ClassName: "S2"})
	repo.updateErr = fmt.Errorf("update student: %w", sql.ErrNoRows)
	hooks, cache := newTestHooks()
	svc := NewStudentService(repo, hooks, nil, nil)

	className := "S3"
	patched, err := svc.Patch(context.Background(), 4, PatchStudentRequest{ClassName: &className})
	require.Error(t, err)
	assert.Nil(t, patched)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
	assert.Empty(t, cache.invalidated)
}

func TestStudentServiceGetMissing(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), nil, nil, nil)

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestStudentServiceDelete(t *testing.T) {
	repo := newFakeStudentRepo(models.Student{ID: 1, FirstName: "Ana"})
	hooks, cache := newTestHooks()
	svc := NewStudentService(repo, hooks, nil, nil)

	existed, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Len(t, cache.invalidated, 1)

	existed, err = svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Len(t, cache.invalidated, 1)
}

func TestStudentServiceDeleteReferenced(t *testing.T) {
	repo := newFakeStudentRepo(models.Student{ID: 1})
	repo.deleteErr = errors.Join(repository.ErrReferenced, errors.New("payments"))
	svc := NewStudentService(repo, nil, nil, nil)

	_, err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, appErrors.ErrReferenced.Code, appErr.Code)
}

type fakePaymentRepo struct {
	created *models.Payment
}

func (f *fakePaymentRepo) List(context.Context, models.PaymentFilter) ([]models.Payment, int, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepo) FindByID(context.Context, int64) (*models.Payment, error) {
	return nil, sql.ErrNoRows
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	payment.ID = 1
	f.created = payment
	return nil
}

func (f *fakePaymentRepo) Update(context.Context, *models.Payment) error { return nil }

func (f *fakePaymentRepo) Delete(context.Context, int64) (bool, error) { return false, nil }

func TestPaymentServiceCreateRules(t *testing.T) {
	tests := []struct {
		name  string
		req   CreatePaymentRequest
		field string
	}{
		{
			name:  "partial without paid amount",
			req:   CreatePaymentRequest{StudentID: 1, Amount: 500, Status: models.PaymentStatusPartial},
			field: "paidAmount",
		},
		{
			name:  "paid amount above amount",
			req:   CreatePaymentRequest{StudentID: 1, Amount: 500, Status: models.PaymentStatusPaid, PaidAmount: amount(600)},
			field: "paidAmount",
		},
		{
			name:  "bad date",
			req:   CreatePaymentRequest{StudentID: 1, Amount: 500, Status: models.PaymentStatusUnpaid, Date: stringPtr("05/06/2024")},
			field: "date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakePaymentRepo{}
			svc := NewPaymentService(repo, nil, nil, nil)

			_, err := svc.Create(context.Background(), tc.req)
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tc.field, appErr.Errors[0].Field)
			assert.Nil(t, repo.created)
		})
	}
}

func TestPaymentServiceCreatePartial(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewPaymentService(repo, nil, nil, nil)

	payment, err := svc.Create(context.Background(), CreatePaymentRequest{
		StudentID:  3,
		Amount:     500,
		Status:     models.PaymentStatusPartial,
		PaidAmount: amount(200),
		Date:       stringPtr("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, payment.Outstanding())
	require.NotNil(t, payment.Date)
	assert.Equal(t, "2024-06-01", payment.Date.Format(dateLayout))
}

type fakeResultRepo struct {
	result *models.Result
}

func (f *fakeResultRepo) List(context.Context, models.ResultFilter) ([]models.Result, int, error) {
	return nil, 0, nil
}

func (f *fakeResultRepo) FindByID(context.Context, int64) (*models.Result, error) {
	if f.result == nil {
		return nil, sql.ErrNoRows
	}
	clone := *f.result
	return &clone, nil
}

func (f *fakeResultRepo) Create(_ context.Context, result *models.Result) error {
	result.ID = 7
	f.result = result
	return nil
}

func (f *fakeResultRepo) Update(_ context.Context, result *models.Result) error {
	f.result = result
	return nil
}

func (f *fakeResultRepo) Delete(context.Context, int64) (bool, error) { return true, nil }

func TestResultServiceDerivesGrade(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := NewResultService(repo, nil, nil, nil)

	result, err := svc.Create(context.Background(), CreateResultRequest{ExamID: 1, StudentID: 2, Subject: " Math ", Score: 42, Total: 50})
	require.NoError(t, err)
	assert.Equal(t, "Math", result.Subject)
	assert.Equal(t, "B", result.Grade)

	score := 20.0
	patched, err := svc.Patch(context.Background(), 7, PatchResultRequest{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, "F", patched.Grade)
}

func TestResultServiceRejectsScoreAboveTotal(t *testing.T) {
	svc := NewResultService(&fakeResultRepo{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateResultRequest{ExamID: 1, StudentID: 2, Subject: "Math", Score: 60, Total: 50})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "score", appErr.Errors[0].Field)
}

type fakeEmployeeRepo struct {
	created *models.Employee
}

func (f *fakeEmployeeRepo) List(context.Context, models.EmployeeFilter) ([]models.Employee, int, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) FindByID(context.Context, int64) (*models.Employee, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *models.Employee) error {
	f.created = employee
	return nil
}

func (f *fakeEmployeeRepo) Update(context.Context, *models.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(context.Context, int64) (bool, error) { return false, nil }

func TestEmployeeServiceSubjectsOnlyForTeachers(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Agus",
		Role:      models.EmployeeRoleDriver,
		Subjects:  []string{"Math"},
		Shift:     models.ShiftMorning,
	})
	require.Error(t, err)
	assert.Equal(t, "subjects", appErrors.FromError(err).Errors[0].Field)

	teacher, err := svc.Create(context.Background(), CreateEmployeeRequest{
		FirstName: "Rina",
		Role:      models.EmployeeRoleTeacher,
		Subjects:  []string{" Math", "math", "Science"},
		Shift:     models.ShiftMorning,
		Salary:    4000,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "Science"}, []string(teacher.Subjects))
}

type fakeUserRepo struct {
	users map[int64]*models.User
}

func (f *fakeUserRepo) List(context.Context, models.UserFilter) ([]models.User, int, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(f.users) + 1)
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	delete(f.users, id)
	return ok, nil
}

func TestUserServiceCreateHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*models.User{}}
	svc := NewUserService(repo, nil, nil, nil)

	user, err := svc.Create(context.Background(), CreateUserRequest{Username: "admin", Role: models.RoleAdmin, Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))

	_, err = svc.Create(context.Background(), CreateUserRequest{Username: "admin", Role: models.RoleStaff, Password: "another-pass"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, appErrors.FromError(err).Status)
}

func TestEmptyPatch(t *testing.T) {
	assert.True(t, emptyPatch(PatchStudentRequest{}))
	assert.True(t, emptyPatch(&PatchEmployeeRequest{}))
	name := "x"
	assert.False(t, emptyPatch(PatchStudentRequest{FirstName: &name}))
	assert.False(t, emptyPatch(PatchEmployeeRequest{Subjects: []string{}}))
}

func stringPtr(v string) *string { return &v }
