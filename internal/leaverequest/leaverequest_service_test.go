package leaverequest_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/employee"
	"go-shiftdesk/internal/leaverequest"
	leaverequesterrors "go-shiftdesk/internal/leaverequest/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	withTxFn           func(tx *sql.Tx) leaverequest.Repository
	createFn           func(ctx context.Context, l *leaverequest.LeaveRequest) error
	findAllByStoreFn   func(ctx context.Context, storeID string) ([]leaverequest.LeaveRequest, error)
	findByIDAndStoreFn func(ctx context.Context, storeID, id string) (*leaverequest.LeaveRequest, error)
	updateFn           func(ctx context.Context, l *leaverequest.LeaveRequest) error
	deleteFn           func(ctx context.Context, storeID, id string) error
	deleteAllByStoreFn func(ctx context.Context, storeID string) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leaverequest.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leaverequest.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAllByStore(ctx context.Context, storeID string) ([]leaverequest.LeaveRequest, error) {
	if f.findAllByStoreFn != nil {
		return f.findAllByStoreFn(ctx, storeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByIDAndStore(ctx context.Context, storeID, id string) (*leaverequest.LeaveRequest, error) {
	if f.findByIDAndStoreFn != nil {
		return f.findByIDAndStoreFn(ctx, storeID, id)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leaverequest.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, storeID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, storeID, id)
	}
	return nil
}

func (f *fakeLeaveRepository) DeleteAllByStore(ctx context.Context, storeID string) error {
	if f.deleteAllByStoreFn != nil {
		return f.deleteAllByStoreFn(ctx, storeID)
	}
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leaverequest.Service
	repo    *fakeLeaveRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	svc := leaverequest.NewService(db, repo, nil)

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func pendingLeave(storeID, employeeID string, role string) *leaverequest.LeaveRequest {
	start, _ := time.Parse("2006-01-02", futureDate(10))
	return &leaverequest.LeaveRequest{
		ID:         uuid.New(),
		StoreID:    uuid.MustParse(storeID),
		EmployeeID: uuid.MustParse(employeeID),
		LeaveType:  leaverequest.TypeIzin,
		StartDate:  start,
		EndDate:    start,
		TotalDays:  1,
		Reason:     "family matter",
		Status:     string(approval.StatusPending),
		Employee: &employee.Employee{
			ID:       uuid.MustParse(employeeID),
			FullName: "Budi Santoso",
			Role:     role,
		},
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	requester := approval.Actor{ID: uuid.New().String(), Role: approval.RoleEmployee}

	t.Run("success izin with one day lead", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		var created *leaverequest.LeaveRequest
		deps.repo.createFn = func(_ context.Context, l *leaverequest.LeaveRequest) error {
			created = l
			return nil
		}

		res, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: leaverequest.TypeIzin,
			StartDate: futureDate(1),
			EndDate:   futureDate(2),
			Reason:    "family matter",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusPending), res.Status)
		assert.Equal(t, 2, res.TotalDays)
		assert.NotNil(t, created)
		assert.Equal(t, requester.ID, created.EmployeeID.String())
	})

	t.Run("negative short reason never reaches the repo", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		deps.repo.createFn = func(_ context.Context, _ *leaverequest.LeaveRequest) error {
			t.Fatal("repo must not be called for invalid input")
			return nil
		}

		_, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: leaverequest.TypeIzin,
			StartDate: futureDate(1),
			EndDate:   futureDate(1),
			Reason:    "ab",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrReasonTooShort)
	})

	t.Run("negative izin today violates lead time", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: leaverequest.TypeIzin,
			StartDate: futureDate(0),
			EndDate:   futureDate(0),
			Reason:    "family matter",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrLeadTimeDay)
	})

	t.Run("negative cuti six days out violates lead time", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: leaverequest.TypeCuti,
			StartDate: futureDate(6),
			EndDate:   futureDate(8),
			Reason:    "annual trip",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrLeadTimeWeek)
	})

	t.Run("success cuti seven days out", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: leaverequest.TypeCuti,
			StartDate: futureDate(7),
			EndDate:   futureDate(9),
			Reason:    "annual trip",
		})

		assert.NoError(t, err)
	})

	t.Run("negative unknown leave type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, storeID, requester, leaverequest.CreateLeaveRequest{
			LeaveType: "vacation",
			StartDate: futureDate(1),
			EndDate:   futureDate(1),
			Reason:    "family matter",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidLeaveType)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	requesterID := uuid.New().String()

	t.Run("success cos approves employee izin", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(storeID, requesterID, "employee")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		cos := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		res, err := deps.service.Approve(ctx, storeID, cos, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusApproved), res.Status)
		assert.Equal(t, "cos", res.DecidedByRole)
		assert.Equal(t, "Approved by cos", res.Narrative.Label)
	})

	t.Run("negative peer employee cannot approve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(storeID, requesterID, "employee")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		peer := approval.Actor{ID: uuid.New().String(), Role: approval.RoleEmployee}
		_, err := deps.service.Approve(ctx, storeID, peer, l.ID.String())

		assert.ErrorIs(t, err, leaverequesterrors.ErrNotAllowedToDecide)
	})

	t.Run("negative cos cannot approve cos request", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(storeID, requesterID, "cos")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		otherCos := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		_, err := deps.service.Approve(ctx, storeID, otherCos, l.ID.String())

		assert.ErrorIs(t, err, leaverequesterrors.ErrNotAllowedToDecide)
	})

	t.Run("negative already approved is conflict", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(storeID, requesterID, "employee")
		l.Status = string(approval.StatusApproved)
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}
		deps.repo.updateFn = func(_ context.Context, _ *leaverequest.LeaveRequest) error {
			t.Fatal("terminal request must not be updated")
			return nil
		}

		admin := approval.Actor{ID: uuid.New().String(), Role: approval.RoleAdmin}
		_, err := deps.service.Approve(ctx, storeID, admin, l.ID.String())

		assert.ErrorIs(t, err, leaverequesterrors.ErrAlreadyProcessed)
	})
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	requesterID := uuid.New().String()

	t.Run("success with reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(storeID, requesterID, "employee")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		cos := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		res, err := deps.service.Reject(ctx, storeID, cos, l.ID.String(), "understaffed that week")

		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusRejected), res.Status)
		assert.Equal(t, "understaffed that week", *res.RejectReason)
		assert.Equal(t, approval.SeverityNegative, res.Narrative.Severity)
	})

	t.Run("negative short reason fails before any db work", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		cos := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		_, err := deps.service.Reject(ctx, storeID, cos, uuid.New().String(), "no")

		assert.ErrorIs(t, err, leaverequesterrors.ErrReasonTooShort)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()
	requesterID := uuid.New().String()

	t.Run("success by requester", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		l := pendingLeave(storeID, requesterID, "employee")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		requester := approval.Actor{ID: requesterID, Role: approval.RoleEmployee}
		res, err := deps.service.Cancel(ctx, storeID, requester, l.ID.String(), "plans changed")

		assert.NoError(t, err)
		assert.Equal(t, string(approval.StatusCanceled), res.Status)
	})

	t.Run("negative someone else cannot cancel", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(storeID, requesterID, "employee")
		deps.repo.findByIDAndStoreFn = func(_ context.Context, _, _ string) (*leaverequest.LeaveRequest, error) {
			return l, nil
		}

		other := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		_, err := deps.service.Cancel(ctx, storeID, other, l.ID.String(), "plans changed")

		assert.ErrorIs(t, err, leaverequesterrors.ErrNotAllowedToCancel)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New().String()

	t.Run("negative non-admin cannot purge", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		cos := approval.Actor{ID: uuid.New().String(), Role: approval.RoleCos}
		err := deps.service.DeleteAll(ctx, storeID, cos)

		assert.ErrorIs(t, err, leaverequesterrors.ErrNotAllowedToDelete)
	})

	t.Run("success admin purge", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		called := false
		deps.repo.deleteAllByStoreFn = func(_ context.Context, _ string) error {
			called = true
			return nil
		}

		admin := approval.Actor{ID: uuid.New().String(), Role: approval.RoleAdmin}
		err := deps.service.DeleteAll(ctx, storeID, admin)

		assert.NoError(t, err)
		assert.True(t, called)
	})
}
