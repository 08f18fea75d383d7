package leaverequest_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leaverequest"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRequestRepository struct {
	withTxFn             func(tx *sql.Tx) leaverequest.Repository
	createFn             func(ctx context.Context, lr *leaverequest.LeaveRequest) error
	findByIDFn           func(ctx context.Context, id uuid.UUID) (*leaverequest.LeaveRequest, error)
	findAllFn            func(ctx context.Context, filter leaverequest.ListFilter) ([]leaverequest.LeaveRequest, error)
	updateFn             func(ctx context.Context, lr *leaverequest.LeaveRequest) error
	hasApprovedOverlapFn func(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error)
}

func (f *fakeLeaveRequestRepository) WithTx(tx *sql.Tx) leaverequest.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRequestRepository) Create(ctx context.Context, lr *leaverequest.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, lr)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*leaverequest.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRequestRepository) FindAll(ctx context.Context, filter leaverequest.ListFilter) ([]leaverequest.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeLeaveRequestRepository) Update(ctx context.Context, lr *leaverequest.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, lr)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) HasApprovedOverlap(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	if f.hasApprovedOverlapFn != nil {
		return f.hasApprovedOverlapFn(ctx, employeeID, start, end)
	}
	return false, nil
}

type fakeTypeProvisioner struct {
	ensureByUnitFn func(ctx context.Context, unit string) (*leavetype.LeaveType, error)
	dayTypeID      uuid.UUID
	hourTypeID     uuid.UUID
}

func newFakeTypeProvisioner() *fakeTypeProvisioner {
	return &fakeTypeProvisioner{dayTypeID: uuid.New(), hourTypeID: uuid.New()}
}

func (f *fakeTypeProvisioner) EnsureByUnit(ctx context.Context, unit string) (*leavetype.LeaveType, error) {
	if f.ensureByUnitFn != nil {
		return f.ensureByUnitFn(ctx, unit)
	}
	if unit == leavetype.UnitHour {
		return &leavetype.LeaveType{ID: f.hourTypeID, Name: "Hourly Leave", Unit: leavetype.UnitHour}, nil
	}
	return &leavetype.LeaveType{ID: f.dayTypeID, Name: "Daily Leave", Unit: leavetype.UnitDay}, nil
}

// fakeRequestLedger keeps a single running balance so the create/approve
// scenario can assert against real arithmetic.
type fakeRequestLedger struct {
	balance       *leavebalance.LeaveBalance
	getOrCreateFn func(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*leavebalance.LeaveBalance, error)
	debitFn       func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error)
	creditFn      func(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error)
}

func newFakeRequestLedger(amount decimal.Decimal, unit string) *fakeRequestLedger {
	return &fakeRequestLedger{
		balance: &leavebalance.LeaveBalance{
			ID:            uuid.New(),
			BalanceAmount: amount,
			BalanceUnit:   unit,
		},
	}
}

func (f *fakeRequestLedger) WithTx(tx *sql.Tx) leavebalance.Ledger {
	return f
}

func (f *fakeRequestLedger) GetOrCreate(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*leavebalance.LeaveBalance, error) {
	if f.getOrCreateFn != nil {
		return f.getOrCreateFn(ctx, employeeID, leaveTypeID)
	}
	f.balance.EmployeeID = employeeID
	f.balance.LeaveTypeID = leaveTypeID
	copied := *f.balance
	return &copied, nil
}

func (f *fakeRequestLedger) Debit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error) {
	if f.debitFn != nil {
		return f.debitFn(ctx, employeeID, leaveTypeID, amount, unit)
	}
	delta := leavebalance.ConvertAmount(amount, unit, f.balance.BalanceUnit)
	f.balance.BalanceAmount = f.balance.BalanceAmount.Sub(delta)
	copied := *f.balance
	return &copied, nil
}

func (f *fakeRequestLedger) Credit(ctx context.Context, employeeID, leaveTypeID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error) {
	if f.creditFn != nil {
		return f.creditFn(ctx, employeeID, leaveTypeID, amount, unit)
	}
	delta := leavebalance.ConvertAmount(amount, unit, f.balance.BalanceUnit)
	f.balance.BalanceAmount = f.balance.BalanceAmount.Add(delta)
	copied := *f.balance
	return &copied, nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type leaveRequestServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leaverequest.Service
	repo    *fakeLeaveRequestRepository
	types   *fakeTypeProvisioner
	ledger  *fakeRequestLedger
	outbox  *fakeOutboxRepository
}

func setupLeaveRequestServiceTest(t *testing.T, balance decimal.Decimal, balanceUnit string) *leaveRequestServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRequestRepository{}
	types := newFakeTypeProvisioner()
	ledger := newFakeRequestLedger(balance, balanceUnit)
	outbox := &fakeOutboxRepository{}
	svc := leaverequest.NewServiceWithOutbox(db, repo, types, ledger, outbox)

	return &leaveRequestServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		types:   types,
		ledger:  ledger,
		outbox:  outbox,
	}
}

func TestLeaveRequestService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success three day request stays pending and leaves balance alone", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *leaverequest.LeaveRequest
		deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
			created = lr
			return nil
		}
		deps.ledger.debitFn = func(ctx context.Context, eID, tID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error) {
			t.Fatal("create must not debit the ledger")
			return nil, nil
		}

		resp, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitDay,
			StartTime:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), // Monday
			EndTime:    time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), // Wednesday
			Reason:     "family matters",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, leaverequest.StatusPending, created.Status)
		assert.True(t, created.DurationAmount.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, leavetype.UnitDay, created.DurationUnit)
		assert.Equal(t, deps.types.dayTypeID, created.LeaveTypeID)
		assert.Equal(t, leaverequest.StatusPending, resp.Status)
		assert.True(t, deps.ledger.balance.BalanceAmount.Equal(decimal.NewFromInt(5)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success hour request carries the hour unit", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(40), leavetype.UnitHour)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *leaverequest.LeaveRequest
		deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
			created = lr
			return nil
		}

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitHour,
			StartTime:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 6, 2, 16, 30, 0, 0, time.UTC),
			Reason:     "appointment",
		})

		assert.NoError(t, err)
		assert.True(t, created.DurationAmount.Equal(decimal.NewFromFloat(7.5)))
		assert.Equal(t, leavetype.UnitHour, created.DurationUnit)
		assert.Equal(t, deps.types.hourTypeID, created.LeaveTypeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative start not before end", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
			t.Fatal("invalid range must not persist")
			return nil
		}

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitDay,
			StartTime:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			Reason:     "typo",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidDateRange)
	})

	t.Run("negative equal instants rejected", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitHour,
			StartTime:  at,
			EndTime:    at,
			Reason:     "zero window",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidDateRange)
	})

	t.Run("negative overlap with approved leave wins over balance", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(40), leavetype.UnitHour)
		defer deps.db.Close()

		// Sudah ada cuti APPROVED 09:00-17:00 di tanggal yang sama.
		deps.repo.hasApprovedOverlapFn = func(ctx context.Context, eID uuid.UUID, start, end time.Time) (bool, error) {
			return true, nil
		}
		deps.ledger.getOrCreateFn = func(ctx context.Context, eID, tID uuid.UUID) (*leavebalance.LeaveBalance, error) {
			t.Fatal("balance must not be consulted once overlap is found")
			return nil, nil
		}
		deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
			t.Fatal("overlapping request must not persist")
			return nil
		}

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitHour,
			StartTime:  time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC),
			Reason:     "double booked",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrRequestOverlap)
	})

	t.Run("negative insufficient balance never persists", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(2), leavetype.UnitDay)
		defer deps.db.Close()

		deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
			t.Fatal("insufficient balance must not persist")
			return nil
		}

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitDay,
			StartTime:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
			Reason:     "long trip",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrInsufficientBalance)
	})

	t.Run("negative hour request checked against converted day balance", func(t *testing.T) {
		// 1 day left = 8 hours; asking for 9 hours must fail.
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(1), leavetype.UnitDay)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			EmployeeID: employeeID.String(),
			Unit:       leavetype.UnitHour,
			StartTime:  time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC),
			Reason:     "nine hours",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrInsufficientBalance)
	})

	t.Run("negative missing employee", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
			Unit:      leavetype.UnitDay,
			StartTime: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			Reason:    "nobody",
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrEmployeeRequired)
	})
}

func TestLeaveRequestService_Review(t *testing.T) {
	ctx := context.Background()
	reviewerID := uuid.New()

	pendingRequest := func(deps *leaveRequestServiceDeps, employeeID uuid.UUID) *leaverequest.LeaveRequest {
		lr := &leaverequest.LeaveRequest{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			LeaveTypeID:    deps.types.dayTypeID,
			StartTime:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			DurationAmount: decimal.NewFromInt(3),
			DurationUnit:   leavetype.UnitDay,
			Reason:         "family matters",
			Status:         leaverequest.StatusPending,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leaverequest.LeaveRequest, error) {
			if id == lr.ID {
				copied := *lr
				return &copied, nil
			}
			return nil, gorm.ErrRecordNotFound
		}
		return lr
	}

	t.Run("success approve debits the exact duration", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		employeeID := uuid.New()
		lr := pendingRequest(deps, employeeID)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var updated *leaverequest.LeaveRequest
		deps.repo.updateFn = func(ctx context.Context, in *leaverequest.LeaveRequest) error {
			updated = in
			return nil
		}

		comment := "enjoy"
		resp, err := deps.service.Review(ctx, lr.ID, reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision:     leaverequest.DecisionApprove,
			AdminComment: &comment,
		})

		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusApproved, resp.Status)
		assert.NotNil(t, updated)
		assert.Equal(t, leaverequest.StatusApproved, updated.Status)
		assert.NotNil(t, updated.AdminComment)
		assert.Equal(t, "enjoy", *updated.AdminComment)
		assert.NotNil(t, updated.DecidedBy)
		assert.Equal(t, reviewerID, *updated.DecidedBy)
		assert.NotNil(t, updated.DecidedAt)
		// Saldo 5 hari dikurangi 3 hari.
		assert.True(t, deps.ledger.balance.BalanceAmount.Equal(decimal.NewFromInt(2)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success approve queues a decided event in the same transaction", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		lr := pendingRequest(deps, uuid.New())

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Review(ctx, lr.ID, reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision: leaverequest.DecisionApprove,
		})

		assert.NoError(t, err)
		assert.Len(t, deps.outbox.created, 1)

		queued := deps.outbox.created[0]
		assert.Equal(t, events.LeaveRequestDecidedTopic, queued.Topic)
		assert.Equal(t, events.EventTypeLeaveRequestApproved, queued.EventType)
		assert.Equal(t, lr.ID.String(), queued.AggregateID)
		assert.Equal(t, kafka.OutboxStatusPending, queued.Status)

		var payload events.LeaveRequestDecidedEvent
		assert.NoError(t, json.Unmarshal(queued.Payload, &payload))
		assert.Equal(t, leaverequest.StatusApproved, payload.Status)
		assert.True(t, payload.DurationAmount.Equal(decimal.NewFromInt(3)))
	})

	t.Run("success reject leaves the ledger alone", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		lr := pendingRequest(deps, uuid.New())

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.ledger.debitFn = func(ctx context.Context, eID, tID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error) {
			t.Fatal("reject must not debit")
			return nil, nil
		}

		comment := "short staffed that week"
		resp, err := deps.service.Review(ctx, lr.ID, reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision:     leaverequest.DecisionReject,
			AdminComment: &comment,
		})

		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusRejected, resp.Status)
		assert.True(t, deps.ledger.balance.BalanceAmount.Equal(decimal.NewFromInt(5)))

		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, events.EventTypeLeaveRequestRejected, deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative request not found", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Review(ctx, uuid.New(), reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision: leaverequest.DecisionApprove,
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrRequestNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative already decided", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		lr := pendingRequest(deps, uuid.New())
		lr.Status = leaverequest.StatusApproved

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.updateFn = func(ctx context.Context, in *leaverequest.LeaveRequest) error {
			t.Fatal("decided request must not be updated again")
			return nil
		}

		_, err := deps.service.Review(ctx, lr.ID, reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision: leaverequest.DecisionReject,
		})

		assert.ErrorIs(t, err, leaverequesterrors.ErrNotReviewable)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative debit failure rolls everything back", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
		defer deps.db.Close()

		lr := pendingRequest(deps, uuid.New())

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.ledger.debitFn = func(ctx context.Context, eID, tID uuid.UUID, amount decimal.Decimal, unit string) (*leavebalance.LeaveBalance, error) {
			return nil, gorm.ErrInvalidTransaction
		}
		deps.repo.updateFn = func(ctx context.Context, in *leaverequest.LeaveRequest) error {
			t.Fatal("update must not run after a failed debit")
			return nil
		}

		_, err := deps.service.Review(ctx, lr.ID, reviewerID.String(), leaverequest.ReviewLeaveRequestRequest{
			Decision: leaverequest.DecisionApprove,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

// TestLeaveRequestService_CreateThenApprove walks the full path: a five day
// balance, a three day request that stays pending without touching the
// balance, then an approval that debits it down to two.
func TestLeaveRequestService_CreateThenApprove(t *testing.T) {
	ctx := context.Background()

	deps := setupLeaveRequestServiceTest(t, decimal.NewFromInt(5), leavetype.UnitDay)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	employeeID := uuid.New()

	var stored *leaverequest.LeaveRequest
	deps.repo.createFn = func(ctx context.Context, lr *leaverequest.LeaveRequest) error {
		copied := *lr
		stored = &copied
		return nil
	}
	deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*leaverequest.LeaveRequest, error) {
		if stored != nil && stored.ID == id {
			copied := *stored
			return &copied, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	created, err := deps.service.Create(ctx, leaverequest.CreateLeaveRequestRequest{
		EmployeeID: employeeID.String(),
		Unit:       leavetype.UnitDay,
		StartTime:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), // Monday
		EndTime:    time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), // Wednesday
		Reason:     "family matters",
	})
	assert.NoError(t, err)
	assert.Equal(t, leaverequest.StatusPending, created.Status)
	assert.True(t, deps.ledger.balance.BalanceAmount.Equal(decimal.NewFromInt(5)))

	reviewed, err := deps.service.Review(ctx, stored.ID, uuid.NewString(), leaverequest.ReviewLeaveRequestRequest{
		Decision: leaverequest.DecisionApprove,
	})
	assert.NoError(t, err)
	assert.Equal(t, leaverequest.StatusApproved, reviewed.Status)
	assert.True(t, deps.ledger.balance.BalanceAmount.Equal(decimal.NewFromInt(2)))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
