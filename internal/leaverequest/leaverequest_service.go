package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/events"
	leaverequesterrors "go-shiftdesk/internal/leaverequest/errors"
	"go-shiftdesk/internal/messaging/kafka"
	"go-shiftdesk/internal/requeststore"
	"go-shiftdesk/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leaverequest_service.go -destination=mock/leaverequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, storeID string, actor approval.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, storeID string, actor approval.Actor) ([]LeaveResponse, error)
	GetByID(ctx context.Context, storeID, id string, actor approval.Actor) (LeaveResponse, error)
	Approve(ctx context.Context, storeID string, actor approval.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (LeaveResponse, error)
	Delete(ctx context.Context, storeID string, actor approval.Actor, id string) error
	DeleteAll(ctx context.Context, storeID string, actor approval.Actor) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	requests *requeststore.Store[LeaveResponse]
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}

	s := &service{db: db, repo: repo, outbox: outbox, logger: l}
	s.requests = requeststore.New(
		func(r LeaveResponse) string { return r.ID },
		func(ctx context.Context, storeID string) ([]LeaveResponse, error) {
			leaves, err := repo.FindAllByStore(ctx, storeID)
			if err != nil {
				return nil, err
			}
			return mapToListResponse(leaves), nil
		},
	)
	return s
}

func validLeaveType(t string) bool {
	switch t {
	case TypeIzin, TypeCuti, TypeSakit:
		return true
	}
	return false
}

// minStartDate returns the earliest allowed start for a leave type.
// Izin and sakit need a day of lead time; cuti needs a week.
func minStartDate(leaveType string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if leaveType == TypeCuti {
		return today.AddDate(0, 0, 7)
	}
	return today.AddDate(0, 0, 1)
}

func (s *service) Create(ctx context.Context, storeID string, actor approval.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("store_id", storeID),
		zap.String("actor_id", actor.ID),
		zap.String("leave_type", req.LeaveType),
	)

	if !validLeaveType(req.LeaveType) {
		s.logger.Warn("create leave invalid type", zap.String("leave_type", req.LeaveType))
		return LeaveResponse{}, leaverequesterrors.ErrInvalidLeaveType
	}
	if !approval.ValidReason(req.Reason) {
		return LeaveResponse{}, leaverequesterrors.ErrReasonTooShort
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaverequesterrors.ErrInvalidDateRange
	}

	if startDate.Before(minStartDate(req.LeaveType, time.Now().UTC())) {
		s.logger.Warn("create leave lead time too short",
			zap.String("leave_type", req.LeaveType),
			zap.String("start_date", req.StartDate),
		)
		if req.LeaveType == TypeCuti {
			return LeaveResponse{}, leaverequesterrors.ErrLeadTimeWeek
		}
		return LeaveResponse{}, leaverequesterrors.ErrLeadTimeDay
	}

	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1
	l := &LeaveRequest{
		ID:         uuid.New(),
		StoreID:    uuid.MustParse(storeID),
		EmployeeID: uuid.MustParse(actor.ID),
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     string(approval.StatusPending),
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, storeID string, actor approval.Actor) ([]LeaveResponse, error) {
	list, err := s.requests.Snapshot(ctx, storeID)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
		return nil, err
	}

	for i := range list {
		list[i].Capabilities = capabilitiesFor(actor, list[i])
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string, actor approval.Actor) (LeaveResponse, error) {
	l, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaverequesterrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	resp := mapToResponse(*l)
	resp.Capabilities = capabilitiesFor(actor, resp)
	return resp, nil
}

func (s *service) Approve(ctx context.Context, storeID string, actor approval.Actor, id string) (LeaveResponse, error) {
	return s.decide(ctx, storeID, actor, id, approval.StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (LeaveResponse, error) {
	if !approval.ValidReason(reason) {
		return LeaveResponse{}, leaverequesterrors.ErrReasonTooShort
	}
	return s.decide(ctx, storeID, actor, id, approval.StatusRejected, reason)
}

func (s *service) decide(ctx context.Context, storeID string, actor approval.Actor, id string, target approval.Status, reason string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("target_status", string(target)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaverequesterrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if approval.IsTerminalStatus(approval.Status(l.Status)) {
		s.logger.Warn("decide leave already processed",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaverequesterrors.ErrAlreadyProcessed
	}

	caps := approval.Resolve(actor, requestMeta(l))
	if !caps.CanApprove {
		s.logger.Warn("decide leave forbidden",
			zap.String("leave_id", id),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)),
		)
		return LeaveResponse{}, leaverequesterrors.ErrNotAllowedToDecide
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actor.ID)
	l.Status = string(target)
	l.DecidedByID = &actorUUID
	l.DecidedByRole = string(actor.Role)
	l.DecidedAt = &now
	if target == approval.StatusRejected {
		l.RejectReason = &reason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.queueDecisionEvent(ctx, tx, l, rid, actor); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", l.Status),
	)

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actor.ID),
	)

	if !approval.ValidReason(reason) {
		return LeaveResponse{}, leaverequesterrors.ErrReasonTooShort
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaverequesterrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if approval.IsTerminalStatus(approval.Status(l.Status)) {
		return LeaveResponse{}, leaverequesterrors.ErrAlreadyProcessed
	}

	caps := approval.Resolve(actor, requestMeta(l))
	if !caps.CanCancelAsRequester {
		s.logger.Warn("cancel leave forbidden",
			zap.String("leave_id", id),
			zap.String("actor_id", actor.ID),
		)
		return LeaveResponse{}, leaverequesterrors.ErrNotAllowedToCancel
	}

	l.Status = string(approval.StatusCanceled)
	l.CancelReason = &reason

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.queueDecisionEvent(ctx, tx, l, rid, actor); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("cancel leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
	)

	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, storeID string, actor approval.Actor, id string) error {
	if actor.Role != approval.RoleAdmin {
		return leaverequesterrors.ErrNotAllowedToDelete
	}

	if err := s.repo.Delete(ctx, storeID, id); err != nil {
		s.logger.Error("delete leave failed", zap.Error(err))
		return err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("delete leave success", zap.String("leave_id", id))
	return nil
}

func (s *service) DeleteAll(ctx context.Context, storeID string, actor approval.Actor) error {
	if actor.Role != approval.RoleAdmin {
		return leaverequesterrors.ErrNotAllowedToDelete
	}

	if err := s.repo.DeleteAllByStore(ctx, storeID); err != nil {
		s.logger.Error("delete all leaves failed", zap.Error(err))
		return err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("delete all leaves success", zap.String("store_id", storeID))
	return nil
}

func (s *service) queueDecisionEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, rid string, actor approval.Actor) error {
	if s.outbox == nil {
		return nil
	}

	event := events.LeaveDecidedEvent{
		EventType:   "leave_decided",
		RequestID:   rid,
		LeaveID:     l.ID.String(),
		StoreID:     l.StoreID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveType:   l.LeaveType,
		Status:      l.Status,
		DecidedByID: actor.ID,
		DecidedRole: string(actor.Role),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave decided event failed", zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   l.ID.String(),
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave decided outbox persist failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) refresh(ctx context.Context, storeID string) {
	if err := s.requests.Refresh(ctx, storeID); err != nil {
		s.logger.Error("refresh leave snapshot failed",
			zap.String("store_id", storeID),
			zap.Error(err),
		)
	}
}

func requestMeta(l *LeaveRequest) approval.RequestMeta {
	meta := approval.RequestMeta{
		RequesterID: l.EmployeeID.String(),
		Status:      approval.Status(l.Status),
	}
	if l.Employee != nil {
		meta.RequesterRole = approval.Role(l.Employee.Role)
	}
	return meta
}

func capabilitiesFor(actor approval.Actor, r LeaveResponse) *approval.Capabilities {
	caps := approval.Resolve(actor, approval.RequestMeta{
		RequesterID:   r.EmployeeID,
		RequesterRole: approval.Role(r.EmployeeRole),
		Status:        approval.Status(r.Status),
	})
	return &caps
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		StoreID:       l.StoreID.String(),
		EmployeeID:    l.EmployeeID.String(),
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		TotalDays:     l.TotalDays,
		Reason:        l.Reason,
		Status:        l.Status,
		DecidedByName: l.DecidedByName,
		DecidedByRole: l.DecidedByRole,
		RejectReason:  l.RejectReason,
		CancelReason:  l.CancelReason,
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
		resp.EmployeeRole = l.Employee.Role
	}
	if l.DecidedByID != nil {
		v := l.DecidedByID.String()
		resp.DecidedByID = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}

	view := approval.DecisionView{
		Status:        approval.Status(l.Status),
		RequesterName: resp.EmployeeName,
		RequesterRole: approval.Role(resp.EmployeeRole),
		ApproverName:  l.DecidedByName,
		ApproverRole:  approval.Role(l.DecidedByRole),
	}
	if l.RejectReason != nil {
		view.RejectReason = *l.RejectReason
	}
	if l.CancelReason != nil {
		view.CancelReason = *l.CancelReason
	}
	resp.Narrative = approval.Describe(view)

	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
