package shiftswap

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/events"
	"go-shiftdesk/internal/messaging/kafka"
	"go-shiftdesk/internal/requeststore"
	"go-shiftdesk/internal/schedule"
	scheduleerrors "go-shiftdesk/internal/schedule/errors"
	"go-shiftdesk/internal/shared/contextutil"
	shiftswaperrors "go-shiftdesk/internal/shiftswap/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ResponseAccept  = "accept"
	ResponseDecline = "decline"
)

//go:generate mockgen -source=shiftswap_service.go -destination=mock/shiftswap_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, storeID string, actor approval.Actor, req PreviewSwapRequest) (SwapPreview, error)
	Create(ctx context.Context, storeID string, actor approval.Actor, req CreateSwapRequest) (SwapResponse, error)
	GetAll(ctx context.Context, storeID string, actor approval.Actor) ([]SwapResponse, error)
	GetByID(ctx context.Context, storeID, id string, actor approval.Actor) (SwapResponse, error)
	PartnerRespond(ctx context.Context, storeID string, actor approval.Actor, id string, req PartnerRespondRequest) (SwapResponse, error)
	Approve(ctx context.Context, storeID string, actor approval.Actor, id string) (SwapResponse, error)
	Reject(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (SwapResponse, error)
	Cancel(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (SwapResponse, error)
	Delete(ctx context.Context, storeID string, actor approval.Actor, id string) error
	DeleteAll(ctx context.Context, storeID string, actor approval.Actor) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	schedules schedule.Service
	outbox    kafka.OutboxRepository
	requests  *requeststore.Store[SwapResponse]
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, schedules schedule.Service, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shiftswap.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shiftswap.service")
	}

	s := &service{db: db, repo: repo, schedules: schedules, outbox: outbox, logger: l}
	s.requests = requeststore.New(
		func(r SwapResponse) string { return r.ID },
		func(ctx context.Context, storeID string) ([]SwapResponse, error) {
			swaps, err := repo.FindAllByStore(ctx, storeID)
			if err != nil {
				return nil, err
			}
			return mapToListResponse(swaps), nil
		},
	)
	return s
}

// resolveShifts looks up both sides of the exchange. A missing assignment
// on either side blocks the swap.
func (s *service) resolveShifts(ctx context.Context, storeID, requesterID, partnerID string, date time.Time) (*schedule.DayAssignment, *schedule.DayAssignment, error) {
	requesterShift, err := s.schedules.ShiftOn(ctx, storeID, requesterID, date)
	if err != nil {
		if errors.Is(err, scheduleerrors.ErrNoShiftScheduled) {
			return nil, nil, shiftswaperrors.ErrNoShiftOnDate
		}
		return nil, nil, err
	}

	partnerShift, err := s.schedules.ShiftOn(ctx, storeID, partnerID, date)
	if err != nil {
		if errors.Is(err, scheduleerrors.ErrNoShiftScheduled) {
			return nil, nil, shiftswaperrors.ErrNoShiftOnDate
		}
		return nil, nil, err
	}

	return requesterShift, partnerShift, nil
}

func (s *service) Preview(ctx context.Context, storeID string, actor approval.Actor, req PreviewSwapRequest) (SwapPreview, error) {
	date, err := parseSwapDate(req.Date)
	if err != nil {
		return SwapPreview{}, err
	}
	if req.PartnerID == actor.ID {
		return SwapPreview{}, shiftswaperrors.ErrPartnerIsRequester
	}

	requesterShift, partnerShift, err := s.resolveShifts(ctx, storeID, actor.ID, req.PartnerID, date)
	if err != nil {
		return SwapPreview{}, err
	}

	return SwapPreview{
		Date:           date.Format("2006-01-02"),
		RequesterShift: toSlot(requesterShift),
		PartnerShift:   toSlot(partnerShift),
	}, nil
}

func (s *service) Create(ctx context.Context, storeID string, actor approval.Actor, req CreateSwapRequest) (SwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create swap requested",
		zap.String("request_id", rid),
		zap.String("store_id", storeID),
		zap.String("actor_id", actor.ID),
		zap.String("partner_id", req.PartnerID),
	)

	if !approval.ValidReason(req.Reason) {
		return SwapResponse{}, shiftswaperrors.ErrReasonTooShort
	}
	if req.PartnerID == actor.ID {
		return SwapResponse{}, shiftswaperrors.ErrPartnerIsRequester
	}

	date, err := parseSwapDate(req.Date)
	if err != nil {
		return SwapResponse{}, err
	}

	now := time.Now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	if date.Before(tomorrow) {
		s.logger.Warn("create swap date too soon", zap.String("date", req.Date))
		return SwapResponse{}, shiftswaperrors.ErrSwapDateTooSoon
	}

	requesterShift, partnerShift, err := s.resolveShifts(ctx, storeID, actor.ID, req.PartnerID, date)
	if err != nil {
		return SwapResponse{}, err
	}

	swap := &SwapRequest{
		ID:          uuid.New(),
		StoreID:     uuid.MustParse(storeID),
		RequesterID: uuid.MustParse(actor.ID),
		PartnerID:   uuid.MustParse(req.PartnerID),
		Date:        date,
		Reason:      req.Reason,

		RequesterShiftID:   uuid.MustParse(requesterShift.ShiftID),
		RequesterShiftCode: requesterShift.ShiftCode,
		PartnerShiftID:     uuid.MustParse(partnerShift.ShiftID),
		PartnerShiftCode:   partnerShift.ShiftCode,

		Status:        string(approval.StatusPending),
		PartnerStatus: string(approval.PartnerWaiting),
	}

	if err := s.repo.Create(ctx, swap); err != nil {
		s.logger.Error("create swap persist failed", zap.Error(err))
		return SwapResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("create swap success",
		zap.String("request_id", rid),
		zap.String("swap_id", swap.ID.String()),
	)

	return mapToResponse(*swap), nil
}

func (s *service) GetAll(ctx context.Context, storeID string, actor approval.Actor) ([]SwapResponse, error) {
	list, err := s.requests.Snapshot(ctx, storeID)
	if err != nil {
		s.logger.Error("get all swaps failed", zap.Error(err))
		return nil, err
	}

	for i := range list {
		list[i].Capabilities = capabilitiesFor(actor, list[i])
	}
	return list, nil
}

func (s *service) GetByID(ctx context.Context, storeID, id string, actor approval.Actor) (SwapResponse, error) {
	swap, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SwapResponse{}, shiftswaperrors.ErrSwapNotFound
		}
		return SwapResponse{}, err
	}

	resp := mapToResponse(*swap)
	resp.Capabilities = capabilitiesFor(actor, resp)
	return resp, nil
}

// PartnerRespond applies the partner's answer optimistically: the served
// snapshot reflects it immediately while a guarded update races the
// authoritative row. Zero rows affected means someone else closed the
// request first; the optimistic value is then superseded by a refresh
// rather than patched in place.
func (s *service) PartnerRespond(ctx context.Context, storeID string, actor approval.Actor, id string, req PartnerRespondRequest) (SwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("partner respond requested",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("response", req.Response),
	)

	if req.Response != ResponseAccept && req.Response != ResponseDecline {
		return SwapResponse{}, shiftswaperrors.ErrInvalidResponse
	}
	if req.Response == ResponseDecline && !approval.ValidReason(req.Reason) {
		return SwapResponse{}, shiftswaperrors.ErrReasonTooShort
	}

	swap, err := s.repo.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SwapResponse{}, shiftswaperrors.ErrSwapNotFound
		}
		return SwapResponse{}, err
	}

	if approval.IsTerminal(approval.Status(swap.Status), approval.PartnerStatus(swap.PartnerStatus)) {
		return SwapResponse{}, shiftswaperrors.ErrAlreadyProcessed
	}

	caps := approval.Resolve(actor, requestMeta(swap))
	if !caps.CanActAsPartner {
		s.logger.Warn("partner respond forbidden",
			zap.String("swap_id", id),
			zap.String("actor_id", actor.ID),
		)
		return SwapResponse{}, shiftswaperrors.ErrNotThePartner
	}

	target := approval.PartnerAccepted
	var reason *string
	if req.Response == ResponseDecline {
		target = approval.PartnerDeclined
		reason = &req.Reason
	}

	respondedAt := time.Now().UTC()
	overlay := s.requests.ApplyOptimistic(storeID, id, func(r *SwapResponse) {
		r.PartnerStatus = string(target)
		r.DeclineReason = reason
		v := respondedAt.Format(time.RFC3339)
		r.PartnerRespondedAt = &v
	})

	rows, err := s.repo.SetPartnerResponse(ctx, storeID, id, string(target), reason, respondedAt)
	if err != nil {
		overlay.Rollback()
		s.logger.Error("partner respond persist failed", zap.Error(err))
		return SwapResponse{}, err
	}

	if rows == 0 {
		// Lost the race. Re-read to find out who won; the refresh
		// replaces the overlay with whatever actually happened.
		current, ferr := s.repo.FindByIDAndStore(ctx, storeID, id)
		s.settleOverlay(ctx, storeID, overlay)

		if ferr != nil {
			if errors.Is(ferr, gorm.ErrRecordNotFound) {
				return SwapResponse{}, shiftswaperrors.ErrSwapNotFound
			}
			return SwapResponse{}, ferr
		}

		s.logger.Warn("partner respond conflicted",
			zap.String("swap_id", id),
			zap.String("status", current.Status),
			zap.String("partner_status", current.PartnerStatus),
		)
		return SwapResponse{}, shiftswaperrors.ErrAlreadyProcessed
	}

	swap.PartnerStatus = string(target)
	swap.DeclineReason = reason
	swap.PartnerRespondedAt = &respondedAt

	if err := s.queueSwapEvent(ctx, nil, swap, rid, "swap_partner_responded", actor); err != nil {
		s.logger.Error("partner respond event failed", zap.Error(err))
	}

	s.settleOverlay(ctx, storeID, overlay)

	s.logger.Info("partner respond success",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
		zap.String("partner_status", swap.PartnerStatus),
	)

	return mapToResponse(*swap), nil
}

func (s *service) Approve(ctx context.Context, storeID string, actor approval.Actor, id string) (SwapResponse, error) {
	return s.decide(ctx, storeID, actor, id, approval.StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (SwapResponse, error) {
	if !approval.ValidReason(reason) {
		return SwapResponse{}, shiftswaperrors.ErrReasonTooShort
	}
	return s.decide(ctx, storeID, actor, id, approval.StatusRejected, reason)
}

func (s *service) decide(ctx context.Context, storeID string, actor approval.Actor, id string, target approval.Status, reason string) (SwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide swap requested",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("target_status", string(target)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide swap begin tx failed", zap.Error(err))
		return SwapResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	swap, err := qtx.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SwapResponse{}, shiftswaperrors.ErrSwapNotFound
		}
		return SwapResponse{}, err
	}

	if approval.IsTerminal(approval.Status(swap.Status), approval.PartnerStatus(swap.PartnerStatus)) {
		s.logger.Warn("decide swap already processed",
			zap.String("swap_id", id),
			zap.String("status", swap.Status),
			zap.String("partner_status", swap.PartnerStatus),
		)
		return SwapResponse{}, shiftswaperrors.ErrAlreadyProcessed
	}

	if swap.PartnerStatus != string(approval.PartnerAccepted) {
		return SwapResponse{}, shiftswaperrors.ErrPartnerNotAccepted
	}

	caps := approval.Resolve(actor, requestMeta(swap))
	if !caps.CanApprove {
		s.logger.Warn("decide swap forbidden",
			zap.String("swap_id", id),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)),
		)
		return SwapResponse{}, shiftswaperrors.ErrNotAllowedToDecide
	}

	now := time.Now().UTC()
	actorUUID := uuid.MustParse(actor.ID)
	swap.Status = string(target)
	swap.DecidedByID = &actorUUID
	swap.DecidedByRole = string(actor.Role)
	swap.DecidedAt = &now
	if target == approval.StatusRejected {
		swap.RejectReason = &reason
	}

	if err := qtx.Update(ctx, swap); err != nil {
		s.logger.Error("decide swap persist failed", zap.Error(err))
		return SwapResponse{}, err
	}

	if target == approval.StatusApproved {
		if err := s.schedules.ApplySwap(ctx, storeID, swap.RequesterID.String(), swap.PartnerID.String(), swap.Date); err != nil {
			s.logger.Error("decide swap schedule exchange failed", zap.Error(err))
			return SwapResponse{}, err
		}
	}

	if err := s.queueSwapEvent(ctx, tx, swap, rid, "swap_decided", actor); err != nil {
		return SwapResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide swap commit failed", zap.Error(err))
		return SwapResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("decide swap success",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
		zap.String("status", swap.Status),
	)

	return mapToResponse(*swap), nil
}

func (s *service) Cancel(ctx context.Context, storeID string, actor approval.Actor, id, reason string) (SwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel swap requested",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
		zap.String("actor_id", actor.ID),
	)

	if !approval.ValidReason(reason) {
		return SwapResponse{}, shiftswaperrors.ErrReasonTooShort
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel swap begin tx failed", zap.Error(err))
		return SwapResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	swap, err := qtx.FindByIDAndStore(ctx, storeID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SwapResponse{}, shiftswaperrors.ErrSwapNotFound
		}
		return SwapResponse{}, err
	}

	if approval.IsTerminal(approval.Status(swap.Status), approval.PartnerStatus(swap.PartnerStatus)) {
		return SwapResponse{}, shiftswaperrors.ErrAlreadyProcessed
	}

	caps := approval.Resolve(actor, requestMeta(swap))
	if !caps.CanCancelAsRequester {
		s.logger.Warn("cancel swap forbidden",
			zap.String("swap_id", id),
			zap.String("actor_id", actor.ID),
		)
		return SwapResponse{}, shiftswaperrors.ErrNotAllowedToCancel
	}

	// The cancel closes both tracks; a partner answer arriving after this
	// point hits the guarded update and loses.
	swap.Status = string(approval.StatusCanceled)
	swap.PartnerStatus = string(approval.PartnerCanceled)
	swap.CancelReason = &reason

	if err := qtx.Update(ctx, swap); err != nil {
		s.logger.Error("cancel swap persist failed", zap.Error(err))
		return SwapResponse{}, err
	}

	if err := s.queueSwapEvent(ctx, tx, swap, rid, "swap_decided", actor); err != nil {
		return SwapResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel swap commit failed", zap.Error(err))
		return SwapResponse{}, err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("cancel swap success",
		zap.String("request_id", rid),
		zap.String("swap_id", id),
	)

	return mapToResponse(*swap), nil
}

func (s *service) Delete(ctx context.Context, storeID string, actor approval.Actor, id string) error {
	if actor.Role != approval.RoleAdmin {
		return shiftswaperrors.ErrNotAllowedToDelete
	}

	if err := s.repo.Delete(ctx, storeID, id); err != nil {
		s.logger.Error("delete swap failed", zap.Error(err))
		return err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("delete swap success", zap.String("swap_id", id))
	return nil
}

func (s *service) DeleteAll(ctx context.Context, storeID string, actor approval.Actor) error {
	if actor.Role != approval.RoleAdmin {
		return shiftswaperrors.ErrNotAllowedToDelete
	}

	if err := s.repo.DeleteAllByStore(ctx, storeID); err != nil {
		s.logger.Error("delete all swaps failed", zap.Error(err))
		return err
	}

	s.refresh(ctx, storeID)

	s.logger.Info("delete all swaps success", zap.String("store_id", storeID))
	return nil
}

func (s *service) queueSwapEvent(ctx context.Context, tx *sql.Tx, swap *SwapRequest, rid, eventType string, actor approval.Actor) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SwapDecidedEvent{
		EventType:     eventType,
		RequestID:     rid,
		SwapID:        swap.ID.String(),
		StoreID:       swap.StoreID.String(),
		RequesterID:   swap.RequesterID.String(),
		PartnerID:     swap.PartnerID.String(),
		Status:        swap.Status,
		PartnerStatus: swap.PartnerStatus,
		DecidedByID:   actor.ID,
		DecidedRole:   string(actor.Role),
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal swap event failed", zap.Error(err))
		return err
	}

	outbox := s.outbox
	if tx != nil {
		outbox = outbox.WithTx(tx)
	}
	if err := outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "swap_request",
		AggregateID:   swap.ID.String(),
		EventType:     eventType,
		Topic:         events.SwapDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("swap event outbox persist failed",
			zap.String("swap_id", swap.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// settleOverlay confirms the overlay only once a refresh has replaced it
// with the authoritative row. A failed refresh keeps the overlay live so
// reads serve the optimistic value until a later refresh lands.
func (s *service) settleOverlay(ctx context.Context, storeID string, overlay *requeststore.Overlay[SwapResponse]) {
	if err := s.requests.Refresh(ctx, storeID); err != nil {
		s.logger.Error("refresh swap snapshot failed",
			zap.String("store_id", storeID),
			zap.Error(err),
		)
		return
	}
	overlay.Confirm()
}

func (s *service) refresh(ctx context.Context, storeID string) {
	if err := s.requests.Refresh(ctx, storeID); err != nil {
		s.logger.Error("refresh swap snapshot failed",
			zap.String("store_id", storeID),
			zap.Error(err),
		)
	}
}

func requestMeta(s *SwapRequest) approval.RequestMeta {
	meta := approval.RequestMeta{
		RequesterID:   s.RequesterID.String(),
		PartnerID:     s.PartnerID.String(),
		HasPartner:    true,
		Status:        approval.Status(s.Status),
		PartnerStatus: approval.PartnerStatus(s.PartnerStatus),
	}
	if s.Requester != nil {
		meta.RequesterRole = approval.Role(s.Requester.Role)
	}
	return meta
}

func capabilitiesFor(actor approval.Actor, r SwapResponse) *approval.Capabilities {
	caps := approval.Resolve(actor, approval.RequestMeta{
		RequesterID:   r.RequesterID,
		RequesterRole: approval.Role(r.RequesterRole),
		PartnerID:     r.PartnerID,
		HasPartner:    true,
		Status:        approval.Status(r.Status),
		PartnerStatus: approval.PartnerStatus(r.PartnerStatus),
	})
	return &caps
}

func parseSwapDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, shiftswaperrors.ErrInvalidDateFormat
	}
	return t, nil
}

func toSlot(a *schedule.DayAssignment) *ShiftSlot {
	if a == nil {
		return nil
	}
	return &ShiftSlot{
		ShiftID:   a.ShiftID,
		ShiftCode: a.ShiftCode,
		ShiftName: a.ShiftName,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
	}
}

func mapToResponse(s SwapRequest) SwapResponse {
	resp := SwapResponse{
		ID:          s.ID.String(),
		StoreID:     s.StoreID.String(),
		RequesterID: s.RequesterID.String(),
		PartnerID:   s.PartnerID.String(),
		Date:        s.Date.Format("2006-01-02"),
		Reason:      s.Reason,

		RequesterShiftID:   s.RequesterShiftID.String(),
		RequesterShiftCode: s.RequesterShiftCode,
		PartnerShiftID:     s.PartnerShiftID.String(),
		PartnerShiftCode:   s.PartnerShiftCode,

		Status:        s.Status,
		PartnerStatus: s.PartnerStatus,

		DeclineReason: s.DeclineReason,
		DecidedByName: s.DecidedByName,
		DecidedByRole: s.DecidedByRole,
		RejectReason:  s.RejectReason,
		CancelReason:  s.CancelReason,
	}
	if s.Requester != nil {
		resp.RequesterName = s.Requester.FullName
		resp.RequesterRole = s.Requester.Role
	}
	if s.Partner != nil {
		resp.PartnerName = s.Partner.FullName
	}
	if s.PartnerRespondedAt != nil {
		v := s.PartnerRespondedAt.Format(time.RFC3339)
		resp.PartnerRespondedAt = &v
	}
	if s.DecidedByID != nil {
		v := s.DecidedByID.String()
		resp.DecidedByID = &v
	}
	if s.DecidedAt != nil {
		v := s.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}

	view := approval.DecisionView{
		Status:        approval.Status(s.Status),
		PartnerStatus: approval.PartnerStatus(s.PartnerStatus),
		HasPartner:    true,
		RequesterName: resp.RequesterName,
		RequesterRole: approval.Role(resp.RequesterRole),
		PartnerName:   resp.PartnerName,
		ApproverName:  s.DecidedByName,
		ApproverRole:  approval.Role(s.DecidedByRole),
	}
	if s.DeclineReason != nil {
		view.PartnerReason = *s.DeclineReason
	}
	if s.RejectReason != nil {
		view.RejectReason = *s.RejectReason
	}
	if s.CancelReason != nil {
		view.CancelReason = *s.CancelReason
	}
	resp.Narrative = approval.Describe(view)

	return resp
}

func mapToListResponse(swaps []SwapRequest) []SwapResponse {
	resp := make([]SwapResponse, len(swaps))
	for i, s := range swaps {
		resp[i] = mapToResponse(s)
	}
	return resp
}
