package consumer

import (
	"context"
	"encoding/json"

	"go-shiftdesk/internal/approval"
	"go-shiftdesk/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Notifier delivers a decision narrative to the affected employees.
// The default implementation just logs; a push or email sender can be
// swapped in without touching the consume loops.
type Notifier interface {
	Notify(ctx context.Context, employeeID string, n approval.Narrative) error
}

type logNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger.Named("notifier")}
}

func (n *logNotifier) Notify(_ context.Context, employeeID string, nar approval.Narrative) error {
	n.logger.Info("decision notification",
		zap.String("employee_id", employeeID),
		zap.String("label", nar.Label),
		zap.String("severity", string(nar.Severity)),
	)
	return nil
}

func ConsumeLeaveDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
	log.Info("leave decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decided consumer stopped")
				return
			}
			log.Error("fetch leave decided message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		narrative := approval.Describe(approval.DecisionView{
			Status:       approval.Status(event.Status),
			ApproverRole: approval.Role(event.DecidedRole),
		})

		if err := notifier.Notify(ctx, event.EmployeeID, narrative); err != nil {
			log.Error("notify leave decision failed",
				zap.String("leave_id", event.LeaveID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decided message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notified",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
		)
	}
}

func ConsumeSwapDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.swap_decided")
	log.Info("swap decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("swap decided consumer stopped")
				return
			}
			log.Error("fetch swap decided message failed", zap.Error(err))
			continue
		}

		var event events.SwapDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode swap decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		narrative := approval.Describe(approval.DecisionView{
			Status:        approval.Status(event.Status),
			PartnerStatus: approval.PartnerStatus(event.PartnerStatus),
			HasPartner:    true,
			ApproverRole:  approval.Role(event.DecidedRole),
		})

		// Both sides of the swap care about the outcome
		for _, employeeID := range []string{event.RequesterID, event.PartnerID} {
			if employeeID == "" {
				continue
			}
			if err := notifier.Notify(ctx, employeeID, narrative); err != nil {
				log.Error("notify swap decision failed",
					zap.String("swap_id", event.SwapID),
					zap.String("employee_id", employeeID),
					zap.Error(err),
				)
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit swap decided message failed", zap.Error(err))
			continue
		}

		log.Info("swap decision notified",
			zap.String("swap_id", event.SwapID),
			zap.String("status", event.Status),
			zap.String("partner_status", event.PartnerStatus),
		)
	}
}
