// FILE: internal/service/activity_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/mailer"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/pkg/events"
)

const activityActorFeedback = "Feedback board"

type IActivityService interface {
	// HandleEvent records a bus event in the activity feed. Returning an error asks
	// the bus to redeliver.
	HandleEvent(ctx context.Context, event events.Event) error
}

type activityService struct {
	uowFactory   unitofwork.RepositoryFactory
	mailer       mailer.IEmailService // nil when SMTP is not configured
	stewardEmail string
	logger       logger.ILogger
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory, mail mailer.IEmailService, stewardEmail string, log logger.ILogger) IActivityService {
	return &activityService{
		uowFactory:   uowFactory,
		mailer:       mail,
		stewardEmail: stewardEmail,
		logger:       log,
	}
}

func (s *activityService) HandleEvent(ctx context.Context, event events.Event) error {
	action, ok := describeEvent(event)
	if !ok {
		s.logger.Debug("ActivityService", "Ignoring event", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	occurredAt := event.Timestamp()
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	entry := &entity.ActivityEntry{
		Actor:      activityActorFeedback,
		Action:     action,
		EventType:  event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: occurredAt,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FailureAtlasRepository().CreateActivity(ctx, entry); err != nil {
		return err
	}

	if event.EventType() == events.TypeFeedbackSubmitted {
		s.notifySteward(event)
	}
	return nil
}

// notifySteward is best effort; a failed mail must not cause the activity row to be written twice.
func (s *activityService) notifySteward(event events.Event) {
	if s.mailer == nil || s.stewardEmail == "" {
		return
	}
	title := events.StringField(event, "title")
	state := events.StringField(event, "state")
	if err := s.mailer.SendIdeaSubmitted(s.stewardEmail, title, state); err != nil {
		s.logger.Warn("ActivityService", "Failed to notify feedback steward", map[string]interface{}{"error": err.Error()})
	}
}

func describeEvent(event events.Event) (string, bool) {
	title := events.StringField(event, "title")
	switch event.EventType() {
	case events.TypeFeedbackSubmitted:
		return fmt.Sprintf("Submitted idea `%s`", title), true
	case events.TypeFeedbackVoted:
		verb := "Upvoted"
		if events.StringField(event, "vote_type") == string(entity.VoteDown) {
			verb = "Downvoted"
		}
		return fmt.Sprintf("%s idea `%s` (now %d votes)", verb, title, intField(event.Payload()["votes"])), true
	default:
		return "", false
	}
}

// intField copes with payloads that went through JSON and came back as float64.
func intField(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
