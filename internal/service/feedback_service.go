// FILE: internal/service/feedback_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/pkg/logger"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/pkg/events"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	msgFeedbackRequired  = "Title and state are required"
	msgFeedbackDuplicate = "An idea with this title already exists"
	msgFeedbackNotFound  = "Feedback item not found"
	msgInvalidVoteType   = "Invalid vote type"

	pgUniqueViolation = "23505"
)

type IFeedbackService interface {
	List(ctx context.Context) ([]*dto.FeedbackResponse, error)
	Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
	Vote(ctx context.Context, req *dto.VoteFeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	now              func() time.Time
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IFeedbackService {
	return &feedbackService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
		now:              time.Now,
	}
}

func (s *feedbackService) List(ctx context.Context) ([]*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.FeedbackRepository().FindAll(ctx, specification.OrderBy{Field: "title"})
	if err != nil {
		return nil, err
	}
	return toFeedbackResponses(items), nil
}

func (s *feedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	title := strings.TrimSpace(req.Title)
	state := strings.TrimSpace(req.State)
	if title == "" || state == "" {
		return nil, serverutils.BadRequest(msgFeedbackRequired)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.FeedbackRepository()

	existing, err := repo.FindOne(ctx, specification.ByTitle{Title: title})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.Conflict(msgFeedbackDuplicate)
	}

	maxOrder, err := repo.MaxSortOrder(ctx)
	if err != nil {
		return nil, err
	}

	item := &entity.FeedbackItem{
		Title:     title,
		Votes:     0,
		State:     state,
		SortOrder: maxOrder + 1,
	}
	if err := repo.Create(ctx, item); err != nil {
		if isUniqueViolation(err) {
			return nil, serverutils.Conflict(msgFeedbackDuplicate)
		}
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, serverutils.Conflict(msgFeedbackDuplicate)
		}
		return nil, err
	}

	s.logger.Info("FeedbackService", "Idea submitted", map[string]interface{}{"feedback_id": item.Id, "title": item.Title})
	if err := s.publisherService.Publish(ctx, events.FeedbackSubmitted(item.Id, item.Title, item.State, s.now())); err != nil {
		s.logger.Warn("FeedbackService", "Failed to publish idea submission", map[string]interface{}{"feedback_id": item.Id, "error": err.Error()})
	}

	return toFeedbackResponse(item), nil
}

func (s *feedbackService) Vote(ctx context.Context, req *dto.VoteFeedbackRequest) (*dto.FeedbackResponse, error) {
	voteType := entity.VoteType(req.VoteType)
	delta := voteType.Delta()
	if delta == 0 {
		return nil, serverutils.BadRequest(msgInvalidVoteType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.FeedbackRepository().IncrementVotes(ctx, req.FeedbackId, delta)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.NotFound(msgFeedbackNotFound)
	}

	if err := s.publisherService.Publish(ctx, events.FeedbackVoted(item.Id, item.Title, string(voteType), item.Votes, s.now())); err != nil {
		s.logger.Warn("FeedbackService", "Failed to publish vote", map[string]interface{}{"feedback_id": item.Id, "error": err.Error()})
	}

	return toFeedbackResponse(item), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func toFeedbackResponse(item *entity.FeedbackItem) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:    item.Id,
		Title: item.Title,
		Votes: item.Votes,
		State: item.State,
	}
}

func toFeedbackResponses(items []*entity.FeedbackItem) []*dto.FeedbackResponse {
	res := make([]*dto.FeedbackResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFeedbackResponse(item))
	}
	return res
}
