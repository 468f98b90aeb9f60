package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"micro-automation-hub/internal/dto"
	"micro-automation-hub/internal/pkg/serverutils"
	"micro-automation-hub/internal/service"
	"micro-automation-hub/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackService struct {
	submitted []*dto.SubmitFeedbackRequest
	votes     []*dto.VoteFeedbackRequest
	voteErr   error
}

func (f *fakeFeedbackService) List(ctx context.Context) ([]*dto.FeedbackResponse, error) {
	return []*dto.FeedbackResponse{}, nil
}

func (f *fakeFeedbackService) Submit(ctx context.Context, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	f.submitted = append(f.submitted, req)
	return &dto.FeedbackResponse{Id: uuid.New(), Title: req.Title, State: req.State}, nil
}

func (f *fakeFeedbackService) Vote(ctx context.Context, req *dto.VoteFeedbackRequest) (*dto.FeedbackResponse, error) {
	f.votes = append(f.votes, req)
	if f.voteErr != nil {
		return nil, f.voteErr
	}
	return &dto.FeedbackResponse{Id: req.FeedbackId, Votes: 1}, nil
}

func TestFeedbackControllerSubmit(t *testing.T) {
	svc := &fakeFeedbackService{}
	app := newTestApp(NewFeedbackController(svc).RegisterRoutes)

	code, res := doJSON[dto.FeedbackResponse](t, app, "POST", "/api/feedback/v1/submit", "", dto.SubmitFeedbackRequest{Title: "Slack digest", State: "Under review"})
	require.Equal(t, 201, code)
	assert.Equal(t, 201, res.Code)
	assert.Equal(t, "Slack digest", res.Data.Title)

	code, res = doJSON[dto.FeedbackResponse](t, app, "POST", "/api/feedback/v1/submit", "", map[string]string{"title": "No state"})
	assert.Equal(t, 400, code)
	assert.False(t, res.Success)
	assert.Len(t, svc.submitted, 1)
}

func TestFeedbackControllerVote(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		body     map[string]string
		voteErr  error
		wantCode int
		wantCall bool
	}{
		{"upvote", map[string]string{"feedback_id": id.String(), "vote_type": "upvote"}, nil, 200, true},
		{"unknown vote type", map[string]string{"feedback_id": id.String(), "vote_type": "sideways"}, nil, 400, false},
		{"missing id", map[string]string{"vote_type": "downvote"}, nil, 400, false},
		{"unknown item", map[string]string{"feedback_id": id.String(), "vote_type": "downvote"}, serverutils.NotFound("Feedback item not found"), 404, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeFeedbackService{voteErr: tt.voteErr}
			app := newTestApp(NewFeedbackController(svc).RegisterRoutes)

			code, _ := doJSON[any](t, app, "POST", "/api/feedback/v1/vote", "", tt.body)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantCall, len(svc.votes) == 1)
		})
	}
}

func TestInsightControllerTeamMetrics(t *testing.T) {
	app := newTestApp(NewInsightController(service.NewInsightService(nil)).RegisterRoutes)

	code, res := doJSON[dto.TeamMetricsResponse](t, app, "GET", "/api/insights/v1/teams/Loading%20and%20Processing/metrics", "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, dto.TeamMetricsResponse{Team: "Loading and Processing", Acceptance: "81%", Adoption: "72%", Roi: "68%"}, res.Data)

	code, _ = doJSON[any](t, app, "GET", "/api/insights/v1/teams/Nobody/metrics", "", nil)
	assert.Equal(t, 404, code)

	code, teams := doJSON[[]string](t, app, "GET", "/api/insights/v1/teams", "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, service.TeamNames, teams.Data)
}

type fakeChatService struct {
	tokens    []string
	streamErr error
}

func (f *fakeChatService) Prepare(req *dto.ChatRequest) ([]llm.Message, error) {
	if len(req.Messages) == 0 {
		return nil, serverutils.BadRequest("At least one message is required")
	}
	return []llm.Message{{Role: llm.RoleUser, Content: req.Messages[0].Content}}, nil
}

func (f *fakeChatService) Stream(ctx context.Context, history []llm.Message, onToken llm.TokenHandler) error {
	for _, tok := range f.tokens {
		if err := onToken(tok); err != nil {
			return err
		}
	}
	return f.streamErr
}

func (f *fakeChatService) Timeout() time.Duration { return time.Second }

func streamChat(t *testing.T, svc service.IChatService) (int, string, string) {
	t.Helper()
	app := newTestApp(NewChatController(svc).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/chat/v1", strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderContentType), string(body)
}

func TestChatControllerStreamsTokens(t *testing.T) {
	code, contentType, body := streamChat(t, &fakeChatService{tokens: []string{"Open ", "/insights"}})

	assert.Equal(t, 200, code)
	assert.Equal(t, "text/event-stream", contentType)
	assert.Equal(t,
		"data: {\"content\":\"Open \"}\n\n"+
			"data: {\"content\":\"/insights\"}\n\n"+
			"event: done\ndata: {}\n\n",
		body)
}

func TestChatControllerStreamsError(t *testing.T) {
	_, _, body := streamChat(t, &fakeChatService{tokens: []string{"Op"}, streamErr: errors.New("context deadline exceeded")})

	assert.Equal(t,
		"data: {\"content\":\"Op\"}\n\n"+
			"event: error\ndata: {\"message\":\"context deadline exceeded\"}\n\n",
		body)
}

func TestChatControllerRejectsBeforeStreaming(t *testing.T) {
	app := newTestApp(NewChatController(&fakeChatService{}).RegisterRoutes)

	code, res := doJSON[any](t, app, "POST", "/api/chat/v1", "", dto.ChatRequest{})

	assert.Equal(t, 400, code)
	assert.Equal(t, "At least one message is required", res.Message)
}
