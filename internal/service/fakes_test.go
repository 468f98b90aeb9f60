package service

import (
	"context"
	"sync"

	"micro-automation-hub/internal/entity"
	"micro-automation-hub/internal/repository/contract"
	"micro-automation-hub/internal/repository/specification"
	"micro-automation-hub/internal/repository/unitofwork"
	"micro-automation-hub/pkg/events"

	"github.com/google/uuid"
)

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		automation: &fakeAutomationRepo{},
		roadmap:    &fakeRoadmapRepo{},
		feedback:   &fakeFeedbackRepo{},
		atlas:      &fakeAtlasRepo{},
		insight:    &fakeInsightRepo{},
	}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	mu         sync.Mutex
	began      int
	committed  int
	automation *fakeAutomationRepo
	roadmap    *fakeRoadmapRepo
	feedback   *fakeFeedbackRepo
	atlas      *fakeAtlasRepo
	insight    *fakeInsightRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.began++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error { return nil }

func (u *fakeUnitOfWork) AutomationRepository() contract.AutomationRepository { return u.automation }
func (u *fakeUnitOfWork) RoadmapRepository() contract.RoadmapRepository       { return u.roadmap }
func (u *fakeUnitOfWork) InsightRepository() contract.InsightRepository       { return u.insight }
func (u *fakeUnitOfWork) FeedbackRepository() contract.FeedbackRepository     { return u.feedback }
func (u *fakeUnitOfWork) FailureAtlasRepository() contract.FailureAtlasRepository {
	return u.atlas
}

type fakeAutomationRepo struct {
	items []*entity.Automation
	specs []specification.Specification
}

func (r *fakeAutomationRepo) Upsert(ctx context.Context, automation *entity.Automation) error {
	r.items = append(r.items, automation)
	return nil
}

func (r *fakeAutomationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Automation, error) {
	r.specs = specs
	return r.items, nil
}

type fakeRoadmapRepo struct {
	milestones []*entity.RoadmapMilestone
	specs      []specification.Specification
}

func (r *fakeRoadmapRepo) Upsert(ctx context.Context, milestone *entity.RoadmapMilestone) error {
	r.milestones = append(r.milestones, milestone)
	return nil
}

func (r *fakeRoadmapRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RoadmapMilestone, error) {
	r.specs = specs
	return r.milestones, nil
}

type fakeFeedbackRepo struct {
	items     []*entity.FeedbackItem
	createErr error
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, item *entity.FeedbackItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	item.Id = uuid.New()
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeFeedbackRepo) Upsert(ctx context.Context, item *entity.FeedbackItem) error {
	return r.Create(ctx, item)
}

func (r *fakeFeedbackRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeedbackItem, error) {
	for _, spec := range specs {
		byTitle, ok := spec.(specification.ByTitle)
		if !ok {
			continue
		}
		for _, item := range r.items {
			if item.Title == byTitle.Title {
				cp := *item
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackItem, error) {
	return r.items, nil
}

func (r *fakeFeedbackRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := -1
	for _, item := range r.items {
		if item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (r *fakeFeedbackRepo) IncrementVotes(ctx context.Context, id uuid.UUID, delta int) (*entity.FeedbackItem, error) {
	for _, item := range r.items {
		if item.Id == id {
			item.Votes += delta
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeAtlasRepo struct {
	modes    []*entity.FailureMode
	activity []*entity.ActivityEntry
	err      error
}

func (r *fakeAtlasRepo) UpsertMode(ctx context.Context, mode *entity.FailureMode) error {
	r.modes = append(r.modes, mode)
	return nil
}

func (r *fakeAtlasRepo) FindModes(ctx context.Context, specs ...specification.Specification) ([]*entity.FailureMode, error) {
	return r.modes, r.err
}

func (r *fakeAtlasRepo) CreateActivity(ctx context.Context, entry *entity.ActivityEntry) error {
	if r.err != nil {
		return r.err
	}
	r.activity = append(r.activity, entry)
	return nil
}

func (r *fakeAtlasRepo) FindActivity(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	return r.activity, r.err
}

type fakeInsightRepo struct {
	kpis         []*entity.InsightKpi
	adoption     []*entity.InsightAdoption
	incidents    []*entity.InsightIncident
	incidentsErr error
}

func (r *fakeInsightRepo) UpsertKpi(ctx context.Context, kpi *entity.InsightKpi) error { return nil }
func (r *fakeInsightRepo) UpsertAdoption(ctx context.Context, a *entity.InsightAdoption) error {
	return nil
}
func (r *fakeInsightRepo) UpsertIncident(ctx context.Context, in *entity.InsightIncident) error {
	return nil
}

func (r *fakeInsightRepo) FindKpis(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightKpi, error) {
	return r.kpis, nil
}

func (r *fakeInsightRepo) FindAdoption(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightAdoption, error) {
	return r.adoption, nil
}

func (r *fakeInsightRepo) FindIncidents(ctx context.Context, specs ...specification.Specification) ([]*entity.InsightIncident, error) {
	return r.incidents, r.incidentsErr
}

type fakePublisher struct {
	published []events.Event
	err       error
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return p.err
}

type sentMail struct {
	to, title, state string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendIdeaSubmitted(toEmail, title, state string) error {
	m.sent = append(m.sent, sentMail{toEmail, title, state})
	return m.err
}

type loggedLine struct {
	level, module, message string
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []loggedLine
}

func (l *recordingLogger) record(level, module, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, loggedLine{level, module, message})
}

func (l *recordingLogger) warnings() []loggedLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []loggedLine
	for _, line := range l.lines {
		if line.level == "warn" {
			out = append(out, line)
		}
	}
	return out
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message)
}

func (l *recordingLogger) Sync() error { return nil }
