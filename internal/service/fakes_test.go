package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"astro-chat-be/internal/entity"
	"astro-chat-be/internal/repository/contract"
	"astro-chat-be/internal/repository/specification"
	"astro-chat-be/internal/repository/unitofwork"
	"astro-chat-be/pkg/astro"
	"astro-chat-be/pkg/events"
	"astro-chat-be/pkg/llm"
)

// fakeStore backs the fake repositories with plain slices. Insertion order
// stands in for created_at ordering.
type fakeStore struct {
	users    []*entity.User
	charts   []*entity.BirthChart
	sessions []*entity.ChatSession
	messages []*entity.ChatMessage
	nextID   int64

	// activities are written by the consumer goroutine
	mu         sync.Mutex
	activities []*entity.UserActivity
}

func (s *fakeStore) activityCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}

func (s *fakeStore) activityAt(i int) *entity.UserActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activities[i]
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) nextId() int64 {
	s.nextID++
	return s.nextID
}

type fakeUowFactory struct {
	store *fakeStore
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) BirthChartRepository() contract.BirthChartRepository {
	return &fakeChartRepo{store: u.store}
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

func (u *fakeUow) UserActivityRepository() contract.UserActivityRepository {
	return &fakeActivityRepo{store: u.store}
}

// descRequested reports whether any OrderBy spec asks for descending order.
func descRequested(specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Desc {
			return true
		}
	}
	return false
}

// User repository

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.Id = r.store.nextId()
	user.CreatedAt = time.Now()
	clone := *user
	r.store.users = append(r.store.users, &clone)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, existing := range r.store.users {
		if existing.Id == user.Id {
			clone := *user
			r.store.users[i] = &clone
			return nil
		}
	}
	return errors.New("user not found")
}

func userMatches(u *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return u.Id == s.ID
	case specification.ByPhone:
		return u.Phone == s.Phone
	default:
		return true
	}
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		ok := true
		for _, spec := range specs {
			if !userMatches(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		ok := true
		for _, spec := range specs {
			if !userMatches(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Birth chart repository

type fakeChartRepo struct {
	store *fakeStore
}

func (r *fakeChartRepo) Create(ctx context.Context, chart *entity.BirthChart) error {
	chart.Id = r.store.nextId()
	chart.CreatedAt = time.Now()
	clone := *chart
	r.store.charts = append(r.store.charts, &clone)
	return nil
}

func chartMatches(c *entity.BirthChart, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return c.Id == s.ID
	case specification.ByUserID:
		return c.UserId == s.UserID
	default:
		return true
	}
}

func (r *fakeChartRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BirthChart, error) {
	for _, c := range r.store.charts {
		ok := true
		for _, spec := range specs {
			if !chartMatches(c, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeChartRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BirthChart, error) {
	var out []*entity.BirthChart
	for _, c := range r.store.charts {
		ok := true
		for _, spec := range specs {
			if !chartMatches(c, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Chat session repository

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	session.Id = r.store.nextId()
	session.CreatedAt = time.Now()
	clone := *session
	r.store.sessions = append(r.store.sessions, &clone)
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	for i, existing := range r.store.sessions {
		if existing.Id == session.Id {
			clone := *session
			r.store.sessions[i] = &clone
			return nil
		}
	}
	return errors.New("session not found")
}

func sessionMatches(s *entity.ChatSession, spec specification.Specification) bool {
	switch sp := spec.(type) {
	case specification.ByID:
		return s.Id == sp.ID
	case specification.ActiveByUserAndBot:
		return s.UserId == sp.UserID && s.BotType == sp.BotType && s.IsActive
	case specification.FilterBy:
		if sp.Field == "user_id" {
			if v, ok := sp.Value.(int64); ok {
				return s.UserId == v
			}
		}
		return true
	default:
		return true
	}
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, s := range r.store.sessions {
		ok := true
		for _, spec := range specs {
			if !sessionMatches(s, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		ok := true
		for _, spec := range specs {
			if !sessionMatches(s, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *s
			out = append(out, &clone)
		}
	}
	if descRequested(specs) {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Chat message repository

type fakeMessageRepo struct {
	store *fakeStore
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	message.Id = r.store.nextId()
	message.CreatedAt = time.Now()
	clone := *message
	r.store.messages = append(r.store.messages, &clone)
	return nil
}

func messageMatches(m *entity.ChatMessage, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return m.Id == s.ID
	case specification.BySessionID:
		return m.SessionId == s.SessionID
	default:
		return true
	}
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	for _, m := range r.store.messages {
		ok := true
		for _, spec := range specs {
			if !messageMatches(m, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range r.store.messages {
		ok := true
		for _, spec := range specs {
			if !messageMatches(m, spec) {
				ok = false
				break
			}
		}
		if ok {
			clone := *m
			out = append(out, &clone)
		}
	}
	if descRequested(specs) {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// User activity repository

type fakeActivityRepo struct {
	store *fakeStore
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.UserActivity) error {
	activity.CreatedAt = time.Now()
	clone := *activity
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.activities = append(r.store.activities, &clone)
	return nil
}

func (r *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserActivity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.UserActivity
	for _, a := range r.store.activities {
		ok := true
		for _, spec := range specs {
			if s, isUser := spec.(specification.ByUserID); isUser && a.UserId != s.UserID {
				ok = false
				break
			}
		}
		if ok {
			clone := *a
			out = append(out, &clone)
		}
	}
	if descRequested(specs) {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// Collaborator fakes

type fakeLLM struct {
	chatReply    string
	chatErr      error
	generated    string
	generateErr  error
	lastHistory  []llm.Message
	chatCalls    int
	generateCall int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.chatCalls++
	f.lastHistory = history
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.generateCall++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generated, nil
}

type fakeEngine struct {
	result    *astro.ChartResult
	err       error
	calls     int
	lastTime  string
	lastDate  string
	lastPlace string
}

func (f *fakeEngine) Generate(ctx context.Context, dateOfBirth, birthTime, birthLocation string) (*astro.ChartResult, error) {
	f.calls++
	f.lastDate = dateOfBirth
	f.lastTime = birthTime
	f.lastPlace = birthLocation
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakePublisher struct {
	events []events.UserActivityEvent
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	return nil
}

func (f *fakePublisher) PublishActivity(ctx context.Context, event events.UserActivityEvent) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
