package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwed-assistant/internal/chat"
	"dwed-assistant/internal/chat/session"
	"dwed-assistant/internal/chat/usecase"
	"dwed-assistant/internal/planner"
	plannerRepo "dwed-assistant/internal/planner/repository"
	"dwed-assistant/internal/venue"
	venueRepo "dwed-assistant/internal/venue/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockCompleter struct {
	fn    func(ctx context.Context, turns []chat.Turn) (string, error)
	calls int
}

func (m *mockCompleter) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	m.calls++
	return m.fn(ctx, turns)
}

type mockVenueRepo struct {
	listFn  func(ctx context.Context, opt venueRepo.ListVenuesOptions) ([]venue.Venue, error)
	lastOpt venueRepo.ListVenuesOptions
}

func (m *mockVenueRepo) ListVenues(ctx context.Context, opt venueRepo.ListVenuesOptions) ([]venue.Venue, error) {
	m.lastOpt = opt
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, opt)
}
func (m *mockVenueRepo) UpsertVenue(ctx context.Context, v venue.Venue) error { return nil }
func (m *mockVenueRepo) Count(ctx context.Context) (int, error)               { return 0, nil }

type mockPlannerRepo struct {
	listFn  func(ctx context.Context, opt plannerRepo.ListPlannersOptions) ([]planner.Planner, error)
	lastOpt plannerRepo.ListPlannersOptions
}

func (m *mockPlannerRepo) ListPlanners(ctx context.Context, opt plannerRepo.ListPlannersOptions) ([]planner.Planner, error) {
	m.lastOpt = opt
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, opt)
}
func (m *mockPlannerRepo) UpsertPlanner(ctx context.Context, p planner.Planner) error { return nil }
func (m *mockPlannerRepo) Count(ctx context.Context) (int, error)                     { return 0, nil }

type fixture struct {
	uc       chat.UseCase
	sessions *session.Store
	comp     *mockCompleter
	venues   *mockVenueRepo
	planners *mockPlannerRepo
}

func newFixture(reply string, completeErr error) *fixture {
	f := &fixture{
		sessions: session.NewStore(16, time.Minute),
		venues:   &mockVenueRepo{},
		planners: &mockPlannerRepo{},
	}
	f.comp = &mockCompleter{fn: func(ctx context.Context, turns []chat.Turn) (string, error) {
		if completeErr != nil {
			return "", completeErr
		}
		return reply, nil
	}}
	f.uc = usecase.New(nopLogger{}, f.sessions, f.comp, f.venues, f.planners)
	return f
}

func TestChat_EmptyMessageRejectedBeforeProvider(t *testing.T) {
	f := newFixture("unused", nil)

	_, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "   "})
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
	assert.Zero(t, f.comp.calls)
	assert.Equal(t, 0, f.sessions.Get("s").Len())
}

func TestChat_ProviderFailureKeepsUserTurnOnly(t *testing.T) {
	f := newFixture("", chat.ErrProviderUnavailable)

	_, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "hello"})
	require.ErrorIs(t, err, chat.ErrProviderUnavailable)

	turns := f.sessions.Get("s").Snapshot()
	require.Len(t, turns, 1)
	assert.Equal(t, chat.RoleUser, turns[0].Role)
}

func TestChat_FreeTextPassthrough(t *testing.T) {
	reply := "Mehendi is a beautiful pre-wedding ceremony..."
	f := newFixture(reply, nil)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "tell me about mehendi"})
	require.NoError(t, err)
	assert.Equal(t, chat.ResultText, out.Type)
	assert.Equal(t, reply, out.Text)

	turns := f.sessions.Get("s").Snapshot()
	require.Len(t, turns, 2)
	assert.Equal(t, reply, turns[1].Content)
}

func TestChat_MalformedDirectiveDegradesToText(t *testing.T) {
	reply := `{"task": "find_venue", "filters": `
	f := newFixture(reply, nil)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "venue in delhi"})
	require.NoError(t, err)
	assert.Equal(t, chat.ResultText, out.Type)
	assert.Equal(t, reply, out.Text)
	assert.Zero(t, f.venues.lastOpt.Capacity)
}

func TestChat_VenueDirectiveRunsTwoStageMatch(t *testing.T) {
	f := newFixture(`{"task": "find_venue", "filters": {"location": "Delhi", "capacity": 500}}`, nil)
	f.venues.listFn = func(ctx context.Context, opt venueRepo.ListVenuesOptions) ([]venue.Venue, error) {
		return []venue.Venue{
			{Name: "Fits", Halls: []venue.Hall{{Name: "Main", Capacity: 550}}},
			{Name: "TooBig", Halls: []venue.Hall{{Name: "Grand", Capacity: 900}}},
		}, nil
	}

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "venue in Delhi for 500"})
	require.NoError(t, err)
	assert.Equal(t, chat.ResultVenues, out.Type)
	require.Len(t, out.Venues, 1)
	assert.Equal(t, "Fits", out.Venues[0].Name)
	assert.Equal(t, 500, out.Venues[0].RequestedCapacity)

	assert.Equal(t, "delhi", f.venues.lastOpt.Location)
	assert.Equal(t, 500, f.venues.lastOpt.Capacity)
}

func TestChat_VenueDirectiveNoCapacityReturnsAllCandidates(t *testing.T) {
	f := newFixture(`{"task": "find_venue", "filters": {"location": "Delhi"}}`, nil)
	f.venues.listFn = func(ctx context.Context, opt venueRepo.ListVenuesOptions) ([]venue.Venue, error) {
		return []venue.Venue{
			{Name: "A", Halls: []venue.Hall{{Capacity: 100}}},
			{Name: "B", Halls: []venue.Hall{{Capacity: 900}}},
		}, nil
	}

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "venues in Delhi"})
	require.NoError(t, err)
	require.Len(t, out.Venues, 2)
	assert.Equal(t, 0, out.Venues[0].RequestedCapacity)
}

func TestChat_PlannerDirective(t *testing.T) {
	f := newFixture(`{"task": "find_planner", "filters": {"location": "Mumbai", "style": "luxury", "budget_min": 50000}}`, nil)
	f.planners.listFn = func(ctx context.Context, opt plannerRepo.ListPlannersOptions) ([]planner.Planner, error) {
		return []planner.Planner{{Name: "Coastal Co"}}, nil
	}

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "luxury planner in Mumbai"})
	require.NoError(t, err)
	assert.Equal(t, chat.ResultEventPlanners, out.Type)
	require.Len(t, out.Planners, 1)

	assert.Equal(t, "mumbai", f.planners.lastOpt.Location)
	assert.Equal(t, "luxury", f.planners.lastOpt.Style)
	require.NotNil(t, f.planners.lastOpt.BudgetMin)
	assert.Equal(t, 50000, *f.planners.lastOpt.BudgetMin)
}

func TestChat_EmptyMatchIsNotAnError(t *testing.T) {
	f := newFixture(`{"task": "find_venue", "filters": {"location": "Nowhere"}}`, nil)

	out, err := f.uc.Chat(context.Background(), chat.ChatInput{SessionID: "s", Message: "venue in Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, chat.ResultVenues, out.Type)
	assert.Empty(t, out.Venues)
}

func TestChat_HistoryGrowsAcrossTurns(t *testing.T) {
	f := newFixture("sure!", nil)
	ctx := context.Background()

	_, err := f.uc.Chat(ctx, chat.ChatInput{SessionID: "s", Message: "first"})
	require.NoError(t, err)
	_, err = f.uc.Chat(ctx, chat.ChatInput{SessionID: "s", Message: "second"})
	require.NoError(t, err)

	assert.Equal(t, 4, f.sessions.Get("s").Len())

	// Other sessions are isolated.
	assert.Equal(t, 0, f.sessions.Get("other").Len())
}

func TestReset_Idempotent(t *testing.T) {
	f := newFixture("ok", nil)
	ctx := context.Background()

	_, err := f.uc.Chat(ctx, chat.ChatInput{SessionID: "s", Message: "hello"})
	require.NoError(t, err)

	f.uc.Reset(ctx, "s")
	assert.Equal(t, 0, f.sessions.Get("s").Len())
	f.uc.Reset(ctx, "s")
}
