package usecase

import (
	"context"

	"github.com/tidwall/gjson"

	"dwed-assistant/internal/chat"
	"dwed-assistant/internal/intent"
	"dwed-assistant/internal/metrics"
	plannerRepo "dwed-assistant/internal/planner/repository"
	"dwed-assistant/internal/venue"
	venueRepo "dwed-assistant/internal/venue/repository"
)

// Chat handles one user message: append to the session, complete against
// the full history, route the reply. A provider failure leaves the
// session with only the user's turn, so a retry re-sends the same
// history.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	sess := uc.sessions.Get(input.SessionID)
	metrics.LiveSessions.Set(float64(uc.sessions.Len()))

	if err := sess.AppendUser(input.Message); err != nil {
		return chat.ChatOutput{}, err
	}

	reply, err := uc.completer.Complete(ctx, sess.Snapshot())
	if err != nil {
		// User turn stays; no assistant turn is recorded.
		metrics.ProviderFailuresTotal.Inc()
		return chat.ChatOutput{}, err
	}
	sess.AppendAssistant(reply)

	res := intent.Parse(reply)
	if res.Directive == nil {
		metrics.IntentsRoutedTotal.WithLabelValues(metrics.IntentText).Inc()
		return chat.ChatOutput{Type: chat.ResultText, Text: res.Text}, nil
	}

	switch res.Directive.Kind {
	case intent.KindFindPlanner:
		return uc.findPlanners(ctx, res.Directive.Filters)
	default:
		return uc.findVenues(ctx, res.Directive.Filters)
	}
}

// Reset clears the conversation history for the session. Idempotent.
func (uc *implUseCase) Reset(ctx context.Context, sessionID string) {
	uc.sessions.Reset(sessionID)
	metrics.LiveSessions.Set(float64(uc.sessions.Len()))
	uc.l.Infof(ctx, "chat/usecase.Reset: session=%s", sessionID)
}

// findVenues runs the two-stage venue search: coarse sufficiency filter
// at the collection, then capacity-fit refinement.
func (uc *implUseCase) findVenues(ctx context.Context, filters map[string]gjson.Result) (chat.ChatOutput, error) {
	f := intent.NormalizeVenueFilters(filters)

	candidates, err := uc.venues.ListVenues(ctx, venueRepo.ListVenuesOptions{
		Location: f.Location,
		Capacity: f.Capacity,
		PriceMin: f.PriceMin,
		PriceMax: f.PriceMax,
	})
	if err != nil {
		return chat.ChatOutput{}, err
	}

	matched := venue.MatchCapacity(candidates, f.Capacity)
	uc.l.Infof(ctx, "chat/usecase.findVenues: candidates=%d matched=%d capacity=%d",
		len(candidates), len(matched), f.Capacity)

	metrics.IntentsRoutedTotal.WithLabelValues(metrics.IntentVenues).Inc()
	return chat.ChatOutput{Type: chat.ResultVenues, Venues: matched}, nil
}

// findPlanners resolves every planner constraint at the collection;
// there is no refinement stage.
func (uc *implUseCase) findPlanners(ctx context.Context, filters map[string]gjson.Result) (chat.ChatOutput, error) {
	f := intent.NormalizePlannerFilters(filters)

	matched, err := uc.planners.ListPlanners(ctx, plannerRepo.ListPlannersOptions{
		Location:  f.Location,
		BudgetMin: f.BudgetMin,
		BudgetMax: f.BudgetMax,
		Style:     f.Style,
	})
	if err != nil {
		return chat.ChatOutput{}, err
	}

	uc.l.Infof(ctx, "chat/usecase.findPlanners: matched=%d style=%q", len(matched), f.Style)
	metrics.IntentsRoutedTotal.WithLabelValues(metrics.IntentPlanners).Inc()
	return chat.ChatOutput{Type: chat.ResultEventPlanners, Planners: matched}, nil
}
