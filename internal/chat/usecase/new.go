package usecase

import (
	"dwed-assistant/internal/chat"
	"dwed-assistant/internal/chat/completion"
	"dwed-assistant/internal/chat/session"
	plannerRepo "dwed-assistant/internal/planner/repository"
	venueRepo "dwed-assistant/internal/venue/repository"
	"dwed-assistant/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	sessions  *session.Store
	completer completion.Completer
	venues    venueRepo.Repository
	planners  plannerRepo.Repository
}

func New(
	l log.Logger,
	sessions *session.Store,
	completer completion.Completer,
	venues venueRepo.Repository,
	planners plannerRepo.Repository,
) chat.UseCase {
	return &implUseCase{
		l:         l,
		sessions:  sessions,
		completer: completer,
		venues:    venues,
		planners:  planners,
	}
}
