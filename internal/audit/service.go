// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package audit

import (
	stdctx "context"
	"log/slog"
	"time"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/pkg/uuidv7"
)

const recordTimeout = 5 * time.Second

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an entry for an action the given admin just performed.
//
// Best effort: the write happens on its own goroutine with its own deadline,
// detached from the request context, and a failure is only logged. The action
// being audited has already succeeded and must not be reported as failed.
func (service *Service) Record(actor *gate.User, action, entityType, entityID, ipAddress string) {
	if actor == nil {
		return
	}

	entry := &Entry{
		ID:         uuidv7.Must(),
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  ipAddress,
		CreatedAt:  time.Now().UTC(),
	}

	go func() {
		ctx, cancel := stdctx.WithTimeout(stdctx.Background(), recordTimeout)
		defer cancel()

		if err := service.repo.Insert(ctx, entry); err != nil {
			service.logger.Error("audit_record_failed",
				slog.String("action", action),
				slog.String("entity_type", entityType),
				slog.Any("error", err))
		}
	}()
}

// List returns one page of the trail, newest first.
func (service *Service) List(ctx stdctx.Context, limit, offset int) ([]*Entry, int, error) {
	return service.repo.List(ctx, limit, offset)
}
