// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package news

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

type fakeRepository struct {
	created *News
	updated *News
	deleted string
}

func (repo *fakeRepository) ListNews(context.Context, pagination.Params) ([]*News, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) GetNews(context.Context, string) (*News, error) {
	return nil, apperr.NotFound("News post")
}

func (repo *fakeRepository) CreateNews(_ context.Context, item *News) error {
	repo.created = item
	return nil
}

func (repo *fakeRepository) UpdateNews(_ context.Context, item *News) error {
	repo.updated = item
	return nil
}

func (repo *fakeRepository) DeleteNews(_ context.Context, id string) error {
	repo.deleted = id
	return nil
}

func newTestService(repo *fakeRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateNews_SlugFollowsTitle(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	item := &News{Title: "Q3 Fee Update", Status: StatusDraft, Body: "Fees change on October 1st."}
	require.NoError(t, service.CreateNews(context.Background(), item))

	require.NotNil(t, repo.created)
	assert.Equal(t, "q3-fee-update", repo.created.Slug)
}

func TestCreateNews_Validation(t *testing.T) {
	tests := []struct {
		name string
		item *News
	}{
		{name: "missing title", item: &News{Status: StatusDraft, Body: "body"}},
		{name: "missing body", item: &News{Title: "Title", Status: StatusDraft}},
		{name: "unknown status", item: &News{Title: "Title", Status: "archived", Body: "body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			err := newTestService(repo).CreateNews(context.Background(), tt.item)

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Nil(t, repo.created, "invalid input must never reach the repository")
		})
	}
}

func TestUpdateNews_RefreshesSlug(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	item := &News{Title: "Référral Café Week", Status: StatusPublished, Body: "body"}
	require.NoError(t, service.UpdateNews(context.Background(), "n1", item))

	require.NotNil(t, repo.updated)
	assert.Equal(t, "n1", repo.updated.ID)
	assert.Equal(t, "referral-cafe-week", repo.updated.Slug)
}
