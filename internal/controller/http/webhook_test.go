package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortsync/shortsync/internal/entity"
	"github.com/shortsync/shortsync/internal/infrastructure/metadata"
	"github.com/shortsync/shortsync/internal/infrastructure/platform"
	"github.com/shortsync/shortsync/pkg/logger"
)

var log = logger.NewMockLogger()

type fakeSyncer struct {
	postIDs []int64
	users   []string
}

func (s *fakeSyncer) OnPostSaved(ctx context.Context, postID int64) {
	s.postIDs = append(s.postIDs, postID)
	s.users = append(s.users, platform.ActingUser(ctx))
}

func (s *fakeSyncer) GetAssociation(ctx context.Context, postID int64) (*entity.LinkAssociation, error) {
	return nil, nil
}

func prepareController() (*fiber.App, *fakeSyncer) {
	router := fiber.New()
	syncer := &fakeSyncer{}

	NewWebhookController(router, syncer, metadata.NewInMemStore(nil), log)

	return router, syncer
}

func TestPostSaved(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantPostIDs []int64
		wantUsers   []string
	}{
		{
			name:        "attended save",
			body:        `{"post_id": 42, "user": "editor"}`,
			wantCode:    202,
			wantPostIDs: []int64{42},
			wantUsers:   []string{"editor"},
		},
		{
			name:        "unattended save",
			body:        `{"post_id": 42}`,
			wantCode:    202,
			wantPostIDs: []int64{42},
			wantUsers:   []string{""},
		},
		{
			name:     "missing post id",
			body:     `{"user": "editor"}`,
			wantCode: 400,
		},
		{
			name:     "malformed body",
			body:     `not json`,
			wantCode: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, syncer := prepareController()

			req := httptest.NewRequest(http.MethodPost, "/hooks/post-saved",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := router.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantPostIDs, syncer.postIDs)
			assert.Equal(t, tt.wantUsers, syncer.users)
		})
	}
}

func TestPing(t *testing.T) {
	router, _ := prepareController()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)

	resp, err := router.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
