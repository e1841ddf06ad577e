package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shortsync/shortsync/internal/infrastructure/metadata"
	"github.com/shortsync/shortsync/internal/infrastructure/platform"
	"github.com/shortsync/shortsync/internal/usecase"
	"github.com/shortsync/shortsync/pkg/logger"
)

// WebhookController receives the host platform's "post saved" events and
// hands them to the sync engine.
type WebhookController struct {
	syncer usecase.Syncer
	store  metadata.Store
	log    *logger.Logger
}

func NewWebhookController(router *fiber.App, syncer usecase.Syncer, store metadata.Store, log *logger.Logger) *WebhookController {
	c := &WebhookController{
		syncer: syncer,
		store:  store,
		log:    log,
	}

	router.Post("/hooks/post-saved", c.postSaved)
	router.Get("/ping", c.ping)

	return c
}

type postSavedEvent struct {
	PostID int64  `json:"post_id"`
	User   string `json:"user,omitempty"`
}

func (ctrl *WebhookController) postSaved(c *fiber.Ctx) error {
	var event postSavedEvent

	if err := c.BodyParser(&event); err != nil || event.PostID == 0 {
		c.Status(http.StatusBadRequest)
		return nil
	}

	ctx := c.UserContext()
	if event.User != "" {
		ctx = platform.WithActingUser(ctx, event.User)
	}

	// The save flow never observes a sync failure: the engine swallows
	// and reports its own errors, so receipt is always acknowledged
	ctrl.syncer.OnPostSaved(ctx, event.PostID)

	c.Status(http.StatusAccepted)
	return nil
}

func (ctrl *WebhookController) ping(c *fiber.Ctx) error {
	if err := ctrl.store.Ping(c.UserContext()); err != nil {
		ctrl.log.Error(c.UserContext(), err).Msg("Metadata store ping failed")
		c.Status(http.StatusInternalServerError)
		return nil
	}

	c.Status(http.StatusOK)
	return nil
}
