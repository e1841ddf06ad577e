package usecase

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/shortsync/shortsync/config"
	"github.com/shortsync/shortsync/internal/entity"
	"github.com/shortsync/shortsync/internal/infrastructure/metadata"
	"github.com/shortsync/shortsync/internal/infrastructure/shortener"
	"github.com/shortsync/shortsync/pkg/logger"
)

// TagGeneratedOnSave marks short links produced by the on-save sync.
const TagGeneratedOnSave = "generated-on-save"

// SaveSyncUC keeps one short link in sync per post: on every save it
// resolves the post's long URL, creates or updates the remote short
// link, and persists the association as post metadata.
type SaveSyncUC struct {
	shortenerCfg config.Shortener
	syncCfg      config.Sync

	client shortener.Client
	store  metadata.Store
	posts  PostSource
	hooks  Hooks
	sink   ErrorSink
	log    *logger.Logger
}

func NewSaveSync(
	shortenerCfg config.Shortener,
	syncCfg config.Sync,
	client shortener.Client,
	store metadata.Store,
	posts PostSource,
	hooks Hooks,
	sink ErrorSink,
	log *logger.Logger) *SaveSyncUC {

	return &SaveSyncUC{
		shortenerCfg: shortenerCfg,
		syncCfg:      syncCfg,
		client:       client,
		store:        store,
		posts:        posts,
		hooks:        hooks,
		sink:         sink,
		log:          log,
	}
}

func (uc *SaveSyncUC) OnPostSaved(ctx context.Context, postID int64) {
	err := uc.runSync(ctx, postID)
	if err == nil {
		return
	}

	if uc.sink != nil {
		uc.sink.ReportError(ctx, err)
		return
	}
	uc.log.Error(ctx, err).Int64("post_id", postID).Msg("Post sync failed")
}

func (uc *SaveSyncUC) runSync(ctx context.Context, postID int64) error {
	// Unconfigured integration is a no-op, not an error
	if uc.shortenerCfg.BaseAPIURL == "" || uc.shortenerCfg.APIKey == "" {
		return nil
	}
	if !uc.syncCfg.GenerateOnSave {
		return nil
	}

	post, err := uc.posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.Wrapf(ErrPostNotFound, "post %d", postID)
	}
	if post.Type != uc.syncCfg.PostType {
		return nil
	}

	longURL, err := uc.resolveLongURL(*post)
	if err != nil {
		return err
	}
	if longURL == "" {
		uc.log.Debug(ctx).Int64("post_id", postID).Msg("No long URL resolved, skipping sync")
		return nil
	}

	if uc.hooks.FilterLongURL != nil {
		longURL = uc.hooks.FilterLongURL(longURL)
	}

	tags := []string{TagGeneratedOnSave, fmt.Sprintf("post-%d", post.ID)}
	if uc.hooks.FilterTags != nil {
		// A nil result is the omit-signal: leave remotely stored tags
		// untouched instead of clearing them with an empty list
		tags = uc.hooks.FilterTags(ctx, tags)
	}

	req := entity.SyncRequest{
		LongURL: longURL,
		Title:   post.Title,
		Tags:    tags,
	}

	assoc, err := uc.GetAssociation(ctx, post.ID)
	if err != nil {
		return err
	}

	var link *entity.ShortLink
	if assoc == nil {
		link, err = uc.client.Create(ctx, req)
	} else {
		link, err = uc.client.Update(ctx, assoc.ShortCode, req)
	}
	if err != nil {
		return err
	}

	if link == nil || link.ShortURL == "" {
		return errors.Wrapf(ErrMissingShortURL, "post %d", post.ID)
	}

	err = uc.store.SetMany(ctx, post.ID, map[string]string{
		metadata.KeyLongURL:   link.LongURL,
		metadata.KeyShortURL:  link.ShortURL,
		metadata.KeyShortCode: link.ShortCode,
	})
	if err != nil {
		return err
	}

	uc.log.Info(ctx).
		Int64("post_id", post.ID).
		Str("short_url", link.ShortURL).
		Msg("Post synced")

	return nil
}

func (uc *SaveSyncUC) resolveLongURL(post entity.Post) (string, error) {
	// A single status field cannot be scheduled and published at once;
	// the platform's separate published signal is what makes this
	// conjunction satisfiable. TODO: product decision pending on whether
	// this was meant to be "scheduled OR published".
	if post.Status == entity.StatusFuture && uc.published(post) {
		return uc.hooks.Permalink(post)
	}

	if post.Status == entity.StatusAutoDraft {
		return "", nil
	}

	return uc.predictPermalink(post)
}

func (uc *SaveSyncUC) published(post entity.Post) bool {
	if uc.hooks.PublishedCheck == nil {
		return false
	}
	return uc.hooks.PublishedCheck(post)
}

// predictPermalink builds the URL the post will have once published: a
// copy of the record is forced to published status, given a slug derived
// from its title when it has none, and passed through the platform's
// permalink construction. An empty result means the URL could not be
// predicted.
func (uc *SaveSyncUC) predictPermalink(post entity.Post) (string, error) {
	predicted := post
	predicted.Status = entity.StatusPublish

	if predicted.Slug == "" {
		if predicted.Title == "" {
			return "", nil
		}
		predicted.Slug = uc.hooks.SanitizeSlug(predicted.Title)
		if predicted.Slug == "" {
			return "", nil
		}
	}

	return uc.hooks.Permalink(predicted)
}

// GetAssociation reads the stored post/short-link association. All three
// fields must be present; a partial record reports as absent.
func (uc *SaveSyncUC) GetAssociation(ctx context.Context, postID int64) (*entity.LinkAssociation, error) {
	assoc := entity.LinkAssociation{}

	var err error
	if assoc.LongURL, err = uc.store.Get(ctx, postID, metadata.KeyLongURL); err != nil {
		return nil, err
	}
	if assoc.ShortURL, err = uc.store.Get(ctx, postID, metadata.KeyShortURL); err != nil {
		return nil, err
	}
	if assoc.ShortCode, err = uc.store.Get(ctx, postID, metadata.KeyShortCode); err != nil {
		return nil, err
	}

	if !assoc.Complete() {
		return nil, nil
	}
	return &assoc, nil
}
