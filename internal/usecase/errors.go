package usecase

import "errors"

var (
	ErrMissingShortURL = errors.New("missing short URL in API response")
	ErrPostNotFound    = errors.New("post not found")
)
