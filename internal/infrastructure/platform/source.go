package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/shortsync/shortsync/config"
	"github.com/shortsync/shortsync/internal/entity"
)

// Source reads content records from the host platform's API.
type Source struct {
	baseURL string
	http    *http.Client
}

func NewSource(cfg config.Platform) *Source {
	return &Source{
		baseURL: strings.TrimSuffix(cfg.APIURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (s *Source) GetPost(ctx context.Context, id int64) (*entity.Post, error) {
	url := fmt.Sprintf("%s/posts/%d", s.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[platform] build request")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[platform] get post %d", id)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("[platform] get post %d: unexpected status %d", id, resp.StatusCode)
	}

	var post entity.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, errors.Wrapf(err, "[platform] decode post %d", id)
	}

	return &post, nil
}
