package shortener

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/shortsync/shortsync/config"
	"github.com/shortsync/shortsync/internal/entity"
)

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClient(cfg config.Shortener) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseAPIURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type linkRequest struct {
	LongURL string   `json:"longUrl"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
}

func (c *HTTPClient) Create(ctx context.Context, req entity.SyncRequest) (*entity.ShortLink, error) {
	link, err := c.send(ctx, http.MethodPost, c.baseURL+"/links", req)
	return link, errors.Wrap(err, "[shortener] create")
}

func (c *HTTPClient) Update(ctx context.Context, shortCode string, req entity.SyncRequest) (*entity.ShortLink, error) {
	link, err := c.send(ctx, http.MethodPut, c.baseURL+"/links/"+shortCode, req)
	return link, errors.Wrapf(err, "[shortener] update %s", shortCode)
}

func (c *HTTPClient) send(ctx context.Context, method, url string, req entity.SyncRequest) (*entity.ShortLink, error) {
	body, err := json.Marshal(linkRequest{
		LongURL: req.LongURL,
		Title:   req.Title,
		Tags:    req.Tags,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}

	var link entity.ShortLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	return &link, nil
}
