package shortener

import (
	"context"
	"fmt"
	"sync"

	"github.com/shortsync/shortsync/internal/entity"
)

// Mock fabricates deterministic short links and records every call.
// Meant for tests and for running without a remote service configured.
type Mock struct {
	mutex   sync.Mutex
	nextID  int
	Creates []entity.SyncRequest
	Updates map[string]entity.SyncRequest

	// Err, if set, is returned from every call.
	Err error
	// Response, if set, is returned instead of a fabricated link.
	Response *entity.ShortLink
}

func NewMock() *Mock {
	return &Mock{
		Updates: make(map[string]entity.SyncRequest),
	}
}

func (m *Mock) Create(ctx context.Context, req entity.SyncRequest) (*entity.ShortLink, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.Creates = append(m.Creates, req)

	if m.Response != nil {
		return m.Response, nil
	}

	m.nextID++
	code := fmt.Sprintf("mock%d", m.nextID)
	return &entity.ShortLink{
		LongURL:   req.LongURL,
		ShortURL:  "https://s.example/" + code,
		ShortCode: code,
	}, nil
}

func (m *Mock) Update(ctx context.Context, shortCode string, req entity.SyncRequest) (*entity.ShortLink, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.Updates[shortCode] = req

	if m.Response != nil {
		return m.Response, nil
	}

	return &entity.ShortLink{
		LongURL:   req.LongURL,
		ShortURL:  "https://s.example/" + shortCode,
		ShortCode: shortCode,
	}, nil
}
