package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Memory keeps objects in process. It backs local development when no S3
// endpoint is configured.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

func NewMemory(baseURL string) *Memory {
	return &Memory{objects: make(map[string][]byte), baseURL: baseURL}
}

func (m *Memory) Upload(_ context.Context, kind Kind, data []byte, filename string) (string, error) {
	_, ext, err := classify(kind, data, filename)
	if err != nil {
		return "", err
	}

	key := objectKey(kind, ext)
	m.mu.Lock()
	m.objects[key] = append([]byte(nil), data...)
	m.mu.Unlock()
	return key, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	_, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrObjectNotFound
	}
	return fmt.Sprintf("%s?expires=%d", m.PublicURL(key), int(expiry.Seconds())), nil
}

func (m *Memory) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", m.baseURL, key)
}
