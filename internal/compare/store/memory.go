package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/gocompare/internal/compare/entity"
	"github.com/shandysiswandi/gocompare/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]entity.UploadRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[string]entity.UploadRecord),
	}
}

func (s *InMemoryStore) CreateRecord(ctx context.Context, rec entity.UploadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.UploadID]; exists {
		return errDuplicate
	}

	s.records[rec.UploadID] = rec

	return nil
}

func (s *InMemoryStore) GetRecord(ctx context.Context, uploadID string) (entity.UploadRecord, error) {
	s.mu.RLock()
	rec, ok := s.records[uploadID]
	s.mu.RUnlock()
	if !ok {
		return entity.UploadRecord{}, pkgerror.ErrNotFound
	}

	return rec, nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
