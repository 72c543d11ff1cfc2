package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"phonekart/internal/logger"

	"go.uber.org/zap"
)

// FileStore keeps every key in one JSON document on local disk. Writes go
// to a temp file that is renamed over the original.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *FileStore) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		logger.FromCtx(ctx).Error("file store: failed to read state",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrFailedLoadState, err)
	}

	v, ok := doc[key]
	if !ok || string(v) == "null" {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (s *FileStore) Save(ctx context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: value for %q is not JSON", ErrFailedSaveState, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		// A corrupt document is replaced rather than blocking sign-in.
		logger.FromCtx(ctx).Warn("file store: discarding unreadable state",
			zap.String("path", s.path),
			zap.Error(err),
		)
		doc = map[string]json.RawMessage{}
	}
	doc[key] = json.RawMessage(value)

	if err := s.write(doc); err != nil {
		logger.FromCtx(ctx).Error("file store: failed to write state",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrFailedSaveState, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedDeleteState, err)
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)

	if err := s.write(doc); err != nil {
		logger.FromCtx(ctx).Error("file store: failed to write state",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrFailedDeleteState, err)
	}
	return nil
}
