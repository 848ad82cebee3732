package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quizbee-cli/internal/model"
)

// JSONStore keeps the metadata document in memory and checkpoints it to a
// single JSON file on Flush. Writes go through a temp file and rename so an
// interrupted checkpoint never truncates the previous one.
type JSONStore struct {
	mu    sync.Mutex
	path  string
	meta  *model.Metadata
	dirty bool
}

// OpenJSON loads the metadata file at path, or starts empty when the file
// does not exist yet.
func OpenJSON(path string) (*JSONStore, error) {
	s := &JSONStore{path: path, meta: model.NewMetadata()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "store: read %s", path)
	}
	if err := json.Unmarshal(data, s.meta); err != nil {
		return nil, eris.Wrapf(err, "store: parse %s", path)
	}
	if s.meta.Categories == nil {
		s.meta.Categories = make(map[string]model.Classification)
	}

	zap.L().Info("store: loaded metadata",
		zap.String("path", path),
		zap.Int("classified", len(s.meta.Categories)),
	)
	return s, nil
}

func (s *JSONStore) Get(_ context.Context, id string) (model.Classification, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cls, ok := s.meta.Categories[id]
	return cls, ok, nil
}

func (s *JSONStore) Put(_ context.Context, id string, cls model.Classification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Categories[id] = cls
	s.dirty = true
	return nil
}

func (s *JSONStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meta.Categories, id)
	s.dirty = true
	return nil
}

func (s *JSONStore) All(_ context.Context) (map[string]model.Classification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Classification, len(s.meta.Categories))
	for id, cls := range s.meta.Categories {
		out[id] = cls
	}
	return out, nil
}

func (s *JSONStore) Progress(_ context.Context) (model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta.Progress, nil
}

func (s *JSONStore) SetProgress(_ context.Context, p model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Progress = p
	s.dirty = true
	return nil
}

// Flush writes the document atomically and stamps last_updated.
func (s *JSONStore) Flush(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}

	now := time.Now().UTC()
	s.meta.Progress.LastUpdated = &now

	data, err := json.MarshalIndent(s.meta, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: marshal metadata")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return eris.Wrapf(err, "store: write %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return eris.Wrapf(err, "store: rename %s", s.path)
	}

	s.dirty = false
	return nil
}

func (s *JSONStore) Close() error {
	return s.Flush(context.Background())
}
