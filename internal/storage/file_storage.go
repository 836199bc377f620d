package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
	"github.com/nikmy/flighthub/pkg/tools/await"
)

// NewFileStorage keeps model in sync with a JSON file that other processes
// may write too. Run loads the file and then reloads it every interval.
func NewFileStorage[T any](
	fileName string,
	interval time.Duration,
	model Model[T],
	log logger.Logger,
) *FileStorage[T] {
	return &FileStorage[T]{
		fileName: fileName,
		model:    model,
		interval: interval,
		logger:   log.With("file_storage"),
	}
}

type FileStorage[T any] struct {
	fileName string
	model    Model[T]
	interval time.Duration
	logger   logger.Logger

	mu sync.Mutex
}

func (s *FileStorage[T]) Run(ctx context.Context) error {
	s.Load()

	ticker := await.Tick(s.interval)
	defer ticker.Stop()

	for ticker.Await(ctx) {
		s.Load()
	}
	return nil
}

// Load pushes the file contents into the model. A missing or broken file
// leaves the model as it is.
func (s *FileStorage[T]) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.getData()
	if data != nil {
		s.model.SetData(data)
	}
}

// Update runs change and writes the model to the file with no Load in
// between. The file is replaced atomically so that readers never see a
// partial write.
func (s *FileStorage[T]) Update(change func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	change()
	return s.save()
}

func (s *FileStorage[T]) save() error {
	data := s.model.GetData()
	bytes, err := json.Marshal(data)
	if err != nil {
		return errors.WrapFail(err, "marshal data")
	}

	dir := filepath.Dir(s.fileName)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return errors.WrapFailf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.fileName)+".*")
	if err != nil {
		return errors.WrapFail(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(bytes)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.WrapFailf(err, "write %s", tmp.Name())
	}

	err = os.Rename(tmp.Name(), s.fileName)
	if err != nil {
		return errors.WrapFailf(err, "replace %s", s.fileName)
	}
	return nil
}

func (s *FileStorage[T]) getData() map[string]T {
	bytes, err := os.ReadFile(s.fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		s.logger.Warnf("os.ReadFile error: %s", err)
		return nil
	}

	var data map[string]T
	err = json.Unmarshal(bytes, &data)
	if err != nil {
		s.logger.Warnf("json.Unmarshal(%s) error: %s", s.fileName, err)
		return nil
	}
	return data
}
