package settings

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/flighthub/internal/storage"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
)

const (
	keyTheme = "theme"

	defaultReloadInterval = time.Second
)

// NewStore returns a theme store backed by cfg.File. Every process that
// opens the same file sees the others' changes after a reload.
func NewStore(cfg Config, log logger.Logger) *Store {
	interval := cfg.ReloadInterval
	if interval <= 0 {
		interval = defaultReloadInterval
	}

	s := &Store{
		theme: ThemeLight,
		subs:  make(map[int]chan Theme),
		log:   log.With("settings"),
	}
	s.file = storage.NewFileStorage[Theme](cfg.File, interval, s, log)
	return s
}

type Store struct {
	file *storage.FileStorage[Theme]
	log  logger.Logger

	mu     sync.Mutex
	theme  Theme
	subs   map[int]chan Theme
	nextID int
}

// Run loads the persisted theme and keeps following the file until ctx is
// done.
func (s *Store) Run(ctx context.Context) error {
	return s.file.Run(ctx)
}

// Load reads the persisted theme once.
func (s *Store) Load() {
	s.file.Load()
}

func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) SetTheme(theme Theme) error {
	err := s.file.Update(func() { s.set(theme) })
	if err != nil {
		return errors.WrapFail(err, "persist theme")
	}
	return nil
}

// Toggle flips the theme and persists it. Reloads of the file wait until
// the new theme is written.
func (s *Store) Toggle() (Theme, error) {
	var theme Theme
	err := s.file.Update(func() {
		theme = s.Theme().Toggled()
		s.set(theme)
	})
	if err != nil {
		return theme, errors.WrapFail(err, "persist theme")
	}
	return theme, nil
}

// Subscribe delivers every theme change, made here or by another process.
// A slow subscriber only sees the latest value. cancel closes the channel.
func (s *Store) Subscribe() (changes <-chan Theme, cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan Theme, 1)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Store) GetData() map[string]Theme {
	return map[string]Theme{keyTheme: s.Theme()}
}

func (s *Store) SetData(data map[string]Theme) {
	theme, ok := data[keyTheme]
	if !ok {
		return
	}
	s.set(theme)
}

func (s *Store) set(theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if theme == s.theme {
		return
	}
	s.theme = theme
	s.log.Infof("theme is now %s", theme)

	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- theme
	}
}
