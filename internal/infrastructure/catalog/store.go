package catalog

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"lotwise/internal/domain/entities"
)

type snapshot struct {
	zoning map[string]entities.ZoningRule
	costs  map[string]entities.CostItem
	duty   []entities.DutyBracket
}

// Store is a read-through cache over Loader. The first read after startup or
// after any change in the catalog directory loads all three tables; until the
// next change every request is served from the cached snapshot.
type Store struct {
	loader  *Loader
	log     *zap.Logger
	watcher *fsnotify.Watcher

	mu   sync.RWMutex
	snap *snapshot
}

// NewStore builds a Store and starts watching the loader's directory. When
// the directory cannot be watched the store still works, degrading to a
// load-once cache.
func NewStore(loader *Loader, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{loader: loader, log: log}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("catalog watcher unavailable; caching without invalidation", zap.Error(err))
		return s
	}
	if err := w.Add(loader.Dir()); err != nil {
		log.Warn("cannot watch catalog directory; caching without invalidation",
			zap.String("dir", loader.Dir()), zap.Error(err))
		w.Close()
		return s
	}
	s.watcher = w
	go s.watch()
	return s
}

func (s *Store) watch() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.log.Info("catalog directory changed; invalidating cache", zap.String("event", ev.String()))
				s.invalidate()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

// Close stops the directory watcher.
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) snapshot() *snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		s.snap = &snapshot{
			zoning: s.loader.ZoningRules(),
			costs:  s.loader.CostItems(),
			duty:   s.loader.DutyBrackets(),
		}
	}
	return s.snap
}

func (s *Store) ZoningRules() map[string]entities.ZoningRule {
	return s.snapshot().zoning
}

func (s *Store) CostItems() map[string]entities.CostItem {
	return s.snapshot().costs
}

func (s *Store) DutyBrackets() []entities.DutyBracket {
	return s.snapshot().duty
}
