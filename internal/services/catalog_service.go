package services

import (
	"errors"
	"strings"
	"sync"
)

// CatalogStore abstracts persistence operations required by CatalogService.
// Reorder methods must validate inside their transaction that the submitted
// order is a total permutation of the container's current rows, returning
// ErrOrderMismatch otherwise.
type CatalogStore interface {
	GetModule(id string) (*Module, error)
	GetDayConfiguration(dayNumber int) (*DayConfiguration, error)
	ListDayConfigurations() ([]*DayConfiguration, error)
	SetDayModules(dayNumber int, moduleIDs []string) error
	ReorderDayModules(dayNumber int, moduleIDs []string) error
	ReorderModuleQuestions(moduleID string, questionIDs []string) error
}

// CatalogService hosts the curation operations. Mutations on the same
// container (one day's module list, one module's question list) are
// serialized through a per-container lock; the delete-and-reinsert itself is
// transactional in the store.
type CatalogService struct {
	store CatalogStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store, locks: map[string]*sync.Mutex{}}
}

func (s *CatalogService) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func dayLockKey(dayNumber int) string {
	return "day:" + itoa(dayNumber)
}

// Days returns every day configuration in plan order.
func (s *CatalogService) Days() ([]*DayConfiguration, error) {
	return s.store.ListDayConfigurations()
}

// AssignModuleToDay inserts the module into the day's ordered list at the
// given position; a negative or out-of-range position appends.
func (s *CatalogService) AssignModuleToDay(dayNumber int, moduleID string, position int) (*DayConfiguration, error) {
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	if strings.TrimSpace(moduleID) == "" {
		return nil, NewInvalidError("module id required")
	}
	mod, err := s.store.GetModule(moduleID)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, NewNotFoundError("module not found")
	}

	l := s.lockFor(dayLockKey(dayNumber))
	l.Lock()
	defer l.Unlock()

	cfg, err := s.store.GetDayConfiguration(dayNumber)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, NewNotFoundError("day not configured")
	}
	for _, id := range cfg.ModuleIDs {
		if id == moduleID {
			return nil, NewConflictError("module already assigned to day")
		}
	}
	if position < 0 || position > len(cfg.ModuleIDs) {
		position = len(cfg.ModuleIDs)
	}
	next := make([]string, 0, len(cfg.ModuleIDs)+1)
	next = append(next, cfg.ModuleIDs[:position]...)
	next = append(next, moduleID)
	next = append(next, cfg.ModuleIDs[position:]...)
	if err := s.store.SetDayModules(dayNumber, next); err != nil {
		return nil, err
	}
	cfg.ModuleIDs = next
	return cfg, nil
}

// RemoveModuleFromDay deletes the assignment and closes the order gap.
func (s *CatalogService) RemoveModuleFromDay(dayNumber int, moduleID string) (*DayConfiguration, error) {
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	l := s.lockFor(dayLockKey(dayNumber))
	l.Lock()
	defer l.Unlock()

	cfg, err := s.store.GetDayConfiguration(dayNumber)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, NewNotFoundError("day not configured")
	}
	next := make([]string, 0, len(cfg.ModuleIDs))
	for _, id := range cfg.ModuleIDs {
		if id != moduleID {
			next = append(next, id)
		}
	}
	if len(next) == len(cfg.ModuleIDs) {
		return nil, NewNotFoundError("module not assigned to day")
	}
	if err := s.store.SetDayModules(dayNumber, next); err != nil {
		return nil, err
	}
	cfg.ModuleIDs = next
	return cfg, nil
}

// ReorderDayModules replaces the day's module order. The submitted list must
// be a permutation of the current assignments; anything else is rejected and
// the stored order is left untouched.
func (s *CatalogService) ReorderDayModules(dayNumber int, order []string) (*DayConfiguration, error) {
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	if len(order) == 0 {
		return nil, NewInvalidError("order required")
	}
	l := s.lockFor(dayLockKey(dayNumber))
	l.Lock()
	defer l.Unlock()

	cfg, err := s.store.GetDayConfiguration(dayNumber)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, NewNotFoundError("day not configured")
	}
	if err := s.store.ReorderDayModules(dayNumber, order); err != nil {
		if errors.Is(err, ErrOrderMismatch) {
			return nil, NewInvalidError("order must be a permutation of the day's modules")
		}
		return nil, err
	}
	cfg.ModuleIDs = order
	return cfg, nil
}

// ReorderModuleQuestions replaces the module's question order under the same
// permutation rule as ReorderDayModules.
func (s *CatalogService) ReorderModuleQuestions(moduleID string, order []string) (*Module, error) {
	if strings.TrimSpace(moduleID) == "" {
		return nil, NewInvalidError("module id required")
	}
	if len(order) == 0 {
		return nil, NewInvalidError("order required")
	}
	l := s.lockFor("module:" + moduleID)
	l.Lock()
	defer l.Unlock()

	mod, err := s.store.GetModule(moduleID)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, NewNotFoundError("module not found")
	}
	if err := s.store.ReorderModuleQuestions(moduleID, order); err != nil {
		if errors.Is(err, ErrOrderMismatch) {
			return nil, NewInvalidError("order must be a permutation of the module's questions")
		}
		return nil, err
	}
	mod.QuestionIDs = order
	return mod, nil
}
