package db

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nightjarhq/nightjar/internal/services"
)

// MemoryStore is a mutex-guarded in-memory implementation of every service
// store interface, used by tests and DB-less runs.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[string]*services.User
	emails        map[string]string
	questions     map[string]*services.Question
	modules       map[string]*services.Module
	days          map[int]*services.DayConfiguration
	responses     map[string]*services.Response
	gatewayStates map[string]*services.GatewayState
	completedDays map[string]map[int]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         map[string]*services.User{},
		emails:        map[string]string{},
		questions:     map[string]*services.Question{},
		modules:       map[string]*services.Module{},
		days:          map[int]*services.DayConfiguration{},
		responses:     map[string]*services.Response{},
		gatewayStates: map[string]*services.GatewayState{},
		completedDays: map[string]map[int]time.Time{},
	}
}

func responseKey(userID, questionID string, dayNumber int) string {
	return fmt.Sprintf("%s|%s|%d", userID, questionID, dayNumber)
}

func gatewayKey(userID string, t services.GatewayType) string {
	return userID + "|" + string(t)
}

// ---- users ----

func (m *MemoryStore) GetUser(id string) (*services.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) FindUserByEmail(email string) (*services.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.emails[email]
	if !ok {
		return nil, nil
	}
	cp := *m.users[id]
	return &cp, nil
}

func (m *MemoryStore) AddUser(u *services.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.emails[u.Email]; exists {
		return services.NewConflictError("email exists")
	}
	cp := *u
	m.users[u.ID] = &cp
	m.emails[u.Email] = u.ID
	return nil
}

func (m *MemoryStore) UpdateUserJourney(id string, currentDay int, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return services.NewNotFoundError("user not found")
	}
	u.CurrentDay = currentDay
	u.AssessmentCompleted = completed
	return nil
}

// ---- catalog reads ----

func (m *MemoryStore) GetQuestion(id string) (*services.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.questions[id]
	if !ok {
		return nil, nil
	}
	return q, nil
}

func (m *MemoryStore) ListQuestions() ([]*services.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*services.Question, 0, len(m.questions))
	for _, q := range m.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) GetModule(id string) (*services.Module, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modules[id]
	if !ok {
		return nil, nil
	}
	cp := *mod
	cp.QuestionIDs = append([]string(nil), mod.QuestionIDs...)
	return &cp, nil
}

func (m *MemoryStore) ListModuleQuestions(moduleID string) ([]*services.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mod, ok := m.modules[moduleID]
	if !ok {
		return nil, nil
	}
	out := make([]*services.Question, 0, len(mod.QuestionIDs))
	for _, qid := range mod.QuestionIDs {
		if q, ok := m.questions[qid]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *MemoryStore) GetDayConfiguration(dayNumber int) (*services.DayConfiguration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.days[dayNumber]
	if !ok {
		return nil, nil
	}
	cp := *cfg
	cp.ModuleIDs = append([]string(nil), cfg.ModuleIDs...)
	cp.RequiredGateways = append([]services.GatewayType(nil), cfg.RequiredGateways...)
	return &cp, nil
}

func (m *MemoryStore) ListDayConfigurations() ([]*services.DayConfiguration, error) {
	m.mu.RLock()
	numbers := make([]int, 0, len(m.days))
	for n := range m.days {
		numbers = append(numbers, n)
	}
	m.mu.RUnlock()
	sort.Ints(numbers)
	out := make([]*services.DayConfiguration, 0, len(numbers))
	for _, n := range numbers {
		cfg, _ := m.GetDayConfiguration(n)
		out = append(out, cfg)
	}
	return out, nil
}

func (m *MemoryStore) MaxDayNumber() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	max := 0
	for n := range m.days {
		if n > max {
			max = n
		}
	}
	return max, nil
}

// ---- curation ----

func (m *MemoryStore) SetDayModules(dayNumber int, moduleIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.days[dayNumber]
	if !ok {
		return services.NewNotFoundError("day not configured")
	}
	cfg.ModuleIDs = append([]string(nil), moduleIDs...)
	return nil
}

func (m *MemoryStore) ReorderDayModules(dayNumber int, moduleIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.days[dayNumber]
	if !ok {
		return services.NewNotFoundError("day not configured")
	}
	if !samePermutation(cfg.ModuleIDs, moduleIDs) {
		return services.ErrOrderMismatch
	}
	cfg.ModuleIDs = append([]string(nil), moduleIDs...)
	return nil
}

func (m *MemoryStore) ReorderModuleQuestions(moduleID string, questionIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mod, ok := m.modules[moduleID]
	if !ok {
		return services.NewNotFoundError("module not found")
	}
	if !samePermutation(mod.QuestionIDs, questionIDs) {
		return services.ErrOrderMismatch
	}
	mod.QuestionIDs = append([]string(nil), questionIDs...)
	return nil
}

// ---- responses ----

func (m *MemoryStore) UpsertResponse(r *services.Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.responses[responseKey(r.UserID, r.QuestionID, r.DayNumber)] = &cp
	return nil
}

func (m *MemoryStore) ListResponsesByUser(userID string) ([]*services.Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*services.Response
	for _, r := range m.responses {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayNumber == out[j].DayNumber {
			return out[i].QuestionID < out[j].QuestionID
		}
		return out[i].DayNumber < out[j].DayNumber
	})
	return out, nil
}

func (m *MemoryStore) ListResponsesByUserDay(userID string, dayNumber int) ([]*services.Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*services.Response
	for _, r := range m.responses {
		if r.UserID == userID && r.DayNumber == dayNumber {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

// ---- gateway states ----

func (m *MemoryStore) ListGatewayStates(userID string) ([]*services.GatewayState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*services.GatewayState
	for _, st := range m.gatewayStates {
		if st.UserID == userID {
			cp := *st
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GatewayType < out[j].GatewayType })
	return out, nil
}

func (m *MemoryStore) SaveGatewayState(st *services.GatewayState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *st
	m.gatewayStates[gatewayKey(st.UserID, st.GatewayType)] = &cp
	return nil
}

// ---- journey ----

func (m *MemoryStore) MarkDayCompleted(userID string, dayNumber int, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.completedDays[userID]
	if !ok {
		days = map[int]time.Time{}
		m.completedDays[userID] = days
	}
	if _, done := days[dayNumber]; !done {
		days[dayNumber] = at
	}
	return nil
}

func (m *MemoryStore) ListCompletedDays(userID string) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []int
	for d := range m.completedDays[userID] {
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}

func (m *MemoryStore) ResetJourney(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return services.NewNotFoundError("user not found")
	}
	for key, r := range m.responses {
		if r.UserID == userID {
			delete(m.responses, key)
		}
	}
	for key, st := range m.gatewayStates {
		if st.UserID == userID {
			delete(m.gatewayStates, key)
		}
	}
	delete(m.completedDays, userID)
	u.CurrentDay = 1
	u.AssessmentCompleted = false
	return nil
}

// ---- seeding ----

func (m *MemoryStore) SeedCatalog(cat *services.Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.questions) > 0 {
		return nil
	}
	for _, q := range cat.Questions {
		m.questions[q.ID] = q
	}
	for _, mod := range cat.Modules {
		cp := *mod
		cp.QuestionIDs = append([]string(nil), mod.QuestionIDs...)
		m.modules[mod.ID] = &cp
	}
	for _, d := range cat.Days {
		cp := *d
		cp.ModuleIDs = append([]string(nil), d.ModuleIDs...)
		cp.RequiredGateways = append([]services.GatewayType(nil), d.RequiredGateways...)
		m.days[d.DayNumber] = &cp
	}
	return nil
}
