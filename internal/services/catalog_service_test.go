package services

import "testing"

type catalogStubStore struct {
	modules map[string]*Module
	days    map[int]*DayConfiguration
}

func newCatalogStubStore() *catalogStubStore {
	return &catalogStubStore{
		modules: map[string]*Module{
			"mod_a": {ID: "mod_a", QuestionIDs: []string{"q1", "q2", "q3"}},
			"mod_b": {ID: "mod_b", QuestionIDs: []string{"q4"}},
			"mod_c": {ID: "mod_c"},
		},
		days: map[int]*DayConfiguration{
			1: {DayNumber: 1, ModuleIDs: []string{"mod_a", "mod_b"}},
		},
	}
}

func (s *catalogStubStore) GetModule(id string) (*Module, error) {
	mod, ok := s.modules[id]
	if !ok {
		return nil, nil
	}
	cp := *mod
	cp.QuestionIDs = append([]string(nil), mod.QuestionIDs...)
	return &cp, nil
}

func (s *catalogStubStore) GetDayConfiguration(dayNumber int) (*DayConfiguration, error) {
	cfg, ok := s.days[dayNumber]
	if !ok {
		return nil, nil
	}
	cp := *cfg
	cp.ModuleIDs = append([]string(nil), cfg.ModuleIDs...)
	return &cp, nil
}

func (s *catalogStubStore) ListDayConfigurations() ([]*DayConfiguration, error) {
	var out []*DayConfiguration
	for _, cfg := range s.days {
		out = append(out, cfg)
	}
	return out, nil
}

func (s *catalogStubStore) SetDayModules(dayNumber int, moduleIDs []string) error {
	s.days[dayNumber].ModuleIDs = append([]string(nil), moduleIDs...)
	return nil
}

func (s *catalogStubStore) ReorderDayModules(dayNumber int, moduleIDs []string) error {
	cfg := s.days[dayNumber]
	if !isPermutationOf(cfg.ModuleIDs, moduleIDs) {
		return ErrOrderMismatch
	}
	cfg.ModuleIDs = append([]string(nil), moduleIDs...)
	return nil
}

func (s *catalogStubStore) ReorderModuleQuestions(moduleID string, questionIDs []string) error {
	mod := s.modules[moduleID]
	if !isPermutationOf(mod.QuestionIDs, questionIDs) {
		return ErrOrderMismatch
	}
	mod.QuestionIDs = append([]string(nil), questionIDs...)
	return nil
}

func isPermutationOf(current, next []string) bool {
	if len(current) != len(next) {
		return false
	}
	counts := map[string]int{}
	for _, v := range current {
		counts[v]++
	}
	for _, v := range next {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func TestAssignModuleToDay(t *testing.T) {
	store := newCatalogStubStore()
	svc := NewCatalogService(store)

	cfg, err := svc.AssignModuleToDay(1, "mod_c", 1)
	if err != nil {
		t.Fatalf("AssignModuleToDay returned error: %v", err)
	}
	want := []string{"mod_a", "mod_c", "mod_b"}
	for i, id := range want {
		if cfg.ModuleIDs[i] != id {
			t.Fatalf("module order = %v, want %v", cfg.ModuleIDs, want)
		}
	}

	// Duplicate assignment conflicts.
	_, err = svc.AssignModuleToDay(1, "mod_c", 0)
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorConflict {
		t.Fatalf("duplicate assign error = %v, want conflict", err)
	}

	// Unknown module and unknown day.
	if _, err := svc.AssignModuleToDay(1, "ghost", 0); err == nil {
		t.Fatalf("assign of unknown module did not fail")
	}
	if _, err := svc.AssignModuleToDay(9, "mod_c", 0); err == nil {
		t.Fatalf("assign to unknown day did not fail")
	}
}

func TestAssignModuleOutOfRangePositionAppends(t *testing.T) {
	store := newCatalogStubStore()
	svc := NewCatalogService(store)

	cfg, err := svc.AssignModuleToDay(1, "mod_c", 99)
	if err != nil {
		t.Fatalf("AssignModuleToDay returned error: %v", err)
	}
	if cfg.ModuleIDs[len(cfg.ModuleIDs)-1] != "mod_c" {
		t.Fatalf("out-of-range position did not append: %v", cfg.ModuleIDs)
	}
}

func TestRemoveModuleFromDay(t *testing.T) {
	store := newCatalogStubStore()
	svc := NewCatalogService(store)

	cfg, err := svc.RemoveModuleFromDay(1, "mod_a")
	if err != nil {
		t.Fatalf("RemoveModuleFromDay returned error: %v", err)
	}
	if len(cfg.ModuleIDs) != 1 || cfg.ModuleIDs[0] != "mod_b" {
		t.Fatalf("modules after remove = %v, want [mod_b]", cfg.ModuleIDs)
	}

	_, err = svc.RemoveModuleFromDay(1, "mod_a")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("remove of unassigned module error = %v, want not_found", err)
	}
}

func TestReorderDayModulesRejectsNonPermutation(t *testing.T) {
	store := newCatalogStubStore()
	svc := NewCatalogService(store)

	cfg, err := svc.ReorderDayModules(1, []string{"mod_b", "mod_a"})
	if err != nil {
		t.Fatalf("ReorderDayModules returned error: %v", err)
	}
	if cfg.ModuleIDs[0] != "mod_b" {
		t.Fatalf("reorder not applied: %v", cfg.ModuleIDs)
	}

	// Dropping, duplicating or adding entries is rejected and the stored
	// order stays put.
	for _, bad := range [][]string{
		{"mod_b"},
		{"mod_b", "mod_b"},
		{"mod_b", "mod_a", "mod_c"},
	} {
		_, err := svc.ReorderDayModules(1, bad)
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("reorder %v error = %v, want invalid", bad, err)
		}
	}
	if got := store.days[1].ModuleIDs; got[0] != "mod_b" || got[1] != "mod_a" {
		t.Fatalf("stored order changed after rejected reorder: %v", got)
	}
}

func TestReorderModuleQuestions(t *testing.T) {
	store := newCatalogStubStore()
	svc := NewCatalogService(store)

	mod, err := svc.ReorderModuleQuestions("mod_a", []string{"q3", "q1", "q2"})
	if err != nil {
		t.Fatalf("ReorderModuleQuestions returned error: %v", err)
	}
	if mod.QuestionIDs[0] != "q3" {
		t.Fatalf("reorder not applied: %v", mod.QuestionIDs)
	}

	_, err = svc.ReorderModuleQuestions("mod_a", []string{"q3", "q1"})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("partial reorder error = %v, want invalid", err)
	}

	if _, err := svc.ReorderModuleQuestions("ghost", []string{"q1"}); err == nil {
		t.Fatalf("reorder of unknown module did not fail")
	}
}
