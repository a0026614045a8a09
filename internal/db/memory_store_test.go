package db

import (
	"errors"
	"testing"
	"time"

	"github.com/nightjarhq/nightjar/internal/services"
)

func seededMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if err := store.SeedCatalog(services.DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestMemoryStoreSeedIsIdempotent(t *testing.T) {
	store := seededMemoryStore(t)
	qs, err := store.ListQuestions()
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	before := len(qs)
	if before == 0 {
		t.Fatalf("no questions after seed")
	}
	if err := store.SeedCatalog(services.DefaultCatalog()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	qs, _ = store.ListQuestions()
	if len(qs) != before {
		t.Fatalf("question count changed on reseed: %d -> %d", before, len(qs))
	}
}

func TestMemoryStoreUpsertResponse(t *testing.T) {
	store := seededMemoryStore(t)
	yes := "Yes"
	r := &services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &yes, AnsweredAt: time.Now()}
	if err := store.UpsertResponse(r); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	no := "No"
	r2 := &services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &no, AnsweredAt: time.Now()}
	if err := store.UpsertResponse(r2); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	rs, err := store.ListResponsesByUserDay("u1", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 1 || *rs[0].StringValue != "No" {
		t.Fatalf("upsert did not replace: %v", rs)
	}
}

func TestMemoryStoreReorderValidation(t *testing.T) {
	store := seededMemoryStore(t)

	err := store.ReorderDayModules(1, []string{"core_social"})
	if !errors.Is(err, services.ErrOrderMismatch) {
		t.Fatalf("partial reorder error = %v, want ErrOrderMismatch", err)
	}
	cfg, _ := store.GetDayConfiguration(1)
	if cfg.ModuleIDs[0] != "core_social" {
		t.Fatalf("stored order changed after rejected reorder: %v", cfg.ModuleIDs)
	}

	if err := store.ReorderDayModules(1, []string{"core_sleep_quality_part1", "core_social", "core_metabolic"}); err != nil {
		t.Fatalf("valid reorder: %v", err)
	}
	cfg, _ = store.GetDayConfiguration(1)
	if cfg.ModuleIDs[0] != "core_sleep_quality_part1" {
		t.Fatalf("reorder not applied: %v", cfg.ModuleIDs)
	}

	err = store.ReorderModuleQuestions("core_social", []string{"D1", "D1"})
	if !errors.Is(err, services.ErrOrderMismatch) {
		t.Fatalf("duplicate reorder error = %v, want ErrOrderMismatch", err)
	}
}

func TestMemoryStoreResetJourney(t *testing.T) {
	store := seededMemoryStore(t)
	now := time.Now()
	if err := store.AddUser(&services.User{ID: "u1", Email: "u1@example.com", CurrentDay: 5, CreatedAt: now}); err != nil {
		t.Fatalf("add user: %v", err)
	}
	yes := "Yes"
	_ = store.UpsertResponse(&services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &yes, AnsweredAt: now})
	_ = store.SaveGatewayState(&services.GatewayState{UserID: "u1", GatewayType: services.GatewayInsomnia, Triggered: true, LastEvaluatedAt: now})
	_ = store.MarkDayCompleted("u1", 1, now)

	if err := store.ResetJourney("u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	u, _ := store.GetUser("u1")
	if u.CurrentDay != 1 || u.AssessmentCompleted {
		t.Fatalf("user after reset = %+v", u)
	}
	if rs, _ := store.ListResponsesByUser("u1"); len(rs) != 0 {
		t.Fatalf("responses not cleared: %d", len(rs))
	}
	if sts, _ := store.ListGatewayStates("u1"); len(sts) != 0 {
		t.Fatalf("gateway states not cleared: %d", len(sts))
	}
	if ds, _ := store.ListCompletedDays("u1"); len(ds) != 0 {
		t.Fatalf("completed days not cleared: %d", len(ds))
	}

	if err := store.ResetJourney("ghost"); err == nil {
		t.Fatalf("reset of unknown user did not fail")
	}
}

func TestMemoryStoreUserLookups(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	if err := store.AddUser(&services.User{ID: "u1", Email: "a@example.com", CreatedAt: now}); err != nil {
		t.Fatalf("add user: %v", err)
	}
	if err := store.AddUser(&services.User{ID: "u2", Email: "a@example.com", CreatedAt: now}); err == nil {
		t.Fatalf("duplicate email accepted")
	}
	u, err := store.FindUserByEmail("a@example.com")
	if err != nil || u == nil || u.ID != "u1" {
		t.Fatalf("find by email = %v, %v", u, err)
	}
	if u, _ := store.GetUser("missing"); u != nil {
		t.Fatalf("unknown user lookup returned %v", u)
	}
}
