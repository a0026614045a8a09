package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nightjarhq/nightjar/internal/services"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	// A :memory: database exists per connection; pooling would silently
	// split the schema across empty databases.
	conn.SetMaxOpenConns(1)
	if err := RunMigrations(conn, ""); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store, err := NewSQLiteStore(conn, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.SeedCatalog(services.DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestSQLiteSeedAndCatalogReads(t *testing.T) {
	store := newTestSQLiteStore(t)

	q, err := store.GetQuestion("23")
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if q == nil || q.Conditional == nil || q.Conditional.QuestionID != "22" {
		t.Fatalf("conditional not round-tripped: %+v", q)
	}
	if q.GatewayType != services.GatewayPain || q.GatewayThreshold != 4 {
		t.Fatalf("gateway fields not round-tripped: %+v", q)
	}

	mod, err := store.GetModule("core_social")
	if err != nil {
		t.Fatalf("get module: %v", err)
	}
	if mod == nil || len(mod.QuestionIDs) != 2 || mod.QuestionIDs[0] != "D1" {
		t.Fatalf("module question order wrong: %+v", mod)
	}

	qs, err := store.ListModuleQuestions("expansion_isi")
	if err != nil {
		t.Fatalf("list module questions: %v", err)
	}
	if len(qs) != 7 || qs[0].ID != "ISI_1" {
		t.Fatalf("ISI questions = %d first=%v", len(qs), qs)
	}

	cfg, err := store.GetDayConfiguration(6)
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if len(cfg.RequiredGateways) != 2 || cfg.RequiredGateways[0] != services.GatewayInsomnia {
		t.Fatalf("day 6 gateways = %v", cfg.RequiredGateways)
	}

	max, err := store.MaxDayNumber()
	if err != nil || max != 15 {
		t.Fatalf("max day = %d, %v", max, err)
	}

	if q, _ := store.GetQuestion("missing"); q != nil {
		t.Fatalf("unknown question returned %+v", q)
	}
}

func TestSQLiteResponsesAndGatewayStates(t *testing.T) {
	store := newTestSQLiteStore(t)
	now := time.Now().UTC().Truncate(time.Second)
	if err := store.AddUser(&services.User{ID: "u1", Email: "u1@example.com", PassHash: []byte("x"), Role: "user", CurrentDay: 1, CreatedAt: now}); err != nil {
		t.Fatalf("add user: %v", err)
	}

	yes := "Yes"
	if err := store.UpsertResponse(&services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &yes, AnsweredAt: now}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	n := 45.0
	if err := store.UpsertResponse(&services.Response{UserID: "u1", QuestionID: "PSQI_2", DayNumber: 1, NumberValue: &n, AnsweredAt: now}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Replace the first answer.
	no := "No"
	if err := store.UpsertResponse(&services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &no, AnsweredAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rs, err := store.ListResponsesByUserDay("u1", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("responses = %d, want 2", len(rs))
	}
	if *rs[0].StringValue != "No" {
		t.Fatalf("upsert did not replace: %v", *rs[0].StringValue)
	}
	if rs[1].NumberValue == nil || *rs[1].NumberValue != 45 {
		t.Fatalf("number value lost: %+v", rs[1])
	}

	at := now
	st := &services.GatewayState{
		UserID: "u1", GatewayType: services.GatewayInsomnia,
		Triggered: true, TriggeredAt: &at, LastEvaluatedAt: now,
		EvaluationData: map[string]string{"3": "Yes"},
	}
	if err := store.SaveGatewayState(st); err != nil {
		t.Fatalf("save state: %v", err)
	}
	st.Triggered = false
	st.LastEvaluatedAt = now.Add(time.Hour)
	if err := store.SaveGatewayState(st); err != nil {
		t.Fatalf("save state: %v", err)
	}
	states, err := store.ListGatewayStates("u1")
	if err != nil {
		t.Fatalf("list states: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("states = %d, want 1", len(states))
	}
	got := states[0]
	if got.Triggered {
		t.Fatalf("state not updated by upsert")
	}
	if got.TriggeredAt == nil || !got.TriggeredAt.Equal(at) {
		t.Fatalf("triggered_at = %v, want %v", got.TriggeredAt, at)
	}
	if got.EvaluationData["3"] != "Yes" {
		t.Fatalf("evaluation data lost: %v", got.EvaluationData)
	}
}

func TestSQLiteReorderValidation(t *testing.T) {
	store := newTestSQLiteStore(t)

	err := store.ReorderDayModules(1, []string{"core_social"})
	if !errors.Is(err, services.ErrOrderMismatch) {
		t.Fatalf("partial reorder error = %v, want ErrOrderMismatch", err)
	}
	cfg, _ := store.GetDayConfiguration(1)
	if cfg.ModuleIDs[0] != "core_social" {
		t.Fatalf("stored order changed after rejected reorder: %v", cfg.ModuleIDs)
	}

	if err := store.ReorderDayModules(1, []string{"core_metabolic", "core_sleep_quality_part1", "core_social"}); err != nil {
		t.Fatalf("valid reorder: %v", err)
	}
	cfg, _ = store.GetDayConfiguration(1)
	if cfg.ModuleIDs[0] != "core_metabolic" {
		t.Fatalf("reorder not applied: %v", cfg.ModuleIDs)
	}

	if err := store.ReorderModuleQuestions("core_social", []string{"D2", "D1"}); err != nil {
		t.Fatalf("question reorder: %v", err)
	}
	mod, _ := store.GetModule("core_social")
	if mod.QuestionIDs[0] != "D2" {
		t.Fatalf("question reorder not applied: %v", mod.QuestionIDs)
	}
}

func TestSQLiteSetDayModules(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SetDayModules(7, []string{"core_sleep_timing"}); err != nil {
		t.Fatalf("set day modules: %v", err)
	}
	cfg, _ := store.GetDayConfiguration(7)
	if len(cfg.ModuleIDs) != 1 || cfg.ModuleIDs[0] != "core_sleep_timing" {
		t.Fatalf("day 7 modules = %v", cfg.ModuleIDs)
	}
	if err := store.SetDayModules(7, nil); err != nil {
		t.Fatalf("clear day modules: %v", err)
	}
	cfg, _ = store.GetDayConfiguration(7)
	if len(cfg.ModuleIDs) != 0 {
		t.Fatalf("day 7 modules not cleared: %v", cfg.ModuleIDs)
	}
}

func TestSQLiteResetJourney(t *testing.T) {
	store := newTestSQLiteStore(t)
	now := time.Now().UTC()
	if err := store.AddUser(&services.User{ID: "u1", Email: "u1@example.com", PassHash: []byte("x"), Role: "user", CurrentDay: 6, CreatedAt: now}); err != nil {
		t.Fatalf("add user: %v", err)
	}
	yes := "Yes"
	_ = store.UpsertResponse(&services.Response{UserID: "u1", QuestionID: "3", DayNumber: 1, StringValue: &yes, AnsweredAt: now})
	_ = store.SaveGatewayState(&services.GatewayState{UserID: "u1", GatewayType: services.GatewayInsomnia, Triggered: true, LastEvaluatedAt: now})
	_ = store.MarkDayCompleted("u1", 1, now)
	_ = store.MarkDayCompleted("u1", 1, now) // idempotent

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
	if ds, _ := store.ListCompletedDays("u1"); len(ds) != 0 {
		t.Fatalf("completed days not cleared: %d", len(ds))
	}

	if err := store.ResetJourney("ghost"); err == nil {
		t.Fatalf("reset of unknown user did not fail")
	}
}
