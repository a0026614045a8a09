package services

import (
	"testing"
	"time"
)

type gatewayStubStore struct {
	questions []*Question
	responses []*Response
	states    map[GatewayType]*GatewayState
	saveErr   error
}

func newGatewayStubStore() *gatewayStubStore {
	return &gatewayStubStore{
		questions: DefaultCatalog().Questions,
		states:    map[GatewayType]*GatewayState{},
	}
}

func (s *gatewayStubStore) ListQuestions() ([]*Question, error) { return s.questions, nil }

func (s *gatewayStubStore) ListResponsesByUser(userID string) ([]*Response, error) {
	return s.responses, nil
}

func (s *gatewayStubStore) ListGatewayStates(userID string) ([]*GatewayState, error) {
	out := make([]*GatewayState, 0, len(s.states))
	for _, st := range s.states {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

func (s *gatewayStubStore) SaveGatewayState(st *GatewayState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *st
	s.states[st.GatewayType] = &cp
	return nil
}

func (s *gatewayStubStore) answer(questionID string, day int, at time.Time, str *string, num *float64) {
	s.responses = append(s.responses, &Response{
		UserID: "u1", QuestionID: questionID, DayNumber: day,
		StringValue: str, NumberValue: num, AnsweredAt: at,
	})
}

func TestEvaluateNoResponsesTriggersNothing(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)

	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if len(states) != len(GatewayRules()) {
		t.Fatalf("states = %d, want %d", len(states), len(GatewayRules()))
	}
	for gt, st := range states {
		if st.Triggered {
			t.Fatalf("gateway %s triggered with no responses", gt)
		}
		if st.TriggeredAt != nil {
			t.Fatalf("gateway %s has triggered_at with no responses", gt)
		}
	}
}

func TestEvaluateInsomniaAndDerivedPoorSleepQuality(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)

	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	yes := "Yes"
	store.answer("3", 1, at, &yes, nil)

	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !states[GatewayInsomnia].Triggered {
		t.Fatalf("insomnia not triggered by q3=Yes")
	}
	if !states[GatewayPoorSleepQuality].Triggered {
		t.Fatalf("poor_sleep_quality not derived from insomnia")
	}
	if states[GatewayDepression].Triggered {
		t.Fatalf("depression triggered without evidence")
	}
}

func TestEvaluateOrdinalThresholds(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Index 1 of the frequency options is below the depression threshold of 2.
	severalDays := "Several days"
	store.answer("15", 3, at, &severalDays, nil)
	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if states[GatewayDepression].Triggered {
		t.Fatalf("depression triggered at index 1, threshold is 2")
	}

	moreThanHalf := "More than half the days"
	store.answer("15", 4, at.Add(time.Hour), &moreThanHalf, nil)
	states, err = svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if !states[GatewayDepression].Triggered {
		t.Fatalf("depression not triggered at index 2")
	}

	// Sleepiness threshold is 3: "Often" fires, "Sometimes" does not.
	sometimes := "Sometimes"
	store.answer("17", 3, at, &sometimes, nil)
	states, _ = svc.Evaluate("u1")
	if states[GatewayExcessiveSleepiness].Triggered {
		t.Fatalf("excessive_sleepiness triggered at index 2, threshold is 3")
	}
	often := "Often"
	store.answer("17", 4, at.Add(time.Hour), &often, nil)
	states, _ = svc.Evaluate("u1")
	if !states[GatewayExcessiveSleepiness].Triggered {
		t.Fatalf("excessive_sleepiness not triggered at index 3")
	}
}

func TestEvaluateTriggeredAtIsMonotonic(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	yes := "Yes"
	store.answer("3", 1, first, &yes, nil)
	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if states[GatewayInsomnia].TriggeredAt == nil || !states[GatewayInsomnia].TriggeredAt.Equal(first) {
		t.Fatalf("triggered_at = %v, want %v", states[GatewayInsomnia].TriggeredAt, first)
	}

	// A later answer flips the evidence. Triggered clears, triggered_at stays.
	no := "No"
	svc.now = func() time.Time { return first.Add(24 * time.Hour) }
	store.answer("3", 2, first.Add(time.Hour), &no, nil)
	states, err = svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	st := states[GatewayInsomnia]
	if st.Triggered {
		t.Fatalf("insomnia still triggered after q3=No")
	}
	if st.TriggeredAt == nil || !st.TriggeredAt.Equal(first) {
		t.Fatalf("triggered_at = %v, want original %v", st.TriggeredAt, first)
	}
	if !st.LastEvaluatedAt.Equal(first.Add(24 * time.Hour)) {
		t.Fatalf("last_evaluated_at = %v, want %v", st.LastEvaluatedAt, first.Add(24*time.Hour))
	}
}

func TestEvaluateUsesLatestResponsePerQuestion(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	yes, no := "Yes", "No"
	store.answer("18", 3, at, &yes, nil)
	store.answer("18", 5, at.Add(time.Hour), &no, nil)

	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if states[GatewayCognitive].Triggered {
		t.Fatalf("cognitive triggered from stale response")
	}
}

func TestEvaluateSleepTimingClockGap(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	weekday, weekend := "22:30", "23:00"
	store.answer("7", 2, at, &weekday, nil)
	store.answer("9", 2, at, &weekend, nil)
	states, _ := svc.Evaluate("u1")
	if states[GatewaySleepTiming].Triggered {
		t.Fatalf("sleep_timing triggered on a 30 minute gap")
	}

	lateWeekend := "00:30"
	store.answer("9", 3, at.Add(time.Hour), &lateWeekend, nil)
	states, _ = svc.Evaluate("u1")
	if !states[GatewaySleepTiming].Triggered {
		t.Fatalf("sleep_timing not triggered on a gap over 60 minutes")
	}
}

func TestEvaluateRecordsEvaluationData(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	yes := "Yes"
	minutes := 45.0
	store.answer("3", 1, at, &yes, nil)
	store.answer("PSQI_2", 1, at, nil, &minutes)

	states, err := svc.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	data := states[GatewayInsomnia].EvaluationData
	if data["3"] != "Yes" {
		t.Fatalf("evaluation data q3 = %q, want Yes", data["3"])
	}
	if data["PSQI_2"] != "45" {
		t.Fatalf("evaluation data PSQI_2 = %q, want 45", data["PSQI_2"])
	}
	if _, ok := data["PSQI_5a"]; ok {
		t.Fatalf("evaluation data contains unanswered input PSQI_5a")
	}
}

func TestEvaluatePainRequiresBothInputs(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	yes := "Yes"
	store.answer("22", 4, at, &yes, nil)
	states, _ := svc.Evaluate("u1")
	if states[GatewayPain].Triggered {
		t.Fatalf("pain triggered without a severity answer")
	}

	severity := 6.0
	store.answer("23", 4, at, nil, &severity)
	states, _ = svc.Evaluate("u1")
	if !states[GatewayPain].Triggered {
		t.Fatalf("pain not triggered with q22=Yes and severity 6")
	}
}

func TestStatesReadsPersistedOnly(t *testing.T) {
	store := newGatewayStubStore()
	svc := NewGatewayService(store, nil)

	states, err := svc.States("u1")
	if err != nil {
		t.Fatalf("States returned error: %v", err)
	}
	if len(states) != 0 {
		t.Fatalf("states = %d, want 0 before any evaluation", len(states))
	}

	yes := "Yes"
	store.answer("3", 1, time.Now(), &yes, nil)
	if _, err := svc.Evaluate("u1"); err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	states, err = svc.States("u1")
	if err != nil {
		t.Fatalf("States returned error: %v", err)
	}
	if !states[GatewayInsomnia].Triggered {
		t.Fatalf("persisted insomnia state not triggered")
	}
}
