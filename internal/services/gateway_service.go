package services

import (
	"strings"
	"time"

	"github.com/nightjarhq/nightjar/internal/logger"
)

// GatewayStore abstracts persistence operations required by GatewayService.
type GatewayStore interface {
	ListQuestions() ([]*Question, error)
	ListResponsesByUser(userID string) ([]*Response, error)
	ListGatewayStates(userID string) ([]*GatewayState, error)
	SaveGatewayState(st *GatewayState) error
}

// GatewayService evaluates the full rule table against a user's response set
// and persists the resulting states.
type GatewayService struct {
	store GatewayStore
	rules []GatewayRule
	now   func() time.Time
	log   *logger.Logger
}

func NewGatewayService(store GatewayStore, log *logger.Logger) *GatewayService {
	if log == nil {
		log = logger.Nop()
	}
	return &GatewayService{
		store: store,
		rules: GatewayRules(),
		now:   func() time.Time { return time.Now().UTC() },
		log:   log,
	}
}

// Evaluate recomputes every gateway for the user and persists the states.
// Derived gateways are settled by iterating the rule table to a fixed point,
// bounded by len(rules)+1 passes; if the table fails to stabilize the
// single-pass results are kept (derived inputs read as untriggered) and a
// warning is logged.
func (s *GatewayService) Evaluate(userID string) (map[GatewayType]*GatewayState, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	responses, err := s.store.ListResponsesByUser(userID)
	if err != nil {
		return nil, err
	}
	latest := latestByQuestion(responses)

	questions, err := s.store.ListQuestions()
	if err != nil {
		return nil, err
	}
	qmap := make(map[string]*Question, len(questions))
	for _, q := range questions {
		qmap[q.ID] = q
	}

	priorStates, err := s.store.ListGatewayStates(userID)
	if err != nil {
		return nil, err
	}
	prior := make(map[GatewayType]*GatewayState, len(priorStates))
	for _, st := range priorStates {
		prior[st.GatewayType] = st
	}

	triggered := map[GatewayType]bool{}
	stable := false
	for pass := 0; pass < len(s.rules)+1; pass++ {
		ctx := NewRuleContext(latest, qmap, triggered)
		changed := false
		for _, rule := range s.rules {
			fired := rule.Predicate(ctx)
			if triggered[rule.Type] != fired {
				triggered[rule.Type] = fired
				changed = true
			}
		}
		if !changed {
			stable = true
			break
		}
	}
	if !stable {
		s.log.Warn("gateway rules did not stabilize, keeping single-pass results", "user_id", userID)
		triggered = map[GatewayType]bool{}
		ctx := NewRuleContext(latest, qmap, nil)
		for _, rule := range s.rules {
			triggered[rule.Type] = rule.Predicate(ctx)
		}
	}

	now := s.now()
	out := make(map[GatewayType]*GatewayState, len(s.rules))
	for _, rule := range s.rules {
		st := &GatewayState{
			UserID:          userID,
			GatewayType:     rule.Type,
			Triggered:       triggered[rule.Type],
			LastEvaluatedAt: now,
		}
		if prev := prior[rule.Type]; prev != nil {
			st.TriggeredAt = prev.TriggeredAt
		}
		if st.Triggered && st.TriggeredAt == nil {
			at := now
			st.TriggeredAt = &at
		}
		data := map[string]string{}
		for _, qid := range rule.Inputs {
			if r := latest[qid]; r != nil {
				data[qid] = r.DisplayValue()
			}
		}
		if len(data) > 0 {
			st.EvaluationData = data
		}
		if err := s.store.SaveGatewayState(st); err != nil {
			return nil, err
		}
		out[rule.Type] = st
	}
	return out, nil
}

// States returns the persisted gateway states for the user keyed by type.
// A gateway never evaluated has no entry and reads as untriggered.
func (s *GatewayService) States(userID string) (map[GatewayType]*GatewayState, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	states, err := s.store.ListGatewayStates(userID)
	if err != nil {
		return nil, err
	}
	out := make(map[GatewayType]*GatewayState, len(states))
	for _, st := range states {
		out[st.GatewayType] = st
	}
	return out, nil
}

// latestByQuestion keeps the most recent response per question across days.
func latestByQuestion(rs []*Response) map[string]*Response {
	latest := make(map[string]*Response, len(rs))
	for _, r := range rs {
		cur := latest[r.QuestionID]
		if cur == nil || r.AnsweredAt.After(cur.AnsweredAt) {
			latest[r.QuestionID] = r
		}
	}
	return latest
}
