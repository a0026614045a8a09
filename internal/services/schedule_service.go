package services

import "strings"

// SleepLogModuleID names the module whose questions open every day.
const SleepLogModuleID = "core_sleep_log"

// InfoNoExpansionID is the synthetic entry shown on an expansion day when
// none of its required gateways has triggered. It never accepts answers and
// never counts toward day completion.
const InfoNoExpansionID = "INFO_NO_EXPANSION"

// ScheduleStore abstracts persistence operations required by ScheduleService.
type ScheduleStore interface {
	GetDayConfiguration(dayNumber int) (*DayConfiguration, error)
	GetModule(id string) (*Module, error)
	ListModuleQuestions(moduleID string) ([]*Question, error)
	ListResponsesByUser(userID string) ([]*Response, error)
	ListResponsesByUserDay(userID string, dayNumber int) ([]*Response, error)
	ListGatewayStates(userID string) ([]*GatewayState, error)
}

// ScheduleEntry is one question placed on a day, with the user's current
// answer attached for pre-filling.
type ScheduleEntry struct {
	Question   *Question `json:"question"`
	ModuleID   string    `json:"module_id,omitempty"`
	ModuleName string    `json:"module_name,omitempty"`
	Existing   *Response `json:"existing_response,omitempty"`
}

// ModuleSummary describes one module of a composed day.
type ModuleSummary struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	QuestionCount    int     `json:"question_count"`
	EstimatedMinutes float64 `json:"estimated_minutes"`
}

// DaySchedule is the composed questionnaire for one user and day.
type DaySchedule struct {
	DayNumber        int             `json:"day_number"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Entries          []ScheduleEntry `json:"entries"`
	Modules          []ModuleSummary `json:"modules"`
	RequiredGateways []GatewayType   `json:"required_gateways,omitempty"`
	Unlocked         bool            `json:"unlocked"`
	IsDayCompleted   bool            `json:"is_day_completed"`
}

// ScheduleService composes the daily questionnaire: sleep log first, then the
// day's modules when unlocked, then the conditional-visibility filter.
type ScheduleService struct {
	store ScheduleStore
}

func NewScheduleService(store ScheduleStore) *ScheduleService {
	return &ScheduleService{store: store}
}

// ComposeDay builds the questionnaire for one user and day. Composition is
// deterministic: the same catalog, responses and gateway states always yield
// the same schedule.
func (s *ScheduleService) ComposeDay(userID string, dayNumber int) (*DaySchedule, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	cfg, err := s.store.GetDayConfiguration(dayNumber)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, NewNotFoundError("day not configured")
	}

	states, err := s.store.ListGatewayStates(userID)
	if err != nil {
		return nil, err
	}
	triggered := map[GatewayType]bool{}
	for _, st := range states {
		triggered[st.GatewayType] = st.Triggered
	}
	unlocked := len(cfg.RequiredGateways) == 0
	for _, g := range cfg.RequiredGateways {
		if triggered[g] {
			unlocked = true
			break
		}
	}

	responses, err := s.store.ListResponsesByUser(userID)
	if err != nil {
		return nil, err
	}
	latest := latestByQuestion(responses)

	sched := &DaySchedule{
		DayNumber:        cfg.DayNumber,
		Title:            cfg.Title,
		Description:      cfg.Description,
		RequiredGateways: cfg.RequiredGateways,
		Unlocked:         unlocked,
	}

	moduleIDs := []string{SleepLogModuleID}
	if unlocked {
		moduleIDs = append(moduleIDs, cfg.ModuleIDs...)
	}
	for _, moduleID := range moduleIDs {
		mod, err := s.store.GetModule(moduleID)
		if err != nil {
			return nil, err
		}
		if mod == nil {
			continue
		}
		questions, err := s.store.ListModuleQuestions(moduleID)
		if err != nil {
			return nil, err
		}
		visible := FilterConditional(questions, latest)
		if len(visible) == 0 {
			continue
		}
		sched.Modules = append(sched.Modules, ModuleSummary{
			ID:               mod.ID,
			Name:             mod.Name,
			QuestionCount:    len(visible),
			EstimatedMinutes: mod.EstimatedMinutes,
		})
		for _, q := range visible {
			sched.Entries = append(sched.Entries, ScheduleEntry{
				Question:   q,
				ModuleID:   mod.ID,
				ModuleName: mod.Name,
				Existing:   latest[q.ID],
			})
		}
	}
	if !unlocked {
		sched.Entries = append(sched.Entries, ScheduleEntry{Question: noExpansionQuestion()})
	}

	dayResponses, err := s.store.ListResponsesByUserDay(userID, dayNumber)
	if err != nil {
		return nil, err
	}
	answered := make(map[string]bool, len(dayResponses))
	for _, r := range dayResponses {
		answered[r.QuestionID] = true
	}
	sched.IsDayCompleted = dayCompleted(sched.Entries, answered)
	return sched, nil
}

func noExpansionQuestion() *Question {
	return &Question{
		ID:     InfoNoExpansionID,
		Text:   "No additional questions today. Your earlier answers did not flag anything that needs a closer look on this day.",
		Pillar: PillarSleepQuality,
		Tier:   TierExpansion,
		Type:   QuestionInfo,
	}
}

// dayCompleted reports whether every non-informational composed question has
// a response recorded for this day.
func dayCompleted(entries []ScheduleEntry, answered map[string]bool) bool {
	for _, e := range entries {
		if e.Question.Type == QuestionInfo {
			continue
		}
		if !answered[e.Question.ID] {
			return false
		}
	}
	return true
}
