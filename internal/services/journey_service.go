package services

import (
	"strings"
	"time"
)

// JourneyStore abstracts persistence operations required by JourneyService.
type JourneyStore interface {
	GetUser(id string) (*User, error)
	UpdateUserJourney(id string, currentDay int, completed bool) error
	MarkDayCompleted(userID string, dayNumber int, at time.Time) error
	ListCompletedDays(userID string) ([]int, error)
	MaxDayNumber() (int, error)
	// ResetJourney deletes the user's responses and gateway states and moves
	// the day pointer back to 1 in a single transaction.
	ResetJourney(userID string) error
}

// JourneyProgress summarizes where a user stands in the plan.
type JourneyProgress struct {
	CurrentDay    int   `json:"current_day"`
	TotalDays     int   `json:"total_days"`
	CompletedDays []int `json:"completed_days"`
	Complete      bool  `json:"complete"`
}

// CompleteDayResult reports the pointer movement caused by completing a day.
type CompleteDayResult struct {
	DayNumber  int  `json:"day_number"`
	CurrentDay int  `json:"current_day"`
	Complete   bool `json:"complete"`
}

// JourneyService tracks the per-user day pointer across the plan.
type JourneyService struct {
	store JourneyStore
	now   func() time.Time
}

func NewJourneyService(store JourneyStore) *JourneyService {
	return &JourneyService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CompleteDay records the day as done. The pointer only advances when the
// completed day is the user's current day and is below the last configured
// day; completing the last day sets the assessment-complete flag instead.
func (s *JourneyService) CompleteDay(userID string, dayNumber int) (*CompleteDayResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	u, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("user not found")
	}
	maxDay, err := s.store.MaxDayNumber()
	if err != nil {
		return nil, err
	}
	if dayNumber > maxDay {
		return nil, NewNotFoundError("day not configured")
	}
	if err := s.store.MarkDayCompleted(userID, dayNumber, s.now()); err != nil {
		return nil, err
	}
	currentDay := u.CurrentDay
	complete := u.AssessmentCompleted
	if dayNumber == u.CurrentDay {
		if dayNumber < maxDay {
			currentDay = dayNumber + 1
		} else {
			complete = true
		}
		if err := s.store.UpdateUserJourney(userID, currentDay, complete); err != nil {
			return nil, err
		}
	}
	return &CompleteDayResult{DayNumber: dayNumber, CurrentDay: currentDay, Complete: complete}, nil
}

// Progress returns the user's position in the plan.
func (s *JourneyService) Progress(userID string) (*JourneyProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	u, err := s.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("user not found")
	}
	maxDay, err := s.store.MaxDayNumber()
	if err != nil {
		return nil, err
	}
	days, err := s.store.ListCompletedDays(userID)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []int{}
	}
	return &JourneyProgress{
		CurrentDay:    u.CurrentDay,
		TotalDays:     maxDay,
		CompletedDays: days,
		Complete:      u.AssessmentCompleted,
	}, nil
}

// Reset wipes the user's responses and gateway states and restarts the
// journey at day 1. All-or-nothing.
func (s *JourneyService) Reset(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return NewInvalidError("user id required")
	}
	u, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return NewNotFoundError("user not found")
	}
	return s.store.ResetJourney(userID)
}
