package services

import (
	"strings"
	"time"

	"github.com/nightjarhq/nightjar/internal/logger"
)

// ResponseStore abstracts persistence operations required by ResponseService.
type ResponseStore interface {
	GetQuestion(id string) (*Question, error)
	UpsertResponse(r *Response) error
	ListResponsesByUserDay(userID string, dayNumber int) ([]*Response, error)
}

// SaveResponseRequest transports one sanitized answer into the service layer.
// Exactly one value slot must be populated.
type SaveResponseRequest struct {
	UserID            string
	QuestionID        string
	DayNumber         int
	StringValue       *string
	NumberValue       *float64
	ArrayValue        []string
	AnsweredInSeconds int
}

// ResponseService validates and upserts answers, then re-evaluates the
// user's gateways synchronously.
type ResponseService struct {
	store    ResponseStore
	gateways *GatewayService
	now      func() time.Time
	log      *logger.Logger
}

func NewResponseService(store ResponseStore, gateways *GatewayService, log *logger.Logger) *ResponseService {
	if log == nil {
		log = logger.Nop()
	}
	return &ResponseService{
		store:    store,
		gateways: gateways,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// Save upserts the answer keyed by (user, question, day). Saving the same key
// again replaces the previous value. A failed re-evaluation after a
// successful write is logged, not returned: the answer is durable and the
// gateway states are merely stale until the next save.
func (s *ResponseService) Save(req SaveResponseRequest) (*Response, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, NewInvalidError("user id required")
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		return nil, NewInvalidError("question id required")
	}
	if req.DayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	q, err := s.store.GetQuestion(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, NewNotFoundError("question not found")
	}
	if err := validateValue(q, req); err != nil {
		return nil, err
	}

	resp := &Response{
		UserID:            req.UserID,
		QuestionID:        req.QuestionID,
		DayNumber:         req.DayNumber,
		StringValue:       req.StringValue,
		NumberValue:       req.NumberValue,
		ArrayValue:        req.ArrayValue,
		AnsweredAt:        s.now(),
		AnsweredInSeconds: req.AnsweredInSeconds,
	}
	if err := s.store.UpsertResponse(resp); err != nil {
		return nil, err
	}
	if _, err := s.gateways.Evaluate(req.UserID); err != nil {
		s.log.Warn("gateway re-evaluation failed, states are stale until the next save",
			"user_id", req.UserID, "question_id", req.QuestionID, "error", err)
	}
	return resp, nil
}

// ListForDay returns the user's responses recorded against one day, keyed by
// question id.
func (s *ResponseService) ListForDay(userID string, dayNumber int) (map[string]*Response, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	if dayNumber < 1 {
		return nil, NewInvalidError("day number must be positive")
	}
	rs, err := s.store.ListResponsesByUserDay(userID, dayNumber)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Response, len(rs))
	for _, r := range rs {
		out[r.QuestionID] = r
	}
	return out, nil
}

func validateValue(q *Question, req SaveResponseRequest) error {
	populated := 0
	if req.StringValue != nil {
		populated++
	}
	if req.NumberValue != nil {
		populated++
	}
	if req.ArrayValue != nil {
		populated++
	}
	if populated != 1 {
		return NewInvalidError("exactly one of string_value, number_value, array_value must be set")
	}
	switch q.ValueKind() {
	case ValueNone:
		return NewInvalidError("informational questions do not accept answers")
	case ValueNumber:
		if req.NumberValue == nil {
			return NewInvalidError("question expects number_value")
		}
	case ValueArray:
		if req.ArrayValue == nil {
			return NewInvalidError("question expects array_value")
		}
		if len(q.Options) > 0 {
			for _, v := range req.ArrayValue {
				if _, ok := q.OptionIndex(v); !ok {
					return NewInvalidError("value is not one of the question's options")
				}
			}
		}
	default:
		if req.StringValue == nil {
			return NewInvalidError("question expects string_value")
		}
		if len(q.Options) > 0 {
			if _, ok := q.OptionIndex(*req.StringValue); !ok {
				return NewInvalidError("value is not one of the question's options")
			}
		}
	}
	return nil
}
