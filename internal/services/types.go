package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates the answer widgets the catalog may declare.
type QuestionType string

const (
	QuestionScale         QuestionType = "scale"
	QuestionYesNo         QuestionType = "yes_no"
	QuestionYesNoDontKnow QuestionType = "yes_no_dont_know"
	QuestionSingleSelect  QuestionType = "single_select"
	QuestionMultiSelect   QuestionType = "multi_select"
	QuestionNumber        QuestionType = "number"
	QuestionNumberScroll  QuestionType = "number_scroll"
	QuestionMinutesScroll QuestionType = "minutes_scroll"
	QuestionTime          QuestionType = "time"
	QuestionDate          QuestionType = "date"
	QuestionText          QuestionType = "text"
	QuestionEmail         QuestionType = "email"
	QuestionInfo          QuestionType = "info"
)

// ValueKind names which response slot a question type accepts.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueArray
	ValueNone
)

// Pillar tags a question with the health domain it belongs to.
type Pillar string

const (
	PillarSocial          Pillar = "social"
	PillarMetabolic       Pillar = "metabolic"
	PillarSleepQuality    Pillar = "sleep_quality"
	PillarSleepQuantity   Pillar = "sleep_quantity"
	PillarSleepRegularity Pillar = "sleep_regularity"
	PillarSleepTiming     Pillar = "sleep_timing"
	PillarMentalHealth    Pillar = "mental_health"
	PillarCognitive       Pillar = "cognitive"
	PillarPhysical        Pillar = "physical"
	PillarNutritional     Pillar = "nutritional"
	PillarSleepLog        Pillar = "sleep_log"
)

// Tier separates the fixed early-day core from gateway-gated expansion content.
type Tier string

const (
	TierCore      Tier = "core"
	TierExpansion Tier = "expansion"
)

// GatewayType enumerates the screening flags the evaluator maintains.
type GatewayType string

const (
	GatewayInsomnia            GatewayType = "insomnia"
	GatewayPoorSleepQuality    GatewayType = "poor_sleep_quality"
	GatewayDepression          GatewayType = "depression"
	GatewayAnxiety             GatewayType = "anxiety"
	GatewayExcessiveSleepiness GatewayType = "excessive_sleepiness"
	GatewayCognitive           GatewayType = "cognitive"
	GatewayOSA                 GatewayType = "osa"
	GatewayPain                GatewayType = "pain"
	GatewaySleepTiming         GatewayType = "sleep_timing"
	GatewayDietImpact          GatewayType = "diet_impact"
)

// AllGatewayTypes returns every gateway type in rule order.
func AllGatewayTypes() []GatewayType {
	return []GatewayType{
		GatewayInsomnia,
		GatewayPoorSleepQuality,
		GatewayDepression,
		GatewayAnxiety,
		GatewayExcessiveSleepiness,
		GatewayCognitive,
		GatewayOSA,
		GatewayPain,
		GatewaySleepTiming,
		GatewayDietImpact,
	}
}

// ConditionalLogic hides a question unless the referenced question has been
// answered and the answer satisfies the predicate. Exactly one of Equals,
// GreaterThan, LessThan is set.
type ConditionalLogic struct {
	QuestionID  string   `json:"question_id"`
	Equals      *string  `json:"equals,omitempty"`
	GreaterThan *float64 `json:"greater_than,omitempty"`
	LessThan    *float64 `json:"less_than,omitempty"`
}

// Question is a catalog entry. Option order is significant: gateway and
// conditional thresholds reference option positions, not labels.
type Question struct {
	ID               string            `json:"id"`
	Text             string            `json:"text"`
	Pillar           Pillar            `json:"pillar"`
	Tier             Tier              `json:"tier"`
	Type             QuestionType      `json:"type"`
	Options          []string          `json:"options,omitempty"`
	ScaleMin         int               `json:"scale_min,omitempty"`
	ScaleMax         int               `json:"scale_max,omitempty"`
	ScaleMinLabel    string            `json:"scale_min_label,omitempty"`
	ScaleMaxLabel    string            `json:"scale_max_label,omitempty"`
	MinValue         int               `json:"min_value,omitempty"`
	MaxValue         int               `json:"max_value,omitempty"`
	Step             float64           `json:"step,omitempty"`
	Unit             string            `json:"unit,omitempty"`
	DefaultValue     int               `json:"default_value,omitempty"`
	HelpText         string            `json:"help_text,omitempty"`
	Required         bool              `json:"required"`
	Group            string            `json:"group,omitempty"`
	IsGateway        bool              `json:"is_gateway,omitempty"`
	GatewayType      GatewayType       `json:"gateway_type,omitempty"`
	GatewayThreshold float64           `json:"gateway_threshold,omitempty"`
	Conditional      *ConditionalLogic `json:"conditional_logic,omitempty"`
}

// OptionIndex resolves an answered option label to its ordinal position.
func (q *Question) OptionIndex(value string) (int, bool) {
	for i, opt := range q.Options {
		if opt == value {
			return i, true
		}
	}
	return 0, false
}

// ValueKind maps the question type to the response slot it accepts.
func (q *Question) ValueKind() ValueKind {
	switch q.Type {
	case QuestionScale, QuestionNumber, QuestionNumberScroll, QuestionMinutesScroll:
		return ValueNumber
	case QuestionMultiSelect:
		return ValueArray
	case QuestionInfo:
		return ValueNone
	default:
		return ValueString
	}
}

// Module groups an ordered run of questions administered together.
type Module struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Pillar           Pillar   `json:"pillar"`
	Tier             Tier     `json:"tier"`
	EstimatedMinutes float64  `json:"estimated_minutes"`
	QuestionIDs      []string `json:"question_ids"`
}

// DayConfiguration assigns ordered modules to one day of the plan.
// RequiredGateways is OR-combined: any triggered member unlocks the day's
// modules. An empty list means the day is statically composed.
type DayConfiguration struct {
	DayNumber        int           `json:"day_number"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	EstimatedMinutes int           `json:"estimated_minutes"`
	ModuleIDs        []string      `json:"module_ids"`
	RequiredGateways []GatewayType `json:"required_gateways,omitempty"`
}

// Response is one answer, keyed by (UserID, QuestionID, DayNumber).
// Exactly one of StringValue, NumberValue, ArrayValue is populated.
type Response struct {
	UserID            string    `json:"user_id"`
	QuestionID        string    `json:"question_id"`
	DayNumber         int       `json:"day_number"`
	StringValue       *string   `json:"string_value,omitempty"`
	NumberValue       *float64  `json:"number_value,omitempty"`
	ArrayValue        []string  `json:"array_value,omitempty"`
	AnsweredAt        time.Time `json:"answered_at"`
	AnsweredInSeconds int       `json:"answered_in_seconds,omitempty"`
}

// DisplayValue renders the populated slot for audit snapshots and export.
func (r *Response) DisplayValue() string {
	switch {
	case r.StringValue != nil:
		return *r.StringValue
	case r.NumberValue != nil:
		return trimFloat(*r.NumberValue)
	case len(r.ArrayValue) > 0:
		return strings.Join(r.ArrayValue, ", ")
	}
	return ""
}

// GatewayState is the persisted outcome of evaluating one gateway for a user.
// TriggeredAt is set the first time the gateway fires and never cleared.
type GatewayState struct {
	UserID          string            `json:"user_id"`
	GatewayType     GatewayType       `json:"gateway_type"`
	Triggered       bool              `json:"triggered"`
	TriggeredAt     *time.Time        `json:"triggered_at,omitempty"`
	LastEvaluatedAt time.Time         `json:"last_evaluated_at"`
	EvaluationData  map[string]string `json:"evaluation_data,omitempty"`
}

// User is an account with its journey pointer.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	PassHash            []byte    `json:"-"`
	Role                string    `json:"role"`
	CurrentDay          int       `json:"current_day"`
	AssessmentCompleted bool      `json:"assessment_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
