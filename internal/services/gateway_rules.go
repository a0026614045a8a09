package services

import (
	"strconv"
	"strings"
)

// RuleContext carries everything a gateway predicate may consult: the latest
// response per question, the catalog entries for ordinal lookups, and the
// trigger results of gateways already settled in the current pass.
//
// Every accessor fails closed: a missing answer, an unknown option label or a
// malformed value never triggers anything.
type RuleContext struct {
	responses map[string]*Response
	questions map[string]*Question
	triggered map[GatewayType]bool
}

func NewRuleContext(responses map[string]*Response, questions map[string]*Question, triggered map[GatewayType]bool) *RuleContext {
	if triggered == nil {
		triggered = map[GatewayType]bool{}
	}
	return &RuleContext{responses: responses, questions: questions, triggered: triggered}
}

func (c *RuleContext) response(questionID string) *Response {
	return c.responses[questionID]
}

func (c *RuleContext) stringEquals(questionID, want string) bool {
	r := c.response(questionID)
	return r != nil && r.StringValue != nil && *r.StringValue == want
}

func (c *RuleContext) numberGreaterThan(questionID string, v float64) bool {
	r := c.response(questionID)
	return r != nil && r.NumberValue != nil && *r.NumberValue > v
}

func (c *RuleContext) numberAtLeast(questionID string, v float64) bool {
	r := c.response(questionID)
	return r != nil && r.NumberValue != nil && *r.NumberValue >= v
}

func (c *RuleContext) numberAtMost(questionID string, v float64) bool {
	r := c.response(questionID)
	return r != nil && r.NumberValue != nil && *r.NumberValue <= v
}

// ordinalAtLeast resolves the answered option label against the question's
// option list and compares its position to min.
func (c *RuleContext) ordinalAtLeast(questionID string, min int) bool {
	r := c.response(questionID)
	if r == nil || r.StringValue == nil {
		return false
	}
	q := c.questions[questionID]
	if q == nil {
		return false
	}
	idx, ok := q.OptionIndex(*r.StringValue)
	return ok && idx >= min
}

// clockGapOver compares two HH:MM answers and reports whether their
// minutes-since-midnight values differ by more than maxMinutes.
func (c *RuleContext) clockGapOver(questionA, questionB string, maxMinutes int) bool {
	a := c.response(questionA)
	b := c.response(questionB)
	if a == nil || b == nil || a.StringValue == nil || b.StringValue == nil {
		return false
	}
	ma, okA := parseClockMinutes(*a.StringValue)
	mb, okB := parseClockMinutes(*b.StringValue)
	if !okA || !okB {
		return false
	}
	gap := ma - mb
	if gap < 0 {
		gap = -gap
	}
	return gap > maxMinutes
}

func (c *RuleContext) gateway(t GatewayType) bool {
	return c.triggered[t]
}

func parseClockMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// GatewayRule binds a gateway type to its trigger predicate. Inputs lists the
// question ids the predicate reads, recorded into the evaluation-data
// snapshot. DependsOn lists gateways the predicate consults via
// RuleContext.gateway; the evaluator orders and iterates accordingly.
type GatewayRule struct {
	Type      GatewayType
	Inputs    []string
	DependsOn []GatewayType
	Predicate func(*RuleContext) bool
}

// GatewayRules is the single authority on when each gateway fires. Predicates
// reference question option positions, so reordering catalog options is a
// breaking change.
func GatewayRules() []GatewayRule {
	return []GatewayRule{
		{
			Type:   GatewayInsomnia,
			Inputs: []string{"3", "PSQI_2", "PSQI_5a", "PSQI_5b"},
			Predicate: func(c *RuleContext) bool {
				return c.stringEquals("3", "Yes") ||
					c.numberGreaterThan("PSQI_2", 30) ||
					c.ordinalAtLeast("PSQI_5a", 2) ||
					c.ordinalAtLeast("PSQI_5b", 2)
			},
		},
		{
			Type:      GatewayPoorSleepQuality,
			Inputs:    []string{"1"},
			DependsOn: []GatewayType{GatewayInsomnia},
			Predicate: func(c *RuleContext) bool {
				return c.numberAtMost("1", 5) || c.gateway(GatewayInsomnia)
			},
		},
		{
			Type:   GatewayDepression,
			Inputs: []string{"15"},
			Predicate: func(c *RuleContext) bool {
				return c.ordinalAtLeast("15", 2)
			},
		},
		{
			Type:   GatewayAnxiety,
			Inputs: []string{"16"},
			Predicate: func(c *RuleContext) bool {
				return c.ordinalAtLeast("16", 2)
			},
		},
		{
			Type:   GatewayExcessiveSleepiness,
			Inputs: []string{"17"},
			Predicate: func(c *RuleContext) bool {
				return c.ordinalAtLeast("17", 3)
			},
		},
		{
			Type:   GatewayCognitive,
			Inputs: []string{"18"},
			Predicate: func(c *RuleContext) bool {
				return c.stringEquals("18", "Yes")
			},
		},
		{
			Type:   GatewayOSA,
			Inputs: []string{"19", "20"},
			Predicate: func(c *RuleContext) bool {
				return c.stringEquals("19", "Yes") || c.stringEquals("20", "Yes")
			},
		},
		{
			Type:   GatewayPain,
			Inputs: []string{"22", "23"},
			Predicate: func(c *RuleContext) bool {
				return c.stringEquals("22", "Yes") && c.numberAtLeast("23", 4)
			},
		},
		{
			Type:   GatewaySleepTiming,
			Inputs: []string{"REG_2", "7", "9"},
			Predicate: func(c *RuleContext) bool {
				return c.ordinalAtLeast("REG_2", 3) || c.clockGapOver("7", "9", 60)
			},
		},
		{
			Type:   GatewayDietImpact,
			Inputs: []string{"34"},
			Predicate: func(c *RuleContext) bool {
				return c.ordinalAtLeast("34", 2)
			},
		},
	}
}
