package services

// FilterConditional removes questions whose conditional logic is not
// satisfied by the given response set. Order is preserved. A question whose
// referenced response is missing, or whose answer lives in a different value
// slot than the predicate expects, is hidden.
func FilterConditional(questions []*Question, responses map[string]*Response) []*Question {
	out := make([]*Question, 0, len(questions))
	for _, q := range questions {
		if conditionSatisfied(q.Conditional, responses) {
			out = append(out, q)
		}
	}
	return out
}

func conditionSatisfied(logic *ConditionalLogic, responses map[string]*Response) bool {
	if logic == nil {
		return true
	}
	r := responses[logic.QuestionID]
	if r == nil {
		return false
	}
	switch {
	case logic.Equals != nil:
		return r.StringValue != nil && *r.StringValue == *logic.Equals
	case logic.GreaterThan != nil:
		return r.NumberValue != nil && *r.NumberValue > *logic.GreaterThan
	case logic.LessThan != nil:
		return r.NumberValue != nil && *r.NumberValue < *logic.LessThan
	}
	return false
}
