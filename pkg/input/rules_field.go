package input

// Same requires the value to equal the value of anotherField.
func (i *Input) Same(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleSame, []any{anotherField}, msg)
}

// Different requires the value to differ from the value of anotherField.
func (i *Input) Different(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDifferent, []any{anotherField}, msg)
}

// Gt, Gte, Lt and Lte compare the size of the value with anotherField.
func (i *Input) Gt(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleGt, []any{anotherField}, msg)
}

func (i *Input) Gte(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleGte, []any{anotherField}, msg)
}

func (i *Input) Lt(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleLt, []any{anotherField}, msg)
}

func (i *Input) Lte(anotherField string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleLte, []any{anotherField}, msg)
}

// Confirmed requires a matching "{key}_confirmation" field.
func (i *Input) Confirmed(msg ...string) *Input {
	return i.addRuleAndMessage(RuleConfirmed, msg)
}

// Accepted requires "yes", "on", 1, "1", true or "true".
func (i *Input) Accepted(msg ...string) *Input {
	return i.addRuleAndMessage(RuleAccepted, msg)
}

// AcceptedIf applies Accepted when anotherField equals value.
func (i *Input) AcceptedIf(anotherField string, value any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleAcceptedIf, []any{anotherField, value}, msg)
}

// Declined requires "no", "off", 0, "0", false or "false".
func (i *Input) Declined(msg ...string) *Input {
	return i.addRuleAndMessage(RuleDeclined, msg)
}

// DeclinedIf applies Declined when anotherField equals value.
func (i *Input) DeclinedIf(anotherField string, value any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDeclinedIf, []any{anotherField, value}, msg)
}
