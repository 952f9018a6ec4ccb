package input

// In restricts the value to values.
func (i *Input) In(values []string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(In{Values: values}, msg)
}

// NotIn rejects values.
func (i *Input) NotIn(values []string, msg ...string) *Input {
	return i.addRuleObjectAndMessage(NotIn{Values: values}, msg)
}

func (i *Input) StartsWith(values []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleStartsWith, toAny(values), msg)
}

func (i *Input) DoesntStartWith(values []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDoesntStartWith, toAny(values), msg)
}

func (i *Input) EndsWith(values []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleEndsWith, toAny(values), msg)
}

func (i *Input) DoesntEndWith(values []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDoesntEndWith, toAny(values), msg)
}
