package input

// Array requires a list or map.
func (i *Input) Array(msg ...string) *Input {
	return i.addRuleAndMessage(RuleArray, msg)
}

// ArrayKeys requires a map whose keys are all listed in keys.
func (i *Input) ArrayKeys(keys []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleArray, toAny(keys), msg)
}

// RequiredArrayKeys requires the array to contain every key.
func (i *Input) RequiredArrayKeys(keys []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredArrayKeys, toAny(keys), msg)
}

// InArray requires the value to appear in anotherField, looked up as
// "{anotherField}.{key}" ("*" matches every element).
func (i *Input) InArray(anotherField, key string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleInArray, []any{anotherField, key}, msg)
}

// Distinct requires array elements to be unique.
func (i *Input) Distinct(msg ...string) *Input {
	return i.addRuleAndMessage(RuleDistinct, msg)
}

// DistinctStrict is Distinct using strict comparison.
func (i *Input) DistinctStrict(msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDistinct, []any{"strict"}, msg)
}

// DistinctIgnoreCase is Distinct ignoring letter case.
func (i *Input) DistinctIgnoreCase(msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDistinct, []any{"ignore_case"}, msg)
}

// Boolean accepts true, false, 1, 0, "1" and "0".
func (i *Input) Boolean(msg ...string) *Input {
	return i.addRuleAndMessage(RuleBoolean, msg)
}
