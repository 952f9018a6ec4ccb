package input

// Size, Max, Min and Between measure strings in characters, numbers by
// value, arrays by element count and files in kilobytes.

func (i *Input) Size(size int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleSize, []any{size}, msg)
}

func (i *Input) Max(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMax, []any{n}, msg)
}

func (i *Input) Min(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMin, []any{n}, msg)
}

func (i *Input) Between(minSize, maxSize int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleBetween, []any{minSize, maxSize}, msg)
}
