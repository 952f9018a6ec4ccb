package input

// Patterns for Tel and PostCode.
const (
	PatternTel      = "/^[0-9]{2,3}-[0-9]{3,4}-[0-9]{4}$/"
	PatternPostCode = "/^[0-9]{3}-[0-9]{4}$/"
)

// Regex requires a match of pattern, written with delimiters ("/^a+$/").
func (i *Input) Regex(pattern string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRegex, []any{pattern}, msg)
}

func (i *Input) NotRegex(pattern string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleNotRegex, []any{pattern}, msg)
}

// Tel accepts hyphenated phone numbers such as 03-1234-5678.
func (i *Input) Tel(msg ...string) *Input {
	return i.Regex(PatternTel, msg...)
}

// PostCode accepts codes such as 123-4567.
func (i *Input) PostCode(msg ...string) *Input {
	return i.Regex(PatternPostCode, msg...)
}
