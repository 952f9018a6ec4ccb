package input

func (i *Input) Numeric(msg ...string) *Input {
	return i.addRuleAndMessage(RuleNumeric, msg)
}

func (i *Input) Integer(msg ...string) *Input {
	return i.addRuleAndMessage(RuleInteger, msg)
}

func (i *Input) MultipleOf(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMultipleOf, []any{n}, msg)
}

// Decimal requires exactly places decimal places.
func (i *Input) Decimal(places int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDecimal, []any{places}, msg)
}

// DecimalBetween requires between minPlaces and maxPlaces decimal places.
func (i *Input) DecimalBetween(minPlaces, maxPlaces int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDecimal, []any{minPlaces, maxPlaces}, msg)
}

// Digits requires an integer with exactly n digits.
func (i *Input) Digits(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDigits, []any{n}, msg)
}

func (i *Input) DigitsBetween(minDigits, maxDigits int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDigitsBetween, []any{minDigits, maxDigits}, msg)
}

func (i *Input) MaxDigits(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMaxDigits, []any{n}, msg)
}

func (i *Input) MinDigits(n int, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMinDigits, []any{n}, msg)
}
