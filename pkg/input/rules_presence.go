package input

func (i *Input) Required(msg ...string) *Input {
	return i.addRuleAndMessage(RuleRequired, msg)
}

// RequiredIfField requires the value when anotherField equals any of values.
func (i *Input) RequiredIfField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredIf, append([]any{anotherField}, values...), msg)
}

// RequiredIfAccepted requires the value when any of fields is accepted.
func (i *Input) RequiredIfAccepted(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredIfAccepted, toAny(fields), msg)
}

// RequiredUnlessField requires the value unless anotherField equals one of values.
func (i *Input) RequiredUnlessField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredUnless, append([]any{anotherField}, values...), msg)
}

func (i *Input) RequiredWith(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredWith, toAny(fields), msg)
}

func (i *Input) RequiredWithAll(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredWithAll, toAny(fields), msg)
}

func (i *Input) RequiredWithout(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredWithout, toAny(fields), msg)
}

func (i *Input) RequiredWithoutAll(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleRequiredWithoutAll, toAny(fields), msg)
}

// Missing requires the key to be absent.
func (i *Input) Missing(msg ...string) *Input {
	return i.addRuleAndMessage(RuleMissing, msg)
}

func (i *Input) MissingIfField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingIf, append([]any{anotherField}, values...), msg)
}

func (i *Input) MissingUnlessField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingUnless, append([]any{anotherField}, values...), msg)
}

func (i *Input) MissingWith(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingWith, toAny(fields), msg)
}

func (i *Input) MissingWithAll(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingWithAll, toAny(fields), msg)
}

func (i *Input) MissingWithout(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingWithout, toAny(fields), msg)
}

func (i *Input) MissingWithoutAll(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleMissingWithoutAll, toAny(fields), msg)
}

// Prohibited requires the value to be absent or empty.
func (i *Input) Prohibited(msg ...string) *Input {
	return i.addRuleAndMessage(RuleProhibited, msg)
}

func (i *Input) ProhibitedIfField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleProhibitedIf, append([]any{anotherField}, values...), msg)
}

func (i *Input) ProhibitedUnlessField(anotherField string, values []any, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleProhibitedUnless, append([]any{anotherField}, values...), msg)
}

// Prohibits requires fields to be absent or empty when this value is filled.
func (i *Input) Prohibits(fields []string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleProhibits, toAny(fields), msg)
}

// Present requires the key to exist, possibly empty.
func (i *Input) Present(msg ...string) *Input {
	return i.addRuleAndMessage(RulePresent, msg)
}

// Filled requires a non-empty value when the key is present.
func (i *Input) Filled(msg ...string) *Input {
	return i.addRuleAndMessage(RuleFilled, msg)
}

// Nullable allows null and skips the remaining rules for it.
func (i *Input) Nullable(msg ...string) *Input {
	return i.addRuleAndMessage(RuleNullable, msg)
}

// The predicate variants below apply their rule only when the caller's
// condition holds; they never evaluate anything themselves.

func (i *Input) RequiredIf(cond bool, msg ...string) *Input {
	if !cond {
		return i
	}
	return i.Required(msg...)
}

func (i *Input) RequiredUnless(cond bool, msg ...string) *Input {
	return i.RequiredIf(!cond, msg...)
}

func (i *Input) MissingIf(cond bool, msg ...string) *Input {
	if !cond {
		return i
	}
	return i.Missing(msg...)
}

func (i *Input) MissingUnless(cond bool, msg ...string) *Input {
	return i.MissingIf(!cond, msg...)
}

func (i *Input) ProhibitedIf(cond bool, msg ...string) *Input {
	if !cond {
		return i
	}
	return i.Prohibited(msg...)
}

func (i *Input) ProhibitedUnless(cond bool, msg ...string) *Input {
	return i.ProhibitedIf(!cond, msg...)
}
