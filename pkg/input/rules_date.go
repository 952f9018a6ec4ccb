package input

// Date requires a value parseable as a date.
func (i *Input) Date(msg ...string) *Input {
	return i.addRuleAndMessage(RuleDate, msg)
}

// DateFormat requires the value to match format exactly.
func (i *Input) DateFormat(format string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDateFormat, []any{format}, msg)
}

// DateEquals requires the same date as date (a literal or another field).
func (i *Input) DateEquals(date string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleDateEquals, []any{date}, msg)
}

func (i *Input) After(date string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleAfter, []any{date}, msg)
}

func (i *Input) AfterOrEqual(date string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleAfterOrEqual, []any{date}, msg)
}

func (i *Input) Before(date string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleBefore, []any{date}, msg)
}

func (i *Input) BeforeOrEqual(date string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleBeforeOrEqual, []any{date}, msg)
}

// Timezone requires a valid IANA timezone identifier.
func (i *Input) Timezone(msg ...string) *Input {
	return i.addRuleAndMessage(RuleTimezone, msg)
}

// TimezoneOf restricts timezones to a group such as "all" or "Europe".
func (i *Input) TimezoneOf(group string, msg ...string) *Input {
	return i.addRuleValuesAndMessage(RuleTimezone, []any{group}, msg)
}

func (i *Input) AsDate(msg ...string) *Input { return i.DateFormat(DateFormatDate, msg...) }

func (i *Input) AsTime(msg ...string) *Input { return i.DateFormat(DateFormatTime, msg...) }

func (i *Input) AsDateTime(msg ...string) *Input { return i.DateFormat(DateFormatDateTime, msg...) }

func (i *Input) AsYearMonth(msg ...string) *Input { return i.DateFormat(DateFormatYearMonth, msg...) }

func (i *Input) AsMonthDay(msg ...string) *Input { return i.DateFormat(DateFormatMonthDay, msg...) }

func (i *Input) AsHourMinute(msg ...string) *Input {
	return i.DateFormat(DateFormatHourMinute, msg...)
}

func (i *Input) AsMinuteSecond(msg ...string) *Input {
	return i.DateFormat(DateFormatMinuteSecond, msg...)
}

func (i *Input) AsYear(msg ...string) *Input { return i.DateFormat(DateFormatYear, msg...) }

func (i *Input) AsMonth(msg ...string) *Input { return i.DateFormat(DateFormatMonth, msg...) }

func (i *Input) AsMonthZero(msg ...string) *Input { return i.DateFormat(DateFormatMonthZero, msg...) }

func (i *Input) AsMonthName(msg ...string) *Input { return i.DateFormat(DateFormatMonthName, msg...) }

func (i *Input) AsMonthNameShort(msg ...string) *Input {
	return i.DateFormat(DateFormatMonthNameShort, msg...)
}

func (i *Input) AsDay(msg ...string) *Input { return i.DateFormat(DateFormatDay, msg...) }

func (i *Input) AsDayZero(msg ...string) *Input { return i.DateFormat(DateFormatDayZero, msg...) }

func (i *Input) AsHour(msg ...string) *Input { return i.DateFormat(DateFormatHour, msg...) }

func (i *Input) AsHourZero(msg ...string) *Input { return i.DateFormat(DateFormatHourZero, msg...) }

func (i *Input) AsHourTwelveNotation(msg ...string) *Input {
	return i.DateFormat(DateFormatHourTwelveNotation, msg...)
}

func (i *Input) AsHourTwelveNotationZero(msg ...string) *Input {
	return i.DateFormat(DateFormatHourTwelveNotationZero, msg...)
}

func (i *Input) AsMinute(msg ...string) *Input { return i.DateFormat(DateFormatMinute, msg...) }

func (i *Input) AsSecond(msg ...string) *Input { return i.DateFormat(DateFormatSecond, msg...) }
