package input

// IsString requires a string value.
func (i *Input) IsString(msg ...string) *Input {
	return i.addRuleAndMessage(RuleString, msg)
}

func (i *Input) JSON(msg ...string) *Input {
	return i.addRuleAndMessage(RuleJSON, msg)
}

// CurrentPassword checks the value against the authenticated user's password
// for the given guard. The validator delegates it to a registered rule.
func (i *Input) CurrentPassword(guard string, msg ...string) *Input {
	if guard == "" {
		guard = "web"
	}
	return i.addRuleValuesAndMessage(RuleCurrentPassword, []any{guard}, msg)
}

func (i *Input) Email(msg ...string) *Input {
	return i.addRuleAndMessage(RuleEmail, msg)
}

func (i *Input) URL(msg ...string) *Input {
	return i.addRuleAndMessage(RuleURL, msg)
}

func (i *Input) ActiveURL(msg ...string) *Input {
	return i.addRuleAndMessage(RuleActiveURL, msg)
}

func (i *Input) Uppercase(msg ...string) *Input {
	return i.addRuleAndMessage(RuleUppercase, msg)
}

func (i *Input) Lowercase(msg ...string) *Input {
	return i.addRuleAndMessage(RuleLowercase, msg)
}

func (i *Input) IP(msg ...string) *Input {
	return i.addRuleAndMessage(RuleIP, msg)
}

func (i *Input) IPv4(msg ...string) *Input {
	return i.addRuleAndMessage(RuleIPv4, msg)
}

func (i *Input) IPv6(msg ...string) *Input {
	return i.addRuleAndMessage(RuleIPv6, msg)
}

func (i *Input) MACAddress(msg ...string) *Input {
	return i.addRuleAndMessage(RuleMACAddress, msg)
}

func (i *Input) UUID(msg ...string) *Input {
	return i.addRuleAndMessage(RuleUUID, msg)
}

func (i *Input) ULID(msg ...string) *Input {
	return i.addRuleAndMessage(RuleULID, msg)
}

func (i *Input) ASCII(msg ...string) *Input {
	return i.addRuleAndMessage(RuleASCII, msg)
}

// Alpha accepts letters only. With ascii set, only a-z and A-Z.
func (i *Input) Alpha(ascii bool, msg ...string) *Input {
	return i.alphaRule(RuleAlpha, ascii, msg)
}

// AlphaNum accepts letters and digits.
func (i *Input) AlphaNum(ascii bool, msg ...string) *Input {
	return i.alphaRule(RuleAlphaNum, ascii, msg)
}

// AlphaDash accepts letters, digits, dashes and underscores.
func (i *Input) AlphaDash(ascii bool, msg ...string) *Input {
	return i.alphaRule(RuleAlphaDash, ascii, msg)
}

func (i *Input) HexColor(msg ...string) *Input {
	return i.addRuleAndMessage(RuleHexColor, msg)
}

func (i *Input) alphaRule(name string, ascii bool, msg []string) *Input {
	if ascii {
		return i.addRuleValuesAndMessage(name, []any{"ascii"}, msg)
	}
	return i.addRuleAndMessage(name, msg)
}
