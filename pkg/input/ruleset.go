package input

import "slices"

// RuleSet is the folded form of a request's inputs as consumed by the validator.
type RuleSet struct {
	// Keys lists every declared key in declaration order, including keys without rules.
	Keys []string
	// Rules holds the rules of keys that declared at least one.
	Rules map[string][]Rule
	// Messages maps "{key}.{rule}" to a custom message.
	Messages map[string]string
	// Attributes maps keys to their translated labels.
	Attributes map[string]string
}

// Collect folds inputs in declaration order. A key declared twice keeps the
// rules of its last declaration; messages and attributes merge.
func Collect(tr Translator, inputs ...*Input) RuleSet {
	set := RuleSet{
		Keys:       make([]string, 0, len(inputs)),
		Rules:      make(map[string][]Rule, len(inputs)),
		Messages:   make(map[string]string),
		Attributes: make(map[string]string),
	}
	for _, in := range inputs {
		if in == nil {
			continue
		}
		key := in.KeyName()
		if !slices.Contains(set.Keys, key) {
			set.Keys = append(set.Keys, key)
		}
		if rules := in.Rules(); len(rules) > 0 {
			set.Rules[key] = rules
		}
		for k, msg := range in.messages {
			set.Messages[k] = msg
		}
		if name := in.AttributeName(tr); name != "" {
			set.Attributes[key] = name
		}
	}
	return set
}

// Has reports whether key was declared.
func (s RuleSet) Has(key string) bool {
	return slices.Contains(s.Keys, key)
}

// Message returns the custom message for key and rule.
func (s RuleSet) Message(key, rule string) (string, bool) {
	msg, ok := s.Messages[key+"."+rule]
	return msg, ok
}

// Attribute returns the label for key.
func (s RuleSet) Attribute(key string) (string, bool) {
	name, ok := s.Attributes[key]
	return name, ok
}
