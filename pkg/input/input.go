package input

import (
	"fmt"
	"maps"
	"slices"
)

// Translator resolves a localization key. Implementations return the key
// unchanged when no translation exists.
type Translator interface {
	Translate(key string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(key string) string

func (f TranslatorFunc) Translate(key string) string { return f(key) }

// Input accumulates the rules, messages and attribute label of one field.
type Input struct {
	keyName       string
	attributeName string
	rules         []Rule
	messages      map[string]string
}

// New creates an input for keyName. Dot notation addresses nested values.
func New(keyName string) (*Input, error) {
	if keyName == "" {
		return nil, ErrEmptyKeyName
	}
	return &Input{
		keyName:  keyName,
		messages: make(map[string]string),
	}, nil
}

// Field is like New but panics on an empty key.
func Field(keyName string) *Input {
	in, err := New(keyName)
	if err != nil {
		panic(err)
	}
	return in
}

// KeyName returns the field key.
func (i *Input) KeyName() string {
	return i.keyName
}

// SetAttributeName sets the human readable label (or a translation key for it).
func (i *Input) SetAttributeName(name string) *Input {
	i.attributeName = name
	return i
}

// AttributeName returns the label resolved through tr.
// Untranslated labels are returned as stored; an unset label yields "".
func (i *Input) AttributeName(tr Translator) string {
	if i.attributeName == "" || tr == nil {
		return i.attributeName
	}
	return tr.Translate(i.attributeName)
}

// Rules returns a copy of the rules in declaration order.
func (i *Input) Rules() []Rule {
	return slices.Clone(i.rules)
}

// SetRules replaces all rules.
func (i *Input) SetRules(rules ...Rule) *Input {
	i.rules = slices.Clone(rules)
	return i
}

// MergeRules appends rules after the existing ones.
func (i *Input) MergeRules(rules ...Rule) *Input {
	i.rules = append(i.rules, rules...)
	return i
}

// AddRule appends a single rule.
func (i *Input) AddRule(rule Rule) *Input {
	if rule == nil {
		return i
	}
	i.rules = append(i.rules, rule)
	return i
}

// AddRuleValues appends the token "{name}:{v1},{v2},...".
func (i *Input) AddRuleValues(name string, values ...any) *Input {
	return i.AddRule(NewToken(name, values...))
}

// AddRuleValuesWithMessage appends a templated token and registers msg for it.
func (i *Input) AddRuleValuesWithMessage(name string, values []any, msg ...string) *Input {
	i.AddRuleValues(name, values...)
	return i.withMessage(name, msg)
}

// AddMessage registers message under "{key}.{ruleKey}". Last write wins.
func (i *Input) AddMessage(ruleKey, message string) *Input {
	i.messages[i.messageKey(ruleKey)] = message
	return i
}

// SetMessages replaces all messages. Map keys are rule names.
func (i *Input) SetMessages(messages map[string]string) *Input {
	i.messages = make(map[string]string, len(messages))
	return i.MergeMessages(messages)
}

// MergeMessages adds messages keyed by rule name, overwriting existing ones.
func (i *Input) MergeMessages(messages map[string]string) *Input {
	for rule, msg := range messages {
		i.AddMessage(rule, msg)
	}
	return i
}

// Messages returns a copy of the registered messages keyed "{key}.{rule}".
func (i *Input) Messages() map[string]string {
	return maps.Clone(i.messages)
}

// String renders the input for debugging.
func (i *Input) String() string {
	return fmt.Sprintf("%s%v", i.keyName, Strings(i.rules))
}

func (i *Input) messageKey(ruleKey string) string {
	return i.keyName + "." + ruleKey
}

func (i *Input) withMessage(ruleKey string, msg []string) *Input {
	if len(msg) > 0 {
		i.AddMessage(ruleKey, msg[0])
	}
	return i
}

func (i *Input) addRuleAndMessage(name string, msg []string) *Input {
	i.rules = append(i.rules, Token(name))
	return i.withMessage(name, msg)
}

func (i *Input) addRuleValuesAndMessage(name string, values []any, msg []string) *Input {
	return i.AddRuleValuesWithMessage(name, values, msg...)
}

func (i *Input) addRuleObjectAndMessage(rule Rule, msg []string) *Input {
	i.rules = append(i.rules, rule)
	return i.withMessage(rule.Name(), msg)
}
