package input

import (
	"fmt"
	"strings"
)

// Rule is a single validation instruction attached to a field.
type Rule interface {
	// Name is the rule name used to build message keys ("{key}.{name}").
	Name() string
	// String renders the rule in token form: "name" or "name:v1,v2".
	String() string
}

// Token is a plain string rule such as "required" or "min:3".
type Token string

// NewToken builds a templated token. Values are joined with commas in order.
// Without values the bare rule name is returned.
func NewToken(name string, values ...any) Token {
	if len(values) == 0 {
		return Token(name)
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return Token(name + ":" + strings.Join(parts, ","))
}

func (t Token) Name() string {
	name, _, _ := strings.Cut(string(t), ":")
	return name
}

func (t Token) String() string {
	return string(t)
}

// Params returns the comma separated values of a templated token.
// Patterns of regex and not_regex are returned whole since they may contain commas.
func (t Token) Params() []string {
	name, params, ok := strings.Cut(string(t), ":")
	if !ok || params == "" {
		return nil
	}
	if name == RuleRegex || name == RuleNotRegex {
		return []string{params}
	}
	return strings.Split(params, ",")
}

// In restricts the value to one of Values.
type In struct {
	Values []string
}

func (r In) Name() string { return RuleIn }

func (r In) String() string {
	return string(NewToken(RuleIn, toAny(r.Values)...))
}

// NotIn rejects any of Values.
type NotIn struct {
	Values []string
}

func (r NotIn) Name() string { return RuleNotIn }

func (r NotIn) String() string {
	return string(NewToken(RuleNotIn, toAny(r.Values)...))
}

// Exists requires the value to be present in Table.Column.
// When WhereNull is set, only rows where that column IS NULL are considered.
type Exists struct {
	Table     string
	Column    string
	WhereNull string
}

func (r Exists) Name() string { return RuleExists }

func (r Exists) String() string {
	return string(NewToken(RuleExists, r.Table, r.Column))
}

// Unique requires the value to be absent from Table.Column.
// When WhereNull is set, only rows where that column IS NULL are considered.
type Unique struct {
	Table     string
	Column    string
	WhereNull string
}

func (r Unique) Name() string { return RuleUnique }

func (r Unique) String() string {
	return string(NewToken(RuleUnique, r.Table, r.Column))
}

// Strings renders rules in token form.
func Strings(rules []Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.String())
	}
	return out
}

func toAny[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
