package validator

import (
	"fmt"
	"mime/multipart"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

// implicitRules run even when the key is absent or blank.
var implicitRules = map[string]bool{
	input.RuleAccepted:           true,
	input.RuleAcceptedIf:         true,
	input.RuleDeclined:           true,
	input.RuleDeclinedIf:         true,
	input.RuleFilled:             true,
	input.RuleMissing:            true,
	input.RuleMissingIf:          true,
	input.RuleMissingUnless:      true,
	input.RuleMissingWith:        true,
	input.RuleMissingWithAll:     true,
	input.RuleMissingWithout:     true,
	input.RuleMissingWithoutAll:  true,
	input.RulePresent:            true,
	input.RuleProhibited:         true,
	input.RuleProhibitedIf:       true,
	input.RuleProhibitedUnless:   true,
	input.RuleRequired:           true,
	input.RuleRequiredIf:         true,
	input.RuleRequiredIfAccepted: true,
	input.RuleRequiredUnless:     true,
	input.RuleRequiredWith:       true,
	input.RuleRequiredWithAll:    true,
	input.RuleRequiredWithout:    true,
	input.RuleRequiredWithoutAll: true,
}

type presenceFunc func(f *field, params []string) (bool, error)

var presenceRules map[string]presenceFunc

func init() {
	presenceRules = map[string]presenceFunc{
		input.RuleRequired: func(f *field, _ []string) (bool, error) {
			return filled(f.value, f.present), nil
		},
		input.RuleRequiredIf: func(f *field, p []string) (bool, error) {
			return conditional(f, p, true, requiredWhen)
		},
		input.RuleRequiredUnless: func(f *field, p []string) (bool, error) {
			return conditional(f, p, false, requiredWhen)
		},
		input.RuleRequiredWith: func(f *field, p []string) (bool, error) {
			return !anyFilled(f, p) || filled(f.value, f.present), nil
		},
		input.RuleRequiredWithAll: func(f *field, p []string) (bool, error) {
			return !allFilled(f, p) || filled(f.value, f.present), nil
		},
		input.RuleRequiredWithout: func(f *field, p []string) (bool, error) {
			return allFilled(f, p) || filled(f.value, f.present), nil
		},
		input.RuleRequiredWithoutAll: func(f *field, p []string) (bool, error) {
			return anyFilled(f, p) || filled(f.value, f.present), nil
		},
		input.RuleRequiredIfAccepted: func(f *field, p []string) (bool, error) {
			for _, other := range p {
				if v, ok := f.data.Bind(other); ok && accepted(v) {
					return filled(f.value, f.present), nil
				}
			}
			return true, nil
		},
		input.RuleFilled: func(f *field, _ []string) (bool, error) {
			return !f.present || filled(f.value, true), nil
		},
		input.RulePresent: func(f *field, _ []string) (bool, error) {
			return f.present, nil
		},
		input.RuleMissing: func(f *field, _ []string) (bool, error) {
			return !f.present, nil
		},
		input.RuleMissingIf: func(f *field, p []string) (bool, error) {
			return conditional(f, p, true, missingWhen)
		},
		input.RuleMissingUnless: func(f *field, p []string) (bool, error) {
			return conditional(f, p, false, missingWhen)
		},
		input.RuleMissingWith: func(f *field, p []string) (bool, error) {
			return !anyPresent(f, p) || !f.present, nil
		},
		input.RuleMissingWithAll: func(f *field, p []string) (bool, error) {
			return !allPresent(f, p) || !f.present, nil
		},
		input.RuleMissingWithout: func(f *field, p []string) (bool, error) {
			return allPresent(f, p) || !f.present, nil
		},
		input.RuleMissingWithoutAll: func(f *field, p []string) (bool, error) {
			return anyPresent(f, p) || !f.present, nil
		},
		input.RuleProhibited: func(f *field, _ []string) (bool, error) {
			return !filled(f.value, f.present), nil
		},
		input.RuleProhibitedIf: func(f *field, p []string) (bool, error) {
			return conditional(f, p, true, prohibitedWhen)
		},
		input.RuleProhibitedUnless: func(f *field, p []string) (bool, error) {
			return conditional(f, p, false, prohibitedWhen)
		},
		input.RuleProhibits: func(f *field, p []string) (bool, error) {
			return !filled(f.value, f.present) || !anyFilled(f, p), nil
		},
		input.RuleAccepted: func(f *field, _ []string) (bool, error) {
			return f.present && accepted(f.value), nil
		},
		input.RuleAcceptedIf: func(f *field, p []string) (bool, error) {
			return conditional(f, p, true, func(f *field) bool { return f.present && accepted(f.value) })
		},
		input.RuleDeclined: func(f *field, _ []string) (bool, error) {
			return f.present && declined(f.value), nil
		},
		input.RuleDeclinedIf: func(f *field, p []string) (bool, error) {
			return conditional(f, p, true, func(f *field) bool { return f.present && declined(f.value) })
		},
	}
}

func requiredWhen(f *field) bool   { return filled(f.value, f.present) }
func missingWhen(f *field) bool    { return !f.present }
func prohibitedWhen(f *field) bool { return !filled(f.value, f.present) }

// conditional evaluates "rule:other,v1,v2". With match set the constraint
// applies when other equals one of the values, otherwise when it equals none.
func conditional(f *field, params []string, match bool, constraint func(*field) bool) (bool, error) {
	if len(params) < 2 {
		return false, fmt.Errorf("%w: expected a field and at least one value", ErrInvalidRuleParams)
	}
	other, _ := f.data.Bind(params[0])
	if slices.Contains(params[1:], paramString(other)) != match {
		return true, nil
	}
	return constraint(f), nil
}

// filled reports whether the value counts as provided.
func filled(v any, present bool) bool {
	if !present || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return !isBlank(t)
	case *multipart.FileHeader:
		return t != nil && t.Filename != ""
	}
	if list, ok := values.ToSlice(v); ok {
		return len(list) > 0
	}
	if m, ok := values.ToMap(v); ok {
		return len(m) > 0
	}
	return true
}

func anyFilled(f *field, keys []string) bool {
	return slices.ContainsFunc(keys, func(k string) bool {
		v, ok := f.data.Bind(k)
		return filled(v, ok)
	})
}

func allFilled(f *field, keys []string) bool {
	for _, k := range keys {
		if v, ok := f.data.Bind(k); !filled(v, ok) {
			return false
		}
	}
	return true
}

func anyPresent(f *field, keys []string) bool {
	return slices.ContainsFunc(keys, f.data.Has)
}

func allPresent(f *field, keys []string) bool {
	for _, k := range keys {
		if !f.data.Has(k) {
			return false
		}
	}
	return true
}

func accepted(v any) bool {
	switch paramString(v) {
	case "yes", "on", "1", "true":
		return true
	}
	return false
}

func declined(v any) bool {
	switch paramString(v) {
	case "no", "off", "0", "false":
		return true
	}
	return false
}

// paramString renders a value the way rule parameters are written.
func paramString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return fmt.Sprint(v)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
