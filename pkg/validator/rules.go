package validator

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/values"
)

type valueFunc func(ctx context.Context, e *Engine, f *field, params []string) (bool, error)

var valueRules map[string]valueFunc

// formatTags maps rule names to playground tags applied to the string form.
var formatTags = map[string]string{
	input.RuleEmail:      "email",
	input.RuleURL:        "url",
	input.RuleActiveURL:  "url",
	input.RuleIP:         "ip",
	input.RuleIPv4:       "ipv4",
	input.RuleIPv6:       "ipv6",
	input.RuleMACAddress: "mac",
	input.RuleUUID:       "uuid",
	input.RuleULID:       "ulid",
	input.RuleASCII:      "ascii",
	input.RuleUppercase:  "uppercase",
	input.RuleLowercase:  "lowercase",
	input.RuleHexColor:   "hexcolor",
	input.RuleJSON:       "json",
}

func init() {
	valueRules = map[string]valueFunc{
		input.RuleString:  func(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) { return isString(f.value), nil },
		input.RuleInteger: func(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) { return isInteger(f.value), nil },
		input.RuleNumeric: func(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) { return isNumeric(f.value), nil },
		input.RuleBoolean: func(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) { return isBoolean(f.value), nil },
		input.RuleArray:   checkArray,

		input.RuleAlpha:     alphaRule("alphaunicode", "alpha"),
		input.RuleAlphaNum:  alphaRule("alphanumunicode", "alphanum"),
		input.RuleAlphaDash: alphaRule("alpha_dash", "alpha_dash_ascii"),
		input.RuleTimezone:  checkTimezone,

		input.RuleSize:    sizeRule(1, func(p []string) string { return "eq=" + p[0] }),
		input.RuleMin:     sizeRule(1, func(p []string) string { return "gte=" + p[0] }),
		input.RuleMax:     sizeRule(1, func(p []string) string { return "lte=" + p[0] }),
		input.RuleBetween: sizeRule(2, func(p []string) string { return "gte=" + p[0] + ",lte=" + p[1] }),
		input.RuleGt:      compareRule(func(a, b float64) bool { return a > b }),
		input.RuleGte:     compareRule(func(a, b float64) bool { return a >= b }),
		input.RuleLt:      compareRule(func(a, b float64) bool { return a < b }),
		input.RuleLte:     compareRule(func(a, b float64) bool { return a <= b }),

		input.RuleSame:      checkSame,
		input.RuleDifferent: checkDifferent,
		input.RuleConfirmed: func(ctx context.Context, e *Engine, f *field, _ []string) (bool, error) {
			return checkSame(ctx, e, f, []string{f.key + "_confirmation"})
		},
		input.RuleInArray:           checkInArray,
		input.RuleDistinct:          checkDistinct,
		input.RuleRequiredArrayKeys: checkRequiredArrayKeys,
		input.RuleIn: func(_ context.Context, _ *Engine, f *field, p []string) (bool, error) {
			return inValues(f.value, p), nil
		},
		input.RuleNotIn: func(_ context.Context, _ *Engine, f *field, p []string) (bool, error) {
			return notInValues(f.value, p), nil
		},

		input.RuleStartsWith:      affixRule("startswith", true),
		input.RuleDoesntStartWith: affixRule("startswith", false),
		input.RuleEndsWith:        affixRule("endswith", true),
		input.RuleDoesntEndWith:   affixRule("endswith", false),
		input.RuleRegex:           regexRule(true),
		input.RuleNotRegex:        regexRule(false),

		input.RuleMultipleOf:    checkMultipleOf,
		input.RuleDecimal:       checkDecimal,
		input.RuleDigits:        digitsRule(func(n int, p []int) bool { return n == p[0] }, 1, true),
		input.RuleDigitsBetween: digitsRule(func(n int, p []int) bool { return n >= p[0] && n <= p[1] }, 2, true),
		input.RuleMaxDigits:     digitsRule(func(n int, p []int) bool { return n <= p[0] }, 1, false),
		input.RuleMinDigits:     digitsRule(func(n int, p []int) bool { return n >= p[0] }, 1, false),

		input.RuleDate:          checkDate,
		input.RuleDateFormat:    checkDateFormat,
		input.RuleDateEquals:    dateRule(func(c int) bool { return c == 0 }),
		input.RuleAfter:         dateRule(func(c int) bool { return c > 0 }),
		input.RuleAfterOrEqual:  dateRule(func(c int) bool { return c >= 0 }),
		input.RuleBefore:        dateRule(func(c int) bool { return c < 0 }),
		input.RuleBeforeOrEqual: dateRule(func(c int) bool { return c <= 0 }),

		input.RuleFile:       func(_ context.Context, _ *Engine, f *field, _ []string) (bool, error) { return values.IsFile(f.value), nil },
		input.RuleImage:      checkImage,
		input.RuleMimes:      checkMimes,
		input.RuleMimetypes:  checkMimetypes,
		input.RuleExtensions: checkExtensions,
		input.RuleDimensions: checkDimensions,

		input.RuleExists:          tableRule(true),
		input.RuleUnique:          tableRule(false),
		input.RuleCurrentPassword: checkCurrentPassword,
	}

	for name, tag := range formatTags {
		valueRules[name] = formatRule(tag)
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isInteger(v any) bool {
	_, isBool := v.(bool)
	return !isBool && values.IsInteger(v)
}

func isNumeric(v any) bool {
	_, ok := values.ToFloat(v)
	return ok
}

func isBoolean(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	switch paramString(v) {
	case "0", "1":
		return isNumeric(v)
	}
	return false
}

func checkArray(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	if len(params) == 0 {
		_, isList := values.ToSlice(f.value)
		_, isMap := values.ToMap(f.value)
		return isList || isMap, nil
	}
	m, ok := values.ToMap(f.value)
	if !ok {
		return false, nil
	}
	for k := range m {
		if !slices.Contains(params, k) {
			return false, nil
		}
	}
	return true, nil
}

func formatRule(tag string) valueFunc {
	return func(ctx context.Context, e *Engine, f *field, _ []string) (bool, error) {
		s, ok := stringValue(f.value)
		return ok && e.is(ctx, s, tag), nil
	}
}

func alphaRule(unicodeTag, asciiTag string) valueFunc {
	return func(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
		tag := unicodeTag
		if slices.Contains(params, "ascii") {
			tag = asciiTag
		}
		s, ok := stringValue(f.value)
		return ok && e.is(ctx, s, tag), nil
	}
}

func checkTimezone(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
	s, ok := f.value.(string)
	if !ok || !e.is(ctx, s, "timezone") {
		return false, nil
	}
	if len(params) == 0 || strings.EqualFold(params[0], "all") {
		return true, nil
	}
	if len(params) > 1 {
		return false, fmt.Errorf("%w: timezone accepts a single group", ErrInvalidRuleParams)
	}
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(params[0])+"/"), nil
}

// sizeOf measures the value: numbers by value (when the key carries a numeric
// rule), files in kilobytes, collections by length and strings in runes.
func sizeOf(v any, numeric bool) (float64, bool) {
	if numeric {
		if n, ok := values.ToFloat(v); ok {
			return n, true
		}
	}
	if values.IsFile(v) {
		return fileKilobytes(v), true
	}
	if list, ok := values.ToSlice(v); ok {
		return float64(len(list)), true
	}
	if m, ok := values.ToMap(v); ok {
		return float64(len(m)), true
	}
	if s, ok := v.(string); ok {
		return float64(utf8.RuneCountInString(s)), true
	}
	if n, ok := values.ToFloat(v); ok {
		return n, true
	}
	return 0, false
}

// sizeKind names the measurement used by sizeOf, for message selection.
func sizeKind(v any, numeric bool) string {
	switch {
	case numeric && isNumeric(v):
		return "numeric"
	case values.IsFile(v):
		return "file"
	}
	if _, ok := values.ToSlice(v); ok {
		return "array"
	}
	if _, ok := values.ToMap(v); ok {
		return "array"
	}
	if _, ok := v.(string); ok {
		return "string"
	}
	return "numeric"
}

func sizeRule(arity int, tag func([]string) string) valueFunc {
	return func(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
		if len(params) < arity {
			return false, fmt.Errorf("%w: expected %d parameter(s)", ErrInvalidRuleParams, arity)
		}
		for _, p := range params[:arity] {
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return false, fmt.Errorf("%w: %q is not a number", ErrInvalidRuleParams, p)
			}
		}
		size, ok := sizeOf(f.value, f.numeric)
		return ok && e.is(ctx, size, tag(params)), nil
	}
}

func compareRule(cmp func(a, b float64) bool) valueFunc {
	return func(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
		if len(params) != 1 {
			return false, fmt.Errorf("%w: expected a field or a number", ErrInvalidRuleParams)
		}
		size, ok := sizeOf(f.value, f.numeric)
		if !ok {
			return false, nil
		}
		if other, present := f.data.Bind(params[0]); present {
			if sizeKind(other, f.numeric) != sizeKind(f.value, f.numeric) {
				return false, nil
			}
			otherSize, ok := sizeOf(other, f.numeric)
			return ok && cmp(size, otherSize), nil
		}
		limit, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return false, nil
		}
		return cmp(size, limit), nil
	}
}

func checkSame(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	if len(params) != 1 {
		return false, fmt.Errorf("%w: expected a field", ErrInvalidRuleParams)
	}
	other, ok := f.data.Bind(params[0])
	return ok && reflect.DeepEqual(f.value, other), nil
}

func checkDifferent(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	for _, p := range params {
		other, ok := f.data.Bind(p)
		if !ok || reflect.DeepEqual(f.value, other) {
			return false, nil
		}
	}
	return true, nil
}

func checkInArray(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	if len(params) == 0 {
		return false, fmt.Errorf("%w: expected a field", ErrInvalidRuleParams)
	}
	path := params[0]
	if len(params) > 1 && params[1] != "*" {
		path += "." + params[1]
	}
	other, _ := f.data.Bind(path)
	list, ok := values.ToSlice(other)
	if !ok {
		if m, isMap := values.ToMap(other); isMap {
			for _, v := range m {
				list = append(list, v)
			}
		} else if other != nil {
			list = []any{other}
		}
	}
	want := paramString(f.value)
	return slices.ContainsFunc(list, func(v any) bool { return paramString(v) == want }), nil
}

func checkDistinct(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	list, ok := values.ToSlice(f.value)
	if !ok {
		return true, nil
	}
	key := func(v any) string { return paramString(v) }
	switch {
	case slices.Contains(params, "strict"):
		key = func(v any) string { return fmt.Sprintf("%T:%v", v, v) }
	case slices.Contains(params, "ignore_case"):
		key = func(v any) string { return strings.ToLower(paramString(v)) }
	}
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		k := key(v)
		if seen[k] {
			return false, nil
		}
		seen[k] = true
	}
	return true, nil
}

func checkRequiredArrayKeys(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	m, ok := values.ToMap(f.value)
	if !ok {
		return false, nil
	}
	for _, k := range params {
		if _, ok := m[k]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func inValues(v any, allowed []string) bool {
	if list, ok := values.ToSlice(v); ok {
		for _, item := range list {
			if !slices.Contains(allowed, paramString(item)) {
				return false
			}
		}
		return true
	}
	if _, ok := values.ToMap(v); ok {
		return false
	}
	return slices.Contains(allowed, paramString(v))
}

func notInValues(v any, denied []string) bool {
	if list, ok := values.ToSlice(v); ok {
		for _, item := range list {
			if slices.Contains(denied, paramString(item)) {
				return false
			}
		}
		return true
	}
	return !slices.Contains(denied, paramString(v))
}

func affixRule(tag string, want bool) valueFunc {
	return func(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
		s, ok := stringValue(f.value)
		if !ok {
			return false, nil
		}
		matched := slices.ContainsFunc(params, func(p string) bool {
			return p != "" && e.is(ctx, s, tag+"="+escapeParam(p))
		})
		return matched == want, nil
	}
}

func regexRule(want bool) valueFunc {
	return func(_ context.Context, e *Engine, f *field, params []string) (bool, error) {
		if len(params) != 1 {
			return false, fmt.Errorf("%w: expected a pattern", ErrInvalidRuleParams)
		}
		re, err := e.compile(params[0])
		if err != nil {
			return false, err
		}
		s, ok := stringValue(f.value)
		if !ok {
			return false, nil
		}
		return re.MatchString(s) == want, nil
	}
}

func checkMultipleOf(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
	if len(params) != 1 {
		return false, fmt.Errorf("%w: expected a number", ErrInvalidRuleParams)
	}
	n, ok := values.ToFloat(f.value)
	return ok && e.is(ctx, n, "multiple_of="+params[0]), nil
}

func checkDecimal(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
	bounds, err := intParams(params, 1)
	if err != nil {
		return false, err
	}
	s, ok := stringValue(f.value)
	if !ok || !isNumeric(s) {
		return false, nil
	}
	places := 0
	if _, frac, found := strings.Cut(strings.TrimSpace(s), "."); found {
		places = len(frac)
	}
	if len(bounds) == 1 {
		return places == bounds[0], nil
	}
	return places >= bounds[0] && places <= bounds[1], nil
}

func digitsRule(cmp func(n int, p []int) bool, arity int, strict bool) valueFunc {
	return func(_ context.Context, _ *Engine, f *field, params []string) (bool, error) {
		bounds, err := intParams(params, arity)
		if err != nil {
			return false, err
		}
		s, ok := stringValue(f.value)
		if !ok || !isNumeric(s) {
			return false, nil
		}
		s = strings.TrimSpace(s)
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, s)
		if strict && len(digits) != len(s) {
			return false, nil
		}
		return cmp(len(digits), bounds), nil
	}
}

func intParams(params []string, minCount int) ([]int, error) {
	if len(params) < minCount {
		return nil, fmt.Errorf("%w: expected %d parameter(s)", ErrInvalidRuleParams, minCount)
	}
	out := make([]int, 0, len(params))
	for _, p := range params {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidRuleParams, p)
		}
		out = append(out, n)
	}
	return out, nil
}

func tableRule(wantExists bool) valueFunc {
	return func(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
		if len(params) == 0 {
			return false, fmt.Errorf("%w: expected a table", ErrInvalidRuleParams)
		}
		column := ""
		if len(params) > 1 {
			column = params[1]
		}
		return e.checkTable(ctx, f, params[0], column, "", wantExists)
	}
}

func checkCurrentPassword(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
	if e.passwords == nil {
		return false, ErrPasswordCheckerMissing
	}
	guard := "web"
	if len(params) > 0 && params[0] != "" {
		guard = params[0]
	}
	s, ok := f.value.(string)
	if !ok {
		return false, nil
	}
	return e.passwords.CheckPassword(ctx, guard, s)
}

func fileKilobytes(v any) float64 {
	size, _ := fileSize(v)
	return math.Round(float64(size)/1024*100) / 100
}
