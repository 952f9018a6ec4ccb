package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/formrequest/pkg/input"
)

// dateLayouts are tried in order when no explicit format is declared.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	time.RFC1123Z,
	time.RFC1123,
}

// letterLayout maps single-letter date format codes to Go layout elements.
var letterLayout = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'n': "1",
	'd': "02",
	'j': "2",
	'H': "15",
	'G': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'F': "January",
	'M': "Jan",
	'D': "Mon",
	'l': "Monday",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
	'e': "MST",
	'u': "000000",
	'v': "000",
}

// GoLayout converts a letter-coded date format ("Y-m-d H:i") into a Go layout.
// A backslash escapes the next character.
func GoLayout(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c == '\\' {
			if i+1 < len(format) {
				i++
				b.WriteByte(format[i])
			}
			continue
		}
		if layout, ok := letterLayout[c]; ok {
			b.WriteString(layout)
			continue
		}
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return "", fmt.Errorf("%w: unsupported date format character %q", ErrInvalidRuleParams, c)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func checkDate(_ context.Context, e *Engine, f *field, _ []string) (bool, error) {
	_, ok := e.parseDate(f, f.value)
	return ok, nil
}

func checkDateFormat(ctx context.Context, e *Engine, f *field, params []string) (bool, error) {
	if len(params) == 0 {
		return false, fmt.Errorf("%w: expected a format", ErrInvalidRuleParams)
	}
	layout, err := GoLayout(strings.Join(params, ","))
	if err != nil {
		return false, err
	}
	s, ok := f.value.(string)
	return ok && e.is(ctx, s, "datetime="+escapeParam(layout)), nil
}

// dateRule compares the value with a literal date, a relative keyword or
// the date held by another field.
func dateRule(cmp func(c int) bool) valueFunc {
	return func(_ context.Context, e *Engine, f *field, params []string) (bool, error) {
		if len(params) != 1 {
			return false, fmt.Errorf("%w: expected a date or a field", ErrInvalidRuleParams)
		}
		value, ok := e.parseDate(f, f.value)
		if !ok {
			return false, nil
		}
		target, ok := e.dateParam(f, params[0])
		if !ok {
			return false, nil
		}
		return cmp(value.Compare(target)), nil
	}
}

func (e *Engine) dateParam(f *field, param string) (time.Time, bool) {
	if other, ok := f.data.Bind(param); ok {
		return e.parseDate(f, other)
	}
	return e.parseDate(f, param)
}

// parseDate honours a date_format rule declared on the same key.
func (e *Engine) parseDate(f *field, v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		if t, isTime := v.(time.Time); isTime {
			return t, true
		}
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)

	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch strings.ToLower(s) {
	case "now":
		return now, true
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	}

	layouts := dateLayouts
	if format, ok := declaredFormat(f); ok {
		if layout, err := GoLayout(format); err == nil {
			layouts = append([]string{layout}, dateLayouts...)
		}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func declaredFormat(f *field) (string, bool) {
	for _, r := range f.set.Rules[f.key] {
		if r.Name() == input.RuleDateFormat {
			if params := input.Token(r.String()).Params(); len(params) > 0 {
				return strings.Join(params, ","), true
			}
		}
	}
	return "", false
}
