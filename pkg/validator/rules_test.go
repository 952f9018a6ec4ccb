package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/validator"
)

func TestValueRules(t *testing.T) {
	t.Parallel()

	e := validator.New()
	tests := []struct {
		name  string
		field *input.Input
		value any
		valid bool
	}{
		{"string", input.Field("v").IsString(), "x", true},
		{"string rejects numbers", input.Field("v").IsString(), 10, false},
		{"integer", input.Field("v").Integer(), "42", true},
		{"integer rejects fractions", input.Field("v").Integer(), "4.2", false},
		{"integer rejects booleans", input.Field("v").Integer(), true, false},
		{"numeric", input.Field("v").Numeric(), "4.2", true},
		{"numeric rejects words", input.Field("v").Numeric(), "four", false},
		{"boolean", input.Field("v").Boolean(), "1", true},
		{"boolean native", input.Field("v").Boolean(), false, true},
		{"boolean rejects words", input.Field("v").Boolean(), "yes", false},
		{"array", input.Field("v").Array(), []any{1, 2}, true},
		{"array keys", input.Field("v").ArrayKeys([]string{"a"}), map[string]any{"b": 1}, false},
		{"required array keys", input.Field("v").RequiredArrayKeys([]string{"a", "b"}), map[string]any{"a": 1, "b": 2}, true},
		{"email", input.Field("v").Email(), "user@example.com", true},
		{"email invalid", input.Field("v").Email(), "user@", false},
		{"url", input.Field("v").URL(), "https://example.com/path", true},
		{"url invalid", input.Field("v").URL(), "example", false},
		{"ip", input.Field("v").IP(), "10.0.0.1", true},
		{"ipv4 rejects v6", input.Field("v").IPv4(), "::1", false},
		{"ipv6", input.Field("v").IPv6(), "::1", true},
		{"mac address", input.Field("v").MACAddress(), "00:1a:2b:3c:4d:5e", true},
		{"uuid", input.Field("v").UUID(), "3f2504e0-4f89-41d3-9a0c-0305e82c3301", true},
		{"uuid invalid", input.Field("v").UUID(), "3f2504e0", false},
		{"hex color", input.Field("v").HexColor(), "#ff00aa", true},
		{"json", input.Field("v").JSON(), `{"a":1}`, true},
		{"json invalid", input.Field("v").JSON(), `{a:1}`, false},
		{"uppercase", input.Field("v").Uppercase(), "ABC", true},
		{"lowercase", input.Field("v").Lowercase(), "ABC", false},
		{"alpha", input.Field("v").Alpha(false), "héllo", true},
		{"alpha ascii", input.Field("v").Alpha(true), "héllo", false},
		{"alpha num", input.Field("v").AlphaNum(true), "abc123", true},
		{"alpha dash", input.Field("v").AlphaDash(true), "abc-1_2", true},
		{"alpha dash rejects spaces", input.Field("v").AlphaDash(false), "a b", false},
		{"timezone", input.Field("v").Timezone(), "UTC", true},
		{"timezone invalid", input.Field("v").Timezone(), "Mars/Base", false},
		{"size string", input.Field("v").Size(3), "abc", true},
		{"size counts runes", input.Field("v").Size(2), "éé", true},
		{"max array", input.Field("v").Max(2), []any{1, 2, 3}, false},
		{"between numeric", input.Field("v").Numeric().Between(1, 10), "5", true},
		{"between numeric out", input.Field("v").Numeric().Between(1, 10), "11", false},
		{"in", input.Field("v").In([]string{"a", "b"}), "b", true},
		{"in rejects", input.Field("v").In([]string{"a", "b"}), "c", false},
		{"in list", input.Field("v").In([]string{"a", "b"}), []any{"a", "b"}, true},
		{"not in", input.Field("v").NotIn([]string{"a"}), "a", false},
		{"starts with", input.Field("v").StartsWith([]string{"foo", "bar"}), "barbaz", true},
		{"doesnt start with", input.Field("v").DoesntStartWith([]string{"foo"}), "foobar", false},
		{"ends with", input.Field("v").EndsWith([]string{".go"}), "main.go", true},
		{"doesnt end with", input.Field("v").DoesntEndWith([]string{".go"}), "main.rs", true},
		{"regex", input.Field("v").Regex("/^[a-z]+$/"), "abc", true},
		{"regex case flag", input.Field("v").Regex("/^[a-z]+$/i"), "ABC", true},
		{"regex without flag", input.Field("v").Regex("/^[a-z]+$/"), "ABC", false},
		{"regex with comma", input.Field("v").Regex("/^a{1,2}$/"), "aa", true},
		{"not regex", input.Field("v").NotRegex("/[0-9]/"), "abc", true},
		{"multiple of", input.Field("v").MultipleOf(5), "15", true},
		{"multiple of rejects", input.Field("v").MultipleOf(5), "12", false},
		{"decimal", input.Field("v").Decimal(2), "1.25", true},
		{"decimal places", input.Field("v").Decimal(2), "1.5", false},
		{"decimal between", input.Field("v").DecimalBetween(0, 2), "1.5", true},
		{"digits", input.Field("v").Digits(4), "1234", true},
		{"digits rejects signs", input.Field("v").Digits(4), "-123", false},
		{"digits between", input.Field("v").DigitsBetween(2, 4), "123", true},
		{"max digits", input.Field("v").MaxDigits(3), "1234", false},
		{"min digits", input.Field("v").MinDigits(3), "123", true},
		{"distinct", input.Field("v").Distinct(), []any{"a", "b", "a"}, false},
		{"distinct ignore case", input.Field("v").DistinctIgnoreCase(), []any{"a", "A"}, false},
		{"distinct strict", input.Field("v").DistinctStrict(), []any{"1", 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := validate(t, e, map[string]any{"v": tt.value}, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, errs.IsEmpty(), errs)
		})
	}
}

func TestFieldRules(t *testing.T) {
	t.Parallel()

	e := validator.New()
	tests := []struct {
		name   string
		data   map[string]any
		inputs []*input.Input
		failed []string
	}{
		{
			name:   "confirmed",
			data:   map[string]any{"password": "a", "password_confirmation": "a"},
			inputs: []*input.Input{input.Field("password").Confirmed()},
		},
		{
			name:   "confirmed mismatch",
			data:   map[string]any{"password": "a", "password_confirmation": "b"},
			inputs: []*input.Input{input.Field("password").Confirmed()},
			failed: []string{"password"},
		},
		{
			name:   "same",
			data:   map[string]any{"a": "x", "b": "y"},
			inputs: []*input.Input{input.Field("a").Same("b")},
			failed: []string{"a"},
		},
		{
			name:   "different",
			data:   map[string]any{"a": "x", "b": "y"},
			inputs: []*input.Input{input.Field("a").Different("b")},
		},
		{
			name:   "gt other field",
			data:   map[string]any{"max": "10", "min": "5"},
			inputs: []*input.Input{input.Field("max").Integer().Gt("min")},
		},
		{
			name:   "lte other field",
			data:   map[string]any{"max": "10", "min": "5"},
			inputs: []*input.Input{input.Field("max").Integer().Lte("min")},
			failed: []string{"max"},
		},
		{
			name:   "in array",
			data:   map[string]any{"pick": "b", "options": []any{"a", "b"}},
			inputs: []*input.Input{input.Field("pick").InArray("options", "*")},
		},
		{
			name:   "required if field",
			data:   map[string]any{"type": "company"},
			inputs: []*input.Input{input.Field("company_name").RequiredIfField("type", []any{"company"})},
			failed: []string{"company_name"},
		},
		{
			name:   "required if field not matching",
			data:   map[string]any{"type": "person"},
			inputs: []*input.Input{input.Field("company_name").RequiredIfField("type", []any{"company"})},
		},
		{
			name:   "required unless field",
			data:   map[string]any{"type": "person"},
			inputs: []*input.Input{input.Field("company_name").RequiredUnlessField("type", []any{"person"})},
		},
		{
			name:   "required with",
			data:   map[string]any{"first": "a"},
			inputs: []*input.Input{input.Field("last").RequiredWith([]string{"first"})},
			failed: []string{"last"},
		},
		{
			name:   "required without all",
			data:   map[string]any{},
			inputs: []*input.Input{input.Field("email").RequiredWithoutAll([]string{"phone", "login"})},
			failed: []string{"email"},
		},
		{
			name:   "required if accepted",
			data:   map[string]any{"subscribe": "on"},
			inputs: []*input.Input{input.Field("email").RequiredIfAccepted([]string{"subscribe"})},
			failed: []string{"email"},
		},
		{
			name:   "accepted",
			data:   map[string]any{"terms": "yes"},
			inputs: []*input.Input{input.Field("terms").Accepted()},
		},
		{
			name:   "accepted when absent",
			data:   map[string]any{},
			inputs: []*input.Input{input.Field("terms").Accepted()},
			failed: []string{"terms"},
		},
		{
			name:   "declined if",
			data:   map[string]any{"plan": "free", "ads": "on"},
			inputs: []*input.Input{input.Field("ads").DeclinedIf("plan", "free")},
			failed: []string{"ads"},
		},
		{
			name:   "present",
			data:   map[string]any{"note": ""},
			inputs: []*input.Input{input.Field("note").Present()},
		},
		{
			name:   "filled",
			data:   map[string]any{"note": " "},
			inputs: []*input.Input{input.Field("note").Filled()},
			failed: []string{"note"},
		},
		{
			name:   "filled when absent",
			data:   map[string]any{},
			inputs: []*input.Input{input.Field("note").Filled()},
		},
		{
			name:   "missing",
			data:   map[string]any{"id": "1"},
			inputs: []*input.Input{input.Field("id").Missing()},
			failed: []string{"id"},
		},
		{
			name:   "missing with",
			data:   map[string]any{"a": "1"},
			inputs: []*input.Input{input.Field("b").MissingWith([]string{"a"})},
		},
		{
			name:   "prohibited",
			data:   map[string]any{"role": "admin"},
			inputs: []*input.Input{input.Field("role").Prohibited()},
			failed: []string{"role"},
		},
		{
			name:   "prohibited allows blank",
			data:   map[string]any{"role": ""},
			inputs: []*input.Input{input.Field("role").Prohibited()},
		},
		{
			name:   "prohibits",
			data:   map[string]any{"a": "1", "b": "2"},
			inputs: []*input.Input{input.Field("a").Prohibits([]string{"b"})},
			failed: []string{"a"},
		},
		{
			name: "predicate required",
			data: map[string]any{},
			inputs: []*input.Input{
				input.Field("a").RequiredIf(true),
				input.Field("b").RequiredIf(false),
			},
			failed: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := validate(t, e, tt.data, tt.inputs...)
			require.NoError(t, err)
			assert.Equal(t, tt.failed, errs.Fields())
		})
	}
}

func TestInvalidRuleParams(t *testing.T) {
	t.Parallel()

	e := validator.New()
	tests := []struct {
		name  string
		field *input.Input
	}{
		{"regex without closing delimiter", input.Field("v").Regex("/abc")},
		{"regex bad syntax", input.Field("v").Regex("/(/")},
		{"regex unknown modifier", input.Field("v").Regex("/a/q")},
		{"size without number", input.Field("v").AddRuleValues(input.RuleSize, "big")},
		{"digits without number", input.Field("v").AddRuleValues(input.RuleDigits)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := validate(t, e, map[string]any{"v": "abc"}, tt.field)
			assert.ErrorIs(t, err, validator.ErrInvalidRuleParams)
		})
	}
}
