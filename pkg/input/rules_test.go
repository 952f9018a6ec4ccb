package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/input"
)

func TestRuleTokens(t *testing.T) {
	tests := []struct {
		name string
		in   *input.Input
		want []string
	}{
		{"array keys", input.Field("f").ArrayKeys([]string{"a", "b"}), []string{"array:a,b"}},
		{"in array", input.Field("f").InArray("other", "*"), []string{"in_array:other,*"}},
		{"distinct variants", input.Field("f").Distinct().DistinctStrict().DistinctIgnoreCase(), []string{"distinct", "distinct:strict", "distinct:ignore_case"}},
		{"date format", input.Field("f").DateFormat("Y/m/d"), []string{"date_format:Y/m/d"}},
		{"timezone group", input.Field("f").Timezone().TimezoneOf("Europe"), []string{"timezone", "timezone:Europe"}},
		{"accepted if", input.Field("f").AcceptedIf("kind", "pro"), []string{"accepted_if:kind,pro"}},
		{"required if field", input.Field("f").RequiredIfField("kind", []any{"a", 2}), []string{"required_if:kind,a,2"}},
		{"required with", input.Field("f").RequiredWith([]string{"a", "b"}), []string{"required_with:a,b"}},
		{"missing unless field", input.Field("f").MissingUnlessField("kind", []any{"x"}), []string{"missing_unless:kind,x"}},
		{"decimal", input.Field("f").Decimal(2).DecimalBetween(1, 3), []string{"decimal:2", "decimal:1,3"}},
		{"digits", input.Field("f").Digits(4).DigitsBetween(2, 6), []string{"digits:4", "digits_between:2,6"}},
		{"between", input.Field("f").Between(1, 9), []string{"between:1,9"}},
		{"alpha ascii", input.Field("f").Alpha(true).AlphaNum(false).AlphaDash(true), []string{"alpha:ascii", "alpha_num", "alpha_dash:ascii"}},
		{"current password default guard", input.Field("f").CurrentPassword(""), []string{"current_password:web"}},
		{"tel", input.Field("f").Tel(), []string{"regex:" + input.PatternTel}},
		{"post code", input.Field("f").PostCode(), []string{"regex:/^[0-9]{3}-[0-9]{4}$/"}},
		{"mimes", input.Field("f").File().Mimes([]string{"jpg", "png"}), []string{"file", "mimes:jpg,png"}},
		{"starts with", input.Field("f").StartsWith([]string{"a"}).DoesntEndWith([]string{"z", "y"}), []string{"starts_with:a", "doesnt_end_with:z,y"}},
		{"not in", input.Field("f").NotIn([]string{"root", "admin"}), []string{"not_in:root,admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, input.Strings(tt.in.Rules()))
		})
	}
}

func TestDateHelpers(t *testing.T) {
	tests := []struct {
		name string
		in   *input.Input
		want string
	}{
		{"AsDate", input.Field("f").AsDate(), "date_format:Y-m-d"},
		{"AsTime", input.Field("f").AsTime(), "date_format:H:i:s"},
		{"AsDateTime", input.Field("f").AsDateTime(), "date_format:Y-m-d H:i:s"},
		{"AsYearMonth", input.Field("f").AsYearMonth(), "date_format:Y-m"},
		{"AsMonthDay", input.Field("f").AsMonthDay(), "date_format:m-d"},
		{"AsHourMinute", input.Field("f").AsHourMinute(), "date_format:H:i"},
		{"AsMinuteSecond", input.Field("f").AsMinuteSecond(), "date_format:i:s"},
		{"AsYear", input.Field("f").AsYear(), "date_format:Y"},
		{"AsMonth", input.Field("f").AsMonth(), "date_format:n"},
		{"AsMonthZero", input.Field("f").AsMonthZero(), "date_format:m"},
		{"AsMonthName", input.Field("f").AsMonthName(), "date_format:F"},
		{"AsMonthNameShort", input.Field("f").AsMonthNameShort(), "date_format:M"},
		{"AsDay", input.Field("f").AsDay(), "date_format:j"},
		{"AsDayZero", input.Field("f").AsDayZero(), "date_format:d"},
		{"AsHour", input.Field("f").AsHour(), "date_format:G"},
		{"AsHourZero", input.Field("f").AsHourZero(), "date_format:H"},
		{"AsHourTwelveNotation", input.Field("f").AsHourTwelveNotation(), "date_format:g"},
		{"AsHourTwelveNotationZero", input.Field("f").AsHourTwelveNotationZero(), "date_format:h"},
		{"AsMinute", input.Field("f").AsMinute(), "date_format:i"},
		{"AsSecond", input.Field("f").AsSecond(), "date_format:s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, input.Strings(tt.in.Rules()))
		})
	}

	t.Run("message registers under date_format", func(t *testing.T) {
		in := input.Field("born").AsDate("use YYYY-MM-DD")
		assert.Equal(t, map[string]string{"born.date_format": "use YYYY-MM-DD"}, in.Messages())
	})
}

func TestPredicateRules(t *testing.T) {
	assert.Equal(t, []string{"required"}, input.Strings(input.Field("f").RequiredIf(true).Rules()))
	assert.Empty(t, input.Field("f").RequiredIf(false).Rules())
	assert.Empty(t, input.Field("f").RequiredUnless(true).Rules())
	assert.Equal(t, []string{"missing"}, input.Strings(input.Field("f").MissingUnless(false).Rules()))
	assert.Equal(t, []string{"prohibited"}, input.Strings(input.Field("f").ProhibitedIf(true, "no").Rules()))
	assert.Empty(t, input.Field("f").ProhibitedUnless(true).Rules())
}

func TestDimensions(t *testing.T) {
	t.Run("emits only set constraints", func(t *testing.T) {
		in := input.Field("avatar").Dimensions(input.Dimensions{Width: 100, MinHeight: 50, Ratio: "3/2"})
		assert.Equal(t, []string{"dimensions:width=100,min_height=50,ratio=3/2"}, input.Strings(in.Rules()))
	})

	t.Run("empty constraint is a no-op", func(t *testing.T) {
		in := input.Field("avatar").Dimensions(input.Dimensions{}, "ignored")
		assert.Empty(t, in.Rules())
		assert.Empty(t, in.Messages())
	})
}

func TestTableRules(t *testing.T) {
	t.Run("column defaults to key name", func(t *testing.T) {
		rules := input.Field("email").Exists("users", "").Rules()
		require.Len(t, rules, 1)
		assert.Equal(t, input.Exists{Table: "users", Column: "email"}, rules[0])
		assert.Equal(t, "exists:users,email", rules[0].String())
	})

	t.Run("not deleted defaults to deleted_at", func(t *testing.T) {
		rules := input.Field("slug").UniqueNotDeleted("posts", "", "").Rules()
		require.Len(t, rules, 1)
		assert.Equal(t, input.Unique{Table: "posts", Column: "slug", WhereNull: "deleted_at"}, rules[0])
	})

	t.Run("id checks id column", func(t *testing.T) {
		in := input.Field("user_id").ID("users", "no such user")
		assert.Equal(t, []string{"exists:users,id"}, input.Strings(in.Rules()))
		assert.Equal(t, map[string]string{"user_id.exists": "no such user"}, in.Messages())
	})
}

func TestToken_Params(t *testing.T) {
	assert.Equal(t, []string{"1", "10"}, input.Token("between:1,10").Params())
	assert.Nil(t, input.Token("required").Params())
	assert.Equal(t, []string{"/^[0-9]{2,3}-[0-9]{3,4}$/"}, input.Token("regex:/^[0-9]{2,3}-[0-9]{3,4}$/").Params())
	assert.Equal(t, "regex", input.Token("regex:/a:b/").Name())
}
