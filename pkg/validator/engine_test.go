package validator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/validator"
)

func validate(t *testing.T, e *validator.Engine, data map[string]any, inputs ...*input.Input) (map[string]any, validator.ValidationErrors, error) {
	t.Helper()
	out, err := e.Validate(context.Background(), data, input.Collect(nil, inputs...), nil)
	if err != nil && validator.IsValidationError(err) {
		return out, validator.ExtractValidationErrors(err), nil
	}
	return out, nil, err
}

func TestEngine_Validate(t *testing.T) {
	t.Parallel()

	e := validator.New()
	rules := func() []*input.Input {
		return []*input.Input{
			input.Field("name").Required().IsString().Max(255),
			input.Field("age").Required().Integer().Min(18),
		}
	}

	t.Run("valid data returns declared keys", func(t *testing.T) {
		out, errs, err := validate(t, e, map[string]any{"name": "Alice", "age": "30", "extra": "x"}, rules()...)
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, map[string]any{"name": "Alice", "age": "30"}, out)
	})

	t.Run("missing required key", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"age": "30"}, rules()...)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, input.RuleRequired, errs[0].Rule)
		assert.Equal(t, "The name field is required.", errs[0].Message)
		assert.Equal(t, "validation.required", errs[0].TranslationKey)
	})

	t.Run("numeric size", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"name": "Bob", "age": "15"}, rules()...)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "age", errs[0].Field)
		assert.Equal(t, "The age field must be at least 18.", errs[0].Message)
		assert.Equal(t, "validation.min.numeric", errs[0].TranslationKey)
	})

	t.Run("failing implicit rule stops the key", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"name": "Bob", "age": ""}, rules()...)
		require.NoError(t, err)
		assert.Equal(t, []string{input.RuleRequired}, errs.Rules("age"))
	})

	t.Run("non-implicit rules skip absent keys", func(t *testing.T) {
		out, errs, err := validate(t, e, map[string]any{}, input.Field("age").Integer().Min(18))
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Empty(t, out)
	})

	t.Run("nullable accepts nil", func(t *testing.T) {
		out, errs, err := validate(t, e, map[string]any{"age": nil}, input.Field("age").Nullable().Integer())
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Contains(t, out, "age")
		assert.Nil(t, out["age"])
	})

	t.Run("nil without nullable is checked", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"age": nil}, input.Field("age").Integer())
		require.NoError(t, err)
		assert.True(t, errs.Has("age"))
	})

	t.Run("rule-less keys are kept", func(t *testing.T) {
		out, errs, err := validate(t, e, map[string]any{"note": "hi"}, input.Field("note"))
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, map[string]any{"note": "hi"}, out)
	})

	t.Run("dot paths read nested data", func(t *testing.T) {
		data := map[string]any{"user": map[string]any{"email": "not-an-email"}}
		_, errs, err := validate(t, e, data, input.Field("user.email").Required().Email())
		require.NoError(t, err)
		assert.Equal(t, []string{input.RuleEmail}, errs.Rules("user.email"))
		assert.Equal(t, "The user.email field must be a valid email address.", errs.Get("user.email")[0])
	})

	t.Run("errors match ErrValidationFailed", func(t *testing.T) {
		_, err := e.Validate(context.Background(), map[string]any{}, input.Collect(nil, rules()...), nil)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t, []string{"name", "age"}, validator.ExtractValidationErrors(err).Fields())
	})
}

func TestEngine_UnsupportedRule(t *testing.T) {
	t.Parallel()

	e := validator.New()
	_, _, err := validate(t, e, map[string]any{"a": "x"}, input.Field("a").AddRuleValues("no_such_rule"))
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrUnsupportedRule)
	assert.False(t, validator.IsValidationError(err))
}

func TestEngine_CustomRules(t *testing.T) {
	t.Parallel()

	even := func(_ context.Context, attr validator.Attribute) (bool, error) {
		n, ok := attr.Value.(int)
		return ok && n%2 == 0, nil
	}
	e := validator.New(validator.WithRule("even", even, false))

	_, errs, err := validate(t, e, map[string]any{"n": 3}, input.Field("n").AddRuleValuesWithMessage("even", nil, "Must be even."))
	require.NoError(t, err)
	assert.Equal(t, []string{"Must be even."}, errs.Get("n"))

	_, errs, err = validate(t, e, map[string]any{"n": 4}, input.Field("n").AddRuleValues("even"))
	require.NoError(t, err)
	assert.Empty(t, errs)

	t.Run("rule objects", func(t *testing.T) {
		_, errs, err := validate(t, validator.New(), map[string]any{"code": "abc"}, input.Field("code").AddRule(upperRule{}))
		require.NoError(t, err)
		assert.Equal(t, []string{"upper"}, errs.Rules("code"))
	})

	t.Run("errors from rules abort validation", func(t *testing.T) {
		boom := errors.New("boom")
		e := validator.New(validator.WithRule("boom", func(context.Context, validator.Attribute) (bool, error) {
			return false, boom
		}, false))
		_, _, err := validate(t, e, map[string]any{"a": "x"}, input.Field("a").AddRuleValues("boom"))
		assert.ErrorIs(t, err, boom)
	})
}

type upperRule struct{}

func (upperRule) Name() string   { return "upper" }
func (upperRule) String() string { return "upper" }
func (upperRule) Passes(_ context.Context, _ string, value any) (bool, error) {
	s, _ := value.(string)
	return s != "" && s == toUpper(s), nil
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}

type fakeTables map[string][]any

func (f fakeTables) Exists(_ context.Context, q validator.TableQuery) (bool, error) {
	for _, v := range f[q.Table+"."+q.Column] {
		if v == q.Value {
			return true, nil
		}
	}
	return false, nil
}

func TestEngine_TableRules(t *testing.T) {
	t.Parallel()

	tables := fakeTables{"users.email": {"taken@example.com"}, "teams.id": {"t1", "t2"}}
	e := validator.New(validator.WithTableChecker(tables))

	t.Run("unique", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"email": "taken@example.com"}, input.Field("email").Unique("users", ""))
		require.NoError(t, err)
		assert.Equal(t, []string{"The email has already been taken."}, errs.Get("email"))

		_, errs, err = validate(t, e, map[string]any{"email": "free@example.com"}, input.Field("email").Unique("users", ""))
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("exists checks every element of a list", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"teams": []any{"t1", "t2"}}, input.Field("teams").ID("teams"))
		require.NoError(t, err)
		assert.Empty(t, errs)

		_, errs, err = validate(t, e, map[string]any{"teams": []any{"t1", "t3"}}, input.Field("teams").ID("teams"))
		require.NoError(t, err)
		assert.Equal(t, []string{"The selected teams is invalid."}, errs.Get("teams"))
	})

	t.Run("missing checker", func(t *testing.T) {
		_, _, err := validate(t, validator.New(), map[string]any{"email": "a@b.co"}, input.Field("email").Unique("users", ""))
		assert.ErrorIs(t, err, validator.ErrTableCheckerMissing)
	})
}

type fakePasswords string

func (f fakePasswords) CheckPassword(_ context.Context, guard, password string) (bool, error) {
	return guard == "web" && password == string(f), nil
}

func TestEngine_CurrentPassword(t *testing.T) {
	t.Parallel()

	e := validator.New(validator.WithPasswordChecker(fakePasswords("secret")))

	_, errs, err := validate(t, e, map[string]any{"password": "secret"}, input.Field("password").CurrentPassword(""))
	require.NoError(t, err)
	assert.Empty(t, errs)

	_, errs, err = validate(t, e, map[string]any{"password": "nope"}, input.Field("password").CurrentPassword(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"The password is incorrect."}, errs.Get("password"))

	_, _, err = validate(t, validator.New(), map[string]any{"password": "x"}, input.Field("password").CurrentPassword(""))
	assert.ErrorIs(t, err, validator.ErrPasswordCheckerMissing)
}

func TestEngine_Dates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	e := validator.New(validator.WithClock(func() time.Time { return now }))

	tests := []struct {
		name  string
		field *input.Input
		value any
		valid bool
	}{
		{"date", input.Field("d").Date(), "2026-01-20", true},
		{"invalid date", input.Field("d").Date(), "2026-13-40", false},
		{"after tomorrow", input.Field("d").After("tomorrow"), "2026-01-20", true},
		{"not after tomorrow", input.Field("d").After("tomorrow"), "2026-01-16", false},
		{"before or equal today", input.Field("d").BeforeOrEqual("today"), "2026-01-15", true},
		{"date equals literal", input.Field("d").DateEquals("2026-02-01"), "2026-02-01", true},
		{"declared format", input.Field("d").DateFormat("d/m/Y"), "20/01/2026", true},
		{"declared format mismatch", input.Field("d").DateFormat("d/m/Y"), "2026-01-20", false},
		{"format used for comparison", input.Field("d").DateFormat("d/m/Y").After("today"), "20/01/2026", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := validate(t, e, map[string]any{"d": tt.value}, tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, errs.IsEmpty(), errs)
		})
	}

	t.Run("compare with another field", func(t *testing.T) {
		data := map[string]any{"start": "2026-03-01", "end": "2026-02-01"}
		_, errs, err := validate(t, e, data, input.Field("start").Date(), input.Field("end").After("start"))
		require.NoError(t, err)
		assert.Equal(t, []string{"The end field must be a date after start."}, errs.Get("end"))
	})
}

func TestGoLayout(t *testing.T) {
	t.Parallel()

	layout, err := validator.GoLayout("Y-m-d H:i:s")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02 15:04:05", layout)

	layout, err = validator.GoLayout(`d \o\f F`)
	require.NoError(t, err)
	assert.Equal(t, "02 of January", layout)

	_, err = validator.GoLayout("Q")
	assert.ErrorIs(t, err, validator.ErrInvalidRuleParams)
}
