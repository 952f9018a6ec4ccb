package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrequest/pkg/input"
	"github.com/dmitrymomot/formrequest/pkg/validator"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	e := validator.New()

	t.Run("size messages depend on the measured value", func(t *testing.T) {
		data := map[string]any{"title": "ab", "tags": []any{"a"}, "count": "1"}
		_, errs, err := validate(t, e, data,
			input.Field("title").Min(3),
			input.Field("tags").Min(2),
			input.Field("count").Integer().Min(2),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"The title field must be at least 3 characters."}, errs.Get("title"))
		assert.Equal(t, []string{"The tags field must have at least 2 items."}, errs.Get("tags"))
		assert.Equal(t, []string{"The count field must be at least 2."}, errs.Get("count"))
	})

	t.Run("underscores become spaces", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{}, input.Field("first_name").Required())
		require.NoError(t, err)
		assert.Equal(t, []string{"The first name field is required."}, errs.Get("first_name"))
	})

	t.Run("attribute names", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"a": "x", "b": "y"},
			input.Field("a").SetAttributeName("Password").Same("b"),
			input.Field("b").SetAttributeName("Repeat password"),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"The Password field must match Repeat password."}, errs.Get("a"))
		assert.Equal(t, "Repeat password", errs[0].TranslationValues["other"])
	})

	t.Run("custom messages win", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"name": "x"},
			input.Field("name").Min(3, "Too short: :attribute needs :min."),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Too short: name needs 3."}, errs.Get("name"))
	})

	t.Run("values placeholder", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"ext": "a.txt"}, input.Field("ext").EndsWith([]string{".go", ".rs"}))
		require.NoError(t, err)
		assert.Equal(t, []string{"The ext field must end with one of the following: .go, .rs."}, errs.Get("ext"))
	})

	t.Run("conditional placeholders", func(t *testing.T) {
		_, errs, err := validate(t, e, map[string]any{"type": "company"},
			input.Field("company_name").RequiredIfField("type", []any{"company"}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"The company name field is required when type is company."}, errs.Get("company_name"))
	})
}

func TestMessages_Translator(t *testing.T) {
	t.Parallel()

	catalog := map[string]string{
		"validation.required":             ":attribute est obligatoire.",
		"validation.max.string":           ":attribute ne doit pas dépasser :max caractères.",
		"validation.attributes.last_name": "nom",
	}
	tr := input.TranslatorFunc(func(key string) string {
		if msg, ok := catalog[key]; ok {
			return msg
		}
		return key
	})

	set := input.Collect(tr,
		input.Field("last_name").Required(),
		input.Field("bio").Max(2),
		input.Field("age").Integer(),
	)
	_, err := validator.New().Validate(context.Background(), map[string]any{"bio": "abc", "age": "x"}, set, tr)
	errs := validator.ExtractValidationErrors(err)
	require.NotNil(t, errs)

	assert.Equal(t, []string{"nom est obligatoire."}, errs.Get("last_name"))
	assert.Equal(t, []string{"bio ne doit pas dépasser 2 caractères."}, errs.Get("bio"))
	assert.Equal(t, []string{"The age field must be an integer."}, errs.Get("age"), "untranslated keys fall back to English")
}
