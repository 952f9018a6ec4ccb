package values_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrequest/pkg/values"
)

type role string

const (
	roleAdmin  role = "admin"
	roleMember role = "member"
)

type level int

func TestEnum(t *testing.T) {
	m := values.New(map[string]any{"role": "admin", "bad": "root", "level": "2"})
	parse := values.OneOf(roleAdmin, roleMember)

	t.Run("nullable", func(t *testing.T) {
		assert.Equal(t, roleAdmin, *values.NullableEnum(m, "role", parse))
		assert.Nil(t, values.NullableEnum(m, "bad", parse))
		assert.Nil(t, values.NullableEnum(m, "absent", parse))
	})

	t.Run("default", func(t *testing.T) {
		assert.Equal(t, roleMember, values.Enum(m, "bad", parse, roleMember))
	})

	t.Run("required", func(t *testing.T) {
		_, err := values.RequiredEnum(m, "bad", parse)
		assert.ErrorIs(t, err, values.ErrRequired)
	})

	t.Run("numeric enum with custom parser", func(t *testing.T) {
		parseLevel := func(raw any) (level, bool) {
			i, ok := values.ToInt(raw)
			if !ok || i < 1 || i > 3 {
				return 0, false
			}
			return level(i), true
		}
		assert.Equal(t, level(2), values.Enum(m, "level", parseLevel, 1))
	})
}
