package validator

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formrequest/pkg/values"
)

var (
	alphaDashRegex      = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)
	alphaDashASCIIRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// registerValidations adds the tags playground lacks.
func registerValidations(v *playground.Validate) {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(v.RegisterValidation("alpha_dash", func(fl playground.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && alphaDashRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("alpha_dash_ascii", func(fl playground.FieldLevel) bool {
		return fl.Field().Kind() == reflect.String && alphaDashASCIIRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("multiple_of", func(fl playground.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Float64 {
			return false
		}
		step, err := strconv.ParseFloat(fl.Param(), 64)
		if err != nil || step == 0 {
			return false
		}
		ratio := fl.Field().Float() / step
		return math.Abs(ratio-math.Round(ratio)) < 1e-9
	}))
}

// is runs a playground tag against value.
func (e *Engine) is(ctx context.Context, value any, tag string) bool {
	return e.validate.VarCtx(ctx, value, tag) == nil
}

// escapeParam protects separators inside a playground tag parameter.
func escapeParam(s string) string {
	return strings.NewReplacer(",", "0x2C", "|", "0x7C").Replace(s)
}

// stringValue returns strings and numbers in string form.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool, nil:
		return "", false
	}
	if _, ok := values.ToFloat(v); ok {
		return fmt.Sprint(v), true
	}
	return "", false
}
