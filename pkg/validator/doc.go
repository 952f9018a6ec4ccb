// Package validator evaluates rule sets built with package input against raw
// request data.
//
// An Engine walks every declared key in order, applies its rules and reports
// all failures as ValidationErrors. Format checks (email, url, uuid, ip,
// datetime layouts, size comparisons and similar) are delegated to
// github.com/go-playground/validator/v10; presence rules, cross-field rules,
// file inspection and table lookups are resolved here because they need the
// whole data map or external collaborators.
//
// # Architecture
//
// Rules are dispatched by name. Implicit rules (required*, present, filled,
// missing*, prohibited*, accepted*, declined*) run even when the key is
// absent; all other rules are skipped for absent keys and blank strings.
// A failing implicit rule stops the remaining rules of that key. A key
// carrying "nullable" skips its non-implicit rules when the value is nil.
//
// Rule objects from package input (In, NotIn, Exists, Unique) are evaluated
// from their fields. Any other rule object implementing Checker is called
// directly. Unknown rule names fail with ErrUnsupportedRule.
//
// # Usage
//
//	engine := validator.New(
//		validator.WithTableChecker(pg.NewTableChecker(pool)),
//	)
//	set := input.Collect(loc,
//		input.Field("email").Required().Email().Unique("users", ""),
//		input.Field("age").Nullable().Integer().Between(18, 120),
//	)
//	validated, err := engine.Validate(ctx, data, set, loc)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.Get("email") lists the messages for email
//	}
//
// # Messages
//
// A failure message is picked in this order: the custom message registered
// for "{key}.{rule}", the translation of "validation.{rule}" (size rules use
// "validation.{rule}.{numeric|file|array|string}"), then the built-in English
// template. Placeholders such as :attribute, :min, :max, :other and :values are
// replaced in every case.
//
// # Error Handling
//
// Validate returns ValidationErrors (matching ErrValidationFailed) for user
// input problems. Misconfiguration and collaborator failures, such as an
// unknown rule, an invalid regular expression or a database error from the
// TableChecker, are returned as ordinary errors and should be treated as
// server errors.
package validator
