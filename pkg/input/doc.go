// Package input provides the fluent rule builder used to declare request
// fields, and the aggregator that folds declared fields into the three maps a
// validator consumes: rules, messages and attribute labels.
//
// Every declared field is an *Input identified by a non-empty key. Rule methods
// append tokens in call order; the order is preserved all the way to the
// validator, which evaluates and reports rules in that order.
//
// # Usage
//
//	inputs := []*input.Input{
//	    input.Field("name").Required().IsString().Max(255, "name is too long"),
//	    input.Field("email").Required().Email().SetAttributeName("attributes.email"),
//	    input.Field("birthday").Nullable().AsDate(),
//	    input.Field("role").Required().In([]string{"admin", "member"}),
//	}
//
//	set := input.Collect(translator, inputs...)
//	// set.Rules["name"]       => [required string max:255]
//	// set.Messages["name.max"] => "name is too long"
//
// # Rule tokens
//
// A rule is either a Token ("required", "min:3", "between:1,10") or a rule
// object such as In, NotIn, Exists and Unique. Templated values are joined
// with commas in the order supplied.
//
// # Messages
//
// Each rule method accepts an optional trailing message. Messages are always
// registered under "{key}.{rule}"; registering the same rule twice keeps the
// last message.
//
// # Error Handling
//
// New returns ErrEmptyKeyName for an empty key. Field panics with the same
// error since an empty key in a static declaration is a programming defect.
package input
