// Package values exposes typed, read-only access to a validated key/value map.
//
// A Map is a snapshot: it copies the top level of the map it is built from and
// never changes afterwards. Keys may use dot notation to reach nested maps and
// slices ("user.address.city", "items.0.sku").
//
// Three getter families exist for every type:
//
//	m.NullableInt("age")        // *int, nil when absent or not numeric
//	m.Int("age", 18)            // int, the default when absent or not numeric
//	m.RequiredInt("age")        // (int, error), ErrRequired when absent or not numeric
//
// The defaulted getters are the primary API. Required getters exist for request
// types where a missing value after validation is a programming error.
//
// Enumerations are bound with a caller supplied parse function:
//
//	type Role string
//	parse := values.OneOf(Role("admin"), Role("member"))
//	role := values.Enum(m, "role", parse, Role("member"))
package values
