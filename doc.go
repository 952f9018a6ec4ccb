// Package formrequest declares, validates and binds HTTP request input.
//
// A form request is a type implementing Request: Inputs declares the fields
// with the fluent builder from pkg/input, and Bind reads the validated values
// through the typed getters of pkg/values. Optional interfaces add hooks:
//
//	type CreateUserRequest struct {
//		formrequest.Base
//
//		Name string
//		Age  *int
//	}
//
//	func (r *CreateUserRequest) Inputs() []*input.Input {
//		return []*input.Input{
//			input.Field("name").Required().IsString().Max(255),
//			input.Field("age").Nullable().Integer(),
//		}
//	}
//
//	func (r *CreateUserRequest) Bind(data *values.Map) error {
//		r.Name = data.String("name", "")
//		r.Age = data.NullableInt("age")
//		return nil
//	}
//
//	func (r *CreateUserRequest) Authorize(ctx context.Context, p *formrequest.Payload) bool {
//		return auth.UserFromContext(ctx) != nil
//	}
//
// Lifecycle runs the phases in order:
//
//  1. parameter logging (pkg/paramlog, when enabled)
//  2. PreValidator
//  3. Authorizer; a false result returns *AuthorizationError
//  4. Inputs
//  5. merge of AdditionalDataRequester keys from the route collaborator
//  6. validation (pkg/validator); failures return ValidationError
//  7. PostValidator
//  8. PreBinder
//  9. Bind
//  10. PostBinder
//
// Embedding Pagination declares the page field, merges it from the route
// and exposes Page, Offset, Start and End after binding. A request
// implementing StartPositioner shifts Start and End by its offset.
//
// Configuration is passed explicitly as config.Request; nothing is read
// from the environment while a request is handled. The handler package
// wraps a Lifecycle into an http.HandlerFunc.
package formrequest
