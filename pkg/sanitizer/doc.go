// Package sanitizer cleans request data before it is validated.
//
// Transforms are plain func(string) string values combined with Apply and
// Compose. Data applies them to payload keys, which makes it a natural body
// for a request's PrepareForValidation hook:
//
//	func (r *signupRequest) PrepareForValidation(_ context.Context, p *formrequest.Payload) error {
//		sanitizer.Data(p.Data, sanitizer.Fields{
//			"email": sanitizer.NormalizeEmail,
//			"name":  sanitizer.Compose(sanitizer.StripControl, sanitizer.NormalizeWhitespace),
//			"phone": sanitizer.NormalizePhone,
//		})
//		return nil
//	}
package sanitizer
