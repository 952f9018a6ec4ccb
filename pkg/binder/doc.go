// Package binder collects raw request parameters into a plain map.
//
// Collect merges the query string with the request body. JSON bodies are
// decoded with numbers preserved as json.Number; urlencoded and multipart
// forms are expanded from bracket notation ("user[name]", "tags[]") into
// nested maps and lists, and uploaded files appear as *multipart.FileHeader
// values with sanitized filenames. Body keys win over query keys.
//
//	data, err := binder.Collect(r)
//	if err != nil {
//		// errors.Is(err, binder.ErrUnsupportedMediaType) etc.
//	}
//
// Route exposes chi URL parameters, falling back to the query string, as the
// lookup used to inject out-of-body parameters before validation.
package binder
