package formrequest

import (
	"net/http"

	"github.com/dmitrymomot/formrequest/pkg/binder"
)

// FromHTTP collects the query and body of r into a Payload whose route
// collaborator reads chi URL parameters, then the query.
func FromHTTP(r *http.Request, opts ...binder.Option) (*Payload, error) {
	data, err := binder.Collect(r, opts...)
	if err != nil {
		return nil, err
	}
	return &Payload{HTTP: r, Data: data, Route: binder.Route(r)}, nil
}
