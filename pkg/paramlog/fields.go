package paramlog

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/formrequest/pkg/clientip"
	"github.com/dmitrymomot/formrequest/pkg/requestid"
)

// Context fields that can be added to the logged parameters.
const (
	FieldURL       = "url"
	FieldMethod    = "method"
	FieldIP        = "ip"
	FieldUserAgent = "user_agent"
	FieldDatetime  = "datetime"
	FieldRequestID = "request_id"
)

// DatetimeLayout formats the datetime field and the %datetime% placeholder.
const DatetimeLayout = "2006-01-02 15:04:05"

type fieldFunc func(r *http.Request, now time.Time) string

var contextFields = map[string]fieldFunc{
	FieldURL: func(r *http.Request, _ time.Time) string {
		return fullURL(r)
	},
	FieldMethod: func(r *http.Request, _ time.Time) string {
		return r.Method
	},
	FieldIP: func(r *http.Request, _ time.Time) string {
		return clientip.Resolve(r)
	},
	FieldUserAgent: func(r *http.Request, _ time.Time) string {
		return r.UserAgent()
	},
	FieldDatetime: func(_ *http.Request, now time.Time) string {
		return now.Format(DatetimeLayout)
	},
	FieldRequestID: func(r *http.Request, _ time.Time) string {
		return requestid.FromContext(r.Context())
	},
}

// IsField reports whether name is a known context field.
func IsField(name string) bool {
	_, ok := contextFields[name]
	return ok
}

func fullURL(r *http.Request) string {
	if r.URL == nil {
		return ""
	}
	if r.URL.IsAbs() {
		return r.URL.String()
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u := *r.URL
	u.Scheme = scheme
	u.Host = r.Host
	return u.String()
}
