package paramlog

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DefaultFormat renders the parameters alone.
const DefaultFormat = "%message%"

// FormatLine renders format, replacing %message% with the JSON encoding of
// params, %channel% with channel and %datetime% with now.
func FormatLine(format string, params map[string]any, channel string, now time.Time) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	message, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return strings.NewReplacer(
		"%message%", string(message),
		"%channel%", channel,
		"%datetime%", now.Format(DatetimeLayout),
	).Replace(format), nil
}
