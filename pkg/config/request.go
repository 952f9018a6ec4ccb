package config

// Request configures the form request lifecycle and the parameter logger.
type Request struct {
	// UnauthorizedMessage is returned when authorization fails and the
	// request supplies no message of its own.
	UnauthorizedMessage string `env:"CUSTOM_REQUEST_UNAUTHORIZED_MESSAGE" envDefault:""`
	// UnauthorizedMessageKey is translated and preferred over UnauthorizedMessage.
	UnauthorizedMessageKey string `env:"CUSTOM_REQUEST_UNAUTHORIZED_MESSAGE_KEY" envDefault:""`

	LoggingParameters bool     `env:"CUSTOM_REQUEST_LOGGING_PARAMETERS" envDefault:"false"`
	LoggingDirectly   string   `env:"CUSTOM_REQUEST_LOGGING_DIRECTLY" envDefault:"request"`
	LogFormat         string   `env:"CUSTOM_REQUEST_LOG_FORMAT" envDefault:"%message%"`
	MaskingText       string   `env:"CUSTOM_REQUEST_MASKING_TEXT" envDefault:"********"`
	MaskingParameters []string `env:"CUSTOM_REQUEST_MASKING_PARAMETERS" envSeparator:"," envDefault:"password,password_confirmation,current_password,new_password,new_password_confirmation"`

	// AddParameters names the context fields added to logged parameters:
	// url, method, ip, user_agent, datetime, request_id.
	AddParameters []string `env:"CUSTOM_REQUEST_ADD_PARAMETERS" envSeparator:","`

	PageItemLimit int `env:"CUSTOM_REQUEST_PAGE_ITEM_LIMIT" envDefault:"10"`
}

// DefaultRequest returns the defaults declared on Request.
func DefaultRequest() Request {
	return Request{
		LoggingDirectly:   "request",
		LogFormat:         "%message%",
		MaskingText:       "********",
		MaskingParameters: []string{"password", "password_confirmation", "current_password", "new_password", "new_password_confirmation"},
		PageItemLimit:     10,
	}
}
