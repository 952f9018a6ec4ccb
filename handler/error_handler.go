package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formrequest/pkg/logger"
	"github.com/dmitrymomot/formrequest/pkg/requestid"
)

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// NewErrorHandler renders errors with JSONError and logs them: client
// errors at warn level, everything else at error level. A nil log uses
// slog.Default().
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	log = logger.OrDefault(log)

	return func(ctx C, err error) {
		r := ctx.Request()
		detail, status := errorToDetail(err)

		level := slog.LevelError
		if isClientError(status) {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		response := JSONError(detail, WithJSONStatus(status))
		if renderErr := response.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
