package http

import (
	"net/http"

	"langshare/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps http.ResponseWriter so middlewares can read what the handler wrote:
// the status code and the service error that produced an error body, if any.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

// ErrorCode returns the code of the recorded service error, or "" on success.
func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// Outcome returns the response status and error code. A handler that wrote nothing is
// served as 200 by net/http, so a zero status is reported as such.
func (w *appResponseWriter) Outcome() (int, string) {
	status := w.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, w.ErrorCode()
}
