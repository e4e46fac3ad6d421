package http

import (
	"net/http"

	"langshare/internal/shared/svcerrors"
)

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

// Handle processes GET /healthz requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

// errorHandler always fails with the error built by newErr. It backs the router NotFound and
// MethodNotAllowed hooks so those responses share the error body format.
type errorHandler struct {
	newErr func() *svcerrors.ServiceError
}

func (h *errorHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return h.newErr()
}
