package http

import (
	"net/http"

	"langshare/internal/languages"
	"langshare/internal/shared/loggers"
	"langshare/internal/shared/metrics"
	"langshare/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(languageService languages.LanguageService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	userLanguagesHandler := NewUserLanguagesHandler(languageService)
	healthHandler := NewHealthHandler()

	router.Get("/languages/{"+paramUser+"}/all", errorHandlingAdapter(userLanguagesHandler))
	router.Get("/healthz", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.NotFound(errorHandlingAdapter(&errorHandler{newErr: svcerrors.NewRouteNotFoundError}))
	router.MethodNotAllowed(errorHandlingAdapter(&errorHandler{newErr: svcerrors.NewMethodNotAllowedError}))

	return router
}
