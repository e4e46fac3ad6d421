package http

import (
	"net/http"
	"strings"

	"langshare/internal/languages"

	"github.com/go-chi/chi/v5"
)

const paramUser = "user"

type userLanguagesHandler struct {
	languageService languages.LanguageService
}

func NewUserLanguagesHandler(languageService languages.LanguageService) AppHttpHandler {
	return &userLanguagesHandler{
		languageService: languageService,
	}
}

// Handle processes GET /languages/{user}/all requests.
func (h *userLanguagesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	login := strings.TrimSpace(chi.URLParam(r, paramUser))

	report, err := h.languageService.UserLanguages(r.Context(), login)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, report)
	return nil
}
