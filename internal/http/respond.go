package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/auth"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/content"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/services"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses: rejected input is 422,
// oversized uploads 413, bad credentials 401, a missing script 404 and a
// corrupt store record 500. Everything else is a plain 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case isValidationError(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, content.ErrVideoTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, content.ErrScriptNotFound):
		status = http.StatusNotFound
	case store.IsDecodeError(err):
		slog.ErrorContext(r.Context(), "Stored record is corrupt", "error", err, "url", r.URL.Path)
	}

	if status == http.StatusInternalServerError && !store.IsDecodeError(err) {
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "url", r.URL.Path)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidAmount,
		core.ErrEmptyDescription,
		core.ErrInvalidKind,
		content.ErrEmptyTitle,
		content.ErrEmptyContent,
		content.ErrEmptyVideo,
		services.ErrEmptyBusinessType,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed JSON body"})
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
