package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/content"
)

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		videos, err := s.library.Videos(r.Context(), userID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if videos == nil {
			videos = []content.VideoContent{}
		}
		writeJSON(w, http.StatusOK, videos)
	case http.MethodPost:
		// Base64 inflates the payload by 4/3, plus JSON envelope room.
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes*2)

		var req content.VideoContent
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, r, content.ErrVideoTooLarge)
				return
			}
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed JSON body"})
			return
		}

		video, err := s.library.AddVideo(r.Context(), userID(r), req, time.Now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, video)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleScripts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		scripts, err := s.library.Scripts(r.Context(), userID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		if scripts == nil {
			scripts = []content.ScriptContent{}
		}
		writeJSON(w, http.StatusOK, scripts)
	case http.MethodPost:
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		script, err := s.library.AddScript(r.Context(), userID(r), req.Title, req.Content, time.Now())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, script)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

// handleScriptDownload serves one script as a plain-text attachment
// named after its title.
func (s *Server) handleScriptDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	scriptID := strings.TrimSpace(r.URL.Query().Get("id"))
	if scriptID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing id parameter"})
		return
	}

	script, err := s.library.Script(r.Context(), userID(r), scriptID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+content.ScriptFileName(script.Title)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(script.Content))
}
