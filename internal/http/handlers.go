package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/auth"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
)

// userID resolves the acting user from the userId query parameter,
// falling back to the seeded creator account.
func userID(r *http.Request) int64 {
	if v := strings.TrimSpace(r.URL.Query().Get("userId")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
			return id
		}
	}
	return auth.Creator().ID
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := auth.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type transactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r, core.KindExpense)
	case http.MethodPost:
		var req transactionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		tx, err := s.finance.AddExpense(r.Context(), userID(r), req.Description, req.Amount)
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.invalidateSummary(userID(r))
		writeJSON(w, http.StatusCreated, tx)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleIncome(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r, core.KindIncome)
	case http.MethodPost:
		var req transactionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		tx, ach, err := s.finance.AddIncome(r.Context(), userID(r), req.Description, req.Amount)
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.invalidateSummary(userID(r))
		resp := struct {
			Transaction core.Transaction  `json:"transaction"`
			Achievement *core.Achievement `json:"achievement,omitempty"`
		}{Transaction: tx, Achievement: ach}
		writeJSON(w, http.StatusCreated, resp)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request, kind core.Kind) {
	txs, err := s.finance.Transactions(r.Context(), userID(r), kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

// goalValue accepts either a JSON number or a quoted string, keeping
// the raw text for the numeric-or-zero coercion downstream.
type goalValue string

func (g *goalValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "null" {
		s = ""
	}
	*g = goalValue(s)
	return nil
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		gs, err := s.finance.Goals(r.Context(), userID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, gs)
	case http.MethodPut:
		var req struct {
			Daily   goalValue `json:"daily"`
			Weekly  goalValue `json:"weekly"`
			Monthly goalValue `json:"monthly"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		gs, err := s.finance.SaveGoals(r.Context(), userID(r), string(req.Daily), string(req.Weekly), string(req.Monthly))
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.invalidateSummary(userID(r))
		writeJSON(w, http.StatusOK, gs)
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

func (s *Server) handleBusinessType(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		value, _, err := s.profile.BusinessType(r.Context(), userID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"businessType": value})
	case http.MethodPut:
		var req struct {
			BusinessType string `json:"businessType"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if err := s.profile.SetBusinessType(r.Context(), userID(r), req.BusinessType); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"businessType": strings.TrimSpace(req.BusinessType)})
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	id := userID(r)
	key := s.summaryCacheKey(id)
	if sum, found := s.summaryCache.Get(key); found {
		writeJSON(w, http.StatusOK, sum)
		return
	}

	sum, err := s.finance.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.summaryCache.Set(key, sum)
	writeJSON(w, http.StatusOK, sum)
}
