package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"mce/internal/audit"
	"mce/internal/core"
)

func (s *Server) handleDisbursements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateDisbursement(w, r)
	case http.MethodGet:
		s.handleListDisbursements(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateContribution(w, r)
	case http.MethodGet:
		s.handleListContributions(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleCreateDisbursement(w http.ResponseWriter, r *http.Request) {
	var in core.DisbursementInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if problems := in.Validate(); len(problems) > 0 {
		slog.WarnContext(r.Context(), "Disbursement rejected",
			"problems", strings.Join(problems, "; "))
		writeValidationErrors(w, problems)
		return
	}

	saved, err := s.store.InsertDisbursement(r.Context(), in.Normalize())
	if err != nil {
		slog.ErrorContext(r.Context(), "Disbursement insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save disbursement")
		return
	}

	s.recordAudit(r, "disbursement", saved.ID, "create", saved)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleCreateContribution(w http.ResponseWriter, r *http.Request) {
	var in core.ContributionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if problems := in.Validate(); len(problems) > 0 {
		slog.WarnContext(r.Context(), "Contribution rejected",
			"problems", strings.Join(problems, "; "))
		writeValidationErrors(w, problems)
		return
	}

	saved, err := s.store.InsertContribution(r.Context(), in.Normalize())
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save contribution")
		return
	}

	s.recordAudit(r, "contribution", saved.ID, "create", saved)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListDisbursements(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRangeParams(w, r)
	if !ok {
		return
	}

	records, err := s.store.DisbursementsInRange(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Disbursement list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list disbursements")
		return
	}
	if records == nil {
		records = []core.Disbursement{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	start, end, ok := dateRangeParams(w, r)
	if !ok {
		return
	}

	records, err := s.store.ContributionsInRange(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list contributions")
		return
	}
	if records == nil {
		records = []core.Contribution{}
	}

	writeJSON(w, http.StatusOK, records)
}

// dateRangeParams reads the optional start/end query bounds. Missing
// bounds widen to the full record history.
func dateRangeParams(w http.ResponseWriter, r *http.Request) (start, end core.Date, ok bool) {
	start, end = "0000-01-01", "9999-12-31"

	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "start must be in YYYY-MM-DD format")
			return "", "", false
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "end must be in YYYY-MM-DD format")
			return "", "", false
		}
		end = parsed
	}

	return start, end, true
}

// recordAudit emits an audit event for the given entity. The snapshot is
// best-effort; a marshal failure still records the event itself.
func (s *Server) recordAudit(r *http.Request, entityType, entityID, action string, record any) {
	snapshot, err := json.Marshal(record)
	if err != nil {
		slog.ErrorContext(r.Context(), "Audit snapshot marshal failed",
			"error", err, "entity_type", entityType, "entity_id", entityID)
	}

	s.recorder.Record(r.Context(), audit.Entry{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		NewValue:   string(snapshot),
		Source:     "api",
	})
}
