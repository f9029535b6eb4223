package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
	"github.com/cloudbridge-lab/minwon/pkg/service/casestore"
	"github.com/cloudbridge-lab/minwon/pkg/utils/errutil"
)

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	memberID := types.MemberID(r.URL.Query().Get("memberId"))

	entries, err := s.deps.Cases.Refresh(r.Context(), memberID)
	if err != nil {
		s.handleCaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entries)
}

type startCaseRequest struct {
	MemberID  string `json:"memberId"`
	ServiceID string `json:"serviceId"`
}

func (s *Server) handleStartCase(w http.ResponseWriter, r *http.Request) {
	var req startCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	entry, err := s.deps.Cases.StartCase(r.Context(),
		types.MemberID(req.MemberID), types.ServiceID(req.ServiceID))
	if err != nil {
		s.handleCaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}

type toggleDocumentRequest struct {
	MemberID   string `json:"memberId"`
	ServiceID  string `json:"serviceId"`
	DocumentID string `json:"documentId"`
}

func (s *Server) handleToggleDocument(w http.ResponseWriter, r *http.Request) {
	var req toggleDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	serviceID := types.ServiceID(req.ServiceID)
	var required []string
	if detail, ok := s.deps.Guidance.Detail(serviceID); ok {
		required = detail.RequiredDocumentIDs()
	}

	entry, err := s.deps.Cases.ToggleDocument(r.Context(),
		types.MemberID(req.MemberID), serviceID, req.DocumentID, required)
	if err != nil {
		s.handleCaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}

type completeCaseRequest struct {
	MemberID  string `json:"memberId"`
	ServiceID string `json:"serviceId"`
}

func (s *Server) handleCompleteCase(w http.ResponseWriter, r *http.Request) {
	var req completeCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	entry, err := s.deps.Cases.Complete(r.Context(),
		types.MemberID(req.MemberID), types.ServiceID(req.ServiceID))
	if err != nil {
		s.handleCaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, entry)
}

func (s *Server) handleCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, casestore.ErrSignInRequired):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusUnauthorized)
	case errors.Is(err, backend.ErrNotFound):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
	}
}
