package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/utils/errutil"
)

// Local checklists back anonymous use: items checked before sign-in live in
// the state directory, not on the backend.

type localChecklistResponse struct {
	ServiceID string   `json:"serviceId"`
	Checked   []string `json:"checked"`
	Complete  bool     `json:"complete"`
}

func (s *Server) handleLocalChecklist(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))
	writeJSON(w, r, http.StatusOK, s.localChecklistResponse(serviceID))
}

type localToggleRequest struct {
	DocumentID string `json:"documentId"`
}

func (s *Server) handleLocalChecklistToggle(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))

	var req localToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.DocumentID == "" {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("documentId is required"), http.StatusBadRequest)
		return
	}

	if _, err := s.deps.Checklists.Toggle(serviceID, req.DocumentID); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, s.localChecklistResponse(serviceID))
}

func (s *Server) localChecklistResponse(serviceID types.ServiceID) localChecklistResponse {
	var required []string
	if detail, ok := s.deps.Guidance.Detail(serviceID); ok {
		required = detail.RequiredDocumentIDs()
	}
	return localChecklistResponse{
		ServiceID: serviceID.String(),
		Checked:   s.deps.Checklists.Load(serviceID),
		Complete:  s.deps.Checklists.IsComplete(serviceID, required),
	}
}
