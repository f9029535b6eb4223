package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
	"github.com/cloudbridge-lab/minwon/pkg/utils/errutil"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
)

func (s *Server) handleListGuidance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.deps.Guidance.Details())
}

func (s *Server) handleGuidanceDetail(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))
	detail, ok := s.deps.Guidance.Detail(serviceID)
	if !ok {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("guidance not found", goerr.V("serviceID", serviceID)),
			http.StatusNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, detail)
}

// handleSequence returns the merged procedural sequence for a service. The
// backend petition enriches curated rows with links; when the backend cannot
// serve one, the bundled petition stands in, and with neither the curated
// rows are returned as-is.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))

	petition, err := s.deps.Backend.GetPetition(r.Context(), serviceID)
	if err != nil {
		logging.From(r.Context()).Warn("petition fetch failed, using bundled data",
			"serviceID", serviceID, "error", err)
		petition = s.deps.Guidance.FallbackPetition(serviceID)
	}

	rows := s.deps.Resolver.Resolve(serviceID, petition)
	writeJSON(w, r, http.StatusOK, rows)
}

func (s *Server) handleRequiredLinks(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))

	petition, err := s.deps.Backend.GetPetition(r.Context(), serviceID)
	if err != nil {
		petition = s.deps.Guidance.FallbackPetition(serviceID)
	}
	rows := s.deps.Resolver.Resolve(serviceID, petition)

	var documents []model.DocumentRequirement
	if detail, ok := s.deps.Guidance.Detail(serviceID); ok {
		documents = detail.Documents
	}

	writeJSON(w, r, http.StatusOK, usecase.CollectRequiredLinks(rows, documents))
}

func (s *Server) handleNearbyOffices(w http.ResponseWriter, r *http.Request) {
	serviceID := types.ServiceID(chi.URLParam(r, "serviceID"))

	lat := queryFloat(r, "lat", usecase.DefaultLatitude)
	lng := queryFloat(r, "lng", usecase.DefaultLongitude)
	radius := queryFloat(r, "radius", usecase.DefaultRadiusKm)

	offices, err := s.deps.Offices.List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
		return
	}

	filter := s.deps.Guidance.NearbyFilterFor(serviceID)
	writeJSON(w, r, http.StatusOK, usecase.Locate(lat, lng, offices, radius, filter))
}

func (s *Server) handleSearchPetitions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	petitions, err := s.deps.Backend.SearchPetitions(r.Context(), query)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		logging.From(r.Context()).Warn("petition search failed, using bundled data",
			"query", query, "error", err)
		petitions = s.deps.Guidance.SearchFallback(query)
	}
	writeJSON(w, r, http.StatusOK, petitions)
}

// handleListMembers serves the member list backing the sign-in picker.
func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.deps.Backend.ListMembers(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, r, http.StatusOK, members)
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
