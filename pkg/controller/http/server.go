package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/service/casestore"
	"github.com/cloudbridge-lab/minwon/pkg/service/checklist"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
	"github.com/cloudbridge-lab/minwon/pkg/service/offices"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
	"github.com/cloudbridge-lab/minwon/pkg/utils/errutil"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
	"github.com/cloudbridge-lab/minwon/pkg/utils/safe"
)

// Deps bundles the services the local gateway exposes.
type Deps struct {
	Guidance   *guidance.Service
	Resolver   *usecase.SequenceResolver
	Cases      *casestore.Store
	Checklists *checklist.Store
	Offices    *offices.Cache
	Backend    interfaces.Backend
}

type Server struct {
	router *chi.Mux
	deps   Deps
}

func New(deps Deps) *Server {
	r := chi.NewRouter()
	s := &Server{router: r, deps: deps}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/guidance", s.handleListGuidance)
		r.Route("/guidance/{serviceID}", func(r chi.Router) {
			r.Get("/", s.handleGuidanceDetail)
			r.Get("/sequence", s.handleSequence)
			r.Get("/links", s.handleRequiredLinks)
			r.Get("/offices", s.handleNearbyOffices)
		})

		r.Get("/petitions", s.handleSearchPetitions)
		r.Get("/members", s.handleListMembers)

		r.Route("/checklist/{serviceID}", func(r chi.Router) {
			r.Get("/", s.handleLocalChecklist)
			r.Post("/toggle", s.handleLocalChecklistToggle)
		})

		r.Route("/my-cases", func(r chi.Router) {
			r.Get("/", s.handleListCases)
			r.Post("/", s.handleStartCase)
			r.Post("/toggle", s.handleToggleDocument)
			r.Post("/complete", s.handleCompleteCase)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}
