package guidance

import (
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

// Service holds the curated guidance dataset: hand-authored detail pages,
// curated sequences, fallback petitions and per-service nearby filters.
// It satisfies usecase.SequenceSource and casestore.MetadataSource.
type Service struct {
	details       map[types.ServiceID]*model.ServiceGuidanceDetail
	sequences     map[types.ServiceID][]model.SequenceRow
	petitions     map[types.ServiceID]*model.CivilPetition
	filters       map[types.ServiceID]*usecase.NearbyFilter
	defaultFilter *usecase.NearbyFilter
}

type Option func(*Service)

// WithOverride layers an operator-supplied dataset on top of the bundled one.
func WithOverride(ov *Override) Option {
	return func(s *Service) {
		if ov == nil {
			return
		}
		for id, rows := range ov.Sequences {
			s.sequences[types.ServiceID(id)] = rows
		}
		for id, filter := range ov.Filters {
			f := filter
			s.filters[types.ServiceID(id)] = &f
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		details:       map[types.ServiceID]*model.ServiceGuidanceDetail{},
		sequences:     bundledSequences(),
		petitions:     map[types.ServiceID]*model.CivilPetition{},
		filters:       bundledFilters(),
		defaultFilter: defaultNearbyFilter(),
	}
	for _, detail := range bundledDetails() {
		s.details[detail.ID] = detail
	}
	for _, petition := range bundledPetitions() {
		s.petitions[types.ServiceID(petition.InfoID)] = petition
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SequenceRows returns the curated sequence for a service, or nil when no
// curation exists and the rows must be derived from petition steps.
func (s *Service) SequenceRows(serviceID types.ServiceID) []model.SequenceRow {
	return s.sequences[serviceID]
}

// Detail returns the hand-authored guidance page for a service.
func (s *Service) Detail(serviceID types.ServiceID) (*model.ServiceGuidanceDetail, bool) {
	detail, ok := s.details[serviceID]
	return detail, ok
}

// Details lists every guidance page in a stable order.
func (s *Service) Details() []*model.ServiceGuidanceDetail {
	details := make([]*model.ServiceGuidanceDetail, 0, len(s.details))
	for _, detail := range s.details {
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].ID < details[j].ID
	})
	return details
}

// FallbackPetition returns the bundled petition record used when the backend
// cannot serve one.
func (s *Service) FallbackPetition(serviceID types.ServiceID) *model.CivilPetition {
	return s.petitions[serviceID]
}

// Petitions lists every bundled petition in a stable order.
func (s *Service) Petitions() []*model.CivilPetition {
	ids := make([]types.ServiceID, 0, len(s.petitions))
	for id := range s.petitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	petitions := make([]*model.CivilPetition, len(ids))
	for i, id := range ids {
		petitions[i] = s.petitions[id]
	}
	return petitions
}

// SearchFallback runs a substring search over the bundled petitions. An empty
// query returns everything.
func (s *Service) SearchFallback(query string) []*model.CivilPetition {
	ids := make([]types.ServiceID, 0, len(s.petitions))
	for id := range s.petitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	query = strings.TrimSpace(query)
	results := make([]*model.CivilPetition, 0, len(ids))
	for _, id := range ids {
		petition := s.petitions[id]
		if query == "" ||
			strings.Contains(petition.Name, query) ||
			strings.Contains(petition.Summary, query) {
			results = append(results, petition)
		}
	}
	return results
}

// CaseMetadata resolves the display title and summary for a case. Curated
// detail pages win, then bundled petitions, then the raw service id.
func (s *Service) CaseMetadata(serviceID types.ServiceID) (title, summary string) {
	if detail, ok := s.details[serviceID]; ok {
		return detail.Title, detail.Summary
	}
	if petition, ok := s.petitions[serviceID]; ok {
		return petition.Name, petition.Summary
	}
	return serviceID.String(), ""
}

// NearbyFilterFor returns the office filter for a service, falling back to
// the shared default when the service has no dedicated one.
func (s *Service) NearbyFilterFor(serviceID types.ServiceID) *usecase.NearbyFilter {
	if filter, ok := s.filters[serviceID]; ok {
		return filter
	}
	return s.defaultFilter
}

// Override is an operator-supplied dataset layered over the bundled one,
// loaded from a TOML file.
type Override struct {
	Sequences map[string][]model.SequenceRow  `toml:"sequences"`
	Filters   map[string]usecase.NearbyFilter `toml:"filters"`
}

func (x *Override) Validate() error {
	for id, rows := range x.Sequences {
		if id == "" {
			return goerr.New("sequence override has empty service id")
		}
		for i, row := range rows {
			if row.ID == "" {
				return goerr.New("sequence row has empty id",
					goerr.V("service", id), goerr.V("index", i))
			}
			if row.Order <= 0 {
				return goerr.New("sequence row has non-positive order",
					goerr.V("service", id), goerr.V("row", row.ID))
			}
		}
	}
	for id, filter := range x.Filters {
		if id == "" {
			return goerr.New("filter override has empty service id")
		}
		for _, category := range filter.Categories {
			if !category.IsValid() {
				return goerr.New("filter has unknown office category",
					goerr.V("service", id), goerr.V("category", category))
			}
		}
	}
	return nil
}
