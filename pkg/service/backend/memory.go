package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

// Memory is an in-process backend used for offline mode and tests. It
// mirrors the remote service's behavior, including the create-or-update
// semantics of case upserts.
type Memory struct {
	mu        sync.RWMutex
	petitions map[types.ServiceID]*model.CivilPetition
	offices   []*model.Office
	members   []*model.Member
	cases     map[types.MemberID][]model.CaseRecord
	now       func() time.Time
}

var _ interfaces.Backend = (*Memory)(nil)

type MemoryOption func(*Memory)

func WithOffices(offices []*model.Office) MemoryOption {
	return func(m *Memory) { m.offices = offices }
}

func WithPetitions(petitions []*model.CivilPetition) MemoryOption {
	return func(m *Memory) {
		m.petitions = map[types.ServiceID]*model.CivilPetition{}
		for _, p := range petitions {
			m.petitions[types.ServiceID(p.InfoID)] = p
		}
	}
}

func WithMembers(members []*model.Member) MemoryOption {
	return func(m *Memory) { m.members = members }
}

func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		petitions: map[types.ServiceID]*model.CivilPetition{},
		offices:   defaultOffices(),
		members:   defaultMembers(),
		cases:     map[types.MemberID][]model.CaseRecord{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) GetPetition(ctx context.Context, id types.ServiceID) (*model.CivilPetition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	petition, ok := m.petitions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return petition, nil
}

func (m *Memory) SearchPetitions(ctx context.Context, query string) ([]*model.CivilPetition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.TrimSpace(query)
	results := []*model.CivilPetition{}
	for _, petition := range m.petitions {
		if query == "" ||
			strings.Contains(petition.Name, query) ||
			strings.Contains(petition.Summary, query) {
			results = append(results, petition)
		}
	}
	return results, nil
}

func (m *Memory) ListCases(ctx context.Context, memberID types.MemberID) ([]model.CaseRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.cases[memberID]
	out := make([]model.CaseRecord, len(records))
	copy(out, records)
	return out, nil
}

func (m *Memory) UpsertCase(ctx context.Context, memberID types.MemberID, input interfaces.CaseUpsert) (*model.CaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.cases[memberID]
	for i := range records {
		if records[i].CPInfoID != input.ServiceID.String() {
			continue
		}
		applyUpsert(&records[i], input, m.now())
		out := records[i]
		return &out, nil
	}

	record := model.CaseRecord{
		CaseID:    uuid.NewString(),
		MemberID:  memberID.String(),
		CPInfoID:  input.ServiceID.String(),
		Status:    types.CaseStatusInProgress.String(),
		Checklist: model.EncodeChecklist(nil),
		StartedAt: m.now().Format(time.RFC3339),
	}
	applyUpsert(&record, input, m.now())
	m.cases[memberID] = append(records, record)
	out := record
	return &out, nil
}

func applyUpsert(record *model.CaseRecord, input interfaces.CaseUpsert, now time.Time) {
	if input.Status != "" {
		record.Status = input.Status.String()
		if input.Status == types.CaseStatusCompleted {
			record.CompletedAt = now.Format(time.RFC3339)
		} else {
			record.CompletedAt = ""
		}
	}
	if input.Checklist != nil {
		record.Checklist = model.EncodeChecklist(input.Checklist)
	}
}

func (m *Memory) ListOffices(ctx context.Context) ([]*model.Office, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Office, len(m.offices))
	copy(out, m.offices)
	return out, nil
}

func (m *Memory) NearbyOffices(ctx context.Context, lat, lng, radiusKm float64) ([]*model.Office, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*model.Office{}
	for _, office := range m.offices {
		if usecase.HaversineKm(lat, lng, office.Latitude, office.Longitude) <= radiusKm {
			out = append(out, office)
		}
	}
	return out, nil
}

func (m *Memory) ListMembers(ctx context.Context) ([]*model.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Member, len(m.members))
	copy(out, m.members)
	return out, nil
}
