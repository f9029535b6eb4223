package interfaces

import (
	"context"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

// Backend is the remote civil-petition service this application consumes.
// The HTTP implementation talks to the real backend; the in-memory
// implementation backs offline mode and tests.
type Backend interface {
	GetPetition(ctx context.Context, id types.ServiceID) (*model.CivilPetition, error)
	SearchPetitions(ctx context.Context, query string) ([]*model.CivilPetition, error)

	ListCases(ctx context.Context, memberID types.MemberID) ([]model.CaseRecord, error)
	UpsertCase(ctx context.Context, memberID types.MemberID, input CaseUpsert) (*model.CaseRecord, error)

	ListOffices(ctx context.Context) ([]*model.Office, error)
	NearbyOffices(ctx context.Context, lat, lng, radiusKm float64) ([]*model.Office, error)

	ListMembers(ctx context.Context) ([]*model.Member, error)
}

// CaseUpsert is the payload of the create-or-update case operation. A zero
// Status leaves the stored status untouched; a nil Checklist leaves the
// stored checklist untouched.
type CaseUpsert struct {
	ServiceID types.ServiceID
	Status    types.CaseStatus
	Checklist []string
}
