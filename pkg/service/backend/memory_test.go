package backend_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
)

func testPetitions() []*model.CivilPetition {
	return []*model.CivilPetition{
		{InfoID: "CP_001", Name: "주택 자금 대출", Summary: "생애 최초 주택 구입"},
		{InfoID: "CP_002", Name: "청년 월세 지원", Summary: "월세 부담 완화"},
	}
}

func TestMemoryPetitions(t *testing.T) {
	ctx := context.Background()
	mem := backend.NewMemory(backend.WithPetitions(testPetitions()))

	t.Run("get by id", func(t *testing.T) {
		petition, err := mem.GetPetition(ctx, "CP_001")
		gt.NoError(t, err).Required()
		gt.Value(t, petition.Name).Equal("주택 자금 대출")
	})

	t.Run("unknown id yields ErrNotFound", func(t *testing.T) {
		_, err := mem.GetPetition(ctx, "CP_404")
		gt.Bool(t, errors.Is(err, backend.ErrNotFound)).True()
	})

	t.Run("search matches name and summary", func(t *testing.T) {
		results, err := mem.SearchPetitions(ctx, "월세")
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(1).Required()
		gt.Value(t, results[0].InfoID).Equal(types.ServiceID("CP_002"))
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		results, err := mem.SearchPetitions(ctx, "")
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(2)
	})
}

func TestMemoryUpsertCase(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mem := backend.NewMemory(backend.WithClock(func() time.Time { return fixed }))

	created, err := mem.UpsertCase(ctx, "2", interfaces.CaseUpsert{
		ServiceID: "CP_001",
		Status:    types.CaseStatusInProgress,
	})
	gt.NoError(t, err).Required()
	gt.String(t, created.CaseID).NotEqual("")
	gt.Value(t, created.Status).Equal("in-progress")
	gt.Value(t, created.StartedAt).Equal(fixed.Format(time.RFC3339))

	t.Run("same service updates the existing case", func(t *testing.T) {
		updated, err := mem.UpsertCase(ctx, "2", interfaces.CaseUpsert{
			ServiceID: "CP_001",
			Checklist: []string{"doc-a"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.CaseID).Equal(created.CaseID)
		gt.Value(t, updated.Checklist).Equal(`["doc-a"]`)
		gt.Value(t, updated.Status).Equal("in-progress")

		records, err := mem.ListCases(ctx, "2")
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(1)
	})

	t.Run("completion stamps completedAt", func(t *testing.T) {
		done, err := mem.UpsertCase(ctx, "2", interfaces.CaseUpsert{
			ServiceID: "CP_001",
			Status:    types.CaseStatusCompleted,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, done.CompletedAt).Equal(fixed.Format(time.RFC3339))
	})

	t.Run("cases are scoped per member", func(t *testing.T) {
		records, err := mem.ListCases(ctx, "3")
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(0)
	})
}

func TestMemoryOffices(t *testing.T) {
	ctx := context.Background()
	mem := backend.NewMemory()

	offices, err := mem.ListOffices(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, offices).Length(7)

	t.Run("nearby filters by radius", func(t *testing.T) {
		nearby, err := mem.NearbyOffices(ctx, 35.1595454, 126.8526012, 1)
		gt.NoError(t, err).Required()
		gt.Array(t, nearby).Length(1).Required()
		gt.Value(t, nearby[0].ID).Equal("gwangju-hall")
	})
}

func TestMemoryMembers(t *testing.T) {
	members, err := backend.NewMemory().ListMembers(context.Background())
	gt.NoError(t, err).Required()
	gt.Array(t, members).Length(3)
	gt.Value(t, members[0].Role).Equal("master")
}
