package guidance_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

func TestBundledDataset(t *testing.T) {
	svc := guidance.New()

	t.Run("curated sequence for CP_001 has six ordered rows", func(t *testing.T) {
		rows := svc.SequenceRows("CP_001")
		gt.Array(t, rows).Length(6).Required()
		for i, row := range rows {
			gt.Value(t, row.Order).Equal(i + 1)
			gt.String(t, row.ID).NotEqual("")
		}
	})

	t.Run("curated sequence for CP_002 has four rows", func(t *testing.T) {
		gt.Array(t, svc.SequenceRows("CP_002")).Length(4)
	})

	t.Run("unknown service has no curated sequence", func(t *testing.T) {
		gt.Array(t, svc.SequenceRows("CP_404")).Length(0)
	})

	t.Run("detail documents carry ids for the checklist", func(t *testing.T) {
		detail, ok := svc.Detail("first-home-loan")
		gt.Bool(t, ok).True()
		gt.Array(t, detail.RequiredDocumentIDs()).Length(6)
	})

	t.Run("details list is stable", func(t *testing.T) {
		details := svc.Details()
		gt.Array(t, details).Length(2).Required()
		gt.Value(t, details[0].ID).Equal(types.ServiceID("first-home-loan"))
		gt.Value(t, details[1].ID).Equal(types.ServiceID("gwangju-youth-rent"))
	})
}

func TestCaseMetadata(t *testing.T) {
	svc := guidance.New()

	t.Run("detail page wins", func(t *testing.T) {
		title, summary := svc.CaseMetadata("first-home-loan")
		gt.Value(t, title).Equal("내 생애 최초 주택 자금 대출")
		gt.String(t, summary).NotEqual("")
	})

	t.Run("bundled petition is the next fallback", func(t *testing.T) {
		title, _ := svc.CaseMetadata("CP_003")
		gt.Value(t, title).Equal("주민등록 등본 인터넷 발급")
	})

	t.Run("raw id is the last resort", func(t *testing.T) {
		title, summary := svc.CaseMetadata("CP_404")
		gt.Value(t, title).Equal("CP_404")
		gt.Value(t, summary).Equal("")
	})
}

func TestSearchFallback(t *testing.T) {
	svc := guidance.New()

	t.Run("matches name", func(t *testing.T) {
		results := svc.SearchFallback("월세")
		gt.Array(t, results).Length(1).Required()
		gt.Value(t, results[0].InfoID).Equal(types.ServiceID("CP_002"))
	})

	t.Run("empty query returns everything in id order", func(t *testing.T) {
		results := svc.SearchFallback("")
		gt.Array(t, results).Length(3).Required()
		gt.Value(t, results[0].InfoID).Equal(types.ServiceID("CP_001"))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		gt.Array(t, svc.SearchFallback("존재하지않는민원")).Length(0)
	})
}

func TestNearbyFilterFor(t *testing.T) {
	svc := guidance.New()

	dedicated := svc.NearbyFilterFor("first-home-loan")
	gt.Value(t, dedicated).NotNil()
	gt.Array(t, dedicated.Keywords).Length(4)

	fallback := svc.NearbyFilterFor("CP_404")
	gt.Value(t, fallback).NotNil()
	gt.Array(t, fallback.Categories).Length(3)
}

func TestOverride(t *testing.T) {
	rows := []model.SequenceRow{
		{ID: "x-1", Order: 1, Type: "신청", Title: "접수"},
	}
	ov := &guidance.Override{
		Sequences: map[string][]model.SequenceRow{"CP_001": rows},
		Filters: map[string]usecase.NearbyFilter{
			"CP_001": {Categories: []types.OfficeCategory{types.OfficeCategoryCivil}},
		},
	}
	gt.NoError(t, ov.Validate()).Required()

	svc := guidance.New(guidance.WithOverride(ov))
	gt.Array(t, svc.SequenceRows("CP_001")).Length(1)
	gt.Array(t, svc.NearbyFilterFor("CP_001").Categories).Length(1)

	t.Run("other services keep bundled data", func(t *testing.T) {
		gt.Array(t, svc.SequenceRows("CP_002")).Length(4)
	})
}

func TestOverrideValidate(t *testing.T) {
	t.Run("non-positive order rejected", func(t *testing.T) {
		ov := &guidance.Override{
			Sequences: map[string][]model.SequenceRow{
				"CP_001": {{ID: "x", Order: 0, Type: "신청"}},
			},
		}
		gt.Error(t, ov.Validate())
	})

	t.Run("empty row id rejected", func(t *testing.T) {
		ov := &guidance.Override{
			Sequences: map[string][]model.SequenceRow{
				"CP_001": {{Order: 1, Type: "신청"}},
			},
		}
		gt.Error(t, ov.Validate())
	})

	t.Run("unknown office category rejected", func(t *testing.T) {
		ov := &guidance.Override{
			Filters: map[string]usecase.NearbyFilter{
				"CP_001": {Categories: []types.OfficeCategory{"postal"}},
			},
		}
		gt.Error(t, ov.Validate())
	})
}
