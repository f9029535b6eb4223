package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
)

func TestCollectRequiredLinks(t *testing.T) {
	sequence := []model.SequenceRow{
		{
			Order: 1,
			Type:  "사전 준비",
			Title: "서류 준비",
			Links: []model.SequenceLink{
				{Label: "정부24", URL: "https://www.gov.kr"},
				{Label: "홈택스", URL: "https://www.hometax.go.kr"},
			},
		},
		{
			Order:   2,
			Type:    "온라인 신청",
			LinkURL: "https://apply.example.com",
		},
		{
			Order: 3,
			Type:  "심사",
			Links: []model.SequenceLink{
				{Label: "민원포털", URL: "https://www.gov.kr"},
			},
		},
	}
	documents := []model.DocumentRequirement{
		{ID: "doc-1", Name: "주민등록등본", DownloadURL: "https://www.gov.kr", DownloadLabel: "정부24 발급"},
		{ID: "doc-2", Name: "소득금액증명서", DownloadURL: "https://www.hometax.go.kr/issue", IssuingAuthority: "국세청"},
		{ID: "doc-3", Name: "통장 사본"},
	}

	entries := usecase.CollectRequiredLinks(sequence, documents)
	gt.Array(t, entries).Length(4).Required()

	t.Run("first occurrence label and context win", func(t *testing.T) {
		gt.Value(t, entries[0].Label).Equal("정부24")
		gt.Value(t, entries[0].Context).Equal("서류 준비")
	})

	t.Run("bare linkUrl gets the fallback label and type context", func(t *testing.T) {
		gt.Value(t, entries[2].Label).Equal("바로가기")
		gt.Value(t, entries[2].URL).Equal("https://apply.example.com")
		gt.Value(t, entries[2].Context).Equal("온라인 신청")
	})

	t.Run("document without download url is skipped", func(t *testing.T) {
		for _, e := range entries {
			gt.String(t, e.URL).NotEqual("")
		}
	})

	t.Run("document label falls back to issuing authority", func(t *testing.T) {
		gt.Value(t, entries[3].Label).Equal("국세청")
		gt.Value(t, entries[3].Context).Equal("소득금액증명서")
	})
}

func TestCollectRequiredLinksEmpty(t *testing.T) {
	entries := usecase.CollectRequiredLinks(nil, nil)
	gt.Array(t, entries).Length(0)
}
