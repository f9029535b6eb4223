package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
)

func TestStepModeLabel(t *testing.T) {
	t.Run("known modes map to fixed labels", func(t *testing.T) {
		gt.Value(t, types.StepModeOnline.Label("대체")).Equal("온라인 신청")
		gt.Value(t, types.StepModeOffline.Label("대체")).Equal("방문 신청")
		gt.Value(t, types.StepModeHybrid.Label("대체")).Equal("온라인/방문")
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		gt.Value(t, types.StepMode("online").Label("대체")).Equal("온라인 신청")
	})

	t.Run("unknown non-empty mode is preserved verbatim", func(t *testing.T) {
		gt.Value(t, types.StepMode("EMAIL").Label("대체")).Equal("EMAIL")
	})

	t.Run("empty mode falls back", func(t *testing.T) {
		gt.Value(t, types.StepMode("").Label("대체")).Equal("대체")
		gt.Value(t, types.StepMode("").Label("")).Equal("진행")
	})
}

func TestCaseStatusNormalize(t *testing.T) {
	gt.Value(t, types.CaseStatusCompleted.Normalize()).Equal(types.CaseStatusCompleted)
	gt.Value(t, types.CaseStatusInProgress.Normalize()).Equal(types.CaseStatusInProgress)
	gt.Value(t, types.CaseStatus("").Normalize()).Equal(types.CaseStatusInProgress)
	gt.Value(t, types.CaseStatus("pending").Normalize()).Equal(types.CaseStatusInProgress)
}
