package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/cli/config"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func loadOverride(t *testing.T, path string) (*guidance.Override, error) {
	t.Helper()
	var cfg config.Dataset
	cmd := testCommand(cfg.Flags())
	gt.NoError(t, cmd.Run(t.Context(), []string{"test", "--dataset", path})).Required()
	return cfg.Configure()
}

func TestDatasetConfigure(t *testing.T) {
	path := writeDataset(t, `
[sequences]
[[sequences.CP_900]]
id = "row-1"
order = 1
type = "신청"
title = "온라인 접수"
content = "포털에서 신청서를 제출합니다."
link_url = "https://www.gov.kr"

  [[sequences.CP_900.links]]
  label = "정부24"
  url = "https://www.gov.kr"

[filters]
[filters.CP_900]
categories = ["civil"]
keywords = ["구청"]
`)

	ov, err := loadOverride(t, path)
	gt.NoError(t, err).Required()
	gt.Value(t, ov).NotNil()

	rows := ov.Sequences["CP_900"]
	gt.Array(t, rows).Length(1).Required()
	gt.Value(t, rows[0].LinkURL).Equal("https://www.gov.kr")
	gt.Array(t, rows[0].Links).Length(1)

	svc := guidance.New(guidance.WithOverride(ov))
	gt.Array(t, svc.SequenceRows("CP_900")).Length(1)
}

func TestDatasetConfigureInvalid(t *testing.T) {
	t.Run("non-positive order", func(t *testing.T) {
		path := writeDataset(t, `
[sequences]
[[sequences.CP_900]]
id = "row-1"
order = 0
type = "신청"
`)
		_, err := loadOverride(t, path)
		gt.Error(t, err)
	})

	t.Run("unparseable toml", func(t *testing.T) {
		path := writeDataset(t, `[broken`)
		_, err := loadOverride(t, path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadOverride(t, filepath.Join(t.TempDir(), "none.toml"))
		gt.Error(t, err)
	})
}

func TestDatasetDefault(t *testing.T) {
	var cfg config.Dataset
	cmd := testCommand(cfg.Flags())
	gt.NoError(t, cmd.Run(t.Context(), []string{"test"})).Required()

	ov, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Value(t, ov).Nil()
}
