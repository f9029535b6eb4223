package checklist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/checklist"
)

func TestToggleRoundTrip(t *testing.T) {
	store, err := checklist.New(t.TempDir())
	gt.NoError(t, err).Required()

	items, err := store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()
	gt.Value(t, items).Equal([]string{"doc-a"})

	items, err = store.Toggle("CP_001", "doc-b")
	gt.NoError(t, err).Required()
	gt.Value(t, items).Equal([]string{"doc-a", "doc-b"})

	items, err = store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()
	gt.Value(t, items).Equal([]string{"doc-b"})

	gt.Value(t, store.Load("CP_001")).Equal([]string{"doc-b"})
}

func TestLoadSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := checklist.New(dir)
	gt.NoError(t, err).Required()
	_, err = store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()

	reopened, err := checklist.New(dir)
	gt.NoError(t, err).Required()
	gt.Value(t, reopened.Load("CP_001")).Equal([]string{"doc-a"})
}

func TestMalformedFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "document-checklist-CP_001.json"), []byte(`{broken`), 0o644)
	gt.NoError(t, err).Required()

	store, err := checklist.New(dir)
	gt.NoError(t, err).Required()
	gt.Array(t, store.Load("CP_001")).Length(0)

	items, err := store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()
	gt.Value(t, items).Equal([]string{"doc-a"})
}

func TestClearAndComplete(t *testing.T) {
	store, err := checklist.New(t.TempDir())
	gt.NoError(t, err).Required()

	_, err = store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()
	_, err = store.Toggle("CP_001", "doc-b")
	gt.NoError(t, err).Required()

	gt.Bool(t, store.IsComplete("CP_001", []string{"doc-a", "doc-b"})).True()
	gt.Bool(t, store.IsComplete("CP_001", []string{"doc-a", "doc-c"})).False()

	gt.NoError(t, store.Clear("CP_001"))
	gt.Array(t, store.Load("CP_001")).Length(0)
	gt.NoError(t, store.Clear("CP_001"))
}

func TestSubscribe(t *testing.T) {
	store, err := checklist.New(t.TempDir())
	gt.NoError(t, err).Required()

	var changed []types.ServiceID
	unsubscribe := store.Subscribe(func(id types.ServiceID) {
		changed = append(changed, id)
	})

	_, err = store.Toggle("CP_001", "doc-a")
	gt.NoError(t, err).Required()
	gt.Value(t, changed).Equal([]types.ServiceID{"CP_001"})

	unsubscribe()
	_, err = store.Toggle("CP_002", "doc-a")
	gt.NoError(t, err).Required()
	gt.Array(t, changed).Length(1)
}
