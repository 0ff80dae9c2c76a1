package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radmarkers-core/engine"
	"radmarkers-core/registry"
	"radmarkers-core/tags"
)

func setup(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".tags.tsv"), []byte(data), 0o644))
	}
	return dir
}

func individuals(names ...string) []tags.Individual {
	out := make([]tags.Individual, len(names))
	for i, n := range names {
		out[i] = tags.Individual{Index: i, Name: n}
	}
	return out
}

func TestRun_ScenarioMergesAcrossIndividuals(t *testing.T) {
	dir := setup(t, map[string]string{
		"John": "AAAA IIII 10 5\n\n",
		"Paul": "AAAA IIII 8 4\n\n",
	})
	tg, cs := registry.NewTags(), registry.NewClusters()
	eng := engine.New(engine.Config{}, tg, cs)
	cfg := Config{Dir: dir, Suffix: ".tags.tsv", Filter: tags.NewFilter(0, tags.Reads)}

	res, err := Run(context.Background(), cfg, individuals("John", "Paul"), eng, quietLog())
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Len())
	assert.Len(t, tg.Get("AAAA").Obs, 2)
	assert.Equal(t, 2, res.Engine.LocalClusters)
	require.Len(t, res.Individuals, 2)
	assert.Equal(t, "Paul", res.Individuals[1].Name)
}

func TestRun_MissingFileFailsBeforeProcessing(t *testing.T) {
	dir := setup(t, map[string]string{"A": "AAAA IIII 1 1\n"})
	f := &fakeEng{}
	cfg := Config{Dir: dir, Suffix: ".tags.tsv", Filter: tags.NewFilter(0, tags.Reads)}

	_, err := Run(context.Background(), cfg, individuals("A", "Missing"), f, quietLog())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, f.calls, "nothing is clustered when any tag file is unreadable")
}

func TestRun_MalformedRecord(t *testing.T) {
	dir := setup(t, map[string]string{"A": "AAAA IIII ten 1\n"})
	cfg := Config{Dir: dir, Suffix: ".tags.tsv", Filter: tags.NewFilter(0, tags.Reads)}
	_, err := Run(context.Background(), cfg, individuals("A"), &fakeEng{}, quietLog())
	assert.ErrorIs(t, err, tags.ErrMalformedRecord)
}

func TestRun_Canceled(t *testing.T) {
	dir := setup(t, map[string]string{"A": "AAAA IIII 1 1\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeEng{}
	cfg := Config{Dir: dir, Suffix: ".tags.tsv", Filter: tags.NewFilter(0, tags.Reads)}
	_, err := Run(ctx, cfg, individuals("A"), f, quietLog())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.calls)
}

func TestConfig_TagPath(t *testing.T) {
	c := Config{Dir: "data", Suffix: ".tags.tsv"}
	assert.Equal(t, filepath.Join("data", "John.tags.tsv"), c.TagPath(tags.Individual{Name: "John"}))
}
