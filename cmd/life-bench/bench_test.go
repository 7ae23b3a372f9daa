package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/conway/life"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workers": 2, "generations": 50, "visuals": true}`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, uint64(50), cfg.Generations)
	assert.True(t, cfg.Visuals)
	assert.Equal(t, DefaultConfig().Soup, cfg.Soup)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadConfig(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"workers":`), 0o644))
	_, err = loadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"workers": 0}`), 0o644))
	_, err = loadConfig(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be positive")
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	base.Pattern = "a.cells"

	merged := base.merge(Config{Workers: 8, Visuals: true})
	assert.Equal(t, 8, merged.Workers)
	assert.Equal(t, "a.cells", merged.Pattern)
	assert.Equal(t, base.Duration, merged.Duration)
	assert.True(t, merged.Visuals)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{4, 1, 3, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(4), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, time.Duration(3), s.P99)
	assert.Equal(t, []time.Duration{4, 1, 3, 2}, s.Samples)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Max)
}

func TestRunWorkerMatchesStep(t *testing.T) {
	for _, visuals := range []bool{false, true} {
		cfg := Config{Generations: 4, Workers: 1, Visuals: visuals}
		result := runWorker(context.Background(), 0, life.StartPattern(), cfg)

		want := life.StartPattern()
		for range 4 {
			want = life.Step(want)
		}
		assert.Equal(t, uint64(4), result.Generations)
		assert.Equal(t, want.Len(), result.Population)
		assert.Len(t, result.UpdateTime.Samples, 4)
		// A glider keeps its population, so every birth is paid for by a death.
		assert.Equal(t, result.Born, result.Died)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := runWorker(ctx, 3, life.StartPattern(), Config{Workers: 1, Duration: time.Second})
	assert.Equal(t, 3, result.ID)
	assert.Zero(t, result.Generations)
	assert.Equal(t, 5, result.Population)
}

func TestRunFansOutWorkers(t *testing.T) {
	cfg := Config{Workers: 3, Generations: 10, Soup: 16, Seed: 9}
	results, err := run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.ID)
		assert.Equal(t, uint64(10), r.Generations)
	}

	cfg.Pattern = filepath.Join(t.TempDir(), "missing.cells")
	_, err = run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open pattern")
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Config:    Config{Workers: 1, Generations: 10, NoColor: true},
		TotalTime: 2 * time.Second,
		Workers: []WorkerResult{
			{ID: 0, Generations: 10, InitialPopulation: 5, Population: 5, Born: 20, Died: 20},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "## Configuration")
	assert.Contains(t, out, "Limit:       10 generations")
	assert.Contains(t, out, "Start:       glider")
	assert.Contains(t, out, "worker 0: 10 generations, population 5 -> 5, born 20, died 20")
	assert.Contains(t, out, "Generations/sec:   5.0")
	assert.NotContains(t, out, "\x1b[")
}
