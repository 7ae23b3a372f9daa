package life_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/plus3/conway/life"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func loadArchive(t *testing.T, name string) map[string][]byte {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = f.Data
	}
	return files
}

func parseCells(t *testing.T, data []byte) life.CellSet {
	t.Helper()
	cells, err := life.ParseCoordinates(bytes.NewReader(data))
	require.NoError(t, err)
	return cells
}

func TestStepGolden(t *testing.T) {
	for _, name := range []string{"glider.txtar", "blinker.txtar", "block.txtar", "lonely.txtar"} {
		t.Run(name, func(t *testing.T) {
			files := loadArchive(t, name)
			cur := parseCells(t, files["start"])

			for _, gen := range []string{"gen1", "gen2"} {
				want := parseCells(t, files[gen])
				cur = life.Step(cur)
				assert.Equal(t, want.Sorted(), cur.Sorted(), gen)
			}
		})
	}
}

func TestStepStartPattern(t *testing.T) {
	next := life.Step(life.StartPattern())

	want := life.NewCellSet(life.C(1, 0), life.C(2, 0), life.C(2, 1), life.C(0, 1), life.C(1, -1))
	assert.True(t, want.Equal(next), "got %v", next.Sorted())
}

func TestStepDoesNotModifyInput(t *testing.T) {
	cur := life.StartPattern()
	before := cur.Clone()

	life.Step(cur)

	assert.True(t, before.Equal(cur))
}

func TestStepEmpty(t *testing.T) {
	assert.Equal(t, 0, life.Step(life.CellSet{}).Len())
	assert.Equal(t, 0, life.Step(nil).Len())
}

func TestStepRules(t *testing.T) {
	t.Run("isolated cell dies", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(7, -3)))
		assert.Equal(t, 0, next.Len())
	})

	t.Run("one neighbor dies", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(0, 0), life.C(1, 0)))
		assert.False(t, next.Contains(life.C(0, 0)))
		assert.False(t, next.Contains(life.C(1, 0)))
	})

	t.Run("dead cell with three neighbors is born", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(-1, -1), life.C(1, -1), life.C(0, 1)))
		assert.True(t, next.Contains(life.C(0, 0)))
	})

	t.Run("live cell with three neighbors survives", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(0, 0), life.C(-1, -1), life.C(1, -1), life.C(0, 1)))
		assert.True(t, next.Contains(life.C(0, 0)))
	})

	t.Run("live cell with two neighbors survives", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(0, 0), life.C(-1, 0), life.C(1, 0)))
		assert.True(t, next.Contains(life.C(0, 0)))
	})

	t.Run("dead cell with two neighbors stays dead", func(t *testing.T) {
		next := life.Step(life.NewCellSet(life.C(-1, 0), life.C(1, 0)))
		assert.False(t, next.Contains(life.C(0, 0)))
	})

	t.Run("live cell with four or more neighbors dies", func(t *testing.T) {
		for n := 4; n <= 8; n++ {
			cells := life.NewCellSet(life.C(0, 0))
			neighbors := life.C(0, 0).Neighbors()
			for _, c := range neighbors[:n] {
				cells.Add(c)
			}
			next := life.Step(cells)
			assert.False(t, next.Contains(life.C(0, 0)), "neighbors=%d", n)
		}
	})
}

func TestNeighborsDistinct(t *testing.T) {
	c := life.C(3, -2)
	seen := life.NewCellSet(c)
	for _, n := range c.Neighbors() {
		assert.False(t, seen.Contains(n), "duplicate %v", n)
		seen.Add(n)
		assert.LessOrEqual(t, abs(n.X-c.X), int32(1))
		assert.LessOrEqual(t, abs(n.Y-c.Y), int32(1))
	}
	assert.Equal(t, 9, seen.Len())
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestToggleRoundTrip(t *testing.T) {
	cells := life.StartPattern()
	before := cells.Clone()
	c := life.C(10, 10)

	assert.True(t, cells.Toggle(c))
	assert.True(t, cells.Contains(c))
	assert.Equal(t, before.Len()+1, cells.Len())

	assert.False(t, cells.Toggle(c))
	assert.True(t, before.Equal(cells))

	assert.False(t, cells.Toggle(life.C(0, 0)))
	assert.False(t, cells.Contains(life.C(0, 0)))
}

func TestDiff(t *testing.T) {
	prev := life.NewCellSet(life.C(0, 1), life.C(1, 1), life.C(2, 1))
	next := life.Step(prev)

	born, died := life.Diff(prev, next)
	assert.Equal(t, []life.Cell{life.C(1, 0), life.C(1, 2)}, born)
	assert.Equal(t, []life.Cell{life.C(0, 1), life.C(2, 1)}, died)

	born, died = life.Diff(prev, prev)
	assert.Empty(t, born)
	assert.Empty(t, died)
}

func TestPackRoundTrip(t *testing.T) {
	for _, c := range []life.Cell{
		life.C(0, 0),
		life.C(-1, -1),
		life.C(1, -1),
		life.C(-2147483648, 2147483647),
	} {
		assert.Equal(t, c, life.Unpack(c.Pack()))
	}
	assert.NotEqual(t, life.C(1, 0).Pack(), life.C(0, 1).Pack())
}

func TestBoundsAndTranslate(t *testing.T) {
	_, _, ok := life.CellSet{}.Bounds()
	assert.False(t, ok)

	lo, hi, ok := life.StartPattern().Bounds()
	require.True(t, ok)
	assert.Equal(t, life.C(0, 0), lo)
	assert.Equal(t, life.C(2, 2), hi)

	moved := life.StartPattern().Translate(-1, 4)
	assert.True(t, moved.Contains(life.C(0, 6)))
	assert.Equal(t, 5, moved.Len())
}
