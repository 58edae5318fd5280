package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions verifies that non-positive sizes are rejected, not clamped.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 3},
		{"NegativeBoth", -2, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.New(tc.w, tc.h)
			require.ErrorIs(t, err, gridgraph.ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

// TestNew_AllFree checks dimensions and the initial obstacle-free state.
func TestNew_AllFree(t *testing.T) {
	g, err := gridgraph.New(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Len())
	assert.Zero(t, g.Obstacles())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			ob, err := g.Obstacle(x, y)
			require.NoError(t, err)
			assert.False(t, ob, "cell (%d,%d)", x, y)
		}
	}
}

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFrom2D_CopiesInput ensures later mutation of the source slice is not observed.
func TestFrom2D_CopiesInput(t *testing.T) {
	rows := [][]bool{
		{false, true},
		{false, false},
	}
	g, err := gridgraph.From2D(rows)
	require.NoError(t, err)
	rows[0][1] = false

	ob, err := g.Obstacle(1, 0)
	require.NoError(t, err)
	assert.True(t, ob)
	assert.Equal(t, 1, g.Obstacles())
}

// TestParse_RoundTrip parses an ASCII layout and renders it back.
func TestParse_RoundTrip(t *testing.T) {
	layout := "" +
		"..#.\n" +
		"#...\n" +
		"..##\n"
	g, err := gridgraph.Parse("\n  " + layout + "  \n")
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Obstacles())
	assert.True(t, g.Blocked(gridgraph.Pt(2, 0)))
	assert.True(t, g.Blocked(gridgraph.Pt(0, 1)))
	assert.False(t, g.Blocked(gridgraph.Pt(1, 1)))
	assert.Equal(t, layout, g.String())
}

// TestParse_Errors covers unknown glyphs, ragged rows and empty input.
func TestParse_Errors(t *testing.T) {
	_, err := gridgraph.Parse("..x\n...")
	assert.ErrorIs(t, err, gridgraph.ErrBadGlyph)

	_, err = gridgraph.Parse("...\n..")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.Parse(" \n\n")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Access Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(3, 2)
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p.X, p.Y), "InBounds%v", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p.X, p.Y), "InBounds%v", p)
		assert.True(t, g.Blocked(p), "out-of-bounds %v must count as blocked", p)
	}
}

// TestSetObstacle_OutOfBounds verifies the error is signalled and nothing changes.
func TestSetObstacle_OutOfBounds(t *testing.T) {
	g, err := gridgraph.New(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetObstacle(2, 0, true), gridgraph.ErrOutOfBounds)
	require.ErrorIs(t, g.SetObstacle(0, -1, true), gridgraph.ErrOutOfBounds)
	_, err = g.Obstacle(5, 5)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.Zero(t, g.Obstacles())

	require.NoError(t, g.SetObstacle(1, 1, true))
	assert.True(t, g.Blocked(gridgraph.Pt(1, 1)))
	require.NoError(t, g.SetObstacle(1, 1, false))
	assert.False(t, g.Blocked(gridgraph.Pt(1, 1)))
}

// TestIndexCoordinate verifies row-major addressing is a bijection.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.New(5, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(gridgraph.Pt(0, 0)))
	assert.Equal(t, 7, g.Index(gridgraph.Pt(2, 1)))
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
}

// TestClone_Independent ensures a clone shares no obstacle storage.
func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.Parse("#..\n.#.")
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.String(), c.String())

	require.NoError(t, c.SetObstacle(2, 1, true))
	assert.False(t, g.Blocked(gridgraph.Pt(2, 1)))
	g.Clear()
	assert.Zero(t, g.Obstacles())
	assert.Equal(t, 3, c.Obstacles())
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors checks count and order for interior, edge and corner cells.
func TestNeighbors(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)

	interior := g.Neighbors(1, 1)
	assert.Equal(t, []gridgraph.Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}, interior)

	assert.Equal(t, []gridgraph.Point{{1, 0}, {0, 1}, {1, 1}}, g.Neighbors(0, 0))
	assert.Len(t, g.Neighbors(1, 0), 5)
	assert.Len(t, g.Neighbors(2, 2), 3)
}

// TestNeighbors_IgnoresObstacles keeps enumeration purely geometric.
func TestNeighbors_IgnoresObstacles(t *testing.T) {
	g, err := gridgraph.Parse("###\n#.#\n###")
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(1, 1), 8)
}

// TestNeighbors_SingleCell has no neighbors at all.
func TestNeighbors_SingleCell(t *testing.T) {
	g, err := gridgraph.New(1, 1)
	require.NoError(t, err)

	assert.Empty(t, g.Neighbors(0, 0))
}

// TestAppendNeighbors_ReusesBuffer verifies the append form extends dst.
func TestAppendNeighbors_ReusesBuffer(t *testing.T) {
	g, err := gridgraph.New(2, 1)
	require.NoError(t, err)

	buf := make([]gridgraph.Point, 0, 8)
	buf = g.AppendNeighbors(buf, gridgraph.Pt(0, 0))
	buf = g.AppendNeighbors(buf, gridgraph.Pt(1, 0))
	assert.Equal(t, []gridgraph.Point{{1, 0}, {0, 0}}, buf)
}
