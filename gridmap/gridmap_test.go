package gridmap_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoMap = `
. P . . .
. # # # .
. . . . .
. . Q . .
. . . . .
`

func TestParse_Demo(t *testing.T) {
	m, err := gridmap.Parse(demoMap)
	require.NoError(t, err)

	assert.Equal(t, pathfind.Coord{Row: 0, Col: 1}, m.Start)
	assert.Equal(t, pathfind.Coord{Row: 3, Col: 2}, m.End)
	assert.Equal(t, [][]bool{
		{true, true, true, true, true},
		{true, false, false, false, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
		{true, true, true, true, true},
	}, m.Grid)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"MissingStart", ".....\n.....\n.....", gridmap.ErrMissingSymbol},
		{"MissingEnd", ".P...\n.....\n.....", gridmap.ErrMissingSymbol},
		{"TwoStarts", ".P...\n..P..\n..Q..", gridmap.ErrUnexpectedSymbol},
		{"TwoEnds", ".P.Q.\n..Q..", gridmap.ErrUnexpectedSymbol},
		{"UnknownSymbol", ".P...\n..X..\n..Q..", gridmap.ErrUnexpectedSymbol},
		{"Tab", ".P.\t.\n..Q..", gridmap.ErrUnexpectedSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.Parse(tc.in)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

func TestParse_KeepsRaggedRows(t *testing.T) {
	m, err := gridmap.Parse("P..\n..\n.Q.")
	require.NoError(t, err)
	assert.Len(t, m.Grid[1], 2)
}

func TestMap_StringRoundTrip(t *testing.T) {
	m := gridmap.MustParse(demoMap)
	assert.Equal(t, ".P...\n.###.\n.....\n..Q..\n.....", m.String())

	again := gridmap.MustParse(m.String())
	assert.Equal(t, m, again)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { gridmap.MustParse("....") })
}

// TestSolve_GoodMaps solves the reference maps end to end.
func TestSolve_GoodMaps(t *testing.T) {
	cases := []struct {
		name  string
		m     string
		moves int
	}{
		{"WallWithGaps", demoMap, 6},
		{"WallOpenOnRight", `
. P . . .
# # # # .
. . . . .
. . Q . .
. . . . .`, 8},
		{"Open", `
. P . . .
. . . . .
. . . . .
. . Q . .
. . . . .`, 4},
		{"Tall", `
. P . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. # # # # # # . . .
. . Q . . . . . . .
. . . . . . . . . .`, 11},
		{"Maze", `
. P . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. # # # # # # . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . # # # # #
. . . . . . . . . .
# # # # # # . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. . . . . . . . . .
. # # # # # # . . .
. . Q . . . # . . .
. . . . . . # . . .`, 33},
		{"FullWall", `
. P . . .
# # # # #
. . . . .
. . Q . .
. . . . .`, -1},
		{"BoxedStart", `
# # # . .
# P # . .
# # # . .
. . Q . .
. . . . .`, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridmap.Parse(tc.m)
			require.NoError(t, err)
			got, err := m.Solve()
			require.NoError(t, err)
			assert.Equal(t, tc.moves, got)
		})
	}
}

// TestSolve_InvalidMaps checks structural errors surface as InputError.
func TestSolve_InvalidMaps(t *testing.T) {
	cases := []struct {
		name string
		m    string
		msg  string
	}{
		{"SingleRow", ". P . Q .", pathfind.MsgGridTooSmall},
		{"Ragged", `
. P . . .
. . . .
. . Q . .`, pathfind.MsgInconsistentRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridmap.Parse(tc.m)
			require.NoError(t, err)
			_, err = m.Solve()
			var ie *pathfind.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.msg, ie.Message)
		})
	}
}
