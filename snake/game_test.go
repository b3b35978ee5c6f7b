package snake

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

// fixedSource yields its values in order, repeating the last one.
type fixedSource struct {
	values []int
	i      int
}

func (s *fixedSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v % n
}

func newGame(rs ...int) *Game {
	return New(&fixedSource{values: rs})
}

// dumpBoard draws the region of the grid around the snake; H marks the head,
// s the body, f the food and * food under the body.
func dumpBoard(g *Game) string {
	const w, h = 12, 8
	var sb strings.Builder
	for y := -1; y < h; y++ {
		for x := -1; x < w; x++ {
			p := Point{X: x, Y: y}
			onBody := false
			for _, b := range g.body {
				if b == p {
					onBody = true
					break
				}
			}
			switch {
			case g.body[0] == p:
				sb.WriteByte('H')
			case onBody && g.food == p:
				sb.WriteByte('*')
			case onBody:
				sb.WriteByte('s')
			case g.food == p:
				sb.WriteByte('f')
			case !InBounds(p):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestInitialConfiguration(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	c.Assert(g.Body(), qt.DeepEquals, []Point{{3, 1}, {2, 1}, {1, 1}})
	c.Assert(g.Head(), qt.Equals, Point{3, 1})
	c.Assert(g.Direction(), qt.Equals, Right)
	c.Assert(g.Food(), qt.Equals, Point{3, 3})
	c.Assert(g.State(), qt.Equals, Playing)
}

func TestNewNilSource(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { New(nil) }, qt.PanicMatches, "snake: nil random source")
}

func TestBodyIsCopy(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	body := g.Body()
	body[0] = Point{99, 99}
	c.Assert(g.Head(), qt.Equals, Point{3, 1})

	snap := g.Snapshot()
	g.Tick()
	c.Assert(snap.Head(), qt.Equals, Point{3, 1})
	c.Assert(g.Head(), qt.Equals, Point{4, 1})
}

func TestStraightMove(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.Tick()
	t.Logf("after tick:\n%s", dumpBoard(g))
	c.Assert(g.Body(), qt.DeepEquals, []Point{{4, 1}, {3, 1}, {2, 1}})
	c.Assert(g.Direction(), qt.Equals, Right)
	c.Assert(g.State(), qt.Equals, Playing)
	c.Assert(g.Food(), qt.Equals, Point{3, 3})
}

func TestTurnThenMove(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.MoveDown()
	g.Tick()
	c.Assert(g.Body(), qt.DeepEquals, []Point{{3, 2}, {3, 1}, {2, 1}})
	c.Assert(g.Direction(), qt.Equals, Down)
}

func TestEat(t *testing.T) {
	c := qt.New(t)
	g := newGame(0)
	g.MoveDown()
	c.Assert(g.Feed(), qt.IsFalse)
	g.Tick()
	g.Tick()
	c.Assert(g.Head(), qt.Equals, g.Food())

	c.Assert(g.Feed(), qt.IsTrue)
	t.Logf("after feed:\n%s", dumpBoard(g))
	c.Assert(g.Len(), qt.Equals, 4)
	c.Assert(g.Food(), qt.Equals, Point{3, 3})

	// The duplicated head separates on the next tick.
	g.Tick()
	c.Assert(g.Body(), qt.DeepEquals, []Point{{3, 4}, {3, 3}, {3, 3}, {3, 2}})
	c.Assert(g.Len(), qt.Equals, 4)
}

func TestFeedRelocatesWithSameOffset(t *testing.T) {
	c := qt.New(t)
	g := newGame(29)
	g.MoveDown()
	g.Tick()
	g.Tick()
	c.Assert(g.Feed(), qt.IsTrue)
	// (3+29) mod 40, (3+29) mod 30
	c.Assert(g.Food(), qt.Equals, Point{32, 2})
}

func TestFeedWrapsNegativeOffsets(t *testing.T) {
	c := qt.New(t)
	g := newGame(-10)
	g.MoveDown()
	g.Tick()
	g.Tick()
	c.Assert(g.Feed(), qt.IsTrue)
	c.Assert(InBounds(g.Food()), qt.IsTrue)
	c.Assert(g.Food(), qt.Equals, Point{33, 23})
}

func TestWallDeath(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.MoveUp()
	g.Tick()
	c.Assert(g.Head(), qt.Equals, Point{3, 0})
	c.Assert(g.State(), qt.Equals, Playing)

	g.Tick()
	t.Logf("after death:\n%s", dumpBoard(g))
	c.Assert(g.State(), qt.Equals, GameOver)
	// The terminal tick still shifts the body.
	c.Assert(g.Body(), qt.DeepEquals, []Point{{3, -1}, {3, 0}, {3, 1}})

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	c.Assert(g.Snapshot(), qt.DeepEquals, before)
}

func TestWallDeathEachSide(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name  string
		cmd   Command
		ticks int
	}{
		{"up", CmdUp, 2},
		{"left", CmdLeft, 4},
		{"right", CmdRight, Width - 3},
		{"down", CmdDown, Height - 1},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			g := newGame()
			g.Apply(test.cmd)
			for i := 0; i < test.ticks-1; i++ {
				g.Tick()
				c.Assert(g.State(), qt.Equals, Playing, qt.Commentf("tick %d", i+1))
			}
			g.Tick()
			c.Assert(g.State(), qt.Equals, GameOver)
			c.Assert(InBounds(g.Head()), qt.IsFalse)
		})
	}
}

func TestPause(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.TogglePause()
	c.Assert(g.State(), qt.Equals, Paused)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	c.Assert(g.Snapshot(), qt.DeepEquals, before)

	g.TogglePause()
	c.Assert(g.State(), qt.Equals, Playing)
	g.Tick()
	c.Assert(g.Head(), qt.Equals, Point{4, 1})
}

func TestGameOverIsSticky(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.MoveUp()
	g.Tick()
	g.Tick()
	c.Assert(g.State(), qt.Equals, GameOver)
	g.TogglePause()
	c.Assert(g.State(), qt.Equals, GameOver)
	g.Apply(CmdPause)
	c.Assert(g.State(), qt.Equals, GameOver)
}

func TestReversalAllowed(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	g.MoveLeft()
	g.Tick()
	c.Assert(g.State(), qt.Equals, Playing)
	c.Assert(g.Body(), qt.DeepEquals, []Point{{2, 1}, {3, 1}, {2, 1}})
}

func TestSelfCollisionOption(t *testing.T) {
	c := qt.New(t)
	g := New(&fixedSource{}, WithSelfCollision(true))
	g.MoveLeft()
	g.Tick()
	c.Assert(g.State(), qt.Equals, GameOver)

	// Turning alongside the body is fine.
	g = New(&fixedSource{}, WithSelfCollision(true))
	g.MoveDown()
	g.Tick()
	g.MoveLeft()
	g.Tick()
	g.MoveUp()
	g.Tick()
	c.Assert(g.State(), qt.Equals, Playing)
	c.Assert(g.Body(), qt.DeepEquals, []Point{{2, 1}, {2, 2}, {3, 2}})
}

func TestApply(t *testing.T) {
	c := qt.New(t)
	g := newGame()
	for _, test := range []struct {
		cmd  Command
		want Direction
	}{
		{CmdUp, Up},
		{CmdLeft, Left},
		{CmdDown, Down},
		{CmdRight, Right},
	} {
		g.Apply(test.cmd)
		c.Assert(g.Direction(), qt.Equals, test.want)
	}
	g.Apply(Command(42))
	c.Assert(g.Direction(), qt.Equals, Right)
	c.Assert(g.State(), qt.Equals, Playing)
}

func TestTextEncoding(t *testing.T) {
	c := qt.New(t)
	for _, d := range []Direction{Up, Down, Left, Right} {
		b, err := d.MarshalText()
		c.Assert(err, qt.IsNil)
		var got Direction
		c.Assert(got.UnmarshalText(b), qt.IsNil)
		c.Assert(got, qt.Equals, d)
	}
	_, err := Direction(7).MarshalText()
	c.Assert(err, qt.ErrorMatches, "invalid direction 7")

	var s State
	c.Assert(s.UnmarshalText([]byte("paused")), qt.IsNil)
	c.Assert(s, qt.Equals, Paused)
	c.Assert(s.UnmarshalText([]byte("lost")), qt.ErrorMatches, `invalid state "lost"`)
	c.Assert(GameOver.String(), qt.Equals, "gameover")
}
