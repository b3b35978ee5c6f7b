// Package snake is the simulation core of a single-player snake game.
//
// A Game is mutated by exactly one driver: input mutators change heading and
// lifecycle, Feed and Tick advance the simulation, and views read Snapshots.
// Nothing in this package blocks or performs I/O.
package snake

// FoodJump bounds the random offset applied to both food coordinates when the
// food is eaten.
const FoodJump = 30

// Source yields uniform integers in [0,n).
type Source interface {
	Intn(n int) int
}

type Option func(*Game)

// WithSelfCollision ends the game when the head moves onto its own body.
// Off by default.
func WithSelfCollision(on bool) Option {
	return func(g *Game) {
		g.selfCollision = on
	}
}

type Game struct {
	// body[0] is the head; never empty.
	body      []Point
	direction Direction
	food      Point
	state     State
	rng       Source

	selfCollision bool
}

// New returns a game in the initial configuration: a three cell snake headed
// right from (3,1) and food at (3,3).
func New(src Source, opts ...Option) *Game {
	if src == nil {
		panic("snake: nil random source")
	}
	g := &Game{
		body:      []Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}},
		direction: Right,
		food:      Point{X: 3, Y: 3},
		state:     Playing,
		rng:       src,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Head() Point {
	return g.body[0]
}

func (g *Game) Len() int {
	return len(g.body)
}

// Body returns a copy of the body cells, head first.
func (g *Game) Body() []Point {
	return append([]Point(nil), g.body...)
}

func (g *Game) Food() Point {
	return g.food
}

func (g *Game) Direction() Direction {
	return g.direction
}

func (g *Game) State() State {
	return g.state
}

// Snapshot is a copy of the game state that remains valid after the game
// advances.
type Snapshot struct {
	Body      []Point
	Food      Point
	Direction Direction
	State     State
}

func (s Snapshot) Head() Point {
	return s.Body[0]
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.Body(),
		Food:      g.food,
		Direction: g.direction,
		State:     g.state,
	}
}
