package snake

// Tick advances the snake one cell in its current direction. It does nothing
// unless the game is Playing.
//
// Leaving the grid ends the game, but the body still shifts on that final
// tick, so the head of a finished game may lie outside the grid.
func (g *Game) Tick() {
	if g.state != Playing {
		return
	}
	next := g.body[0].Add(g.direction.Vector())
	if !InBounds(next) || (g.selfCollision && g.bites(next)) {
		g.state = GameOver
	}
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = next
}

// bites reports whether next lands on a cell that is still occupied once the
// tail has moved out of the way.
func (g *Game) bites(next Point) bool {
	for _, p := range g.body[:len(g.body)-1] {
		if p == next {
			return true
		}
	}
	return false
}

// Feed grows the snake and moves the food when the head sits on the food. It
// reports whether the snake grew.
//
// The grown body starts with a duplicate of the head cell; the next Tick
// separates them. The relocated food may land on the body.
func (g *Game) Feed() bool {
	if g.body[0] != g.food {
		return false
	}
	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = g.food

	r := g.rng.Intn(FoodJump)
	g.food = Point{
		X: mod(g.food.X+r, Width),
		Y: mod(g.food.Y+r, Height),
	}
	return true
}

// mod returns a non-negative remainder, keeping food on the grid for any draw.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
