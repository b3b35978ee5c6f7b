package snake

// Command is a discrete input event delivered by a driver.
type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdPause:
		return "pause"
	}
	return "unknown"
}

// Apply dispatches c to the matching mutator. Unknown commands are ignored.
func (g *Game) Apply(c Command) {
	switch c {
	case CmdUp:
		g.MoveUp()
	case CmdDown:
		g.MoveDown()
	case CmdLeft:
		g.MoveLeft()
	case CmdRight:
		g.MoveRight()
	case CmdPause:
		g.TogglePause()
	}
}

// Heading changes take effect on the next Tick. Reversing onto the body is
// allowed.

func (g *Game) MoveUp()    { g.direction = Up }
func (g *Game) MoveDown()  { g.direction = Down }
func (g *Game) MoveLeft()  { g.direction = Left }
func (g *Game) MoveRight() { g.direction = Right }

// TogglePause switches between Playing and Paused. A finished game stays
// finished.
func (g *Game) TogglePause() {
	switch g.state {
	case Playing:
		g.state = Paused
	case Paused:
		g.state = Playing
	case GameOver:
	}
}
