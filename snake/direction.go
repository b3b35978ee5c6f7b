package snake

import "fmt"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector returns the cell delta applied to the head on each tick.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Up, Down, Left, Right:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("invalid direction %d", int(d))
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "left":
		*d = Left
	case "right":
		*d = Right
	default:
		return fmt.Errorf("invalid direction %q", b)
	}
	return nil
}

// State is the game lifecycle. GameOver is terminal.
type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "gameover"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	switch s {
	case Playing, Paused, GameOver:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid state %d", int(s))
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = Playing
	case "paused":
		*s = Paused
	case "gameover":
		*s = GameOver
	default:
		return fmt.Errorf("invalid state %q", b)
	}
	return nil
}
