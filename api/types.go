package api

import (
	"time"

	"github.com/hixion/snake-game/snake"
)

// CellSize is the side of one grid cell, in pixels, for remote renderers.
const CellSize = 20

// InfoResponse describes the board so that a client can size its window to
// Width*CellSize by Height*CellSize.
type InfoResponse struct {
	APIVersion   string `json:"apiversion"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CellSize     int    `json:"cellSize"`
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
}

// GameSummary lists a game without its body.
type GameSummary struct {
	ID      string      `json:"id"`
	Started time.Time   `json:"started"`
	State   snake.State `json:"state"`
	Length  int         `json:"length"`
	Seq     uint64      `json:"seq"`
}

// Frame is the state of a game after one driver frame. Body is head first.
type Frame struct {
	Seq       uint64          `json:"seq"`
	Body      []Point         `json:"body"`
	Food      Point           `json:"food"`
	Direction snake.Direction `json:"direction"`
	State     snake.State     `json:"state"`
	Length    int             `json:"length"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func newFrame(seq uint64, s snake.Snapshot) Frame {
	body := make([]Point, len(s.Body))
	for i, p := range s.Body {
		body[i] = Point{X: p.X, Y: p.Y}
	}
	return Frame{
		Seq:       seq,
		Body:      body,
		Food:      Point{X: s.Food.X, Y: s.Food.Y},
		Direction: s.Direction,
		State:     s.State,
		Length:    len(body),
	}
}
