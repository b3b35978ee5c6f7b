package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hixion/snake-game/snake"
)

// Each grid cell is drawn two columns wide so the board looks square.
const (
	glyphEmpty = "  "
	glyphBody  = "[]"
	glyphHead  = "<>"
	glyphFood  = "()"
)

type Styles struct {
	Board  lipgloss.Style
	Head   lipgloss.Style
	Body   lipgloss.Style
	Food   lipgloss.Style
	Empty  lipgloss.Style
	Status lipgloss.Style
	Alert  lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Board:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
		Head:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Food:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Empty:  lipgloss.NewStyle(),
		Status: lipgloss.NewStyle().Bold(true),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles draws without borders or colour.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Board:  plain,
		Head:   plain,
		Body:   plain,
		Food:   plain,
		Empty:  plain,
		Status: plain,
		Alert:  plain,
		Help:   plain,
	}
}

type cell uint8

const (
	cellEmpty cell = iota
	cellFood
	cellBody
	cellHead
)

// Render draws the board and a status line for s. Cells outside the grid,
// such as the head of a snake that hit the wall, are not drawn.
func Render(s snake.Snapshot, st Styles) string {
	var grid [snake.Height][snake.Width]cell
	put := func(p snake.Point, c cell) {
		if snake.InBounds(p) && grid[p.Y][p.X] < c {
			grid[p.Y][p.X] = c
		}
	}
	put(s.Food, cellFood)
	for i, p := range s.Body {
		if i == 0 {
			put(p, cellHead)
		} else {
			put(p, cellBody)
		}
	}

	rows := make([]string, snake.Height)
	var sb strings.Builder
	for y := 0; y < snake.Height; y++ {
		sb.Reset()
		for x := 0; x < snake.Width; x++ {
			switch grid[y][x] {
			case cellHead:
				sb.WriteString(st.Head.Render(glyphHead))
			case cellBody:
				sb.WriteString(st.Body.Render(glyphBody))
			case cellFood:
				sb.WriteString(st.Food.Render(glyphFood))
			default:
				sb.WriteString(st.Empty.Render(glyphEmpty))
			}
		}
		rows[y] = sb.String()
	}
	board := st.Board.Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, board, status(s, st))
}

func status(s snake.Snapshot, st Styles) string {
	line := st.Status.Render(fmt.Sprintf("length %d", len(s.Body)))
	switch s.State {
	case snake.Paused:
		line += "  " + st.Alert.Render("PAUSED")
	case snake.GameOver:
		line += "  " + st.Alert.Render("GAME OVER")
	}
	return line + "  " + st.Help.Render("wasd steer · esc pause · q quit")
}
