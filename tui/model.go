// Package tui plays a snake game in the terminal with Bubble Tea. Key
// presses are applied as they arrive and a frame message advances the driver
// at its configured rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hixion/snake-game/driver"
	"github.com/hixion/snake-game/snake"
)

// FrameMsg asks the model to run one driver frame.
type FrameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type Model struct {
	drv    *driver.Driver
	styles Styles
	snap   snake.Snapshot
}

func New(d *driver.Driver, st Styles) Model {
	return Model{
		drv:    d,
		styles: st,
		snap:   d.Start(),
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.drv.Config().FrameInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if m.drv.Key(msg.String()) {
			m.snap = m.drv.Game().Snapshot()
		}
	case FrameMsg:
		m.snap = m.drv.Frame()
		return m, frameCmd(m.drv.Config().FrameInterval())
	}
	return m, nil
}

func (m Model) View() string {
	return Render(m.snap, m.styles) + "\n"
}

// Snapshot returns the state shown by the last View.
func (m Model) Snapshot() snake.Snapshot {
	return m.snap
}
