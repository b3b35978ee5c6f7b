// Package driver runs a snake game on a frame clock: it feeds input events to
// the game, feeds and ticks it in the required order, and hands a snapshot of
// every frame to the views.
package driver

import (
	"fmt"
	"log"
	"time"

	"github.com/hixion/snake-game/snake"
)

// Config sets the frame rate and how many frames pass between ticks.
type Config struct {
	FPS       int
	TickEvery int
}

// DefaultConfig runs 30 frames per second and ticks every fifth frame.
func DefaultConfig() Config {
	return Config{FPS: 30, TickEvery: 5}
}

func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d", c.FPS)
	}
	if c.TickEvery <= 0 {
		return fmt.Errorf("invalid tick interval %d frames", c.TickEvery)
	}
	return nil
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Keymap maps key names, as reported by the terminal, to game commands.
type Keymap map[string]snake.Command

// DefaultKeymap steers with WASD and pauses with escape.
var DefaultKeymap = Keymap{
	"w":   snake.CmdUp,
	"W":   snake.CmdUp,
	"s":   snake.CmdDown,
	"S":   snake.CmdDown,
	"a":   snake.CmdLeft,
	"A":   snake.CmdLeft,
	"d":   snake.CmdRight,
	"D":   snake.CmdRight,
	"esc": snake.CmdPause,
}

// Publisher receives the snapshot of every frame. Publish is called on the
// driver's goroutine and must not block.
type Publisher interface {
	Publish(snake.Snapshot)
}

type Driver struct {
	game   *snake.Game
	cfg    Config
	keymap Keymap
	pubs   []Publisher

	frames int
	ended  bool
}

func New(g *snake.Game, cfg Config, pubs ...Publisher) *Driver {
	return &Driver{
		game:   g,
		cfg:    cfg,
		keymap: DefaultKeymap,
		pubs:   pubs,
	}
}

// WithKeymap replaces the key bindings.
func (d *Driver) WithKeymap(km Keymap) *Driver {
	d.keymap = km
	return d
}

func (d *Driver) Game() *snake.Game {
	return d.game
}

func (d *Driver) Config() Config {
	return d.cfg
}

// Key applies the command bound to name. It reports whether name was bound.
func (d *Driver) Key(name string) bool {
	cmd, ok := d.keymap[name]
	if !ok {
		return false
	}
	d.game.Apply(cmd)
	return true
}

// Frame advances one frame: feed, then tick on every TickEvery-th frame,
// then publish. Input for the frame must already have been applied with Key.
func (d *Driver) Frame() snake.Snapshot {
	if d.game.Feed() {
		log.Printf("food eaten: length %d, food moved to %v", d.game.Len(), d.game.Food())
	}
	d.frames++
	if d.frames%d.cfg.TickEvery == 0 {
		d.game.Tick()
		d.frames = 0
	}
	if !d.ended && d.game.State() == snake.GameOver {
		d.ended = true
		log.Printf("game over: head %v, length %d", d.game.Head(), d.game.Len())
	}
	snap := d.game.Snapshot()
	d.publish(snap)
	return snap
}

// Start publishes the initial state before the first frame.
func (d *Driver) Start() snake.Snapshot {
	snap := d.game.Snapshot()
	d.publish(snap)
	return snap
}

func (d *Driver) publish(snap snake.Snapshot) {
	for _, p := range d.pubs {
		p.Publish(snap)
	}
}
