package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hixion/snake-game/api"
	"github.com/hixion/snake-game/driver"
	"github.com/hixion/snake-game/random"
	"github.com/hixion/snake-game/snake"
	"github.com/hixion/snake-game/tui"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for food placement (0 picks one at random)")
	fps := flag.Int("fps", driver.DefaultConfig().FPS, "Frames per second")
	tickEvery := flag.Int("tick-every", driver.DefaultConfig().TickEvery, "Frames between snake moves")
	selfCollision := flag.Bool("self-collision", false, "End the game when the snake runs into itself")
	spectate := flag.String("spectate", "", "Address to serve the read-only spectator API on, e.g. :3000")
	logPath := flag.String("log", "snake.log", "Log file; - logs to stderr")
	flag.Parse()

	if err := run(*seed, driver.Config{FPS: *fps, TickEvery: *tickEvery}, *selfCollision, *spectate, *logPath); err != nil {
		log.Fatal(err)
	}
}

func run(seed uint64, cfg driver.Config, selfCollision bool, spectate, logPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs go elsewhere.
	if logPath != "-" {
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := random.New(seed)
	game := snake.New(src, snake.WithSelfCollision(selfCollision))
	log.Printf("new game: seed %d, %d fps, tick every %d frames", src.Seed(), cfg.FPS, cfg.TickEvery)

	var pubs []driver.Publisher
	hub := api.NewHub()
	if spectate != "" {
		session := hub.Register()
		defer hub.Remove(session.ID())
		pubs = append(pubs, session)

		srv, err := serve(spectate, hub)
		if err != nil {
			return err
		}
		log.Printf("spectators: http://%s/games/%s", srv.Addr, session.ID())
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("failed to shut down spectator API: %v", err)
			}
		}()
	}

	d := driver.New(game, cfg, pubs...)
	p := tea.NewProgram(tui.New(d, tui.DefaultStyles()), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running game: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		snap := m.Snapshot()
		fmt.Printf("%s, length %d\n", snap.State, len(snap.Body))
	}
	return nil
}

func serve(addr string, hub *api.Hub) (*http.Server, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Mount("/", api.Router(hub))

	srv := &http.Server{Addr: addr, Handler: r}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	// Surface bind errors before the terminal is taken over.
	select {
	case err := <-errc:
		return nil, fmt.Errorf("serving spectator API: %w", err)
	case <-time.After(100 * time.Millisecond):
	}
	go func() {
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator API stopped: %v", err)
		}
	}()
	return srv, nil
}
