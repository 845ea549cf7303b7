package app

import (
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/neonpong/internal/audio"
	"github.com/diegok/neonpong/internal/config"
	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/protocol"
	"github.com/diegok/neonpong/internal/session"
	"github.com/diegok/neonpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	session  *session.Session

	// Most recent snapshot, drawn on every frame
	last protocol.Snapshot

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the match.
func (a *App) Run() error {
	var sinks []session.Sink
	if !a.cfg.Mute {
		// The game works without sound
		if err := audio.Init(); err != nil {
			a.logger.Printf("audio disabled: %v", err)
		} else {
			sinks = append(sinks, audio.NewPlayer(a.cfg.Volume))
		}
	}

	screen, err := ui.InitScreen(!a.cfg.NoMouse)
	if err != nil {
		audio.Close()
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, ui.NewPalette())

	a.game = game.NewGame(nil)
	a.last = a.game.Snapshot()
	a.session = session.New(a.game, a.logger, sinks...)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	a.session.Start()
	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// mainLoop is the main event loop that handles input and draws frames.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// Ticker for rendering at ~60fps
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case snap := <-a.session.Snapshots():
			a.last = snap

		case <-ticker.C:
			a.renderer.Render(a.last)
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key()) {
			return true
		}
		if d := ui.ArrowDelta(ev.Key()); d != 0 {
			a.session.Send(protocol.Input{Kind: protocol.InputPointer, Y: a.paddleCenter() + d})
			return false
		}
		if in, ok := ui.KeyToInput(ev.Key(), ev.Rune()); ok {
			a.session.Send(in)
		}

	case *tcell.EventMouse:
		if a.cfg.NoMouse {
			return false
		}
		_, y := ev.Position()
		_, h := a.screen.Size()
		a.session.Send(ui.MouseToInput(y, h, game.CanvasHeight))

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.last)
	}

	return false
}

// paddleCenter is where the player paddle was in the last snapshot
func (a *App) paddleCenter() float64 {
	return a.last.Player.Y + a.last.Player.Height/2
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.session != nil {
		a.session.Stop()
	}

	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
