// Package app is the controller that ties the model to its views.
package app

import (
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/idilsaglam/drawnumber/internal/config"
	"github.com/idilsaglam/drawnumber/internal/logger"
	"github.com/idilsaglam/drawnumber/internal/model"
	"github.com/idilsaglam/drawnumber/internal/view"
)

// Options tune how the controller is wired. The zero value is usable.
type Options struct {
	Exit   func(code int) // ends the process; os.Exit when nil
	Source model.Source   // secret selection; math/rand/v2 when nil
	FS     fs.FS          // where bare resource names are looked up when not on disk
}

// App implements view.Observer for every view it was built with.
type App struct {
	views []view.View
	model *model.DrawNumber
	exit  func(int)

	mu    sync.Mutex
	round string
}

// New loads the configuration named by resource, registers itself on every
// view and starts them. An inconsistent configuration is replaced by the
// defaults, reported to every view, and the application quits.
func New(resource string, opt Options, views ...view.View) *App {
	a := &App{
		views: slices.Clone(views),
		exit:  opt.Exit,
	}
	if a.exit == nil {
		a.exit = os.Exit
	}
	for _, v := range a.views {
		v.SetObserver(a)
	}

	cfg := loadConfig(resource, opt.FS)
	rejected, consistent := cfg, cfg.IsConsistent()
	if !consistent {
		logger.Error().Stringer("config", cfg).Msg("inconsistent configuration, using defaults")
		cfg = config.Default()
	}

	a.model = model.New(cfg, opt.Source)
	a.round = uuid.NewString()
	logger.Debug().Str("round", a.round).Stringer("config", cfg).Msg("game ready")

	for _, v := range a.views {
		v.Start()
	}
	if !consistent {
		a.displayError("inconsistent configuration: " + rejected.String())
	}
	return a
}

func loadConfig(resource string, fallback fs.FS) config.Configuration {
	fsys, name := config.Resolve(resource, fallback)
	cfg, err := config.Load(fsys, name)
	if err != nil {
		logger.Warn().Err(err).Str("resource", resource).Msg("configuration incomplete, defaults substituted")
	}
	return cfg
}

func (a *App) displayError(msg string) {
	for _, v := range a.views {
		v.DisplayError(msg)
	}
	a.Quit()
}

// NewAttempt evaluates n and broadcasts the outcome. Guesses outside the
// range are reported as incorrect and the game goes on.
func (a *App) NewAttempt(n int) {
	res, err := a.model.Attempt(n)
	if err != nil {
		logger.Debug().Err(err).Int("guess", n).Str("round", a.currentRound()).Msg("guess rejected")
		for _, v := range a.views {
			v.NumberIncorrect()
		}
		return
	}
	logger.Debug().
		Int("guess", n).
		Stringer("result", res).
		Int("attempts_left", a.model.AttemptsLeft()).
		Str("round", a.currentRound()).
		Msg("attempt")
	for _, v := range a.views {
		v.Result(res)
	}
}

func (a *App) ResetGame() {
	a.model.Reset()
	round := uuid.NewString()
	a.mu.Lock()
	a.round = round
	a.mu.Unlock()
	logger.Debug().Str("round", round).Msg("new round")
}

// Quit ends the process with status 0 whatever the reason.
func (a *App) Quit() {
	logger.Debug().Str("round", a.currentRound()).Msg("quit")
	a.exit(0)
}

func (a *App) currentRound() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.round
}
