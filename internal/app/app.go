package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/partcalc/internal/config"
	apperrors "github.com/agbru/partcalc/internal/errors"
	"github.com/agbru/partcalc/internal/logging"
	"github.com/agbru/partcalc/internal/ui"
)

// Application represents the partcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "partcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme()
	a.initLogger()

	return a.runCompute(ctx, out)
}

// initLogger wires the structured logger according to the verbosity flags.
// Construction logging is opt-in: the default and quiet modes keep stderr
// clean for the spinner and the results.
func (a *Application) initLogger() {
	if a.Log != nil {
		return
	}
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		a.Log = logging.NewLogger(a.ErrWriter, "partcalc")
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	a.Log = logging.NewNopLogger()
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
