package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/idilsaglam/drawnumber/assets"
	"github.com/idilsaglam/drawnumber/internal/app"
	"github.com/idilsaglam/drawnumber/internal/config"
	"github.com/idilsaglam/drawnumber/internal/logger"
	"github.com/idilsaglam/drawnumber/internal/view"
)

const envPrefix = "DRAWNUMBER"

// osExit is swapped in tests.
var osExit = os.Exit

// Options are the root flags, after env overrides.
type Options struct {
	Config string // configuration resource
	Output string // result log file, "" disables it
	Plain  bool   // line console even on a terminal
	Echo   bool   // mirror results to stderr
	Debug  bool
	LogDir string // rotated JSON log directory, "" disables it
}

// Run executes the CLI and returns the process exit code for usage and
// setup failures. A game that ends through Quit exits on its own with 0.
func Run(args []string, version string) int {
	cmd := NewCmdRoot(version)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styleFail(err.Error()))
		return 1
	}
	return 0
}

func NewCmdRoot(version string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "drawnumber",
		Short: "Guess the secret number before your attempts run out",
		Long: `drawnumber picks a secret number in a configured range and tells you
whether each guess is too high or too low.

The configuration resource holds one key:value pair per line:
  minimum:0
  maximum:100
  attempts:10

Every flag can also be set through DRAWNUMBER_<FLAG>, e.g. DRAWNUMBER_OUTPUT.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := Options{
				Config: v.GetString("config"),
				Output: v.GetString("output"),
				Plain:  v.GetBool("plain"),
				Echo:   v.GetBool("echo"),
				Debug:  v.GetBool("debug"),
				LogDir: v.GetString("log-dir"),
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	addFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Flags())

	cmd.SetVersionTemplate(FormatVersion(version))
	cmd.AddCommand(NewCmdVersion(version))
	return cmd
}

func addFlags(f *pflag.FlagSet) {
	f.StringP("config", "c", config.DefaultResource, "configuration resource (file path, or a bundled resource name)")
	f.StringP("output", "o", "output.log", "file that receives every result, empty to disable")
	f.Bool("plain", false, "use the line console even on a terminal")
	f.Bool("echo", false, "mirror results to stderr")
	f.BoolP("debug", "D", false, "enable debug logging")
	f.String("log-dir", "", "directory for the rotated JSON log")
}

func play(in io.Reader, out, errOut io.Writer, opts Options) error {
	initLogger(opts)

	var (
		views   []view.View
		closers []io.Closer
	)
	if !opts.Plain && isTerminal(in) && isTerminal(out) {
		tui := view.NewTUI(errOut, tea.WithInput(in), tea.WithOutput(out))
		views = append(views, tui)
		closers = append(closers, tui)
	} else {
		views = append(views, view.NewConsole(in, out))
	}
	if opts.Echo {
		views = append(views, view.NewStream(errOut))
	}
	if opts.Output != "" {
		fs, err := view.NewFileStream(opts.Output)
		if err != nil {
			return err
		}
		views = append(views, fs)
		closers = append(closers, fs)
	}

	quit := make(chan struct{})
	var once sync.Once
	exit := func(code int) {
		once.Do(func() {
			defer close(quit)
			for _, c := range closers {
				_ = c.Close()
			}
			logger.SetInteractiveMode(false)
			_ = logger.CloseFileWriter()
			osExit(code)
		})
	}

	app.New(opts.Config, app.Options{Exit: exit, FS: assets.FS}, views...)
	<-quit
	return nil
}

// initLogger falls back to console-only logging when the log directory is
// unusable.
func initLogger(opts Options) {
	if err := logger.InitWithFile(opts.Debug, opts.LogDir, logger.FileConfig{}); err != nil {
		logger.Init(opts.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
	logger.Debug().Interface("options", opts).Msg("drawnumber starting")
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
