package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlify/internal/config"
	"github.com/vango-dev/htmlify/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "htmlify",
		Short: "Render markup trees to HTML",
		Long: `htmlify turns trees of tags, attributes and text into HTML markup.

Documents are YAML or JSON:

  tag: div
  attributes:
    - {name: class, value: note}
    - hidden
  children:
    - text: Hello
    - markdown: "**world**"

Commands render documents to stdout, serve a live preview and
publish rendered markup to disk or S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			setupLogging(stderr, level)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)
	return rootCmd
}

// useColor is set by setupLogging.
var useColor bool

// setupLogging installs a tint handler on w. Colors are only used when w is
// a terminal.
func setupLogging(w io.Writer, level slog.Level) {
	useColor = false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd())
	}
	if !useColor {
		errors.DisableColors()
	}
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !useColor,
	})))
}

// loadConfig loads htmlify.json with environment overrides. The configured
// log level applies unless --verbose was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.Log.Level)); err == nil {
			setupLogging(cmd.ErrOrStderr(), level)
		}
	}
	if path := cfg.Path(); path != "" {
		slog.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	mark := "✓"
	if useColor {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}
