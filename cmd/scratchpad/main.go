// Copyright 2026 The Scratchpad Authors
// SPDX-License-Identifier: Apache-2.0

// scratchpad is a terminal editor for markdown notes: a single editing
// pane with incremental search, mouse support, and syntax highlighting
// of fenced code blocks.
//
// The file given on the command line is loaded into the pane and
// written back on ctrl+s. Without a file argument the pane starts
// empty and saves are rejected with a log record.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/scratchpad-tui/scratchpad/lib/clock"
	"github.com/scratchpad-tui/scratchpad/lib/config"
	"github.com/scratchpad-tui/scratchpad/lib/editpane"
	"github.com/scratchpad-tui/scratchpad/lib/highlight"
	"github.com/scratchpad-tui/scratchpad/lib/tui"
	"github.com/scratchpad-tui/scratchpad/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var readOnly bool
	var logOutput string

	flagSet := pflag.NewFlagSet("scratchpad", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to scratchpad.yaml (default: $SCRATCHPAD_CONFIG)")
	flagSet.BoolVar(&readOnly, "read-only", false, "open the file read-only")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("scratchpad")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	filePath := ""
	if len(args) == 1 {
		filePath = args[0]
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("scratchpad requires an interactive terminal")
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if logOutput == "" {
		logOutput = cfg.Log.Output
	}
	logger, closeLogger, err := openLogger(logOutput, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLogger()

	return runEditor(cfg, logger, filePath, readOnly || cfg.Editor.ReadOnly)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `scratchpad — terminal editor for markdown notes.

Opens the given file in an editing pane with incremental search
(ctrl+f), mouse click-to-position and wheel scrolling, and syntax
highlighting of fenced code blocks. ctrl+s writes the file back.

Usage:
  scratchpad [flags] [file]

Examples:
  # Edit a note
  scratchpad notes.md

  # Browse without risk of edits
  scratchpad --read-only design.md

  # Debug with a log file
  scratchpad --log-output /tmp/scratchpad.log notes.md

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openLogger builds the background logger. Log records must never
// reach the terminal while the alt screen is active, so without a
// configured output file everything is discarded.
func openLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		handler := slog.NewTextHandler(io.Discard, nil)
		return slog.New(handler), func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), func() { file.Close() }, nil
}

// runEditor loads the file, builds the pane, and runs the bubbletea
// program until quit. The pane's mouse reporting is wired to stdout
// and paired with the program lifecycle: enabled once the alt screen
// is up, always disabled again on the way out.
func runEditor(cfg *config.Config, logger *slog.Logger, filePath string, readOnly bool) error {
	content := ""
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("cannot read %s: %w", filePath, err)
			}
			logger.Info("file does not exist yet, starting empty", "path", filePath)
		} else {
			content = string(data)
		}
	}

	pane := editpane.New(tui.DefaultTheme, editpane.DefaultKeyMap, clock.Real())
	pane.SetContent(content)
	pane.SetReadOnly(readOnly)
	pane.SetWheelStep(cfg.Editor.WheelStep)
	pane.SetGraceWindow(cfg.Editor.GraceWindow())
	pane.SetMouseOutput(os.Stdout)
	if cfg.Editor.HighlightEnabled() {
		pane.SetHighlighter(highlight.NewChroma())
	}

	pane.OnSave = func(content string) {
		if filePath == "" {
			logger.Warn("no file to save to; start scratchpad with a file argument")
			return
		}
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			logger.Error("save failed", "path", filePath, "error", err)
			return
		}
		logger.Info("saved", "path", filePath, "bytes", len(content))
	}
	pane.OnRequestWritable = func() {
		logger.Warn("edit rejected: file opened read-only", "path", filePath)
	}
	pane.OnOpenExternalEditor = func() {
		logger.Info("external editor requested but none is configured")
	}

	application := &app{pane: pane, logger: logger}
	program := tea.NewProgram(application, tea.WithAltScreen())

	// The Deactivate in Update handles the normal quit path; this one
	// covers program errors and panics unwinding through Run.
	defer func() {
		if err := pane.Deactivate(); err != nil {
			logger.Error("disabling mouse reporting failed", "error", err)
		}
	}()

	_, err := program.Run()
	return err
}

// app adapts the editing pane to the bubbletea program shape: it owns
// the window geometry and the quit key, and forwards everything else
// to the pane.
type app struct {
	pane   *editpane.Model
	logger *slog.Logger
	ready  bool
}

func (application *app) Init() tea.Cmd {
	if err := application.pane.Activate(); err != nil {
		application.logger.Error("enabling mouse reporting failed", "error", err)
	}
	return nil
}

func (application *app) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		// Border (2), left padding (1), and scrollbar (1) around the
		// text; border (2) plus footer (1) vertically.
		width := message.Width - 4
		height := message.Height - 3
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		application.pane.SetGeometry(editpane.Geometry{
			ScreenTop:     0,
			ScreenLeft:    0,
			ContentHeight: height,
			ContentWidth:  width,
		})
		application.ready = true
		return application, nil
	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			if err := application.pane.Deactivate(); err != nil {
				application.logger.Error("disabling mouse reporting failed", "error", err)
			}
			return application, tea.Quit
		}
	}

	application.pane.Update(message)
	return application, nil
}

func (application *app) View() string {
	if !application.ready {
		return "loading..."
	}
	return application.pane.View()
}
