// Command furl-demo opens a file in a folding terminal editor.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/furl"
)

var (
	configPath string
	startLine  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "furl-demo [file]",
	Short: "Fold and edit a text file in the terminal",
	Long: `furl-demo opens a file, or a sample text, in an editor that folds
indented blocks.

Examples:
  # Open the sample text
  furl-demo

  # Open a file with a config, caret on line 40
  furl-demo --config ~/.config/furl/config.yaml --line 40 notes.txt

  # Open a file with a TOML config; external changes to notes.txt are reloaded
  furl-demo --config furl.toml notes.txt

  # Log transactions to a file
  FURL_LOG_FILE=/tmp/furl.log FURL_LOG_LEVEL=debug furl-demo notes.txt`,
	Args:         cobra.MaximumNArgs(1),
	Version:      furl.Version(),
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML or TOML config file")
	rootCmd.Flags().IntVar(&startLine, "line", 0, "line to put the caret on")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	text := sampleText
	var watcher *fileWatcher
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		text = string(b)

		watcher, err = watchFile(args[0])
		if err != nil {
			// Editing still works without reloads.
			logger.Warn("file changes will not be picked up", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}
	logger.Info("starting", zap.String("version", furl.Version()), zap.Int("bytes", len(text)))

	m := newModel(cfg, text, logger, watcher)
	m.gotoLine(startLine)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return err
	}
	return nil
}
