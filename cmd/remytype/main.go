// Package main provides the CLI entrypoint for remytype.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gideonmt/remytype/internal/config"
	"github.com/gideonmt/remytype/internal/corpus"
	"github.com/gideonmt/remytype/internal/generator"
	"github.com/gideonmt/remytype/internal/model"
	"github.com/gideonmt/remytype/internal/session"
	"github.com/gideonmt/remytype/internal/settings"
	"github.com/gideonmt/remytype/internal/stats"
	"github.com/gideonmt/remytype/internal/tui"
	"github.com/gideonmt/remytype/internal/wordlist"
)

const (
	defaultCaps  = 0.0
	defaultPunct = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	runMode       string
	runWords      int
	runTime       int
	runLanguage   string
	runLines      int
	runCaps       float64
	runPunct      float64
	runPunctSet   string
	runArmOnStart bool
	runLogFile    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := settings.Defaults()
	rootCmd := &cobra.Command{
		Use:           "remytype",
		Short:         "Terminal typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainerCmd,
	}

	rootCmd.Flags().StringVar(&runMode, "mode", defaults.Mode.String(), "test mode: words or time")
	rootCmd.Flags().IntVar(&runWords, "words", defaults.WordCount, "words per test in words mode")
	rootCmd.Flags().IntVar(&runTime, "time", defaults.TimeLimit, "time limit in seconds in time mode")
	rootCmd.Flags().StringVar(&runLanguage, "language", defaults.Language, "word list to draw from")
	rootCmd.Flags().IntVar(&runLines, "lines", defaults.LinesToDisplay, "text lines visible during a test")
	rootCmd.Flags().Float64Var(&runCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&runPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&runPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().BoolVar(&runArmOnStart, "arm-on-start", false, "start the timer when the test opens")
	rootCmd.Flags().StringVar(&runLogFile, "log-file", "", "write debug log to this file")
	rootCmd.Flags().Lookup("log-file").NoOptDefVal = config.DefaultLogPath()

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

type runConfig struct {
	settings   model.Settings
	text       model.TextOptions
	armOnStart bool
}

func loadRunConfig(cmd *cobra.Command) (runConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return runConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &runMode, fileCfg.Settings.Mode)
	applyIntConfig(cmd, "words", &runWords, fileCfg.Settings.Words)
	applyIntConfig(cmd, "time", &runTime, fileCfg.Settings.Time)
	applyStringConfig(cmd, "language", &runLanguage, fileCfg.Settings.Language)
	applyIntConfig(cmd, "lines", &runLines, fileCfg.Settings.Lines)
	applyFloatConfig(cmd, "caps", &runCaps, fileCfg.Text.CapsPct)
	applyFloatConfig(cmd, "punct", &runPunct, fileCfg.Text.PunctPct)
	applyStringConfig(cmd, "punct-set", &runPunctSet, fileCfg.Text.PunctSet)
	applyBoolConfig(cmd, "arm-on-start", &runArmOnStart, fileCfg.Test.ArmOnStart)

	mode, ok := model.ParseMode(strings.ToLower(strings.TrimSpace(runMode)))
	if !ok {
		return runConfig{}, fmt.Errorf("--mode must be %q or %q", model.ModeWords, model.ModeTime)
	}
	cfg := runConfig{
		settings: model.Settings{
			Mode:           mode,
			WordCount:      runWords,
			TimeLimit:      runTime,
			Language:       runLanguage,
			LinesToDisplay: runLines,
		},
		text: model.TextOptions{
			CapsPct:  runCaps,
			PunctPct: runPunct,
			PunctSet: runPunctSet,
		},
		armOnStart: runArmOnStart,
	}
	if err := validateConfig(cfg); err != nil {
		return runConfig{}, err
	}
	return cfg, nil
}

func runTrainerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("remytype needs an interactive terminal")
	}

	if runLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(runLogFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := tea.LogToFile(runLogFile, "remytype")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	provider, err := loadCorpus(cfg.text)
	if err != nil {
		return err
	}
	if !provider.Has(cfg.settings.Language) {
		logErrf("unknown language %q; using %s\n", cfg.settings.Language, corpus.DefaultLanguage)
		cfg.settings.Language = corpus.DefaultLanguage
	}

	lifetime := stats.NewLifetime()
	engine := session.New(lifetime)
	st := settings.New(cfg.settings, provider.Names())
	m := tui.NewModel(provider, st, lifetime, engine, tui.Options{ArmOnStart: cfg.armOnStart})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), lifetime.Summary())
}

func loadCorpus(opts model.TextOptions) (*corpus.Provider, error) {
	lists := corpus.Builtin()
	extra, err := wordlist.LoadDir(config.DefaultWordListDir(), func(path string, err error) {
		logErrf("skipping word list %s: %v\n", path, err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	lists = append(lists, extra...)
	return corpus.New(generator.New(), opts, lists...), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	provider, err := loadCorpus(model.TextOptions{})
	if err != nil {
		return err
	}
	for _, name := range provider.Names() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d words\n", name, provider.Size(name)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := settings.Defaults()
	return fmt.Sprintf(`# remytype configuration
# Uncomment a value to enable it. CLI flags override config values.

[settings]
# mode = %q          # "words" or "time"
# words = %d             # Words per test (%d-%d)
# time = %d              # Time limit in seconds (%d-%d)
# language = %q  # Word list name, see: remytype langs
# lines = %d              # Text lines visible during a test (%d-%d)

[text]
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q     # Punctuation set

[test]
# arm-on-start = false   # Start the timer when the test opens
`,
		defaults.Mode.String(),
		defaults.WordCount, settings.MinWordCount, settings.MaxWordCount,
		defaults.TimeLimit, settings.MinTimeLimit, settings.MaxTimeLimit,
		defaults.Language,
		defaults.LinesToDisplay, settings.MinLines, settings.MaxLines,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg runConfig) error {
	s := cfg.settings
	if s.WordCount < settings.MinWordCount || s.WordCount > settings.MaxWordCount {
		return fmt.Errorf("--words must be between %d and %d", settings.MinWordCount, settings.MaxWordCount)
	}
	if s.TimeLimit < settings.MinTimeLimit || s.TimeLimit > settings.MaxTimeLimit {
		return fmt.Errorf("--time must be between %d and %d", settings.MinTimeLimit, settings.MaxTimeLimit)
	}
	if s.LinesToDisplay < settings.MinLines || s.LinesToDisplay > settings.MaxLines {
		return fmt.Errorf("--lines must be between %d and %d", settings.MinLines, settings.MaxLines)
	}
	if strings.TrimSpace(s.Language) == "" {
		return fmt.Errorf("--language must not be empty")
	}
	if cfg.text.CapsPct < 0 || cfg.text.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.text.PunctPct < 0 || cfg.text.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.text.PunctPct > 0 && cfg.text.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
