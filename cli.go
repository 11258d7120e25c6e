package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/metcalfc/skim/internal/config"
	"github.com/metcalfc/skim/internal/display"
	"github.com/metcalfc/skim/internal/library"
	"github.com/metcalfc/skim/internal/logging"
	"github.com/metcalfc/skim/internal/quiz"
	"github.com/metcalfc/skim/internal/reader"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNoText = errors.New("no text to read")

const exampleUsage = `  skim                          Read the default sample
  skim book.epub                Read an EPUB at 300 WPM
  skim -w 500 -c 2 notes.md     Read Markdown, 500 WPM, two words per chunk
  skim --watch draft.txt        Reload draft.txt whenever it is saved
  cat file.txt | skim           Read from stdin
  skim --sample sample3         Read a built-in sample`

// source is the text a session starts with.
type source struct {
	Title string
	Text  string
	Path  string
}

// session is everything a frontend needs to start reading.
type session struct {
	cfg      config.Config
	settings display.Settings
	source   source
	bank     quiz.Bank
	log      zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var (
		cfgPath string
		text    string
	)

	root := &cobra.Command{
		Use:           appName + " [file]",
		Short:         "Chunked speed reading trainer",
		Long:          appName + " shows text in timed word chunks at a set words-per-minute rate,\ntracks progress and reading time, and ends with a short comprehension quiz.\n\nSupported formats: " + strings.Join(reader.SupportedFormats(), ", "),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := config.Resolve(&cfg, configPath(cfgPath), changed); err != nil {
				return err
			}

			log, closer, err := logging.New(cfg.LogFile, logging.WithLevel(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer closer.Close()

			s, err := newSession(cfg, args, text, log)
			if err != nil {
				return err
			}
			log.Info().Str("source", s.source.Title).Int("wpm", cfg.WPM).Int("chunk", cfg.ChunkSize).Msg("starting")
			return runReader(cmd.Context(), s)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: "+config.DefaultConfigPath()+")")

	f := root.Flags()
	f.IntVarP(&cfg.WPM, "wpm", "w", cfg.WPM, "words per minute (100-800)")
	f.IntVarP(&cfg.ChunkSize, "chunk", "c", cfg.ChunkSize, "words per chunk (1-10)")
	f.StringVar(&cfg.Sample, "sample", cfg.Sample, "built-in sample to read when no file is given")
	f.StringVar(&text, "text", "", "read this text instead of a file or sample")
	f.StringVar(&cfg.Highlight, "highlight", cfg.Highlight, "highlight style: "+highlightNames())
	f.StringVar(&cfg.Font, "font", cfg.Font, "font family: sans, serif, mono")
	f.StringVar(&cfg.FontSize, "font-size", cfg.FontSize, "font size: small, medium, large, x-large")
	f.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start in fullscreen")
	f.StringVar(&cfg.QuizPath, "quiz", cfg.QuizPath, "YAML question bank for the quiz")
	f.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the file when it changes on disk")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path, \"stderr\", or empty to disable")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	root.AddCommand(newSamplesCmd())
	root.AddCommand(newFormatsCmd())
	root.AddCommand(newConfigCmd(&cfgPath))

	return root
}

func highlightNames() string {
	styles := display.HighlightStyles()
	names := make([]string, len(styles))
	for i, h := range styles {
		names[i] = h.String()
	}
	return strings.Join(names, ", ")
}

func newSession(cfg config.Config, args []string, text string, log zerolog.Logger) (*session, error) {
	settings, err := cfg.Display()
	if err != nil {
		return nil, err
	}

	bank := quiz.DefaultBank()
	if cfg.QuizPath != "" {
		if bank, err = quiz.LoadBank(cfg.QuizPath); err != nil {
			return nil, err
		}
	}

	src, err := resolveSource(cfg, args, text, os.Stdin, stdinIsTerminal())
	if err != nil {
		return nil, err
	}
	if cfg.Watch && src.Path == "" {
		log.Warn().Msg("--watch needs a file argument; ignoring")
	}

	return &session{cfg: cfg, settings: settings, source: src, bank: bank, log: log}, nil
}

// resolveSource picks the starting text: a file argument, then --text, then
// piped stdin, then the configured sample.
func resolveSource(cfg config.Config, args []string, text string, stdin io.Reader, stdinTTY bool) (source, error) {
	switch {
	case len(args) > 0:
		path, err := filepath.Abs(args[0])
		if err != nil {
			return source{}, fmt.Errorf("resolve %s: %w", args[0], err)
		}
		body, err := reader.ExtractText(path)
		if err != nil {
			return source{}, fmt.Errorf("failed to read file '%s': %w", args[0], err)
		}
		if strings.TrimSpace(body) == "" {
			return source{}, errNoText
		}
		return source{Title: filepath.Base(path), Text: body, Path: path}, nil

	case text != "":
		return source{Title: "Custom text", Text: text}, nil

	case !stdinTTY:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return source{}, fmt.Errorf("error reading stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return source{}, errNoText
		}
		return source{Title: "Standard input", Text: string(data)}, nil
	}

	s, _ := library.Get(cfg.Sample)
	return source{Title: s.Title, Text: s.Text}, nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List built-in sample texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().Headers("ID", "TITLE", "WORDS")
			for _, s := range library.Samples() {
				t.Row(s.ID, s.Title, fmt.Sprint(reader.CountWords(s.Text)))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported file formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().Headers("FORMAT", "EXTENSIONS")
			for _, f := range reader.Formats() {
				t.Row(f.Name(), strings.Join(f.Extensions(), " "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

// configPath returns the --config value, or the default path when unset.
func configPath(flag string) string {
	if flag == "" {
		return config.DefaultConfigPath()
	}
	return flag
}

func newConfigCmd(cfgPath *string) *cobra.Command {
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath(*cfgPath)
			if printOnly {
				cfg := config.DefaultConfig()
				if err := config.Resolve(&cfg, path, nil); err != nil {
					return err
				}
				return config.Encode(cmd.OutOrStdout(), cfg)
			}
			return editConfig(path)
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the effective configuration instead of editing")
	return cmd
}

func editConfig(path string) error {
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
	c := exec.Command(parts[0], append(parts[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	d := config.DefaultConfig()
	return fmt.Sprintf(`# %s configuration
# Uncomment a value to enable it. SKIM_* environment variables override
# these values and CLI flags override both.

[reading]
# wpm = %d                # Words per minute (100-800)
# chunk = %d                # Words per chunk (1-10)
# sample = %q       # Built-in sample when no file is given
# quiz = ""                # YAML question bank
# watch = false            # Reload the file when it changes

[display]
# highlight = %q     # %s
# font = %q             # sans, serif, mono
# font-size = %q      # small, medium, large, x-large
# fullscreen = false

[log]
# file = %q
# level = %q
`,
		appName,
		d.WPM,
		d.ChunkSize,
		d.Sample,
		d.Highlight, highlightNames(),
		d.Font,
		d.FontSize,
		d.LogFile,
		d.LogLevel,
	)
}
