package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"passgen/internal/log"
	"passgen/internal/passgen"
)

// Version is set by main.go
var Version = "dev"

// NewRootCommand builds the passgen command. Running it generates passwords.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate randomized passwords",
		Long: `passgen generates a randomized password from a cryptographically secure
random source.

Every enabled character class (uppercase, lowercase, numbers, special
characters) appears at least once. The remaining positions are filled by a
weighted draw: by default about 45% letters, 21% numbers and 34% special
characters. Adjust the weighting with --low_bucket_boundary and
--mid_bucket_boundary.

Settings can also come from PASSGEN_* environment variables
(e.g. PASSGEN_LENGTH=20) or a YAML file passed with --config.

Examples:
  # 12 characters, every class enabled
  passgen

  # 20 characters without special characters
  passgen -l 20 --no_common_special --no_uncommon_special --no_math_chars

  # Five uppercase-only passwords
  passgen --no_lowercase -c 5`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGenerate,
	}

	// Disable default completion command
	cmd.CompletionOptions.DisableDefaultCmd = true
	addFlags(cmd.Flags())
	return cmd
}

// Execute runs the CLI application and returns the process exit code.
func Execute(version string) int {
	Version = version
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.Version = Version
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		NewReporter(stdout, stderr, false).PrintError(err)
		return 1
	}
	return 0
}

func runGenerate(cmd *cobra.Command, args []string) error {
	v, err := newSettings(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := loadOptions(v)
	if err != nil {
		return err
	}

	reporter := NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.Verbose)
	if opts.ConfigFile != "" {
		reporter.PrintInfo("Using configuration file: %s", opts.ConfigFile)
	}

	logger, flush := newLogger(opts, cmd.ErrOrStderr())
	log.SetLogger(logger)
	defer func() {
		flush()
		log.SetLogger(nil)
	}()

	warnBuckets(opts.Config)
	log.Debug("generating passwords",
		log.Int("count", opts.Count),
		log.Int("length", opts.Config.Length),
		log.Int("low_boundary", opts.Config.LowBoundary),
		log.Int("mid_boundary", opts.Config.MidBoundary),
		log.Bool("numbers", opts.Config.AllowNumbers),
		log.String("config_file", opts.ConfigFile),
	)

	start := time.Now()
	gen := passgen.NewGenerator(nil, logger)
	for _i := 0; _i < opts.Count; _i++ {
		password, err := gen.Generate(opts.Config)
		if err != nil {
			log.Error("generation failed", log.Err(err))
			return err
		}
		reporter.PrintPassword(password)
	}
	log.Info("passwords generated",
		log.Int("count", opts.Count),
		log.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// newLogger returns the logger selected by opts and a flush func.
// Without --verbose everything is discarded.
func newLogger(opts Options, w io.Writer) (log.Logger, func()) {
	if !opts.Verbose {
		return log.Nop(), func() {}
	}
	if opts.LogFormat == logFormatPlain {
		return log.NewSimpleLogger(w, opts.LogLevel), func() {}
	}
	z := log.NewConsoleZap(w, opts.LogLevel, isTerminal(w))
	return log.NewZapLogger(z), func() { _ = z.Sync() }
}
