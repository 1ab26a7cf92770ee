package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"passgen/internal/errors"
	"passgen/internal/log"
	"passgen/internal/passgen"
)

// Setting keys. Each is also a flag name and, upper-cased with the PASSGEN_
// prefix, an environment variable.
const (
	keyConfig            = "config"
	keyLength            = "length"
	keyCount             = "count"
	keyNoUppercase       = "no_uppercase"
	keyNoLowercase       = "no_lowercase"
	keyNoNumbers         = "no_numbers"
	keyNoCommonSpecial   = "no_common_special"
	keyNoUncommonSpecial = "no_uncommon_special"
	keyNoMathChars       = "no_math_chars"
	keyLowBoundary       = "low_bucket_boundary"
	keyMidBoundary       = "mid_bucket_boundary"
	keyVerbose           = "verbose"
	keyLogLevel          = "log_level"
	keyLogFormat         = "log_format"
)

// Log formats accepted by --log_format.
const (
	logFormatConsole = "console"
	logFormatPlain   = "plain"
)

const envPrefix = "PASSGEN"

// conflictMessage is shown when both letter cases are disabled.
const conflictMessage = "You can't use both the --no_uppercase and --no_lowercase options together - they are mutually exclusive"

// Options is the validated outcome of flags, environment and config file.
type Options struct {
	Config     passgen.Config
	Count      int
	Verbose    bool
	LogLevel   log.Level
	LogFormat  string
	ConfigFile string // Config file that was read, if any
}

// addFlags registers the generation flags on fs.
func addFlags(fs *pflag.FlagSet) {
	fs.IntP(keyLength, "l", passgen.DefaultLength, "The length of your password, minimum 4")
	fs.IntP(keyCount, "c", 1, "Number of passwords to generate")

	fs.Bool(keyNoUppercase, false, "Forces all generated letters to be lowercase")
	fs.Bool(keyNoLowercase, false, "Forces all generated letters to be UPPERCASE")
	fs.Bool(keyNoNumbers, false, "Excludes numbers from the password")
	fs.Bool(keyNoCommonSpecial, false, "Excludes common special characters "+passgen.CommonSpecial)
	fs.Bool(keyNoUncommonSpecial, false, "Excludes uncommon special characters "+passgen.UncommonSpecial)
	fs.Bool(keyNoMathChars, false, "Excludes math characters "+passgen.MathChars)

	fs.Int(keyLowBoundary, passgen.DefaultLowBoundary, "Draws in [0,100] below this pick a letter")
	fs.Int(keyMidBoundary, passgen.DefaultMidBoundary, "Draws below this (and not below the low boundary) pick a number; the rest pick a special character")

	fs.BoolP(keyVerbose, "v", false, "Log generation details to stderr")
	fs.String(keyLogLevel, "debug", "Minimum level logged with --verbose: debug, info, warn or error")
	fs.String(keyLogFormat, logFormatConsole, "Verbose log format: console or plain")
	fs.String(keyConfig, "", "YAML config file (default $"+envPrefix+"_CONFIG)")
}

// newSettings layers flags over PASSGEN_* environment variables over an
// optional YAML config file over flag defaults.
func newSettings(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString(keyConfig)
	if cfgFile == "" {
		return v, nil
	}
	if _, err := os.Stat(cfgFile); err != nil {
		return nil, errors.Wrap(err, "config file not found")
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "reading config file "+cfgFile)
	}
	return v, nil
}

// loadOptions reads and validates every setting from v.
func loadOptions(v *viper.Viper) (Options, error) {
	level, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Options{}, errors.NewFieldError(keyLogLevel,
			fmt.Sprintf("--%s must be one of debug, info, warn, error, got %q", keyLogLevel, v.GetString(keyLogLevel)),
			errors.ErrInvalidLogSetting)
	}

	opts := Options{
		Config: passgen.Config{
			Length:               v.GetInt(keyLength),
			AllowUppercase:       !v.GetBool(keyNoUppercase),
			AllowLowercase:       !v.GetBool(keyNoLowercase),
			AllowNumbers:         !v.GetBool(keyNoNumbers),
			AllowCommonSpecial:   !v.GetBool(keyNoCommonSpecial),
			AllowUncommonSpecial: !v.GetBool(keyNoUncommonSpecial),
			AllowMathChars:       !v.GetBool(keyNoMathChars),
			LowBoundary:          v.GetInt(keyLowBoundary),
			MidBoundary:          v.GetInt(keyMidBoundary),
		},
		Count:      v.GetInt(keyCount),
		Verbose:    v.GetBool(keyVerbose),
		LogLevel:   level,
		LogFormat:  strings.ToLower(v.GetString(keyLogFormat)),
		ConfigFile: v.ConfigFileUsed(),
	}
	return opts, opts.Validate()
}

// Validate enforces the command-line constraints on top of what the
// generator itself checks.
func (o Options) Validate() error {
	c := o.Config
	if !c.AllowUppercase && !c.AllowLowercase {
		return &errors.ValidationError{Field: keyNoLowercase, Message: conflictMessage, Err: errors.ErrConflictingConstraint}
	}
	if c.Length < passgen.MinLength {
		return errors.NewFieldError(keyLength,
			fmt.Sprintf("password length must be at least %d, got %d", passgen.MinLength, c.Length),
			errors.ErrInvalidLength)
	}
	if o.Count < 1 {
		return errors.NewFieldError(keyCount,
			fmt.Sprintf("count must be at least 1, got %d", o.Count),
			errors.ErrInvalidCount)
	}
	if c.LowBoundary < 0 || c.LowBoundary > passgen.MaxBoundary {
		return errors.NewFieldError(keyLowBoundary,
			fmt.Sprintf("--%s must be within [0,%d], got %d", keyLowBoundary, passgen.MaxBoundary, c.LowBoundary),
			errors.ErrInvalidBoundary)
	}
	if c.MidBoundary < c.LowBoundary || c.MidBoundary > passgen.MaxBoundary {
		return errors.NewFieldError(keyMidBoundary,
			fmt.Sprintf("--%s must be within [%d,%d], got %d", keyMidBoundary, c.LowBoundary, passgen.MaxBoundary, c.MidBoundary),
			errors.ErrInvalidBoundary)
	}
	if o.LogFormat != logFormatConsole && o.LogFormat != logFormatPlain {
		return errors.NewFieldError(keyLogFormat,
			fmt.Sprintf("--%s must be %s or %s, got %q", keyLogFormat, logFormatConsole, logFormatPlain, o.LogFormat),
			errors.ErrInvalidLogSetting)
	}
	return nil
}

// warnBuckets logs bucket layouts that leave a fill bucket unreachable.
func warnBuckets(c passgen.Config) {
	if c.LowBoundary == 0 {
		log.Warn("letter bucket is empty; letters come only from coverage and fallbacks",
			log.Int("low_boundary", c.LowBoundary))
	}
	if c.AllowNumbers && c.LowBoundary == c.MidBoundary {
		log.Warn("number bucket is empty; numbers come only from coverage",
			log.Int("low_boundary", c.LowBoundary),
			log.Int("mid_boundary", c.MidBoundary))
	}
}
