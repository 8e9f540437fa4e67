package bootstrap

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/maybe-hello-world/passgen-embedded/cmd/passgen/config"
	"github.com/maybe-hello-world/passgen-embedded/pkg/random"
	"github.com/maybe-hello-world/passgen-embedded/pkg/security/hasher/bcrypt"
)

var ErrConfigInvalidSeed = errors.New("seed must be an unsigned 64-bit integer")
var ErrConfigHashTooLong = errors.New("password is too long to be hashed")

// Config reads the configuration from the environment first,
// then lets the command line arguments override it
func Config(args []string) (config.Config, error) {
	cfg := config.Config{}

	if err := env.Parse(&cfg); err != nil {
		return config.Config{}, err
	}

	flags := flag.NewFlagSet("passgen", flag.ContinueOnError)
	flags.IntVar(&cfg.Length, "l", cfg.Length, "Password length")
	flags.StringVar(
		&cfg.SeedRaw, "s", cfg.SeedRaw,
		"Seed to derive passwords from. The same seed always yields the same password.\n"+
			"A random seed is drawn when omitted",
	)
	flags.IntVar(&cfg.Count, "n", cfg.Count, "Number of passwords to generate, using consecutive seeds")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Output format. Available options: text, json")
	flags.BoolVar(&cfg.Hash, "hash", cfg.Hash, "Also print a bcrypt hash of every password")
	flags.IntVar(&cfg.HashCost, "hash.cost", cfg.HashCost, "bcrypt cost")
	flags.StringVar(
		&cfg.LogLevel, "log.level", "warn",
		"Only log messages with the given severity or above.\n"+
			"For example: debug, info, warn, error and other levels supported by zerolog",
	)
	flags.StringVar(
		&cfg.LogOutput, "log.output", "console",
		"Output format of log messages. Available options: console, stdout, json",
	)

	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	if err := validateConfig(cfg); err != nil {
		return config.Config{}, err
	}

	if err := configureSeed(&cfg); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg config.Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	// bcrypt only takes the first bytes of a password into account
	if cfg.Hash && cfg.Length > bcrypt.MaxPasswordLength {
		return fmt.Errorf("%w: length %d exceeds %d", ErrConfigHashTooLong, cfg.Length, bcrypt.MaxPasswordLength)
	}
	return nil
}

func configureSeed(cfg *config.Config) error {
	if cfg.SeedRaw != "" {
		seed, err := strconv.ParseUint(cfg.SeedRaw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrConfigInvalidSeed, cfg.SeedRaw)
		}
		cfg.Seed = seed
		cfg.SeedPinned = true
		return nil
	}
	seed, err := random.Seed()
	if err != nil {
		return err
	}
	cfg.Seed = seed
	return nil
}
