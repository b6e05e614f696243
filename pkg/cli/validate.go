package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Hareramrai/missing-validators/pkg/i18n"
	"github.com/Hareramrai/missing-validators/pkg/logger"
	"github.com/Hareramrai/missing-validators/pkg/ruleset"
	"github.com/Hareramrai/missing-validators/pkg/validator"
)

// ErrInvalidRecord is returned with --fail-on-error when validation fails.
var ErrInvalidRecord = errors.New("record is invalid")

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Validate a JSON record against a YAML rule file",
		Description: `Validate the attributes of a JSON object against declarative rules.

# Rule Format

  rules:
    - attribute: website
      url: {scheme: [https], domain: [com, org], root: true}
    - attribute: email
      email: {domain: example.com}
    - attribute: age
      inequality: {greater_than_or_equal_to: 18}
    - attribute: start_date
      inequality: {less_than: {attribute: end_date}}

# Examples

Validate a record file:
  validate --rules rules.yaml --input record.json

Read the record from stdin and print German messages as YAML:
  cat record.json | validate -r rules.yaml --locale de --format yaml

Fail the command if the record is invalid (useful for CI/CD):
  validate -r rules.yaml -i record.json --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the YAML rule file",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to the JSON record; stdin when empty or -",
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "Message language, a tag or an Accept-Language list (default $VALIDATE_LOCALE or en)",
			},
			&cli.StringFlag{
				Name:  "locales-dir",
				Usage: "Directory of YAML or JSON translations merged over the built-in messages",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: json or yaml",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of validations evaluated in parallel",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if the record is invalid",
			},
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	root := cmd.Root()
	log, err := newLogger(root.ErrWriter, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(cfg.Format)
	if err != nil {
		return err
	}

	rulesPath := cmd.String("rules")
	log.InfoContext(ctx, "loading rules", logger.Path(rulesPath))
	rules, err := ruleset.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("failed to load rules from %q: %w", rulesPath, err)
	}

	values, err := readRecord(root.Reader, cmd.String("input"))
	if err != nil {
		return err
	}

	var extra []i18n.TranslationAdapter
	if cfg.LocalesDir != "" {
		log.InfoContext(ctx, "loading translations", logger.Path(cfg.LocalesDir))
		extra = append(extra, i18n.NewDirectoryAdapter(nil, cfg.LocalesDir))
	}
	translator, err := validator.NewLocalesTranslator(ctx, extra,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	locale := i18n.MatchLanguage(cfg.Locale, translator.SupportedLanguages(), i18n.DefaultLanguage)
	ctx = i18n.SetLocale(ctx, locale)
	validations, err := rules.Compile(validator.NewTranslatorCatalog(translator, locale))
	if err != nil {
		return fmt.Errorf("invalid rules in %q: %w", rulesPath, err)
	}

	log.InfoContext(ctx, "validating record",
		"rules", len(validations),
		"concurrency", cfg.Concurrency)

	start := time.Now()
	record := validator.NewMapRecord(values)
	runner := validator.NewRunner(
		validator.WithLogger(log),
		validator.WithConcurrency(cfg.Concurrency),
	)
	if err := runner.Run(ctx, record, validations...); err != nil && !validator.IsValidationError(err) {
		return err
	}

	res := newResult(locale, record.Errors().All())
	if err := writeResult(root.Writer, format, res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	log.InfoContext(ctx, "validation completed",
		"valid", res.Valid,
		"errors", len(res.Errors),
		logger.Duration(time.Since(start)))

	if cmd.Bool("fail-on-error") && !res.Valid {
		return fmt.Errorf("%w: %d error(s)", ErrInvalidRecord, len(res.Errors))
	}
	return nil
}

func applyFlags(cmd *cli.Command, cfg *Config) {
	if cmd.IsSet("locale") {
		cfg.Locale = cmd.String("locale")
	}
	if cmd.IsSet("locales-dir") {
		cfg.LocalesDir = cmd.String("locales-dir")
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("concurrency") {
		cfg.Concurrency = int(cmd.Int("concurrency"))
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
}

// readRecord decodes one JSON object from path, or from stdin when path is empty or "-".
func readRecord(stdin io.Reader, path string) (map[string]any, error) {
	src := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open record %q: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	var values map[string]any
	if err := json.NewDecoder(src).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	if values == nil {
		return nil, errors.New("record must be a JSON object")
	}
	return values, nil
}
