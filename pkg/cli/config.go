package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/Hareramrai/missing-validators/pkg/config"
	"github.com/Hareramrai/missing-validators/pkg/i18n"
	"github.com/Hareramrai/missing-validators/pkg/logger"
)

// ErrInvalidConfig wraps every settings check failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the environment defaults of the command. Flags win over it.
type Config struct {
	Locale      string `env:"VALIDATE_LOCALE" envDefault:"en" flag:"locale" validate:"required"`
	LocalesDir  string `env:"VALIDATE_LOCALES_DIR" flag:"locales-dir" validate:"omitempty,dir"`
	Concurrency int    `env:"VALIDATE_CONCURRENCY" envDefault:"1" flag:"concurrency" validate:"gte=1,lte=256"`
	Format      string `env:"VALIDATE_FORMAT" envDefault:"json" flag:"format" validate:"oneof=json yaml"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" flag:"log-level" validate:"required"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" flag:"log-format" validate:"required"`
}

var configValidator = func() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}()

// Validate reports every invalid setting by its flag name.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("--%s %q does not satisfy %s", fe.Field(), fmt.Sprint(fe.Value()), rule))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := logger.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithCLI(name),
		logger.WithOutput(w),
		logger.WithLevel(l),
		logger.WithFormat(f),
		logger.WithContextExtractors(localeFromContext),
	), nil
}

func localeFromContext(ctx context.Context) (slog.Attr, bool) {
	if locale := i18n.LocaleOr(ctx, ""); locale != "" {
		return logger.Locale(locale), true
	}
	return slog.Attr{}, false
}
