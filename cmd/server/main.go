package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/CAFxX/httpcompression"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/brform/modules/personaldata"
	"github.com/dmitrymomot/brform/pkg/clientip"
	"github.com/dmitrymomot/brform/pkg/config"
	"github.com/dmitrymomot/brform/pkg/environment"
	"github.com/dmitrymomot/brform/pkg/form"
	"github.com/dmitrymomot/brform/pkg/httpserver"
	"github.com/dmitrymomot/brform/pkg/i18n"
	"github.com/dmitrymomot/brform/pkg/logger"
	"github.com/dmitrymomot/brform/pkg/ratelimiter"
	"github.com/dmitrymomot/brform/pkg/requestid"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"brform"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt"`
	TrustProxy      bool   `env:"TRUST_PROXY" envDefault:"false"`
	HTTP            httpserver.Config
	RateLimit       ratelimiter.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	env := environment.Parse(cfg.Env)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = environment.WithContext(ctx, env)

	tr, err := newTranslator(ctx, cfg.DefaultLanguage, env, log)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	compress, err := httpcompression.DefaultAdapter(
		httpcompression.ContentTypes([]string{"text/event-stream"}, true),
	)
	if err != nil {
		return fmt.Errorf("compression: %w", err)
	}

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.Recoverer,
		compress,
		i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(tr.SupportedLanguages()...)),
			cfg.DefaultLanguage,
		),
	)
	r.Get("/health/live", httpserver.HealthHandler(log))
	r.Get("/health/ready", httpserver.HealthHandler(log, func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return errors.New("no translations loaded")
		}
		return nil
	}))
	r.Mount("/", personaldata.NewService(tr,
		personaldata.WithLogger(log),
		personaldata.WithRateLimit(bucket, clientip.KeyFunc(cfg.TrustProxy)),
	).Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

func newTranslator(ctx context.Context, lang string, env environment.Environment, log *slog.Logger) (*i18n.Translator, error) {
	parser := i18n.NewYAMLParser()
	return i18n.NewTranslator(ctx,
		i18n.NewMultiAdapter(
			i18n.NewEmbeddedFsAdapter(parser, form.Locales, form.LocalesDir),
			i18n.NewEmbeddedFsAdapter(parser, personaldata.Locales, personaldata.LocalesDir),
		),
		i18n.WithDefaultLanguage(lang),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(env.IsDevelopment()),
	)
}
