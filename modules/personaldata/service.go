package personaldata

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brform/handler"
	"github.com/dmitrymomot/brform/pkg/binder"
	"github.com/dmitrymomot/brform/pkg/form"
	"github.com/dmitrymomot/brform/pkg/i18n"
	"github.com/dmitrymomot/brform/pkg/logger"
	"github.com/dmitrymomot/brform/pkg/ratelimiter"
)

// errorSignal receives request-level errors on DataStar clients, such as an
// unknown field or a rate-limited request.
const errorSignal = "error"

// Translator localizes page text and validation reasons.
// *i18n.Translator satisfies it.
type Translator interface {
	form.Translator
	DefaultLanguage() string
}

// Service serves the personal-data form: the page itself and the endpoints the
// page calls on every keystroke, on blur and on submit. Nothing is stored.
type Service struct {
	tr           Translator
	log          *slog.Logger
	basePath     string
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Bucket
	limitKey     ratelimiter.KeyFunc
}

type Option func(*Service)

// WithBasePath sets the mount point used in page links.
func WithBasePath(path string) Option {
	return func(s *Service) { s.basePath = path }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithRateLimit throttles the POST endpoints per key.
func WithRateLimit(b *ratelimiter.Bucket, key ratelimiter.KeyFunc) Option {
	return func(s *Service) {
		if b != nil && key != nil {
			s.limiter, s.limitKey = b, key
		}
	}
}

func NewService(tr Translator, opts ...Option) *Service {
	s := &Service{tr: tr, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  ErrorPage,
			Translate:  s.translate,
			SignalName: errorSignal,
		})
	}
	s.log = s.log.With(logger.Component("personaldata"))
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	fieldOpts := []handler.WrapOption[handler.Context, FieldRequest]{
		handler.WithBinders[handler.Context, FieldRequest](binder.Signals(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	}
	format := handler.Wrap(s.format, fieldOpts...)
	validate := handler.Wrap(s.validate, fieldOpts...)
	submit := handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, FormValues](binder.Signals(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, FormValues](s.errorHandler),
	)

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			onLimit := handler.Wrap(s.fail(handler.ErrTooManyRequests),
				handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
			)
			r.Use(ratelimiter.Middleware(s.limiter, s.limitKey, onLimit))
		}
		r.Post("/format", format)
		r.Post("/format/{field}", format)
		r.Post("/validate", validate)
		r.Post("/validate/{field}", validate)
		r.Post("/submit", submit)
	})

	r.NotFound(handler.Wrap(s.fail(handler.ErrNotFound),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.MethodNotAllowed(handler.Wrap(s.fail(handler.ErrMethodNotAllowed),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) fail(err error) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response { return handler.Error(err) }
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(Page(s.pageParams(ctx, FormValues{}, nil)))
}

func (s *Service) format(ctx handler.Context, req FieldRequest) handler.Response {
	field, value, err := s.target(ctx, req)
	if err != nil {
		return handler.Error(err)
	}

	formatted := form.Format(field, value)
	if handler.IsDataStar(ctx.Request()) {
		return handler.Signals(map[string]any{
			field.String(): formatted,
			"errors":       map[string]string{field.String(): ""},
			errorSignal:    "",
		})
	}
	return handler.JSON(FormatResponse{Field: field.String(), Value: formatted})
}

func (s *Service) validate(ctx handler.Context, req FieldRequest) handler.Response {
	field, value, err := s.target(ctx, req)
	if err != nil {
		return handler.Error(err)
	}

	res := form.Validate(field, value)
	reason := res.Localize(s.tr, s.lang(ctx))
	if !res.OK() {
		s.log.DebugContext(ctx, "field rejected", logger.Field(field.String()), logger.Reason(res.Code()))
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.Signals(map[string]any{
			"errors":    map[string]string{field.String(): reason},
			errorSignal: "",
		})
	}
	return handler.JSON(ValidateResponse{
		Field:  field.String(),
		Valid:  res.OK(),
		Code:   res.Code(),
		Reason: reason,
	})
}

func (s *Service) submit(ctx handler.Context, req FormValues) handler.Response {
	report := form.ValidateAll(req.Values())
	reasons := report.Localize(s.tr, s.lang(ctx))
	r := ctx.Request()

	if report.OK() {
		s.log.InfoContext(ctx, "personal data accepted")
	} else {
		codes := make([]slog.Attr, 0, len(reasons))
		names := make([]string, 0, len(reasons))
		for _, f := range report.Invalid() {
			names = append(names, f.String())
			codes = append(codes, slog.String(f.String(), report[f].Code()))
		}
		s.log.DebugContext(ctx, "personal data rejected",
			logger.InvalidFields(names),
			logger.Group("reasons", codes...),
		)
	}

	message := s.tr.Td(s.lang(ctx), "page.success", "All fields are valid")
	if !report.OK() {
		message = s.tr.Td(s.lang(ctx), "page.failure", "Please fix the highlighted fields")
	}

	switch {
	case handler.IsDataStar(r):
		errs := make(map[string]string, len(report))
		for _, f := range form.Fields() {
			errs[f.String()] = reasons[f]
		}
		return handler.Signals(map[string]any{
			"errors":    errs,
			"success":   report.OK(),
			"message":   message,
			errorSignal: "",
		})
	case handler.WantsJSON(r):
		if !report.OK() {
			verr := handler.NewValidationError()
			for _, f := range report.Invalid() {
				verr.Add(f.String(), reasons[f])
			}
			return handler.JSONError(verr)
		}
		return handler.JSON(SubmitResponse{OK: true, Message: message})
	}

	p := s.pageParams(ctx, req, reasons)
	p.Message, p.Success = message, report.OK()
	status := http.StatusOK
	if !report.OK() {
		status = http.StatusUnprocessableEntity
	}
	return handler.TemplWithStatus(status, Page(p))
}

// target resolves the addressed field and its raw value. DataStar requests
// name the field in the URL and carry the value in the signal store.
func (s *Service) target(ctx handler.Context, req FieldRequest) (form.Field, string, error) {
	name := chi.URLParam(ctx.Request(), "field")
	if name == "" {
		name = req.Field
	}
	field, err := form.ParseField(name)
	if err != nil {
		verr := handler.NewValidationError()
		verr.Add("field", s.tr.Td(s.lang(ctx), "form.unknown_field", "unknown field"))
		return 0, "", verr
	}
	if handler.IsDataStar(ctx.Request()) {
		return field, req.Get(field), nil
	}
	return field, req.Value, nil
}

func (s *Service) pageParams(ctx context.Context, values FormValues, errs map[form.Field]string) PageParams {
	lang := s.lang(ctx)
	p := PageParams{
		Lang:         lang,
		Title:        s.tr.Td(lang, "page.title", "Personal data"),
		Intro:        s.tr.Td(lang, "page.intro", ""),
		Submit:       s.tr.Td(lang, "page.submit", "Submit"),
		BasePath:     s.basePath,
		Labels:       make(map[form.Field]string, len(form.Fields())),
		Placeholders: make(map[form.Field]string, len(form.Fields())),
		Values:       values,
		Errors:       errs,
	}
	for _, f := range form.Fields() {
		p.Labels[f] = s.tr.Td(lang, "page.labels."+f.String(), f.String())
		p.Placeholders[f] = s.tr.Td(lang, "page.placeholders."+f.String(), "")
	}
	return p
}

func (s *Service) translate(ctx context.Context, key, fallback string) string {
	return s.tr.Td(s.lang(ctx), key, fallback)
}

func (s *Service) lang(ctx context.Context) string {
	if lang, ok := i18n.LocaleFromContext(ctx); ok {
		return lang
	}
	return s.tr.DefaultLanguage()
}
