// Package synthesis wraps the generation oracle with retry, fallback, and
// script-normalization logic. Synthesize never fails: the caller always gets
// text back, with Origin recording whether the oracle produced it.
package synthesis

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"health-agent/internal/domain"
	"health-agent/internal/templates"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

// Oracle is the external text-completion dependency.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// rateLimited and safetyBlocked are the error classes the oracle may surface.
// Matched structurally so this package never imports the oracle integration.
type rateLimited interface {
	RateLimited() bool
}

type safetyBlocked interface {
	SafetyBlocked() bool
}

// Engine builds prompts and executes the bounded retry policy.
type Engine struct {
	oracle      Oracle
	templates   templates.Source
	log         *zap.Logger
	maxAttempts int
	retryDelay  time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts bounds the total number of oracle calls per request.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithRetryDelay sets the fixed delay between rate-limited attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.retryDelay = d
		}
	}
}

// WithSleep overrides the delay function, letting tests run without waiting.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) {
		e.sleep = sleep
	}
}

// New creates an Engine.
func New(oracle Oracle, src templates.Source, log *zap.Logger, opts ...Option) (*Engine, error) {
	if oracle == nil {
		return nil, errors.New("synthesis: oracle must not be nil")
	}
	if src == nil {
		return nil, errors.New("synthesis: template source must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		oracle:      oracle,
		templates:   src,
		log:         log,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Synthesize runs one generation request to completion. Rate limits are
// retried sequentially with a fixed delay up to the attempt bound; safety
// blocks and all other failures degrade to a localized fallback constant.
func (e *Engine) Synthesize(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	prompt := buildPrompt(req)

	for attempt := 1; ; attempt++ {
		text, err := e.oracle.Complete(ctx, prompt)
		if err == nil {
			if req.Script == domain.ScriptTransliteration {
				text = StripNativeScript(text, req.Language)
			}
			return domain.GenerationResult{Text: text, Origin: domain.OriginFresh}
		}

		var blocked safetyBlocked
		if errors.As(err, &blocked) && blocked.SafetyBlocked() {
			e.log.Warn("generation blocked by safety filter",
				zap.String("mode", string(req.Mode)),
				zap.Error(err))
			return e.fallback(templates.KeyFallbackSafety, req)
		}

		var limited rateLimited
		if errors.As(err, &limited) && limited.RateLimited() && attempt < e.maxAttempts {
			e.log.Warn("generation rate limited, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("delay", e.retryDelay))
			if sleepErr := e.sleep(ctx, e.retryDelay); sleepErr != nil {
				return e.fallback(templates.KeyFallbackGeneric, req)
			}
			continue
		}

		e.log.Warn("generation failed, degrading to fallback",
			zap.Int("attempt", attempt),
			zap.String("mode", string(req.Mode)),
			zap.Error(err))
		return e.fallback(templates.KeyFallbackGeneric, req)
	}
}

// fallback returns the fixed per-language constant for key. Transliteration
// users get the English rendering rather than a stripped-out native one.
func (e *Engine) fallback(key templates.Key, req domain.GenerationRequest) domain.GenerationResult {
	lang := req.Language
	if req.Script == domain.ScriptTransliteration {
		lang = domain.DefaultLanguage
	}
	return domain.GenerationResult{
		Text:   e.templates.Template(key, lang),
		Origin: domain.OriginFallback,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
