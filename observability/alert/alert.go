// Package alert reports internal failures of tab commands with a per operation
// cooldown, so one broken code path does not flood the channel.
package alert

import (
	"context"
	"sync"
	"time"

	"github.com/code19m/errx"

	"github.com/TechArp/CafeApp/observability/logger"
)

const (
	providerLog  = "log"
	providerNoop = "noop"

	CodeUnknownProvider = "UNKNOWN_ALERT_PROVIDER"
)

// Config defines configuration options for the alert package.
type Config struct {
	// Provider selects where alerts go: "log" writes them through the logger, "noop" drops them.
	Provider string `yaml:"provider" validate:"oneof=log noop" default:"noop"`

	// Cooldown is the minimum interval between alerts for the same operation and error code.
	Cooldown time.Duration `yaml:"cooldown" default:"5m"`
}

// Provider defines the interface for sending error alerts.
type Provider interface {
	// SendError reports an error identified by errCode that happened during operation.
	SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error
}

// NewProvider creates a provider from cfg.
func NewProvider(cfg Config, log logger.Logger) (Provider, error) {
	switch cfg.Provider {
	case providerNoop, "":
		return NoopProvider{}, nil
	case providerLog:
		return &logProvider{
			log:      log.Named("alert"),
			cooldown: cfg.Cooldown,
			now:      time.Now,
			lastSent: make(map[string]time.Time),
		}, nil
	}
	return nil, errx.New("unknown alert provider",
		errx.WithCode(CodeUnknownProvider),
		errx.WithType(errx.T_Validation),
		errx.WithDetails(errx.D{"provider": cfg.Provider}),
	)
}

// NoopProvider drops every alert.
type NoopProvider struct{}

func (NoopProvider) SendError(context.Context, string, string, string, map[string]string) error {
	return nil
}

type logProvider struct {
	log      logger.Logger
	cooldown time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[string]time.Time
}

func (p *logProvider) SendError(ctx context.Context, errCode, msg, operation string, details map[string]string) error {
	if !p.allow(operation + "|" + errCode) {
		return nil
	}

	p.log.WithContext(ctx).
		With("error_code", errCode, "operation", operation, "details", details).
		Error(msg)
	return nil
}

func (p *logProvider) allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if last, ok := p.lastSent[key]; ok && now.Sub(last) < p.cooldown {
		return false
	}
	p.lastSent[key] = now
	return true
}
