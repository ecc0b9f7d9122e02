// Package tabcmd runs tab commands through the command middleware chain and
// publishes the events they record.
package tabcmd

import (
	"context"
	"time"

	"github.com/code19m/errx"
	metrics "github.com/rcrowley/go-metrics"
	"go.opentelemetry.io/otel/attribute"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/cqrs/command"
	"github.com/TechArp/CafeApp/cqrs/command/wrapper"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/alert"
	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/publish"
	"github.com/TechArp/CafeApp/ucdef"
)

const (
	OperationID = "execute_tab_command"

	CodeMissingCommand = "MISSING_TAB_COMMAND"
	CodePublishFailed  = "TAB_EVENTS_PUBLISH_FAILED"

	// unknownCommand names the chain used for commands outside the cafe command set.
	unknownCommand = "unknown"
)

// Request asks to execute Command against the current State of a tab.
// A nil State is the initial state.
type Request struct {
	State   cafe.State
	Command cafe.Command
}

// Response is the state after the command and the events it recorded.
type Response struct {
	State  cafe.State
	Events []cafe.Event
}

// Config configures the command service.
type Config struct {
	// Timeout bounds a single command including publishing. Zero disables it.
	Timeout time.Duration `yaml:"timeout" default:"2s"`
}

var _ ucdef.UserAction[Request, Response] = (*Service)(nil)

// Service executes tab commands. Every command name gets its own middleware
// chain so logs, metrics and spans are labelled by command.
type Service struct {
	opts   options
	chains map[string]command.Command[Request, Response]
}

// New creates a Service.
func New(opts ...Option) *Service {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{opts: o, chains: make(map[string]command.Command[Request, Response])}
	for _, name := range []string{
		cafe.CommandOpenTab,
		cafe.CommandPlaceOrder,
		cafe.CommandServeDrink,
		cafe.CommandPrepareFood,
		cafe.CommandServeFood,
		unknownCommand,
	} {
		s.chains[name] = s.chain(name)
	}
	return s
}

func (s *Service) OperationID() string {
	return OperationID
}

// Execute runs req.Command. Rejections come back as errx validation or
// conflict errors carrying the cafe error code; the state is then unchanged.
func (s *Service) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Command == nil {
		return Response{}, errx.New("tab command is required",
			errx.WithCode(CodeMissingCommand),
			errx.WithType(errx.T_Validation),
		)
	}

	chain, ok := s.chains[req.Command.Name()]
	if !ok {
		chain = s.chains[unknownCommand]
	}
	return chain.Execute(ctx, req)
}

func (s *Service) chain(name string) command.Command[Request, Response] {
	o := s.opts
	return command.Chain(
		command.Func[Request, Response](s.evolve),
		wrapper.NewRecoveryCommandWrapper[Request, Response](o.logger, name),
		wrapper.NewTracingCommandWrapper[Request, Response]("tab."+name, spanAttributes),
		wrapper.NewMetaInjectCommandWrapper[Request, Response](o.serviceName, o.serviceVersion, requestMeta),
		wrapper.NewLoggerCommandWrapper[Request, Response](o.logger, name),
		wrapper.NewMetricsCommandWrapper[Request, Response](o.registry, name),
		wrapper.NewAlertCommandWrapper[Request, Response](o.logger, o.alertProvider, name),
		wrapper.NewTimeoutCommandWrapper[Request, Response](o.timeout),
	)
}

func (s *Service) evolve(ctx context.Context, req Request) (Response, error) {
	state := req.State
	if state == nil {
		state = cafe.InitialState()
	}

	result := cafe.Evolve(state, req.Command)
	evolution, ok := result.Value()
	if !ok {
		return Response{}, cafe.ToErrorX(result.Errors())
	}

	if s.opts.publisher != nil {
		if err := s.opts.publisher.Publish(ctx, evolution.Events...); err != nil {
			return Response{}, errx.Wrap(err,
				errx.WithCode(CodePublishFailed),
				errx.WithType(errx.T_Internal),
			)
		}
	}

	return Response{State: evolution.State, Events: evolution.Events}, nil
}

func requestMeta(req Request) map[meta.ContextKey]string {
	return map[meta.ContextKey]string{
		meta.TabID:       req.Command.AggregateID().String(),
		meta.CommandName: req.Command.Name(),
	}
}

func spanAttributes(req Request) []attribute.KeyValue {
	state := "<nil>"
	if req.State != nil {
		state = req.State.Name()
	}
	return []attribute.KeyValue{
		attribute.String("tab.id", req.Command.AggregateID().String()),
		attribute.String("tab.command", req.Command.Name()),
		attribute.String("tab.state", state),
	}
}

// Option configures a Service.
type Option func(*options)

type options struct {
	logger         logger.Logger
	publisher      publish.Publisher
	registry       metrics.Registry
	alertProvider  alert.Provider
	timeout        time.Duration
	serviceName    string
	serviceVersion string
}

func defaultOptions() options {
	return options{
		logger:         logger.Nop(),
		registry:       metrics.DefaultRegistry,
		alertProvider:  alert.NoopProvider{},
		serviceName:    meta.Service(),
		serviceVersion: meta.Version(),
	}
}

// WithLogger sets the logger used by the middleware chain.
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithPublisher publishes the events of every accepted command.
func WithPublisher(p publish.Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithMetricsRegistry sets the registry command metrics are recorded into.
func WithMetricsRegistry(r metrics.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithAlertProvider reports internal failures to p.
func WithAlertProvider(p alert.Provider) Option {
	return func(o *options) { o.alertProvider = p }
}

// WithTimeout bounds every command. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithService sets the service name and version injected into command metadata.
func WithService(name, version string) Option {
	return func(o *options) {
		o.serviceName = name
		o.serviceVersion = version
	}
}
