package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/code19m/errx"
	metrics "github.com/rcrowley/go-metrics"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/cfgloader"
	"github.com/TechArp/CafeApp/menu"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/alert"
	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/observability/tracing"
	"github.com/TechArp/CafeApp/outcome"
	"github.com/TechArp/CafeApp/publish"
	"github.com/TechArp/CafeApp/tabcmd"
)

type Config struct {
	Service struct {
		Name    string `yaml:"name" validate:"required" default:"cafe"`
		Version string `yaml:"version" default:"dev"`
	} `yaml:"service"`

	Logger  logger.Config           `yaml:"logger"`
	Tracing tracing.Config          `yaml:"tracing"`
	Alert   alert.Config            `yaml:"alert"`
	Events  publish.GoChannelConfig `yaml:"events"`
	Command tabcmd.Config           `yaml:"command"`
	Menu    menu.Config             `yaml:"menu"`

	// Visit is the tab played through on start: one table ordering by menu number.
	Visit struct {
		Table  int   `yaml:"table" validate:"gt=0" default:"1"`
		Drinks []int `yaml:"drinks"`
		Foods  []int `yaml:"foods"`
	} `yaml:"visit"`
}

func main() {
	cfg := cfgloader.MustLoad[Config]()

	meta.SetServiceInfo(cfg.Service.Name, cfg.Service.Version)
	logger.SetGlobal(cfg.Logger)
	log := logger.Named("cafe")
	defer func() { _ = logger.Sync() }()

	shutdownTracer, err := tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		log.Fatalx(err)
	}
	defer func() {
		if err := shutdownTracer(); err != nil {
			log.Errorx(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Errorx(err)
	}
}

func run(ctx context.Context, cfg Config, log logger.Logger) error {
	catalog, err := menu.NewCatalog(cfg.Menu)
	if err != nil {
		return errx.Wrap(err)
	}

	alertProvider, err := alert.NewProvider(cfg.Alert, log)
	if err != nil {
		return errx.Wrap(err)
	}

	pubsub := publish.NewGoChannel(cfg.Events, log)
	defer func() { _ = pubsub.Close() }()

	msgs, err := pubsub.Subscribe(ctx, cfg.Events.Topic)
	if err != nil {
		return errx.Wrap(err)
	}
	board := tabcmd.NewBoard()
	go publish.Consume(ctx, msgs, board, log)

	registry := metrics.NewRegistry()
	svc := tabcmd.New(
		tabcmd.WithLogger(log),
		tabcmd.WithPublisher(publish.NewWatermillPublisher(pubsub, cfg.Events.Topic, log)),
		tabcmd.WithMetricsRegistry(registry),
		tabcmd.WithAlertProvider(alertProvider),
		tabcmd.WithTimeout(cfg.Command.Timeout),
		tabcmd.WithService(cfg.Service.Name, cfg.Service.Version),
	)

	tab := cafe.NewTab(cfg.Visit.Table)
	order, err := outcome.Either(catalog.Order(tab, cfg.Visit.Drinks, cfg.Visit.Foods),
		func(o cafe.Order, warnings []menu.Problem) orderResult {
			for _, w := range warnings {
				log.With("menu_number", w.MenuNumber).Warn(w.String())
			}
			return orderResult{order: o}
		},
		func(problems []menu.Problem) orderResult {
			return orderResult{err: menu.ToErrorX(problems)}
		},
	).unpack()
	if err != nil {
		return err
	}

	var (
		state    = cafe.InitialState()
		recorded []cafe.Event
	)
	for _, cmd := range visit(order) {
		resp, err := svc.Execute(ctx, tabcmd.Request{State: state, Command: cmd})
		if err != nil {
			return errx.Wrap(err)
		}
		state = resp.State
		recorded = append(recorded, resp.Events...)
	}

	replayed, err := tabcmd.NewReplay().Execute(ctx, recorded)
	if err != nil {
		return errx.Wrap(err)
	}

	boardState := "<untracked>"
	if s, ok := board.State(tab.ID); ok {
		boardState = s.Name()
	}

	log.With("tab_id", tab.ID.String()).
		With("state", state.Name()).
		With("replayed_state", replayed.Name()).
		With("board_state", boardState).
		With("events", len(recorded)).
		Info("visit finished")

	if served, ok := state.(cafe.ServedOrder); ok {
		log.With("amount", cafe.NewPayment(served.Order).Amount.StringFixed(2)).Info("tab ready for payment")
	}

	metrics.WriteOnce(registry, os.Stdout)
	return nil
}

type orderResult struct {
	order cafe.Order
	err   error
}

func (r orderResult) unpack() (cafe.Order, error) {
	return r.order, r.err
}

// visit lists the commands of a full visit: open, order, serve every drink,
// then prepare and serve every food.
func visit(order cafe.Order) []cafe.Command {
	cmds := []cafe.Command{
		cafe.OpenTab{Tab: order.Tab},
		cafe.PlaceOrder{Order: order},
	}
	for _, d := range order.Drinks {
		cmds = append(cmds, cafe.ServeDrink{Drink: d, TabID: order.Tab.ID})
	}
	for _, f := range order.Foods {
		cmds = append(cmds,
			cafe.PrepareFood{Food: f, TabID: order.Tab.ID},
			cafe.ServeFood{Food: f, TabID: order.Tab.ID},
		)
	}
	return cmds
}
