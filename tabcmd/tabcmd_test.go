package tabcmd_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/code19m/errx"
	"github.com/google/uuid"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TechArp/CafeApp/cafe"
	"github.com/TechArp/CafeApp/meta"
	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/tabcmd"
)

var (
	tab   = cafe.Tab{ID: uuid.MustParse("3f6a1c0b-7d2e-4b9a-8e51-0c4d2f7b9a63"), TableNumber: 7}
	pepsi = cafe.Drink{MenuItem: cafe.MenuItem{MenuNumber: 1, Name: "Pepsi", Price: decimal.RequireFromString("1.50")}}
	order = cafe.Order{Tab: tab, Drinks: []cafe.Drink{pepsi}}
)

type recordingPublisher struct {
	mu      sync.Mutex
	events  []cafe.Event
	traceID string
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, events ...cafe.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, events...)
	p.traceID = meta.Find(ctx, meta.TraceID)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestService_PepsiScenario(t *testing.T) {
	pub := &recordingPublisher{}
	registry := metrics.NewRegistry()
	svc := tabcmd.New(
		tabcmd.WithPublisher(pub),
		tabcmd.WithMetricsRegistry(registry),
		tabcmd.WithService("cafe", "test"),
	)

	var state cafe.State
	for _, cmd := range []cafe.Command{
		cafe.OpenTab{Tab: tab},
		cafe.PlaceOrder{Order: order},
		cafe.ServeDrink{Drink: pepsi, TabID: tab.ID},
	} {
		resp, err := svc.Execute(t.Context(), tabcmd.Request{State: state, Command: cmd})
		require.NoError(t, err, cmd.Name())
		state = resp.State
	}

	assert.True(t, cafe.ServedOrder{Order: order}.Equal(state), "got %#v", state)

	expected := []cafe.Event{
		cafe.TabOpened{Tab: tab},
		cafe.OrderPlaced{Order: order},
		cafe.DrinkServed{Drink: pepsi, TabID: tab.ID},
		cafe.OrderServed{Order: order, Payment: cafe.Payment{Tab: tab, Amount: decimal.RequireFromString("1.5")}},
	}
	assert.True(t, cafe.EventsEqual(expected, pub.events), "got %#v", pub.events)
	assert.NotEmpty(t, pub.traceID)

	assert.Equal(t, int64(1), metrics.GetOrRegisterCounter("command.open_tab.ok", registry).Count())
	assert.Equal(t, int64(1), metrics.GetOrRegisterCounter("command.place_order.ok", registry).Count())
	assert.Equal(t, int64(1), metrics.GetOrRegisterCounter("command.serve_drink.ok", registry).Count())
}

func TestService_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		req          tabcmd.Request
		expectedCode string
		expectedType errx.Type
	}{
		{
			name:         "order on closed tab",
			req:          tabcmd.Request{State: cafe.ClosedTab{}, Command: cafe.PlaceOrder{Order: order}},
			expectedCode: cafe.CodeCanNotOrderWithClosedTab,
			expectedType: errx.T_Conflict,
		},
		{
			name:         "empty order",
			req:          tabcmd.Request{State: cafe.OpenedTab{Tab: tab}, Command: cafe.PlaceOrder{Order: cafe.Order{Tab: tab}}},
			expectedCode: cafe.CodeCanNotPlaceEmptyOrder,
			expectedType: errx.T_Validation,
		},
		{
			name:         "tab opened twice",
			req:          tabcmd.Request{State: cafe.OpenedTab{Tab: tab}, Command: cafe.OpenTab{Tab: tab}},
			expectedCode: cafe.CodeTabAlreadyOpened,
			expectedType: errx.T_Conflict,
		},
		{
			name:         "missing command",
			req:          tabcmd.Request{State: cafe.ClosedTab{}},
			expectedCode: tabcmd.CodeMissingCommand,
			expectedType: errx.T_Validation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pub := &recordingPublisher{}
			svc := tabcmd.New(tabcmd.WithPublisher(pub), tabcmd.WithMetricsRegistry(metrics.NewRegistry()))

			resp, err := svc.Execute(t.Context(), tc.req)
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, tc.expectedCode), "got %v", err)
			assert.Equal(t, tc.expectedType, errx.AsErrorX(err).Type())
			assert.Nil(t, resp.State)
			assert.Empty(t, pub.events)
		})
	}
}

func TestService_NilStateIsInitial(t *testing.T) {
	svc := tabcmd.New(tabcmd.WithMetricsRegistry(metrics.NewRegistry()))

	resp, err := svc.Execute(t.Context(), tabcmd.Request{Command: cafe.OpenTab{Tab: tab}})
	require.NoError(t, err)
	assert.True(t, cafe.OpenedTab{Tab: tab}.Equal(resp.State))
	assert.Len(t, resp.Events, 1)
}

func TestService_PublishFailure(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := tabcmd.New(tabcmd.WithPublisher(pub), tabcmd.WithMetricsRegistry(metrics.NewRegistry()))

	resp, err := svc.Execute(t.Context(), tabcmd.Request{State: cafe.ClosedTab{}, Command: cafe.OpenTab{Tab: tab}})
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, tabcmd.CodePublishFailed))
	assert.Equal(t, errx.T_Internal, errx.AsErrorX(err).Type())
	assert.Nil(t, resp.State)
}

func TestService_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := tabcmd.New(
		tabcmd.WithLogger(logger.FromZap(zap.New(core))),
		tabcmd.WithMetricsRegistry(metrics.NewRegistry()),
	)

	_, err := svc.Execute(t.Context(), tabcmd.Request{State: cafe.ClosedTab{}, Command: cafe.ServeDrink{Drink: pepsi, TabID: tab.ID}})
	require.Error(t, err)

	rejected := logs.FilterMessage("command rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
	assert.Equal(t, cafe.CommandServeDrink, rejected[0].ContextMap()["command_name"])
	assert.Equal(t, tab.ID.String(), rejected[0].ContextMap()["tab_id"])
}

func TestService_OperationID(t *testing.T) {
	assert.Equal(t, tabcmd.OperationID, tabcmd.New().OperationID())
}
