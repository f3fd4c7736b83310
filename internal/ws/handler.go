package ws

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/HerbHall/flowsight/internal/simcast"
	"github.com/HerbHall/flowsight/pkg/plugin"
)

// Handler provides WebSocket endpoints for real-time simulation updates.
type Handler struct {
	hub    *Hub
	bus    plugin.EventBus
	logger *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler and subscribes to simulation events.
func NewHandler(bus plugin.EventBus, logger *zap.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		bus:    bus,
		logger: logger,
	}
	h.subscribeToEvents()
	return h
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/simulations", h.handleSimulationStream)
}

// handleSimulationStream upgrades the connection to WebSocket and streams
// simulation lifecycle events.
func (h *Handler) handleSimulationStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:   conn,
		remote: r.RemoteAddr,
		send:   make(chan Message, 256),
		logger: h.logger,
	}

	h.hub.Register(client)

	// Run read and write pumps. When either exits, clean up.
	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	// Client disconnected -- stop write pump and unregister.
	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}

// subscribeToEvents subscribes to simulation lifecycle events and forwards
// them to all connected WebSocket clients.
func (h *Handler) subscribeToEvents() {
	if h.bus == nil {
		return
	}

	h.bus.Subscribe(simcast.TopicSimulationStarted, func(_ context.Context, event plugin.Event) {
		sim, ok := event.Payload.(simcast.SimulationEvent)
		if !ok {
			return
		}
		h.hub.Broadcast(Message{
			Type:      MessageSimulationStarted,
			Timestamp: event.Timestamp,
			Data: SimulationStartedData{
				Mode:          sim.Mode,
				ForecastHours: sim.ForecastHours,
				QueueCount:    sim.QueueCount,
			},
		})
	})

	h.bus.Subscribe(simcast.TopicSimulationCompleted, func(_ context.Context, event plugin.Event) {
		sim, ok := event.Payload.(simcast.SimulationEvent)
		if !ok {
			return
		}
		h.hub.Broadcast(Message{
			Type:         MessageSimulationCompleted,
			SimulationID: sim.SimulationID,
			Timestamp:    event.Timestamp,
			Data: SimulationCompletedData{
				Mode:          sim.Mode,
				ForecastHours: sim.ForecastHours,
				AverageRisk:   sim.AverageRisk,
				PeakRiskHour:  sim.PeakRiskHour,
			},
		})
	})

	h.bus.Subscribe(simcast.TopicSuggestionsGenerated, func(_ context.Context, event plugin.Event) {
		sug, ok := event.Payload.(simcast.SuggestionsEvent)
		if !ok {
			return
		}
		h.hub.Broadcast(Message{
			Type:         MessageSuggestionsReady,
			SimulationID: sug.SimulationID,
			Timestamp:    event.Timestamp,
			Data: SuggestionsReadyData{
				Count:        sug.Count,
				HighSeverity: sug.HighSeverity,
			},
		})
	})

	h.logger.Info("subscribed to simulation events for WebSocket broadcasting")
}
