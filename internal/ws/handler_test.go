package ws

import (
	"context"
	"testing"
	"time"

	"github.com/HerbHall/flowsight/internal/event"
	"github.com/HerbHall/flowsight/internal/simcast"
	"github.com/HerbHall/flowsight/pkg/plugin"
)

func TestHandler_BroadcastsCompletedEvents(t *testing.T) {
	bus := event.NewBus(testLogger())
	h := NewHandler(bus, testLogger())

	client := newTestClient("10.0.0.1:50001")
	h.hub.Register(client)

	err := bus.Publish(context.Background(), plugin.Event{
		Topic:  simcast.TopicSimulationCompleted,
		Source: "simcast",
		Payload: simcast.SimulationEvent{
			SimulationID:  "sim-abc",
			Mode:          "simulate",
			ForecastHours: 24,
			QueueCount:    4,
			AverageRisk:   22.4,
			PeakRiskHour:  6,
		},
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case msg := <-client.send:
		if msg.Type != MessageSimulationCompleted {
			t.Errorf("Type = %v, want %v", msg.Type, MessageSimulationCompleted)
		}
		if msg.SimulationID != "sim-abc" {
			t.Errorf("SimulationID = %q, want sim-abc", msg.SimulationID)
		}
		data, ok := msg.Data.(SimulationCompletedData)
		if !ok {
			t.Fatalf("Data type = %T, want SimulationCompletedData", msg.Data)
		}
		if data.PeakRiskHour != 6 {
			t.Errorf("PeakRiskHour = %d, want 6", data.PeakRiskHour)
		}
	case <-time.After(time.Second):
		t.Fatal("client did not receive the completed event")
	}
}

func TestHandler_BroadcastsSuggestionEvents(t *testing.T) {
	bus := event.NewBus(testLogger())
	h := NewHandler(bus, testLogger())

	client := newTestClient("10.0.0.1:50001")
	h.hub.Register(client)

	err := bus.Publish(context.Background(), plugin.Event{
		Topic:  simcast.TopicSuggestionsGenerated,
		Source: "simcast",
		Payload: simcast.SuggestionsEvent{
			SimulationID: "sim-abc",
			Count:        3,
			HighSeverity: 2,
		},
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case msg := <-client.send:
		if msg.Type != MessageSuggestionsReady {
			t.Errorf("Type = %v, want %v", msg.Type, MessageSuggestionsReady)
		}
	case <-time.After(time.Second):
		t.Fatal("client did not receive the suggestions event")
	}
}

func TestHandler_IgnoresMalformedPayloads(t *testing.T) {
	bus := event.NewBus(testLogger())
	h := NewHandler(bus, testLogger())

	client := newTestClient("10.0.0.1:50001")
	h.hub.Register(client)

	err := bus.Publish(context.Background(), plugin.Event{
		Topic:   simcast.TopicSimulationCompleted,
		Source:  "simcast",
		Payload: "not a simulation event",
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case msg := <-client.send:
		t.Errorf("unexpected broadcast for malformed payload: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
