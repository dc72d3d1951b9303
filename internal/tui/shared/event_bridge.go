package shared

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/model-sweep/internal/scanengine"
)

// EngineEventMsg wraps a scanengine.Event for use as a tea.Msg.
type EngineEventMsg struct {
	Event scanengine.Event
}

// EventBridge adapts scanengine events to bubble tea messages.
// It implements scanengine.EventEmitter and provides a channel for TUI consumption.
type EventBridge struct {
	eventChan chan tea.Msg
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, 256), // Buffer smooths bursts without blocking the engine
	}
}

// Emit implements scanengine.EventEmitter.
// It wraps the event in EngineEventMsg and sends to the channel. The send
// blocks when the buffer is full so no event is ever dropped; the listening
// pump drains continuously, so a full buffer is transient.
func (b *EventBridge) Emit(event scanengine.Event) {
	if b.closed {
		return
	}

	b.eventChan <- EngineEventMsg{Event: event}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return nil // Channel closed
		}

		return msg
	}
}

// Close closes the event channel.
// Call this only from the emitting side, after the last Emit.
func (b *EventBridge) Close() {
	if !b.closed {
		b.closed = true
		close(b.eventChan)
	}
}
