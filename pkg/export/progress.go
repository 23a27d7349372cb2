package export

import "sync"

// Progress stages, in emission order.
const (
	StageStarted  = "started"
	StageBuilding = "building"
	StageWriting  = "writing"
	StageDone     = "done"
	StageFailed   = "failed"
)

// Event is one progress update for a running export.
type Event struct {
	ExportID string `json:"exportId"`
	Stage    string `json:"stage"`
	Group    string `json:"group,omitempty"` // collection being built
	Done     int    `json:"done"`
	Total    int    `json:"total"`
	Message  string `json:"message,omitempty"`
}

// eventBuffer bounds each subscriber channel. Publishing never blocks:
// when a subscriber falls behind, newer events are dropped for it.
const eventBuffer = 64

// Bus fans progress events out to per-export subscribers. Events are
// best-effort; missing one must never stall an export.
type Bus struct {
	mu   sync.Mutex
	subs map[string]chan Event
}

// NewBus creates an empty progress bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]chan Event)}
}

// Subscribe returns the event channel for the given export ID, creating
// it on first use. The channel is closed by Unsubscribe.
func (b *Bus) Subscribe(exportID string) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.subs[exportID]
	if !ok {
		ch = make(chan Event, eventBuffer)
		b.subs[exportID] = ch
	}
	return ch
}

// Unsubscribe closes and removes the export's channel.
func (b *Bus) Unsubscribe(exportID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[exportID]; ok {
		close(ch)
		delete(b.subs, exportID)
	}
}

// Publish delivers an event to the export's subscriber if one exists,
// dropping it when the buffer is full. The lock is held across the send
// so Unsubscribe cannot close the channel mid-publish; the send never
// blocks, so holding it is safe.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.subs[ev.ExportID]
	if !ok {
		return
	}
	select {
	case ch <- ev:
	default:
	}
}
