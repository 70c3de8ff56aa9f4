package ports

import "context"

const (
	// EventContentLoaded is emitted once the store has resolved its initial document.
	EventContentLoaded = "content.loaded"
	// EventContentUpdated is emitted after a mutation has been persisted.
	EventContentUpdated = "content.updated"
	// EventSessionLogin is emitted after a successful admin login.
	EventSessionLogin = "session.login"
	// EventSessionLogout is emitted when the admin session ends.
	EventSessionLogout = "session.logout"
	// EventSettingsApplied is emitted when a live-preview session commits.
	EventSettingsApplied = "settings.applied"
	// EventSettingsCancelled is emitted when a live-preview session is discarded.
	EventSettingsCancelled = "settings.cancelled"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, re-rendering, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run, so a subscriber has
// re-rendered before the next mutation is processed. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}
