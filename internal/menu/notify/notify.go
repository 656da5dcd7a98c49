// Package notify delivers menu control change notifications.
//
// Every control mutation produces a Change carrying an immutable
// snapshot of the control taken before and after the mutation.
// Delivery is strictly synchronous and in subscription order on the
// mutating goroutine: subscribers observe a mutation before the next
// input event is processed. Subscribers must not perform long-running
// work inline; there is no deferral mechanism.
package notify

import "sync"

// Snapshot is an immutable copy of the fields a subscriber can diff.
// Value and Key are the diffable fields; the display metadata is
// copied for convenience.
type Snapshot struct {
	// Name is the control's stable internal name.
	Name string

	// DisplayName is the user-facing label.
	DisplayName string

	// Value is the control's boolean state.
	Value bool

	// Key is the bound virtual-key code, zero for controls without one.
	Key int

	// Number is the numeric payload for slider and list controls.
	Number int
}

// Change pairs the snapshots taken immediately before and after a
// single mutation.
type Change struct {
	Old Snapshot
	New Snapshot
}

// Observer is called for each change.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	name     string
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s)
	}
}

type entry struct {
	id       uint64
	observer Observer
}

// Notifier manages change subscriptions for a menu.
type Notifier struct {
	mu sync.Mutex

	// Observers receiving every change, in subscription order.
	global []entry

	// Observers keyed by control name, each in subscription order.
	byName map[string][]entry

	nextID uint64
}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{byName: make(map[string][]entry)}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.global = append(n.global, entry{id: id, observer: observer})

	return &Subscription{id: id, notifier: n}
}

// SubscribeControl registers an observer for changes to one control,
// identified by internal name.
func (n *Notifier) SubscribeControl(name string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.byName[name] = append(n.byName[name], entry{id: id, observer: observer})

	return &Subscription{id: id, name: name, notifier: n}
}

// Notify delivers a change to all matching observers, global first,
// then control-specific, each group in subscription order. Delivery
// happens on the calling goroutine before Notify returns.
func (n *Notifier) Notify(change Change) {
	n.mu.Lock()
	observers := make([]Observer, 0, len(n.global))
	for _, e := range n.global {
		observers = append(observers, e.observer)
	}
	for _, e := range n.byName[change.New.Name] {
		observers = append(observers, e.observer)
	}
	n.mu.Unlock()

	// Observers run outside the lock so they may subscribe/unsubscribe.
	for _, obs := range observers {
		obs(change)
	}
}

// unsubscribe removes a subscription wherever it is registered.
func (n *Notifier) unsubscribe(s *Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if s.name == "" {
		n.global = removeEntry(n.global, s.id)
		return
	}
	entries := removeEntry(n.byName[s.name], s.id)
	if len(entries) == 0 {
		delete(n.byName, s.name)
	} else {
		n.byName[s.name] = entries
	}
}

func removeEntry(entries []entry, id uint64) []entry {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
