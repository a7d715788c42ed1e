package websocket

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultSubscriberBuffer = 64

// Subscriber is one live connection registered in the hub.
type Subscriber struct {
	ID       string
	Group    string
	Identity string
	send     chan []byte
}

// Messages yields frames for this subscriber. The channel is closed on
// Unsubscribe.
func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

// Hub tracks live subscribers by group and by identity. Delivery is best
// effort: a full subscriber buffer drops the frame.
type Hub struct {
	logger     *logrus.Logger
	buffer     int
	mu         sync.RWMutex
	groups     map[string]map[string]*Subscriber
	identities map[string]map[string]*Subscriber
	dropped    atomic.Int64
}

func NewHub(logger *logrus.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		logger:     logger,
		buffer:     buffer,
		groups:     make(map[string]map[string]*Subscriber),
		identities: make(map[string]map[string]*Subscriber),
	}
}

func (h *Hub) Subscribe(group, identity string) *Subscriber {
	s := &Subscriber{
		ID:       uuid.NewString(),
		Group:    group,
		Identity: identity,
		send:     make(chan []byte, h.buffer),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if group != "" {
		add(h.groups, group, s)
	}
	if identity != "" {
		add(h.identities, identity, s)
	}
	return s
}

func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	removedGroup := remove(h.groups, s.Group, s.ID)
	removedIdentity := remove(h.identities, s.Identity, s.ID)
	if removedGroup || removedIdentity {
		close(s.send)
	}
}

// ToGroup pushes payload to every subscriber of group and returns how many
// accepted it.
func (h *Hub) ToGroup(group string, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.deliver(h.groups[group], payload)
}

func (h *Hub) ToIdentity(identity string, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.deliver(h.identities[identity], payload)
}

// Publish delivers once to every subscriber in group or with identity.
func (h *Hub) Publish(group, identity string, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	targets := make(map[string]*Subscriber)
	for id, s := range h.groups[group] {
		targets[id] = s
	}
	for id, s := range h.identities[identity] {
		targets[id] = s
	}
	return h.deliver(targets, payload)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, set := range h.groups {
		for id := range set {
			seen[id] = struct{}{}
		}
	}
	for _, set := range h.identities {
		for id := range set {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

func (h *Hub) deliver(set map[string]*Subscriber, payload []byte) int {
	delivered := 0
	for _, s := range set {
		select {
		case s.send <- payload:
			delivered++
		default:
			h.dropped.Add(1)
			h.logger.WithField("subscriber", s.ID).Debug("subscriber buffer full, dropping frame")
		}
	}
	return delivered
}

func add(index map[string]map[string]*Subscriber, key string, s *Subscriber) {
	set, ok := index[key]
	if !ok {
		set = make(map[string]*Subscriber)
		index[key] = set
	}
	set[s.ID] = s
}

func remove(index map[string]map[string]*Subscriber, key, id string) bool {
	set, ok := index[key]
	if !ok {
		return false
	}
	if _, ok := set[id]; !ok {
		return false
	}
	delete(set, id)
	if len(set) == 0 {
		delete(index, key)
	}
	return true
}
