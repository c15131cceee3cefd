package messages

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/legaltender/intake/internal/triage"
)

// Store owns all message state. Implementations must serialize writes;
// readers always observe a message that is either fully updated or not
// updated at all.
type Store interface {
	Insert(ctx context.Context, m *Message) error
	Get(ctx context.Context, id uuid.UUID) (*Message, error)
	Update(ctx context.Context, m *Message) error
	List(ctx context.Context) ([]*Message, error)
}

// MemoryStore is the ephemeral in-process Store. All mutation flows
// through a single mutex; Get and List return copies so callers can
// never mutate stored state directly.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[uuid.UUID]*Message
	order    []uuid.UUID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make(map[uuid.UUID]*Message),
	}
}

// Insert stores a new message, assigning an ID when absent.
func (s *MemoryStore) Insert(_ context.Context, m *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if _, exists := s.messages[m.ID]; exists {
		return fmt.Errorf("message %s already exists", m.ID)
	}

	s.messages[m.ID] = copyMessage(m)
	s.order = append(s.order, m.ID)
	return nil
}

// Get returns a copy of the message with the given ID.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return copyMessage(m), nil
}

// Update replaces the stored message with the given state.
func (s *MemoryStore) Update(_ context.Context, m *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[m.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, m.ID)
	}

	s.messages[m.ID] = copyMessage(m)
	return nil
}

// List returns copies of all messages in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Message, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, copyMessage(s.messages[id]))
	}
	return result, nil
}

// copyMessage deep-copies a message so store-internal state never
// aliases caller-held pointers.
func copyMessage(m *Message) *Message {
	c := *m
	c.QualityIssues = append([]string(nil), m.QualityIssues...)

	if m.Draft != nil {
		d := *m.Draft
		d.QualityIssues = append([]string(nil), m.Draft.QualityIssues...)
		d.Providers = append([]triage.SubDraft(nil), m.Draft.Providers...)
		if m.Draft.Extracted != nil {
			d.Extracted = make(map[string]string, len(m.Draft.Extracted))
			for k, v := range m.Draft.Extracted {
				d.Extracted[k] = v
			}
		}
		if m.Draft.QualityScore != nil {
			score := *m.Draft.QualityScore
			d.QualityScore = &score
		}
		c.Draft = &d
	}

	return &c
}
