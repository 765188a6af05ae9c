package tokenstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-colten/users"
)

// Slot names, shared with the web frontend's local storage layout.
const (
	TokenKey    = "colten_token"
	IdentityKey = "colten_user"
)

// Store persists the credential and the identity as a pair.
type Store struct {
	mu    sync.Mutex
	slots Slots
}

func New(slots Slots) *Store {
	return &Store{slots: slots}
}

// NewMemoryStore is a Store over process memory.
func NewMemoryStore() *Store {
	return New(NewMemorySlots())
}

// NewFileStore is a Store over files in dir.
func NewFileStore(dir string) (*Store, error) {
	slots, err := NewFileSlots(dir)
	if err != nil {
		return nil, err
	}
	return New(slots), nil
}

// Set overwrites both slots. The credential is not inspected.
// When the credential write fails the identity written just before is removed again.
func (s *Store) Set(credential string, identity *users.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slots.SetItem(IdentityKey, string(data)); err != nil {
		return fmt.Errorf("failed to store identity: %w", err)
	}
	if err := s.slots.SetItem(TokenKey, credential); err != nil {
		_ = s.slots.RemoveItem(IdentityKey)
		return fmt.Errorf("failed to store credential: %w", err)
	}
	return nil
}

// Get returns the stored pair. ok is false when either slot is missing,
// the identity cannot be decoded, or it carries no roles.
func (s *Store) Get() (credential string, identity *users.Identity, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, found := s.slots.GetItem(TokenKey)
	if !found || credential == "" {
		return "", nil, false
	}
	raw, found := s.slots.GetItem(IdentityKey)
	if !found {
		return "", nil, false
	}

	var id users.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		log.Debug().Err(err).Msg("tokenstore: ignoring malformed identity")
		return "", nil, false
	}
	if len(id.Roles) == 0 {
		log.Debug().Msg("tokenstore: ignoring identity without roles")
		return "", nil, false
	}
	return credential, &id, true
}

// Credential returns the credential slot alone.
func (s *Store) Credential() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, found := s.slots.GetItem(TokenKey)
	if !found || credential == "" {
		return "", false
	}
	return credential, true
}

// Clear removes both slots. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokenErr := s.slots.RemoveItem(TokenKey)
	identityErr := s.slots.RemoveItem(IdentityKey)
	if tokenErr != nil {
		return tokenErr
	}
	return identityErr
}
