// Package store provides the namespaced key-value persistence used for
// planner state: a durable SQLite backend and a process-lifetime session
// backend behind one JSON-encoding front.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Prefix namespaces every key written by the planner.
const Prefix = "@spend-planner:"

// ErrUnparsable is returned by Get when a stored value cannot be decoded.
var ErrUnparsable = errors.New("unparsable stored value")

// Backend is a raw string key-value store.
type Backend interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// Kind selects one of the two backing stores.
type Kind string

const (
	// Local survives across runs.
	Local Kind = "local"
	// Session is cleared when the process exits.
	Session Kind = "session"
)

// ParseKind validates a store kind name. The empty string means Local.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Local:
		return Local, nil
	case Session:
		return Session, nil
	default:
		return "", fmt.Errorf("unknown store %q (want %q or %q)", s, Local, Session)
	}
}

// Storage routes JSON values to the local or session backend.
type Storage struct {
	local   Backend
	session Backend
}

// New builds a Storage. A nil session backend gets a fresh in-memory one.
func New(local, session Backend) *Storage {
	if session == nil {
		session = NewMemory()
	}
	if local == nil {
		local = session
	}
	return &Storage{local: local, session: session}
}

// NewSessionOnly returns a Storage where both kinds are the same in-memory
// backend, so nothing outlives the process.
func NewSessionOnly() *Storage {
	mem := NewMemory()
	return &Storage{local: mem, session: mem}
}

// FullKey returns the namespaced key actually written to the backend.
func FullKey(key string) string {
	return Prefix + key
}

func (s *Storage) backend(kind Kind) Backend {
	if kind == Session {
		return s.session
	}
	return s.local
}

// Set serializes value as JSON under Prefix+key.
func (s *Storage) Set(key string, value any, kind Kind) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	fullKey := FullKey(key)
	if err := s.backend(kind).Set(fullKey, string(data)); err != nil {
		return err
	}
	log.WithFields(log.Fields{"key": fullKey, "store": kind, "bytes": len(data)}).Debug("persisted value")
	return nil
}

// Get decodes the value stored under Prefix+key into dst. A missing or empty
// value reports found=false with a nil error.
func (s *Storage) Get(key string, dst any, kind Kind) (bool, error) {
	fullKey := FullKey(key)
	raw, found, err := s.backend(kind).Get(fullKey)
	if err != nil {
		return false, err
	}
	if !found || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrUnparsable, fullKey, err)
	}
	return true, nil
}
