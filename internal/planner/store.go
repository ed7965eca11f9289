package planner

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/store"
)

// DataKey is where the active board is persisted.
const DataKey = "data"

// Store is a reducer whose every transition is written to storage before it
// becomes the current state. It is not safe for concurrent use.
type Store struct {
	storage *store.Storage
	key     string
	kind    store.Kind
	state   model.State
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKind selects the backing store. The default is store.Local.
func WithKind(kind store.Kind) StoreOption {
	return func(s *Store) { s.kind = kind }
}

// NewStore loads the state persisted under key, falling back to def when
// nothing usable is stored. It never fails: an unreadable value is logged
// and replaced by def.
func NewStore(storage *store.Storage, key string, def model.State, opts ...StoreOption) *Store {
	s := &Store{storage: storage, key: key, kind: store.Local}
	for _, opt := range opts {
		opt(s)
	}

	var loaded model.State
	found, err := storage.Get(key, &loaded, s.kind)
	switch {
	case errors.Is(err, store.ErrUnparsable):
		log.WithError(err).WithField("key", key).Warn("discarding unparsable persisted state")
		s.state = def.Clone()
	case err != nil:
		log.WithError(err).WithField("key", key).Warn("reading persisted state failed, using default")
		s.state = def.Clone()
	case !found:
		s.state = def.Clone()
	default:
		s.state = Reduce(model.DefaultState(), Replace{State: loaded})
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() model.State {
	return s.state.Clone()
}

// Dispatch applies in, persists the result and then makes it current. On a
// write failure the current state is left as it was.
func (s *Store) Dispatch(in Intent) error {
	next := Reduce(s.state, in)
	if err := s.storage.Set(s.key, next, s.kind); err != nil {
		return err
	}
	s.state = next
	if in != nil {
		log.WithField("intent", in.Kind()).Debug("dispatched")
	}
	return nil
}
