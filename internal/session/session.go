// Package session keeps the per-visitor page state between HTMX requests.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Thucdzio/profilo/internal/filter"
	"github.com/Thucdzio/profilo/internal/nav"
)

// sweepInterval is how often expired sessions are dropped in the background.
const sweepInterval = time.Minute

// State is everything one page session owns.
type State struct {
	Nav     nav.State
	Filters filter.State
}

// Session is one browser page load. All mutation goes through Apply.
type Session struct {
	ID string

	mu    sync.Mutex
	state State
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply replaces the state with fn(current) in one step and returns it.
func (s *Session) Apply(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

type entry struct {
	session *Session
	expires time.Time
}

// Store holds live sessions with a sliding TTL. A session is only dropped
// once it has been idle for the full TTL.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]entry

	stop chan struct{}
	done chan struct{}
}

// NewStore creates a store whose sessions expire ttl after last use and
// starts the background sweep. Close stops it.
func NewStore(ttl time.Duration) *Store {
	return newStore(ttl, time.Now)
}

func newStore(ttl time.Duration, now func() time.Time) *Store {
	st := &Store{
		ttl:      ttl,
		now:      now,
		sessions: make(map[string]entry),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go st.sweepLoop()
	return st
}

// Start creates a session for a fresh page load. Filters always start empty.
func (st *Store) Start(n nav.State) *Session {
	s := &Session{ID: uuid.NewString(), state: State{Nav: n}}
	st.mu.Lock()
	st.sessions[s.ID] = entry{session: s, expires: st.now().Add(st.ttl)}
	st.mu.Unlock()
	return s
}

// Get returns a live session and extends its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if !now.Before(e.expires) {
		delete(st.sessions, id)
		return nil, false
	}
	e.expires = now.Add(st.ttl)
	st.sessions[id] = e
	return e.session, true
}

// Len is the number of sessions held, expired ones included until swept.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops expired sessions and returns how many went.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	n := 0
	for id, e := range st.sessions {
		if !now.Before(e.expires) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Close stops the background sweep.
func (st *Store) Close() {
	select {
	case <-st.stop:
	default:
		close(st.stop)
	}
	<-st.done
}

func (st *Store) sweepLoop() {
	defer close(st.done)
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
