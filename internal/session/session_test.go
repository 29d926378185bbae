package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thucdzio/profilo/internal/filter"
	"github.com/Thucdzio/profilo/internal/nav"
)

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func testStore(t *testing.T) (*Store, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	st := newStore(time.Hour, c.now)
	t.Cleanup(st.Close)
	return st, c
}

func TestStartAndGet(t *testing.T) {
	st, _ := testStore(t)
	s := st.Start(nav.Initial.NavigateTo(nav.About))
	require.NotEmpty(t, s.ID)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, nav.About, got.Snapshot().Nav.Page)
	assert.False(t, got.Snapshot().Filters.HasActive())
}

func TestGetUnknown(t *testing.T) {
	st, _ := testStore(t)
	_, ok := st.Get("")
	assert.False(t, ok)
	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestManyLiveSessions(t *testing.T) {
	st, _ := testStore(t)
	ids := make([]string, 0, 2000)
	for i := 0; i < 2000; i++ {
		ids = append(ids, st.Start(nav.Initial).ID)
	}
	assert.Equal(t, 2000, st.Len())
	for _, id := range ids {
		_, ok := st.Get(id)
		require.True(t, ok, "session %s evicted", id)
	}
}

func TestExpiry(t *testing.T) {
	st, c := testStore(t)
	idle := st.Start(nav.Initial)

	c.advance(59 * time.Minute)
	_, ok := st.Get(idle.ID)
	require.True(t, ok)

	// Get slid the deadline forward
	c.advance(59 * time.Minute)
	_, ok = st.Get(idle.ID)
	require.True(t, ok)

	c.advance(time.Hour)
	_, ok = st.Get(idle.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestSweep(t *testing.T) {
	st, c := testStore(t)
	st.Start(nav.Initial)
	st.Start(nav.Initial)
	c.advance(30 * time.Minute)
	fresh := st.Start(nav.Initial)

	c.advance(45 * time.Minute)
	assert.Equal(t, 2, st.Sweep())
	assert.Equal(t, 1, st.Len())
	_, ok := st.Get(fresh.ID)
	assert.True(t, ok)
}

func TestCloseTwice(t *testing.T) {
	st := NewStore(time.Minute)
	st.Close()
	assert.NotPanics(t, st.Close)
}

func TestStartsAreIndependent(t *testing.T) {
	st, _ := testStore(t)
	a := st.Start(nav.Initial)
	b := st.Start(nav.Initial)
	assert.NotEqual(t, a.ID, b.ID)

	a.Apply(func(s State) State {
		s.Filters = s.Filters.Toggle(filter.Tag, "Docker")
		return s
	})
	assert.True(t, a.Snapshot().Filters.HasActive())
	assert.False(t, b.Snapshot().Filters.HasActive())
}

func TestApplyConcurrent(t *testing.T) {
	st, _ := testStore(t)
	s := st.Start(nav.Initial)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(func(cur State) State {
				cur.Filters = cur.Filters.Toggle(filter.Year, "2025")
				return cur
			})
		}()
	}
	wg.Wait()
	// an even number of toggles cancels out
	assert.False(t, s.Snapshot().Filters.HasActive())
}
