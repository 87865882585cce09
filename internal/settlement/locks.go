package settlement

import "sync"

// groupLocks hands out one RWMutex per group. Locks are never released;
// the map grows with the number of groups seen by the process.
type groupLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func (g *groupLocks) get(groupID string) *sync.RWMutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locks == nil {
		g.locks = make(map[string]*sync.RWMutex)
	}
	l, ok := g.locks[groupID]
	if !ok {
		l = &sync.RWMutex{}
		g.locks[groupID] = l
	}
	return l
}
