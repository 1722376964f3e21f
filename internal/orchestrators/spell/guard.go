package spell

import "sync"

// inFlight tracks actor+spell pairs with a cast underway
type inFlight struct {
	mu     sync.Mutex
	active map[inFlightKey]struct{}
}

type inFlightKey struct {
	actorID string
	spellID string
}

func newInFlight() *inFlight {
	return &inFlight{active: make(map[inFlightKey]struct{})}
}

// acquire returns a release func, or false when the pair is already casting
func (f *inFlight) acquire(actorID, spellID string) (func(), bool) {
	key := inFlightKey{actorID: actorID, spellID: spellID}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.active[key]; busy {
		return nil, false
	}
	f.active[key] = struct{}{}

	return func() {
		f.mu.Lock()
		delete(f.active, key)
		f.mu.Unlock()
	}, true
}
