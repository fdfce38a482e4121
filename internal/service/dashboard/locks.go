package dashboard

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// keyedMutex serializes update cycles per session while letting different
// sessions run in parallel. Entries are dropped once nobody holds or waits.
// It gives mutual exclusion only: waiters on one key are not served in
// arrival order.
type keyedMutex struct {
	entries   map[string]*lockEntry
	entriesMx sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[string]*lockEntry)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.entriesMx.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &lockEntry{}
		k.entries[key] = e
	}
	e.refs++
	k.entriesMx.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.entriesMx.Lock()
		defer k.entriesMx.Unlock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
	}
}

func (k *keyedMutex) size() int {
	k.entriesMx.Lock()
	defer k.entriesMx.Unlock()
	return len(k.entries)
}
