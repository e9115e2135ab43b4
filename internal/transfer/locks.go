package transfer

import "sync"

// pairLocks interns one mutex per unordered pair of account ids. Both
// directions of a transfer between the same two accounts resolve to the same
// mutex, so a transfer holds exactly one lock and lock ordering can never
// deadlock.
type pairLocks struct {
	mu    sync.Mutex // protects locks
	locks map[string]*sync.Mutex
}

func newPairLocks() *pairLocks {
	return &pairLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// pairKey builds the canonical key for an unordered pair by ordering the two
// ids. The separator keeps pairs like ("ab","c") and ("a","bc") from
// colliding on concatenation.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// lockFor returns the shared mutex for the unordered pair {a, b}, creating it
// on first use. Two calls with the same pair, in either order, always get the
// same mutex instance.
func (p *pairLocks) lockFor(a, b string) *sync.Mutex {
	key := pairKey(a, b)

	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.locks[key]
	if !exists {
		m = &sync.Mutex{}
		p.locks[key] = m
	}
	return m
}
