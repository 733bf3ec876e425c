package service

import "sync"

// equipmentLocks hands out one mutex per equipment id so booking
// transitions for the same unit are serialized: the approve-time overlap
// re-check and the writes it guards cannot interleave with another
// transition on that unit. Entries are never evicted; the fleet is small
// and bounded.
type equipmentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEquipmentLocks() *equipmentLocks {
	return &equipmentLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given equipment id and returns the
// unlock function.
func (l *equipmentLocks) acquire(equipmentID string) func() {
	l.mu.Lock()
	m, ok := l.locks[equipmentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[equipmentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
