package billing

import "sync"

// orderLocks serializes payment mutations per order number. Lock
// entries are reference counted and removed once the last holder
// releases, so the map stays bounded by the number of orders with an
// in-flight mutation.
type orderLocks struct {
	mu    sync.Mutex
	locks map[string]*orderLock
}

type orderLock struct {
	mu   sync.Mutex
	refs int
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[string]*orderLock)}
}

// Lock acquires the mutex for an order number, creating it on first use
func (l *orderLocks) Lock(orderNumber string) {
	l.mu.Lock()
	entry, ok := l.locks[orderNumber]
	if !ok {
		entry = &orderLock{}
		l.locks[orderNumber] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the mutex for an order number
func (l *orderLocks) Unlock(orderNumber string) {
	l.mu.Lock()
	entry, ok := l.locks[orderNumber]
	if ok {
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, orderNumber)
		}
	}
	l.mu.Unlock()

	if ok {
		entry.mu.Unlock()
	}
}
