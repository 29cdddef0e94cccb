package panel

import "sync"

// errorRing keeps the most recent load errors.
type errorRing struct {
	mu     sync.RWMutex
	errors []error
	head   int
	count  int
}

// newErrorRing returns nil for size <= 0, which disables history.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{errors: make([]error, size)}
}

func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors[r.head] = err
	r.head = (r.head + 1) % len(r.errors)
	if r.count < len(r.errors) {
		r.count++
	}
}

func (r *errorRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.errors)
	r.head = 0
	r.count = 0
}

// all returns the retained errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	size := len(r.errors)
	out := make([]error, r.count)
	start := (r.head - r.count + size) % size
	for i := range out {
		out[i] = r.errors[(start+i)%size]
	}
	return out
}
