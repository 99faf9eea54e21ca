package cleanup

import (
	"context"
	"sync"
)

type Cleaner interface {
	Clean(ctx context.Context)
}

type Manager struct {
	mutex    sync.Mutex
	cleaners []Cleaner
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddCleaner(c Cleaner) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cleaners = append(m.cleaners, c)
}

// Clean runs the registered cleaners and waits for all of them to finish,
// so that a slow cleaner never overlaps with its next run.
func (m *Manager) Clean(ctx context.Context) {
	m.mutex.Lock()
	cleaners := make([]Cleaner, len(m.cleaners))
	copy(cleaners, m.cleaners)
	m.mutex.Unlock()

	wg := &sync.WaitGroup{}
	for _, c := range cleaners {
		wg.Add(1)
		go func(c Cleaner) {
			defer wg.Done()
			c.Clean(ctx)
		}(c)
	}
	wg.Wait()
}
