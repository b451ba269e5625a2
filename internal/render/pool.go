package render

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent rasterizations; each worker holds a
	// supersampled RGBA scratch buffer.
	MaxPoolSize = 8

	// DefaultPoolSize is the conversion fan-out used when no worker
	// count is given.
	DefaultPoolSize = 3
)

// ServicePool manages a pool of Service instances for parallel processing.
// Each service owns its raster scratch buffer, so pooling bounds both
// concurrency and peak memory. Services are created lazily on first acquire.
type ServicePool struct {
	size     int
	services []*Service
	sem      chan *Service
	mu       sync.Mutex
	created  int
	closed   bool
	opts     []Option
}

// NewServicePool creates a pool with capacity for n Service instances.
// The options are applied to every lazily created service.
func NewServicePool(n int, opts ...Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:     n,
		services: make([]*Service, 0, n),
		sem:      make(chan *Service, n),
		opts:     opts,
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() *Service {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new service outside the lock
		svc := New(p.opts...)

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()

		return svc
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
// The lock is held across the send so a concurrent Close cannot close the
// channel between the closed check and the send. The send never blocks:
// the channel has capacity for every service the pool created.
func (p *ServicePool) Release(svc *Service) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.sem <- svc
}

// Close releases all scratch buffers.
// Returns an aggregated error if multiple services fail to close.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	services := p.services
	p.mu.Unlock()

	var errs []error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > default fan-out, clamped to GOMAXPROCS.
// Explicit values never exceed MaxPoolSize; each worker holds a raster
// scratch buffer, so an oversized request is capped rather than honored.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		if workers > MaxPoolSize {
			return MaxPoolSize
		}
		return workers
	}

	// The historical default is 3 concurrent conversions; never exceed the
	// available CPUs (adjusted by automaxprocs in containers).
	n := DefaultPoolSize
	if available := runtime.GOMAXPROCS(0); available < n {
		n = available
	}
	if n < MinPoolSize {
		return MinPoolSize
	}
	return n
}
