package sandbox

import "context"

// PortPool leases host ports to sandbox deployments. Concurrent
// verifications on the same host must bind distinct ports; the pool is
// the only source of port numbers for compose overrides.
type PortPool struct {
	free chan int
}

// NewPortPool panics on an inverted or empty range; the range comes
// from validated config, so a bad one is a programming error.
func NewPortPool(start, end int) *PortPool {
	if start <= 0 || end < start {
		panic("invalid port range")
	}
	free := make(chan int, end-start+1)
	for p := start; p <= end; p++ {
		free <- p
	}
	return &PortPool{free: free}
}

// Acquire leases a port, blocking until one frees up or ctx is done.
func (p *PortPool) Acquire(ctx context.Context) (int, error) {
	select {
	case port := <-p.free:
		return port, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Release returns a leased port. Releasing a port that was never leased
// is dropped rather than growing the pool.
func (p *PortPool) Release(port int) {
	select {
	case p.free <- port:
	default:
	}
}

// Available reports how many ports are currently free.
func (p *PortPool) Available() int {
	return len(p.free)
}
