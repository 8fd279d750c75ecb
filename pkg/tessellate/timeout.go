package tessellate

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chazu/sdfscene/pkg/kernel"
	"github.com/chazu/sdfscene/pkg/scene"
)

// MeshTimeout is the default hard limit for a single meshing request.
const MeshTimeout = 30 * time.Second

var (
	// ErrSuperseded is returned for a request overtaken by a newer one.
	ErrSuperseded = errors.New("mesh request superseded by newer request")
	// ErrTimeout is returned when meshing exceeds the Mesher's timeout.
	ErrTimeout = errors.New("mesh request timed out")
)

// meshResult is the internal type used to pass meshing results through channels.
type meshResult struct {
	meshes []*kernel.Mesh
	err    error
}

// Mesher runs Tessellate for an interactive caller that may issue a new
// request before the previous one finishes. Only the latest request's
// result is delivered. It is safe for concurrent use.
type Mesher struct {
	kernel  kernel.Kernel
	timeout time.Duration

	mu         sync.Mutex
	generation uint64
}

// NewMesher returns a Mesher using k. A non-positive timeout selects
// MeshTimeout.
func NewMesher(k kernel.Kernel, timeout time.Duration) *Mesher {
	if timeout <= 0 {
		timeout = MeshTimeout
	}
	return &Mesher{kernel: k, timeout: timeout}
}

// Mesh tessellates sc.
//
// Return semantics:
//   - On success: meshes + nil
//   - Newer request started meanwhile: nil + ErrSuperseded
//   - Timeout: nil + ErrTimeout (the goroutine may still run; its result
//     is discarded)
//   - Kernel panic: nil + error describing the panic
func (m *Mesher) Mesh(sc scene.Scene) ([]*kernel.Mesh, error) {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.mu.Unlock()

	ch := make(chan meshResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- meshResult{err: fmt.Errorf("panic during tessellation: %v", r)}
			}
		}()

		meshes, err := Tessellate(sc, m.kernel)
		ch <- meshResult{meshes: meshes, err: err}
	}()

	return m.waitWithTimeout(ch, gen)
}

// waitWithTimeout waits for a result from ch, but returns a timeout error
// if meshing exceeds the Mesher's timeout. It uses the generation counter
// to discard stale results from previous requests.
func (m *Mesher) waitWithTimeout(ch <-chan meshResult, gen uint64) ([]*kernel.Mesh, error) {
	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		m.mu.Lock()
		current := m.generation
		m.mu.Unlock()

		if gen != current {
			return nil, ErrSuperseded
		}
		return res.meshes, res.err

	case <-timer.C:
		return nil, fmt.Errorf("%w after %s", ErrTimeout, m.timeout)
	}
}
