package device

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Device describes one attached input device and the inputs it owns.
type Device[I comparable] struct {
	// ID is the registry-assigned instance identity. Two attachments of the
	// same physical hardware get distinct IDs.
	ID uuid.UUID

	// Name is the host-supplied device name.
	Name string

	// Inputs are the input identities this device contributes.
	Inputs []I

	// AttachedAt records when the device was registered.
	AttachedAt time.Time

	// seq orders devices by attach order, independent of clock resolution.
	seq uint64
}

// Unbinder removes a single input mapping. All framepress trackers satisfy
// it through their Unbind method.
type Unbinder[I comparable] interface {
	Unbind(input I) bool
}

// Registry tracks attached devices. Safe for concurrent use; host engines
// often report hotplug events from a platform thread.
type Registry[I comparable] struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]Device[I]
	nextSeq uint64
}

// NewRegistry creates an empty device registry.
func NewRegistry[I comparable]() *Registry[I] {
	return &Registry[I]{
		devices: make(map[uuid.UUID]Device[I]),
	}
}

// Attach registers a device and its inputs, returning the assigned instance
// ID.
func (r *Registry[I]) Attach(name string, inputs []I) uuid.UUID {
	id := uuid.New()

	owned := make([]I, len(inputs))
	copy(owned, inputs)

	r.mu.Lock()
	r.nextSeq++
	r.devices[id] = Device[I]{
		ID:         id,
		Name:       name,
		Inputs:     owned,
		AttachedAt: time.Now(),
		seq:        r.nextSeq,
	}
	r.mu.Unlock()

	return id
}

// Detach removes a device, returning the inputs it owned and whether it was
// registered.
func (r *Registry[I]) Detach(id uuid.UUID) ([]I, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dev, ok := r.devices[id]
	if !ok {
		return nil, false
	}
	delete(r.devices, id)
	return dev.Inputs, true
}

// DetachInto removes a device and unbinds every input it owned from the
// given tracker. It returns the number of inputs that were actually bound.
// Callers should follow up with ClearInputs on the tracker so holds already
// in progress do not linger.
func (r *Registry[I]) DetachInto(id uuid.UUID, tracker Unbinder[I]) (int, bool) {
	inputs, ok := r.Detach(id)
	if !ok {
		return 0, false
	}

	unbound := 0
	for _, input := range inputs {
		if tracker.Unbind(input) {
			unbound++
		}
	}
	return unbound, true
}

// Get returns a device by instance ID.
func (r *Registry[I]) Get(id uuid.UUID) (Device[I], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dev, ok := r.devices[id]
	return dev, ok
}

// List returns all attached devices, ordered by attach time.
func (r *Registry[I]) List() []Device[I] {
	r.mu.RLock()
	out := make([]Device[I], 0, len(r.devices))
	for _, dev := range r.devices {
		out = append(out, dev)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].seq < out[j].seq
	})
	return out
}

// Len returns the number of attached devices.
func (r *Registry[I]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}
