package sand

import "math"

// DefaultRegistryCapacity is the slot ceiling of a clone registry.
const DefaultRegistryCapacity = math.MaxInt16

type registrySlot struct {
	species Species
	used    bool
}

// Registry remembers the species Clone cells copy. Slots are reused: Insert
// fills the lowest free slot before appending.
type Registry struct {
	slots    []registrySlot
	capacity int
}

// NewRegistry returns an empty registry holding at most capacity entries.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 || capacity > math.MaxUint16+1 {
		capacity = DefaultRegistryCapacity
	}
	return &Registry{capacity: capacity}
}

// Insert stores s and returns its identifier. It fails once every slot up to
// the capacity is taken.
func (r *Registry) Insert(s Species) (uint16, bool) {
	for i := range r.slots {
		if !r.slots[i].used {
			r.slots[i] = registrySlot{species: s, used: true}
			return uint16(i), true
		}
	}
	if len(r.slots) >= r.capacity {
		return 0, false
	}
	r.slots = append(r.slots, registrySlot{species: s, used: true})
	return uint16(len(r.slots) - 1), true
}

// Get returns the species stored under id.
func (r *Registry) Get(id uint16) (Species, bool) {
	if int(id) >= len(r.slots) || !r.slots[id].used {
		return Species{}, false
	}
	return r.slots[id].species, true
}

// Remove frees the slot id for reuse.
func (r *Registry) Remove(id uint16) (Species, bool) {
	s, ok := r.Get(id)
	if ok {
		r.slots[id] = registrySlot{}
	}
	return s, ok
}

// Len returns the number of slots ever allocated, used or free.
func (r *Registry) Len() int { return len(r.slots) }

// Live returns the number of occupied slots.
func (r *Registry) Live() int {
	n := 0
	for _, s := range r.slots {
		if s.used {
			n++
		}
	}
	return n
}

// Retain frees every occupied slot for which keep returns false and reports
// how many were freed.
func (r *Registry) Retain(keep func(id uint16) bool) int {
	freed := 0
	for i := range r.slots {
		if r.slots[i].used && !keep(uint16(i)) {
			r.slots[i] = registrySlot{}
			freed++
		}
	}
	return freed
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.slots = r.slots[:0]
}
