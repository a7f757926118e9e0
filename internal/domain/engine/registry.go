package engine

// Registry is the read-only engine catalog. It is built once at startup and
// safe for unsynchronized concurrent reads.
type Registry struct {
	engines  map[string]Descriptor
	order    []string
	defaults map[Tier]string
}

// NewRegistry builds a registry from an explicit descriptor set and
// tier-default table. Descriptor order is preserved for listings.
func NewRegistry(descriptors []Descriptor, defaults map[Tier]string) *Registry {
	r := &Registry{
		engines:  make(map[string]Descriptor, len(descriptors)),
		order:    make([]string, 0, len(descriptors)),
		defaults: make(map[Tier]string, len(defaults)),
	}
	for _, d := range descriptors {
		r.engines[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	for tier, id := range defaults {
		r.defaults[tier] = id
	}
	return r
}

// Default returns a registry loaded with the built-in engine catalog.
func Default() *Registry {
	return NewRegistry(defaultCatalog, defaultByTier)
}

// Lookup returns the descriptor for an engine id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.engines[id]
	return d, ok
}

// ResolveAuto returns the default engine for a tier. The result is a pure
// function of the tier-default table; unknown tiers resolve to the fixed
// fallback engine.
func (r *Registry) ResolveAuto(tier Tier) string {
	if id, ok := r.defaults[tier]; ok {
		return id
	}
	return FallbackEngineID
}

// CheckAccess reports whether the tier may invoke the engine. It is false
// for unknown engine ids.
func (r *Registry) CheckAccess(tier Tier, id string) bool {
	d, ok := r.engines[id]
	if !ok {
		return false
	}
	return tier.AtLeast(d.MinimumTier)
}

// AvailableForTier lists engines the tier can invoke right now: access
// granted and upstream status available.
func (r *Registry) AvailableForTier(tier Tier) []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		d := r.engines[id]
		if d.APIStatus == StatusAvailable && tier.AtLeast(d.MinimumTier) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every descriptor in catalog order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.engines[id])
	}
	return out
}
