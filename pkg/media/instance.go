package media

import (
	"sync"

	"github.com/google/uuid"
)

// Instance is a runtime object of a registered class. Its effective
// manifest is computed on the first read of Media and memoized for the
// instance's lifetime; there is no invalidation.
type Instance struct {
	id       string
	class    string
	registry *Registry

	mu     sync.Mutex
	preset Manifest
	cached Manifest
}

// NewInstance creates an instance of the named class. The class is
// looked up eagerly so a misspelled name fails here, not on first read.
func (r *Registry) NewInstance(class string) (*Instance, error) {
	if _, err := r.Lookup(class); err != nil {
		return nil, err
	}
	return &Instance{
		id:       uuid.NewString(),
		class:    class,
		registry: r,
	}, nil
}

// NewPresetInstance creates an instance carrying a fixed manifest.
// Media returns exactly this value and the class hierarchy is never
// consulted, even if the class declares its own media.
func (r *Registry) NewPresetInstance(class string, manifest Manifest) (*Instance, error) {
	if _, err := r.Lookup(class); err != nil {
		return nil, err
	}
	if manifest == nil {
		manifest = Manifest{}
	}
	return &Instance{
		id:       uuid.NewString(),
		class:    class,
		registry: r,
		preset:   manifest,
	}, nil
}

// ID returns the instance identifier, used in diagnostics.
func (in *Instance) ID() string {
	return in.id
}

// Class returns the instance's class name.
func (in *Instance) Class() string {
	return in.class
}

// Media returns the instance's effective manifest.
//
// A preset manifest is returned as-is. Otherwise the manifest is
// resolved through the hierarchy on the first call, cached, and the
// identical value is returned on every later call. The caller must not
// mutate the result.
func (in *Instance) Media() (Manifest, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.preset != nil {
		return in.preset, nil
	}
	if in.cached != nil {
		return in.cached, nil
	}

	resolved, err := in.registry.Resolve(in.class)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		resolved = Manifest{}
	}
	in.cached = resolved
	return in.cached, nil
}
