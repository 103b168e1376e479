package media

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	ErrClassNotFound  = errors.New("class not found")
	ErrDuplicateClass = errors.New("class already registered")
	ErrEmptyClassName = errors.New("class name must not be empty")
	ErrHierarchyCycle = errors.New("hierarchy contains a cycle")
)

// DefineFunc is the per-class hook supplying that class's own media
// contribution. It must return only the class's additions, never its
// ancestors'. A nil DefineFunc contributes an empty manifest.
type DefineFunc func() Manifest

// Definition is a registered class in the hierarchy: its name, its
// immediate parent and its define hook.
type Definition struct {
	// Name is the class name, unique within one registry.
	Name string

	// Parent is the immediate ancestor class name. Empty means the
	// class is a direct child of the hierarchy root.
	Parent string

	define DefineFunc
}

// Own returns the class's own, non-inherited contribution. The result
// is always non-nil and safe for the caller to hold.
func (d *Definition) Own() Manifest {
	if d.define == nil {
		return Manifest{}
	}
	own := d.define()
	if own == nil {
		return Manifest{}
	}
	return own
}

// Registry is an explicit class hierarchy with media declarations.
// It replaces a language-level inheritance lookup: each class names its
// parent at registration time and resolution follows those links.
//
// The hierarchy root is implicit. It is never registered, contributes
// an empty manifest, and terminates resolution.
type Registry struct {
	mu       sync.RWMutex
	root     string
	defs     map[string]*Definition
	defOrder []string // registration order for deterministic iteration
}

// NewRegistry creates an empty registry whose root class has the given
// name. The root only exists as a display name and recursion terminus.
func NewRegistry(root string) *Registry {
	return &Registry{
		root: root,
		defs: make(map[string]*Definition),
	}
}

// Root returns the root class name.
func (r *Registry) Root() string {
	return r.root
}

// Register adds a class to the hierarchy. An empty parent, or a parent
// equal to the root name, makes the class a direct child of the root.
// The parent does not need to be registered yet; dangling parents are
// reported by Validate and by Resolve.
func (r *Registry) Register(name, parent string, define DefineFunc) error {
	if name == "" {
		return ErrEmptyClassName
	}
	if name == r.root {
		return fmt.Errorf("%w: %q is the root class", ErrDuplicateClass, name)
	}
	if parent == r.root {
		parent = ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClass, name)
	}
	r.defs[name] = &Definition{Name: name, Parent: parent, define: define}
	r.defOrder = append(r.defOrder, name)
	return nil
}

// MustRegister is Register but panics on error. Intended for static
// hierarchies built at program start.
func (r *Registry) MustRegister(name, parent string, define DefineFunc) {
	if err := r.Register(name, parent, define); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for a class name.
func (r *Registry) Lookup(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrClassNotFound, name)
	}
	return def, nil
}

// Classes returns all registered class names in registration order.
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.defOrder))
	copy(out, r.defOrder)
	return out
}

// Children returns the direct children of a class, sorted by name.
// Pass the root name (or "") for the root's children.
func (r *Registry) Children(parent string) []string {
	if parent == r.root {
		parent = ""
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, name := range r.defOrder {
		if r.defs[name].Parent == parent {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered classes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Resolve computes the effective manifest for a class: its own
// contribution overlaid on its parent's resolved manifest, recursively
// up to the root. The result is freshly built on every call; instances
// are the memoization layer (see Instance).
func (r *Registry) Resolve(name string) (Manifest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.resolveLocked(name, make(map[string]bool))
}

func (r *Registry) resolveLocked(name string, visiting map[string]bool) (Manifest, error) {
	if visiting[name] {
		return nil, fmt.Errorf("%w: at class %q", ErrHierarchyCycle, name)
	}
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrClassNotFound, name)
	}

	own := def.Own()
	if def.Parent == "" {
		// Direct child of the root; the root contributes nothing.
		return own, nil
	}

	visiting[name] = true
	parent, err := r.resolveLocked(def.Parent, visiting)
	if err != nil {
		return nil, fmt.Errorf("resolving parent of %q: %w", name, err)
	}
	return Merge(parent, own), nil
}
