package scene

import "fmt"

// ID identifies a registered scene by its position in the build list.
type ID int

// InvalidID is returned for names that are not registered.
const InvalidID ID = -1

// Resolver maps a scene name to its ID.
type Resolver interface {
	SceneID(name string) (ID, bool)
}

type entry struct {
	name    string
	factory Factory
}

// Registry is the ordered build list of scenes.
// It is populated at startup and read-only afterwards.
type Registry struct {
	entries []entry
	byName  map[string]ID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]ID)}
}

// Register appends a scene to the build list and returns its ID.
// Registering the same name twice is an error.
func (r *Registry) Register(name string, f Factory) (ID, error) {
	if name == "" {
		return InvalidID, fmt.Errorf("scene name must not be empty")
	}
	if f == nil {
		return InvalidID, fmt.Errorf("scene %q has no factory", name)
	}
	if _, ok := r.byName[name]; ok {
		return InvalidID, fmt.Errorf("scene %q already registered", name)
	}

	id := ID(len(r.entries))
	r.entries = append(r.entries, entry{name: name, factory: f})
	r.byName[name] = id
	return id, nil
}

// SceneID implements Resolver.
func (r *Registry) SceneID(name string) (ID, bool) {
	id, ok := r.byName[name]
	if !ok {
		return InvalidID, false
	}
	return id, true
}

// Factory returns the factory registered under id.
func (r *Registry) Factory(id ID) (Factory, bool) {
	if id < 0 || int(id) >= len(r.entries) {
		return nil, false
	}
	return r.entries[id].factory, true
}

// Name returns the name registered under id, or "" if there is none.
func (r *Registry) Name(id ID) string {
	if id < 0 || int(id) >= len(r.entries) {
		return ""
	}
	return r.entries[id].name
}

// Len returns the number of registered scenes
func (r *Registry) Len() int {
	return len(r.entries)
}
