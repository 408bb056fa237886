package scene

// Loader performs scene loads. Success, failure and timing belong to
// the implementation.
type Loader interface {
	LoadScene(id ID, mode LoadMode, async bool)
}

// Descriptor describes a scene load: which scene, in which mode, and
// whether the load is asynchronous.
//
// Fields may be changed by the owner between calls to Load.
type Descriptor struct {
	Target ID
	Mode   LoadMode
	Async  bool

	loader Loader
}

// NewDescriptor creates a descriptor for the scene registered as name.
// Names unknown to r produce a descriptor targeting InvalidID; the
// loader decides what to do with it.
func NewDescriptor(name string, r Resolver, l Loader) *Descriptor {
	id, ok := r.SceneID(name)
	if !ok {
		id = InvalidID
	}
	return NewDescriptorByID(id, l)
}

// NewDescriptorByID creates a descriptor for a scene ID.
// Defaults are Single mode and async loading.
func NewDescriptorByID(id ID, l Loader) *Descriptor {
	return &Descriptor{
		Target: id,
		Mode:   Single,
		Async:  true,
		loader: l,
	}
}

// Load asks the loader to load the target scene with the stored mode
// and async flag. Every call issues a new request.
func (d *Descriptor) Load() {
	d.loader.LoadScene(d.Target, d.Mode, d.Async)
}
