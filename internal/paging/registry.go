package paging

import (
	"sort"
	"sync"
)

// DefaultID is the instance id used when the caller supplies none.
const DefaultID = "__default"

// UnboundedItemsPerPage stands in for an absent or unparseable page size.
// Every collection fits on a single page of this size.
const UnboundedItemsPerPage = 1<<31 - 1

// instance holds per-id pagination parameters.
type instance struct {
	accessor         PageAccessor
	itemsPerPage     int
	collectionLength int
	asyncMode        bool
}

// InstanceState is a read-only copy of one instance.
type InstanceState struct {
	ID               string
	CurrentPage      int
	ItemsPerPage     int
	CollectionLength int
	AsyncMode        bool
	HasAccessor      bool
}

// Registry tracks pagination instances by id.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*instance
	lastID    string
	hasLast   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]*instance)}
}

// Register creates an instance for id unless one exists. Existing state is kept.
func (r *Registry) Register(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instances[id]; ok {
		return
	}
	r.instances[id] = &instance{asyncMode: false}
	r.lastID = id
	r.hasLast = true
}

// Deregister removes id. Unknown ids are ignored.
func (r *Registry) Deregister(id string) {
	r.mu.Lock()
	delete(r.instances, id)
	r.mu.Unlock()
}

func (r *Registry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.instances[id]
	return ok
}

// LastRegisteredID returns the id most recently created by Register.
func (r *Registry) LastRegisteredID() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastID, r.hasLast
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.instances))
	for id := range r.instances {
		out = append(out, id)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(id string) (*instance, error) {
	inst, ok := r.instances[id]
	if !ok {
		return nil, ErrNotRegistered(id)
	}
	return inst, nil
}

// SetCurrentPageAccessor installs the binding used to read and write the current page.
func (r *Registry) SetCurrentPageAccessor(id string, a PageAccessor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, err := r.lookup(id)
	if err != nil {
		return err
	}
	inst.accessor = a
	return nil
}

// Accessor returns the installed accessor, or nil when none is set.
func (r *Registry) Accessor(id string) (PageAccessor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return inst.accessor, nil
}

// CurrentPage reads through the accessor, or returns 1 when none is set.
func (r *Registry) CurrentPage(id string) (int, error) {
	a, err := r.Accessor(id)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 1, nil
	}
	// called unlocked: accessors may call back into the registry
	return a.CurrentPage(), nil
}

// SetCurrentPage writes through the accessor. It is a no-op when none is set.
func (r *Registry) SetCurrentPage(id string, n int) error {
	a, err := r.Accessor(id)
	if err != nil {
		return err
	}
	if a != nil {
		a.SetCurrentPage(n)
	}
	return nil
}

func (r *Registry) SetItemsPerPage(id string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, err := r.lookup(id)
	if err != nil {
		return err
	}
	inst.itemsPerPage = n
	return nil
}

// ItemsPerPage returns the last recorded page size, or UnboundedItemsPerPage
// when nothing positive has been recorded.
func (r *Registry) ItemsPerPage(id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	if inst.itemsPerPage <= 0 {
		return UnboundedItemsPerPage, nil
	}
	return inst.itemsPerPage, nil
}

func (r *Registry) SetCollectionLength(id string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, err := r.lookup(id)
	if err != nil {
		return err
	}
	inst.collectionLength = n
	return nil
}

func (r *Registry) CollectionLength(id string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	return inst.collectionLength, nil
}

func (r *Registry) SetAsyncMode(id string, async bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, err := r.lookup(id)
	if err != nil {
		return err
	}
	inst.asyncMode = async
	return nil
}

func (r *Registry) IsAsyncMode(id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	return inst.asyncMode, nil
}

// Snapshot returns a copy of the instance state for reporting.
func (r *Registry) Snapshot(id string) (InstanceState, error) {
	r.mu.RLock()
	inst, err := r.lookup(id)
	if err != nil {
		r.mu.RUnlock()
		return InstanceState{}, err
	}
	st := InstanceState{
		ID:               id,
		ItemsPerPage:     inst.itemsPerPage,
		CollectionLength: inst.collectionLength,
		AsyncMode:        inst.asyncMode,
		HasAccessor:      inst.accessor != nil,
		CurrentPage:      1,
	}
	a := inst.accessor
	r.mu.RUnlock()
	if st.ItemsPerPage <= 0 {
		st.ItemsPerPage = UnboundedItemsPerPage
	}
	if a != nil {
		st.CurrentPage = a.CurrentPage()
	}
	return st, nil
}
