package tool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
)

// Registry holds the tool catalog, keyed by method. Lookups by the
// agent-facing tool name are also supported since LLM frameworks address
// tools by name.
type Registry struct {
	mu      sync.RWMutex
	byMeth  map[core.Method]*Tool
	byName  map[string]*Tool
	ordered []*Tool
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byMeth: make(map[core.Method]*Tool),
		byName: make(map[string]*Tool),
	}
}

// Register adds a tool. Re-registering a method or name is a programming
// error and fails loudly.
func (r *Registry) Register(t *Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byMeth[t.Method]; exists {
		return fmt.Errorf("tool for method %s already registered", t.Method)
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("tool named %s already registered", t.Name)
	}
	r.byMeth[t.Method] = t
	r.byName[t.Name] = t
	r.ordered = append(r.ordered, t)
	return nil
}

// MustRegister panics on registration failure; used for the built-in
// catalog assembled at startup.
func (r *Registry) MustRegister(t *Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns the tool for a method.
func (r *Registry) Get(m core.Method) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byMeth[m]
	return t, ok
}

// GetByName returns the tool with the given agent-facing name.
func (r *Registry) GetByName(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// All returns every registered tool sorted by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, len(r.ordered))
	copy(out, r.ordered)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
