// Package style holds the presentation context that themes are applied to.
package style

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// VariablePrefix is prepended to slot names when rendering CSS.
const VariablePrefix = "--color-"

// Root is an in-memory set of named style properties, the equivalent of the
// custom properties on a document root element.
type Root struct {
	mu    sync.RWMutex
	props map[string]string
	order []string
}

// NewRoot returns an empty Root.
func NewRoot() *Root {
	return &Root{props: make(map[string]string)}
}

// SetProperty implements ports.StyleContext.
func (r *Root) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.props[name]; !ok {
		r.order = append(r.order, name)
	}
	r.props[name] = value
}

// Get returns the current value of name.
func (r *Root) Get(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.props[name]
	return value, ok
}

// Snapshot returns a copy of every property.
func (r *Root) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.props))
	for k, v := range r.props {
		out[k] = v
	}
	return out
}

// CSS renders the properties as a :root rule, in first-write order.
func (r *Root) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range r.order {
		fmt.Fprintf(&b, "  %s%s: %s;\n", VariablePrefix, name, r.props[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// Names returns the property names in sorted order.
func (r *Root) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

var _ ports.StyleContext = (*Root)(nil)
