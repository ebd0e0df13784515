package capability

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/vk/winbridge/internal/ctxlog"
	"github.com/vk/winbridge/internal/registry"
)

// providerTypeNames are the qualified type names known layouter builds ship
// under, in preference order. Strategy 1 looks them up as declared export
// names; strategy 2 compares them against each export's reflected type name.
var providerTypeNames = []string{
	"github.com/vk/winbridge/modules/snapwin.WindowLayouter",
	"github.com/vk/snapwin.WindowLayouter",
}

// providerShortName is the bare type name the structural scan accepts,
// case-insensitively. Forks and vendored copies keep the type name even when
// the import path changes.
const providerShortName = "WindowLayouter"

// Descriptor identifies one resolved layout method: the owning type, the
// method name, its declared parameter and return types, and the bound method
// value the Invoker calls through. Immutable once constructed.
type Descriptor struct {
	owner  reflect.Type
	method string
	params []reflect.Type
	ret    reflect.Type
	fn     reflect.Value
}

// Owner returns the provider type the method was found on.
func (d *Descriptor) Owner() reflect.Type { return d.owner }

// Method returns the resolved method name.
func (d *Descriptor) Method() string { return d.method }

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s.%s", d.owner, d.method)
}

// Resolver locates the optional window layouter across the registered
// modules. The search runs at most once per Resolver; all callers, including
// concurrent first callers, converge on the same outcome.
type Resolver struct {
	reg  *registry.Registry
	once sync.Once
	desc *Descriptor
}

// NewResolver creates a resolver over the given module registry.
func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns the memoized descriptor, or ok=false when no registered
// module provides a conforming layouter. A module that exists under an
// expected name but exposes no method matching the call shape is treated
// exactly like total absence.
func (r *Resolver) Resolve(ctx context.Context) (*Descriptor, bool) {
	r.once.Do(func() {
		r.desc = r.search(ctx)
	})
	if r.desc == nil {
		return nil, false
	}
	return r.desc, true
}

// search performs the real work: locate a candidate provider value, then
// pick the first of its methods that satisfies the window call shape.
func (r *Resolver) search(ctx context.Context) *Descriptor {
	logger := ctxlog.FromContext(ctx)

	provider, strategy := r.findProvider(ctx)
	if provider == nil {
		logger.Debug("No window layouter provider registered; built-in layout will be used.")
		return nil
	}

	desc := describeLayouter(provider)
	if desc == nil {
		// Wrong or incompatible shape. No partial credit: same outcome as
		// total absence.
		logger.Warn("Window layouter provider found but no method matches the required call shape; ignoring it.",
			"provider", fmt.Sprintf("%T", provider), "strategy", strategy)
		return nil
	}

	logger.Debug("Resolved optional window layouter.", "layouter", desc.String(), "strategy", strategy)
	return desc
}

// findProvider tries each search strategy in order and returns the first
// candidate value, together with the strategy that found it.
func (r *Resolver) findProvider(ctx context.Context) (any, string) {
	// Strategy 1: direct lookup of the known export names in the registry
	// index. Cheap, covers providers registered under their conventional
	// names. A missing name is a miss, not an error.
	for _, name := range providerTypeNames {
		if v, ok := r.reg.Export(name); ok && v != nil {
			return v, "direct"
		}
	}

	// Strategy 2: scoped scan. Walk each module's exports and compare the
	// reflected type name against the same candidate list. Catches providers
	// registered under unconventional export names.
	for _, m := range r.reg.Modules() {
		for _, v := range sortedExports(ctx, m) {
			name := qualifiedTypeName(v)
			for _, want := range providerTypeNames {
				if name == want {
					return v, "scoped"
				}
			}
		}
	}

	// Strategy 3: structural scan. Walk every export of every module and
	// take the first whose bare or qualified type name equals the expected
	// name case-insensitively. Most expensive, least precise; last resort.
	for _, m := range r.reg.Modules() {
		for _, v := range sortedExports(ctx, m) {
			t := baseType(v)
			if t == nil {
				continue
			}
			if strings.EqualFold(t.Name(), providerShortName) ||
				strings.EqualFold(qualifiedTypeName(v), providerShortName) {
				return v, "structural"
			}
		}
	}

	return nil, ""
}

// describeLayouter enumerates the candidate's methods and returns a
// descriptor for the first one matching the window call shape, or nil.
// Enumeration is panic-tolerant like every other introspection step.
func describeLayouter(provider any) (desc *Descriptor) {
	defer func() {
		if recover() != nil {
			desc = nil
		}
	}()

	rv := reflect.ValueOf(provider)
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		if m.Name != windowShape.Name {
			continue
		}
		fn := rv.Method(i)
		if !windowShape.Matches(m.Name, fn.Type()) {
			continue
		}
		params := make([]reflect.Type, len(windowShape.Params))
		copy(params, windowShape.Params)
		return &Descriptor{
			owner:  rt,
			method: m.Name,
			params: params,
			ret:    windowShape.Return,
			fn:     fn,
		}
	}
	return nil
}

// sortedExports returns a module's export values ordered by export name, so
// scans behave the same from run to run. Panicking modules contribute
// nothing.
func sortedExports(ctx context.Context, m registry.Module) []any {
	exports := registry.SafeExports(ctx, m)
	if len(exports) == 0 {
		return nil
	}
	keys := make([]string, 0, len(exports))
	for k := range exports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]any, 0, len(keys))
	for _, k := range keys {
		values = append(values, exports[k])
	}
	return values
}

// qualifiedTypeName returns "pkgpath.TypeName" for a value, or "" when the
// value has no named base type.
func qualifiedTypeName(v any) string {
	t := baseType(v)
	if t == nil || t.Name() == "" {
		return ""
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// baseType returns the value's type with any pointer indirection removed.
func baseType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
