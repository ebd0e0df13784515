package capability

import (
	"context"
	"reflect"

	"github.com/vk/winbridge/internal/ctxlog"
	"github.com/vk/winbridge/internal/gui"
)

// Invoker calls the resolved layout method defensively. It is the only code
// allowed to touch a Descriptor's bound method value.
type Invoker struct {
	resolver *Resolver
}

// NewInvoker creates an invoker over the given resolver.
func NewInvoker(resolver *Resolver) *Invoker {
	return &Invoker{resolver: resolver}
}

// TryLayoutWindow attempts the resolved layouter with the given arguments.
// It reports false — never an error, never a panic — when the capability is
// absent or the call fails for any reason. On success the updated region is
// written back through region and true is returned.
func (iv *Invoker) TryLayoutWindow(ctx context.Context, id int, region *gui.Rect, fn gui.WindowFunc, title string, style gui.Style, opts ...gui.Option) bool {
	desc, ok := iv.resolver.Resolve(ctx)
	if !ok {
		return false
	}
	updated, handled := callLayouter(ctx, desc, id, *region, fn, title, style, opts)
	if !handled {
		return false
	}
	*region = updated
	return true
}

// LayoutWindow lays out one window, preferring the optional layouter and
// degrading to the supplied fallback when the optional path does not handle
// the call. The fallback is the host's own implementation: it is trusted,
// assumed infallible, and runs unwrapped.
func (iv *Invoker) LayoutWindow(ctx context.Context, id int, region gui.Rect, fn gui.WindowFunc, title string, style gui.Style, fallback gui.LayoutFunc, opts ...gui.Option) gui.Rect {
	if iv.TryLayoutWindow(ctx, id, &region, fn, title, style, opts...) {
		return region
	}
	ctxlog.FromContext(ctx).Info("Optional window layouter not used; applying built-in layout.", "window", id)
	return fallback(id, region, fn, title, style, opts...)
}

// callLayouter performs the reflective call. Anything the provider does
// wrong — argument marshaling failure, a panic inside the target, a runtime
// result that defies the statically matched shape — is swallowed here and
// reported as unhandled.
func callLayouter(ctx context.Context, desc *Descriptor, id int, region gui.Rect, fn gui.WindowFunc, title string, style gui.Style, opts []gui.Option) (updated gui.Rect, handled bool) {
	defer func() {
		if rec := recover(); rec != nil {
			ctxlog.FromContext(ctx).Debug("Resolved window layouter failed; treating call as unhandled.",
				"layouter", desc.String(), "panic", rec)
			updated, handled = gui.Rect{}, false
		}
	}()

	args := []reflect.Value{
		reflect.ValueOf(id),
		reflect.ValueOf(region),
		reflect.ValueOf(fn),
		reflect.ValueOf(title),
		reflect.ValueOf(style),
	}
	for _, opt := range opts {
		args = append(args, reflect.ValueOf(opt))
	}

	results := desc.fn.Call(args)
	if len(results) != 1 || results[0].Type() != desc.ret {
		return gui.Rect{}, false
	}
	out, ok := results[0].Interface().(gui.Rect)
	if !ok {
		return gui.Rect{}, false
	}
	return out, true
}
