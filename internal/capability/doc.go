// Package capability resolves and invokes the optional window layouter.
//
// A layouter is a method named LayoutWindow on a value exported by a
// registered module, with the exact shape
//
//	LayoutWindow(id int, region gui.Rect, fn gui.WindowFunc, title string,
//	             style gui.Style, opts ...gui.Option) gui.Rect
//
// The Resolver searches the module registry for one such method, trying a
// prioritized list of strategies, and memoizes the outcome for the rest of
// the process (found descriptor, or confirmed absent). The Invoker calls the
// resolved method defensively: nothing a provider does — wrong shape, panic
// mid-call, weird runtime types — ever reaches the caller as anything worse
// than "not handled", at which point the host's own layout takes over.
package capability
