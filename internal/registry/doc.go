// Package registry holds the host's view of the currently loaded modules.
//
// A Module announces a name and a set of declared exports (prototype values
// keyed by qualified export name). The registry indexes those exports for
// direct lookup and keeps the module list available for full scans. It is
// strictly a read surface for the capability layer: loading and unloading
// modules is the host's business, and the set is assumed stable for the
// process's lifetime.
//
// Modules are third-party code and are not trusted to introspect cleanly.
// Every enumeration of a module's exports is panic-tolerant; a module that
// blows up during enumeration is skipped, never allowed to abort a scan.
package registry
