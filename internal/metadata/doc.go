// Package metadata implements the metadata record lifecycle: building a
// record from a package and a project, persisting it as a JSON sidecar next
// to the package, and loading it back.
//
// The sidecar path is a pure function of the package path: the record for
// /out/myapp.deb lives at /out/myapp.deb.metadata.json. Records are immutable
// once built; changing anything means regenerating and re-saving.
//
// Serialization is deterministic: fields marshal in construction order with
// two-space indentation, so saving the same record twice produces
// byte-identical output.
package metadata
