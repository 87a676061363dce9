// Package checksum computes the digest set recorded in package metadata.
//
// Every package is described by four hex-encoded digests (md5, sha1, sha256,
// sha512). All four are computed in a single streaming pass over the content,
// so even large package files are read exactly once.
//
// md5 and sha1 are carried for compatibility with consumers that still key
// on them; sha256 and sha512 are the values integrity checks should use.
//
// # Example Usage
//
//	calc := checksum.New()
//	digests, err := calc.File("/out/myapp-1.2.3.deb")
//
// # Thread Safety
//
// Multi is a zero-size type and is safe for concurrent use by multiple
// goroutines.
package checksum
