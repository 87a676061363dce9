package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Digests holds the hex-encoded digest set for a single piece of content.
type Digests struct {
	MD5    string
	SHA1   string
	SHA256 string
	SHA512 string
}

// Calculator is an interface for computing the digest set of package content.
// This abstraction allows tests to substitute canned digests.
type Calculator interface {
	// File computes the digest set of the file at path.
	File(path string) (Digests, error)

	// Reader computes the digest set of everything readable from r.
	Reader(r io.Reader) (Digests, error)
}

// Multi computes all four digests in one streaming pass using io.MultiWriter.
//
// Multi is a zero-size type; value semantics avoid heap allocations and make
// it trivially safe for concurrent use.
type Multi struct{}

// New creates a new multi-digest calculator.
func New() Multi {
	return Multi{}
}

// File computes the digest set of the file at path.
func (c Multi) File(path string) (Digests, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digests{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return c.Reader(f)
}

// Reader computes the digest set of everything readable from r.
func (c Multi) Reader(r io.Reader) (Digests, error) {
	hashes := []hash.Hash{md5.New(), sha1.New(), sha256.New(), sha512.New()}

	writers := make([]io.Writer, len(hashes))
	for i, h := range hashes {
		writers[i] = h
	}

	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return Digests{}, fmt.Errorf("failed to hash content: %w", err)
	}

	return Digests{
		MD5:    hex.EncodeToString(hashes[0].Sum(nil)),
		SHA1:   hex.EncodeToString(hashes[1].Sum(nil)),
		SHA256: hex.EncodeToString(hashes[2].Sum(nil)),
		SHA512: hex.EncodeToString(hashes[3].Sum(nil)),
	}, nil
}

var _ Calculator = Multi{}
