// Package pkgfile implements the pakmeta.Package collaborator for a built
// package sitting on disk.
package pkgfile

import (
	"os"
	"path/filepath"

	"github.com/forgeops/pakmeta/internal/checksum"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// FilePackage is a package file on disk with its digest set computed once at
// construction. It is immutable after New returns.
type FilePackage struct {
	path    string
	name    string
	digests checksum.Digests
}

// New opens the package at path and computes its digests. A missing file is
// a pakmeta.NoPackageFileError; nothing is written in that case.
func New(path string) (*FilePackage, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &pakmeta.NoPackageFileError{Path: path}
	}

	digests, err := checksum.New().File(path)
	if err != nil {
		return nil, err
	}

	return &FilePackage{
		path:    path,
		name:    filepath.Base(path),
		digests: digests,
	}, nil
}

func (p *FilePackage) Path() string   { return p.path }
func (p *FilePackage) Name() string   { return p.name }
func (p *FilePackage) MD5() string    { return p.digests.MD5 }
func (p *FilePackage) SHA1() string   { return p.digests.SHA1 }
func (p *FilePackage) SHA256() string { return p.digests.SHA256 }
func (p *FilePackage) SHA512() string { return p.digests.SHA512 }

var _ pakmeta.Package = (*FilePackage)(nil)
