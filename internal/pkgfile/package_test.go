package pkgfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myapp-1.2.3.deb")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	pkg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, path, pkg.Path())
	assert.Equal(t, "myapp-1.2.3.deb", pkg.Name())
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", pkg.MD5())
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", pkg.SHA1())
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", pkg.SHA256())
	assert.NotEmpty(t, pkg.SHA512())
}

func TestNew_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.deb")

	_, err := New(path)
	require.Error(t, err)

	var noPkg *pakmeta.NoPackageFileError
	require.True(t, errors.As(err, &noPkg))
	assert.Equal(t, path, noPkg.Path)
}

func TestNew_Directory(t *testing.T) {
	_, err := New(t.TempDir())

	var noPkg *pakmeta.NoPackageFileError
	require.True(t, errors.As(err, &noPkg))
}
