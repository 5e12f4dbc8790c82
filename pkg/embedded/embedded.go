// Package embedded gives other packages access to the data files embedded at
// the module root.
//
// //go:embed can only reach files under the declaring package's directory,
// so the embed.FS lives in the root package (embed.go) and is handed over
// here with Init before anything loads data.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned by every accessor before Init is called.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init installs the data file system. It must run at the start of main,
// before any configuration is loaded. Tests may pass os.DirFS or an
// fstest.MapFS.
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

func normalize(path string) (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open opens an embedded file. The path must start with "data/".
func Open(path string) (fs.File, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(p)
}

// ReadFile reads an embedded file. The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists reports whether an embedded file exists.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
