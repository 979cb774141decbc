// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package files

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-upload-form/models"
)

//go:generate mockgen -source=resolver.go -destination=../mock/stater_mock.go -package=mock

// Stater reports file metadata for a path. The default implementation is
// backed by os.Stat.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

type osStater struct{}

func (osStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Resolver builds [models.RawFile] values from local paths.
type Resolver struct {
	fs Stater
}

// NewResolver returns a Resolver reading from the local file system.
func NewResolver() *Resolver {
	return &Resolver{fs: osStater{}}
}

// NewResolverWithStater returns a Resolver reading metadata from s.
func NewResolverWithStater(s Stater) *Resolver {
	return &Resolver{fs: s}
}

// Resolve stats every path. Paths that cannot be read or point at a
// directory are reported in errs and left out of the result; the order of
// the remaining files follows paths.
func (r *Resolver) Resolve(paths []string) (out []models.RawFile, errs []error) {
	for _, p := range paths {
		f, err := r.resolve(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, f)
	}
	return out, errs
}

func (r *Resolver) resolve(path string) (models.RawFile, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return models.RawFile{}, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return models.RawFile{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	return models.RawFile{
		Name: filepath.Base(path),
		Type: DeclaredType(path),
		Size: info.Size(),
		Path: path,
	}, nil
}

// DeclaredType returns the media type implied by the extension of name, the
// way a browser fills File.type. Unknown extensions yield "".
func DeclaredType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	return mime.TypeByExtension(ext)
}
