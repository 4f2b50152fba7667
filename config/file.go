// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// FileReader is an io.Reader which opens its file lazily on first Read.
type FileReader struct {
	path string
	fs   fs.FS
	file io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fsys,
	}
}

// Read implements the [io.Reader] interface.
func (r *FileReader) Read(b []byte) (int, error) {
	if r.file == nil {
		f, err := r.fs.Open(r.path)
		if err != nil {
			return 0, err
		}
		r.file = f
	}
	return r.file.Read(b)
}

// Close implements the [io.Closer] interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}

// UnsupportedFileFormatError occurs when [FromFile] cannot choose a format
// from the file extension.
type UnsupportedFileFormatError struct {
	Path string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedFileFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format: %s", e.Path)
}

// FromFile returns a Source reading the file at path from fsys. The file
// is first rendered as a text/template with opts and then parsed as JSON,
// YAML or HCL depending on its extension.
func FromFile(fsys fs.FS, filePath string, opts ...RenderTextTemplateOption) Source {
	r := RenderTextTemplate(NewFileReader(fsys, filePath), opts...)

	switch strings.ToLower(path.Ext(filePath)) {
	case ".json":
		return FromJson(r)
	case ".yaml", ".yml":
		return FromYaml(r)
	case ".hcl":
		return FromHcl(r)
	default:
		return sourceFunc(func(Store) error {
			return UnsupportedFileFormatError{Path: filePath}
		})
	}
}

type sourceFunc func(Store) error

func (f sourceFunc) Apply(store Store) error {
	return f(store)
}
