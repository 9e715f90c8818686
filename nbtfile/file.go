// Package nbtfile loads and saves tag trees as files, handling the gzip or
// zlib envelope around the tag stream and replacing files atomically.
package nbtfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/nbt-format/debug"
	"github.com/signadot/nbt-format/decode"
	"github.com/signadot/nbt-format/encode"
	"github.com/signadot/nbt-format/tag"
)

// File is a loaded tag tree and where it came from.
type File struct {
	Path        string
	Compression Compression
	Root        *tag.Node
}

type loadOpts struct {
	compression Compression
	decodeOpts  []decode.Option
}

type LoadOption func(*loadOpts)

// WithCompression overrides envelope detection.
func WithCompression(c Compression) LoadOption {
	return func(o *loadOpts) { o.compression = c }
}

func WithDecodeOptions(opts ...decode.Option) LoadOption {
	return func(o *loadOpts) { o.decodeOpts = append(o.decodeOpts, opts...) }
}

func Load(p string, opts ...LoadOption) (*File, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	res, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", p, err)
	}
	res.Path = p
	if debug.File() {
		debug.Logf("loaded %s (%s, %d bytes): %v\n", p, res.Compression, len(d), res.Root)
	}
	return res, nil
}

// Read loads a tree from r.
func Read(r io.Reader, opts ...LoadOption) (*File, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// Parse decodes a whole file image. Bytes after the root tag are an error,
// since saving would silently drop them.
func Parse(d []byte, opts ...LoadOption) (*File, error) {
	lo := &loadOpts{}
	for _, opt := range opts {
		opt(lo)
	}
	raw, c, err := Decompress(d, lo.compression)
	if err != nil {
		return nil, err
	}
	root, n, err := decode.Decode(raw, lo.decodeOpts...)
	if err != nil {
		return nil, err
	}
	if n != len(raw) {
		return nil, &decode.FormatError{Reason: fmt.Sprintf("%d bytes after root tag", len(raw)-n), Offset: n}
	}
	return &File{Compression: c, Root: root}, nil
}

// Bytes returns the file image: the encoded tree in its envelope.
func (f *File) Bytes() ([]byte, error) {
	d, err := encode.Marshal(f.Root)
	if err != nil {
		return nil, err
	}
	return Compress(d, f.Compression)
}

// Write writes the file image to w.
func (f *File) Write(w io.Writer) error {
	d, err := f.Bytes()
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(d))
	return err
}

// Save replaces the file at f.Path.
func (f *File) Save() error {
	return f.SaveAs(f.Path)
}

// SaveAs writes the file image to p.tmp, syncs it and renames it over p,
// so that p holds either the old or the new content. An existing p keeps
// its permissions.
func (f *File) SaveAs(p string) error {
	d, err := f.Bytes()
	if err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(p); err == nil {
		mode = fi.Mode().Perm()
	}
	tmpFile := p + ".tmp"
	if err := writeSync(tmpFile, d, mode); err != nil {
		os.Remove(tmpFile)
		return err
	}
	// Atomic rename
	if err := os.Rename(tmpFile, p); err != nil {
		os.Remove(tmpFile)
		return err
	}
	if dir, err := os.Open(filepath.Dir(p)); err == nil {
		dir.Sync()
		dir.Close()
	}
	if debug.File() {
		debug.Logf("saved %s (%s, %d bytes)\n", p, f.Compression, len(d))
	}
	return nil
}

func writeSync(p string, d []byte, mode os.FileMode) error {
	tmp, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	return tmp.Close()
}
