package nbtfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/nbt-format/decode"
	"github.com/signadot/nbt-format/encode"
	"github.com/signadot/nbt-format/tag"
)

func fileTree() *tag.Node {
	root := tag.NewRoot("Data")
	root.Compound.Add(tag.NewNode("id", tag.FromShort(276)))
	root.Compound.Add(tag.NewNode("name", tag.MustString("level")))
	return root
}

func TestCompressionDetect(t *testing.T) {
	raw, err := encode.Marshal(fileTree())
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []Compression{None, Gzip, Zlib} {
		t.Run(c.String(), func(t *testing.T) {
			d, err := Compress(raw, c)
			if err != nil {
				t.Fatal(err)
			}
			if got := Detect(d); got != c {
				t.Errorf("Detect = %s", got)
			}
			back, got, err := Decompress(d, Auto)
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Errorf("Decompress detected %s", got)
			}
			if !bytes.Equal(raw, back) {
				t.Errorf("payload changed")
			}
		})
	}
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{"": Auto, "gz": Gzip, "zlib": Zlib, "raw": None} {
		got, err := ParseCompression(in)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := ParseCompression("lz4"); err == nil {
		t.Errorf("expected error")
	}
}

func TestLoadSave(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zlib} {
		t.Run(c.String(), func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "level.dat")
			f := &File{Path: p, Compression: c, Root: fileTree()}
			if err := f.Save(); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
				t.Errorf("temp file left behind: %v", err)
			}
			got, err := Load(p)
			if err != nil {
				t.Fatal(err)
			}
			if got.Compression != c {
				t.Errorf("loaded as %s", got.Compression)
			}
			if !tag.Equal(f.Root, got.Root) {
				t.Errorf("tree changed")
			}
		})
	}
}

func TestSaveKeepsMode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "level.dat")
	if err := os.WriteFile(p, nil, 0600); err != nil {
		t.Fatal(err)
	}
	f := &File{Path: p, Compression: None, Root: fileTree()}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0600 {
		t.Errorf("mode %v", fi.Mode().Perm())
	}
}

func TestSaveInvalidKeepsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "level.dat")
	f := &File{Path: p, Compression: Gzip, Root: fileTree()}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(p)
	f.Root.Compound.Add(tag.NewNode("bad", tag.Value{Type: tag.ByteType, Int: 1000}))
	if err := f.Save(); !errors.Is(err, tag.ErrValidation) {
		t.Fatalf("got %v", err)
	}
	after, _ := os.ReadFile(p)
	if !bytes.Equal(before, after) {
		t.Errorf("file changed by failed save")
	}
}

func TestParseTrailing(t *testing.T) {
	raw, _ := encode.Marshal(fileTree())
	_, err := Parse(append(raw, 0x00))
	if !errors.Is(err, decode.ErrFormat) {
		t.Errorf("got %v", err)
	}
}

func TestReadWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &File{Compression: Zlib, Root: fileTree()}
	if err := f.Write(buf); err != nil {
		t.Fatal(err)
	}
	got, err := Read(buf, WithCompression(Zlib))
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(f.Root, got.Root) {
		t.Errorf("tree changed")
	}
	if _, err := Read(bytes.NewReader([]byte{0x1f, 0x8b, 0x00})); err == nil {
		t.Errorf("broken gzip accepted")
	}
}
