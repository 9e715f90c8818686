package nbtfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression is the envelope wrapped around the tag stream in a file.
type Compression int

const (
	Auto Compression = iota
	None
	Gzip
	Zlib
)

func ParseCompression(v string) (Compression, error) {
	c, ok := map[string]Compression{
		"":     Auto,
		"auto": Auto,
		"none": None,
		"raw":  None,
		"gzip": Gzip,
		"gz":   Gzip,
		"zlib": Zlib,
	}[v]
	if ok {
		return c, nil
	}
	return Auto, fmt.Errorf("unknown compression %q", v)
}

func (c Compression) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c Compression) MarshalText() ([]byte, error) {
	switch c {
	case Auto:
		return []byte("auto"), nil
	case None:
		return []byte("none"), nil
	case Gzip:
		return []byte("gzip"), nil
	case Zlib:
		return []byte("zlib"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a compression>", c)
	}
}

func (c *Compression) UnmarshalText(d []byte) error {
	pc, err := ParseCompression(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// Detect guesses the envelope of d from its first bytes. An uncompressed
// tag stream starts with the Compound id 0x0a, which neither gzip nor zlib
// headers do.
func Detect(d []byte) Compression {
	switch {
	case len(d) >= 2 && d[0] == 0x1f && d[1] == 0x8b:
		return Gzip
	case len(d) >= 2 && d[0]&0x0f == 8 && (uint16(d[0])<<8|uint16(d[1]))%31 == 0:
		return Zlib
	default:
		return None
	}
}

// Decompress strips the envelope c from d. Auto detects it first.
func Decompress(d []byte, c Compression) ([]byte, Compression, error) {
	if c == Auto {
		c = Detect(d)
	}
	var (
		r   io.ReadCloser
		err error
	)
	switch c {
	case None:
		return d, c, nil
	case Gzip:
		r, err = gzip.NewReader(bytes.NewReader(d))
	case Zlib:
		r, err = zlib.NewReader(bytes.NewReader(d))
	default:
		return nil, c, fmt.Errorf("unknown compression %d", c)
	}
	if err != nil {
		return nil, c, fmt.Errorf("%s: %w", c, err)
	}
	defer r.Close()
	res, err := io.ReadAll(r)
	if err != nil {
		return nil, c, fmt.Errorf("%s: %w", c, err)
	}
	return res, c, nil
}

// Compress wraps d in the envelope c. Auto is treated as Gzip, the
// envelope most NBT files use.
func Compress(d []byte, c Compression) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	var w io.WriteCloser
	switch c {
	case None:
		return d, nil
	case Auto, Gzip:
		w = gzip.NewWriter(buf)
	case Zlib:
		w = zlib.NewWriter(buf)
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
	if _, err := w.Write(d); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
