package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Document is a seekable, read-only byte source. The view never owns the
// document; the host is responsible for closing file-backed ones.
type Document interface {
	io.ReadSeeker
	Size() int64
}

// ReadWindow reads up to n bytes starting at offset. At EOF the returned
// slice is short, and nil once offset is at or past the end; neither case
// is an error.
func ReadWindow(d Document, offset int64, n int) ([]byte, error) {
	if d == nil || n <= 0 || offset < 0 || offset >= d.Size() {
		return nil, nil
	}
	if _, err := d.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %#x: %w", offset, err)
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(d, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %d bytes at %#x: %w", n, offset, err)
	}
	return buf[:read], nil
}

// Bytes is an in-memory document.
type Bytes struct {
	*bytes.Reader
}

func NewBytes(data []byte) *Bytes {
	return &Bytes{Reader: bytes.NewReader(data)}
}

func (b *Bytes) Size() int64 {
	return b.Reader.Size()
}

// File is a document backed by an open file. The size is captured at open
// time; a file growing underneath the view is the host's problem.
type File struct {
	f    *os.File
	size int64
}

func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, size: info.Size()}, nil
}

func (f *File) Read(p []byte) (int, error) {
	return f.f.Read(p)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}

func (f *File) Size() int64 {
	return f.size
}

func (f *File) Name() string {
	return f.f.Name()
}

func (f *File) Close() error {
	return f.f.Close()
}
