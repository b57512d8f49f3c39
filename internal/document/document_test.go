package document

import (
	"os"
	"testing"
)

func TestBytesSize(t *testing.T) {
	d := NewBytes([]byte{0x01, 0x02, 0x03})
	if d.Size() != 3 {
		t.Errorf("expected size 3, got %d", d.Size())
	}
}

func TestReadWindow(t *testing.T) {
	d := NewBytes([]byte{0x10, 0x20, 0x30, 0x40, 0x50})

	w, err := ReadWindow(d, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 3 || w[0] != 0x20 || w[2] != 0x40 {
		t.Errorf("unexpected window: %v", w)
	}
}

func TestReadWindowShortAtEOF(t *testing.T) {
	d := NewBytes([]byte{0x10, 0x20, 0x30})

	w, err := ReadWindow(d, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 1 || w[0] != 0x30 {
		t.Errorf("expected short window [30], got %v", w)
	}
}

func TestReadWindowPastEnd(t *testing.T) {
	d := NewBytes([]byte{0x10})

	w, err := ReadWindow(d, 1, 16)
	if err != nil {
		t.Fatal(err)
	}
	if w != nil {
		t.Errorf("expected nil window past end, got %v", w)
	}

	w, err = ReadWindow(d, -1, 16)
	if err != nil || w != nil {
		t.Errorf("expected nil window for negative offset, got %v, %v", w, err)
	}
}

func TestReadWindowNilDocument(t *testing.T) {
	w, err := ReadWindow(nil, 0, 16)
	if err != nil || w != nil {
		t.Errorf("expected nothing from nil document, got %v, %v", w, err)
	}
}

func TestOpenFile(t *testing.T) {
	f, err := os.CreateTemp("", "hexview_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	testData := []byte{0xde, 0xad, 0xbe, 0xef}
	f.Write(testData)
	f.Close()

	d, err := OpenFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if d.Size() != 4 {
		t.Errorf("expected size 4, got %d", d.Size())
	}

	w, err := ReadWindow(d, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 2 || w[0] != 0xbe || w[1] != 0xef {
		t.Errorf("unexpected window: %v", w)
	}
}
