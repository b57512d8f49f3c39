package hexview

import (
	"encoding/binary"
	"testing"
)

func TestFormatWord(t *testing.T) {
	tests := []struct {
		name   string
		window []byte
		want   string
	}{
		{"1 byte", []byte{0xab}, "ab"},
		{"2 bytes little endian", []byte{0x34, 0x12}, "1234"},
		{"4 bytes little endian", []byte{0x78, 0x56, 0x34, 0x12}, "12345678"},
		{"8 bytes little endian", []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, "0102030405060708"},
		{"zero padded", []byte{0x01, 0x00, 0x00, 0x00}, "00000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWord(tt.window); got != tt.want {
				t.Errorf("FormatWord(%v) = %q, want %q", tt.window, got, tt.want)
			}
			if len(tt.want) != 2*len(tt.window) {
				t.Errorf("expected fixed width %d, got %d", 2*len(tt.window), len(tt.want))
			}
		})
	}
}

func TestFormatWordRoundTrip(t *testing.T) {
	window := []byte{0x78, 0x56, 0x34, 0x12}
	if got := FormatWord(window); got != "12345678" {
		t.Fatalf("FormatWord = %q, want %q", got, "12345678")
	}
	if binary.LittleEndian.Uint32(window) != 0x12345678 {
		t.Error("window does not decode to the displayed value")
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name      string
		addr      uint64
		size      AddressSize
		separator bool
		hideZeros bool
		want      string
	}{
		{"32-bit separated", 0xdeadbeef, Address32, true, false, "dead:beef"},
		{"32-bit plain", 0xdeadbeef, Address32, false, false, "deadbeef"},
		{"64-bit separated", 0x10, Address64, true, false, "00000000:00000010"},
		{"64-bit plain", 0x123456789abcdef0, Address64, false, false, "123456789abcdef0"},
		{"64-bit hidden zeros", 0x10, Address64, true, true, "0000:00000010"},
		{"64-bit hidden zeros masks high half", 0x7fff_1234_5678_9abc, Address64, true, true, "1234:56789abc"},
		{"32-bit hide flag ignored", 0x10, Address32, true, true, "0000:0010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAddress(tt.addr, tt.size, tt.separator, tt.hideZeros)
			if got != tt.want {
				t.Errorf("FormatAddress(%#x) = %q, want %q", tt.addr, got, tt.want)
			}
			if len(got) != AddressLen(tt.size, tt.separator, tt.hideZeros) {
				t.Errorf("length %d does not match AddressLen %d", len(got), AddressLen(tt.size, tt.separator, tt.hideZeros))
			}
		})
	}
}

func TestFormatAddressFixedWidth(t *testing.T) {
	// output width must not depend on the value
	for _, addr := range []uint64{0, 1, 0xffff, 0xffffffff, 0xffffffffffffffff} {
		if got := len(FormatAddress(addr, Address64, true, false)); got != 17 {
			t.Errorf("FormatAddress(%#x) has width %d, want 17", addr, got)
		}
	}
}
