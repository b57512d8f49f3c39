package hexview

import (
	"encoding/binary"
	"fmt"
)

// AddressSize selects 32- or 64-bit address rendering. The values are the
// address width in bytes.
type AddressSize int

const (
	Address32 AddressSize = 4
	Address64 AddressSize = 8
)

// FormatWord renders one word as fixed-width hex, least-significant byte
// printed last. The window must be exactly one word long; callers verify
// that the word fits inside the data before asking for it.
func FormatWord(window []byte) string {
	switch len(window) {
	case 1:
		return fmt.Sprintf("%02x", window[0])
	case 2:
		return fmt.Sprintf("%04x", binary.LittleEndian.Uint16(window))
	case 4:
		return fmt.Sprintf("%08x", binary.LittleEndian.Uint32(window))
	case 8:
		return fmt.Sprintf("%016x", binary.LittleEndian.Uint64(window))
	}
	return ""
}

// FormatAddress renders an address as two fixed-width hex halves. Output
// length depends only on the configuration, never on the value, so the
// address column stays aligned. Hiding leading zeros reduces the 64-bit
// high half to its low 16 bits.
func FormatAddress(addr uint64, size AddressSize, separator, hideLeadingZeros bool) string {
	sep := ""
	if separator {
		sep = ":"
	}

	switch size {
	case Address32:
		hi := uint16(addr >> 16)
		lo := uint16(addr)
		return fmt.Sprintf("%04x%s%04x", hi, sep, lo)
	case Address64:
		hi := uint32(addr >> 32)
		lo := uint32(addr)
		if hideLeadingZeros {
			return fmt.Sprintf("%04x%s%08x", uint16(hi), sep, lo)
		}
		return fmt.Sprintf("%08x%s%08x", hi, sep, lo)
	}
	return ""
}

// AddressLen returns the character width of a formatted address for the
// given configuration.
func AddressLen(size AddressSize, separator, hideLeadingZeros bool) int {
	n := int(size) * 8 / 4
	if hideLeadingZeros && size == Address64 {
		n -= 4
	}
	if separator {
		n++
	}
	return n
}
