// Package headertest builds package header bytes for tests.
package headertest

import (
	"bytes"
	"encoding/binary"
)

// Magic is the little-endian package magic.
const Magic uint32 = 0x9E2A83C1

// Fields are the raw header values. UE5 is written only when Legacy <= -8.
type Fields struct {
	Magic    uint32
	Legacy   int32
	UE3      int32
	UE4      int32
	UE5      int32
	Licensee int32
}

// Default returns a valid UE4-era header (legacy -7, newest UE4 version).
func Default() Fields {
	return Fields{Magic: Magic, Legacy: -7, UE4: 522}
}

// DefaultUE5 returns a valid UE5-era header (legacy -8).
func DefaultUE5() Fields {
	return Fields{Magic: Magic, Legacy: -8, UE4: 522, UE5: 1004}
}

// Bytes encodes f, followed by trailer.
func (f Fields) Bytes(trailer ...byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, f.Magic)
	binary.Write(buf, binary.LittleEndian, f.Legacy)
	binary.Write(buf, binary.LittleEndian, f.UE3)
	binary.Write(buf, binary.LittleEndian, f.UE4)
	if f.Legacy <= -8 {
		binary.Write(buf, binary.LittleEndian, f.UE5)
	}
	binary.Write(buf, binary.LittleEndian, f.Licensee)
	buf.Write(trailer)
	return buf.Bytes()
}
