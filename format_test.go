package uasset

import "testing"

func TestSwap32(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0x9E2A83C1, 0xC1832A9E},
		{0x00000000, 0x00000000},
		{0x000000FF, 0xFF000000},
		{0x12345678, 0x78563412},
	}

	for _, tt := range tests {
		if got := swap32(tt.in); got != tt.want {
			t.Errorf("swap32(%#08x) = %#08x, want %#08x", tt.in, got, tt.want)
		}
		if got := swap32(swap32(tt.in)); got != tt.in {
			t.Errorf("swap32 is not an involution for %#08x", tt.in)
		}
	}
}

func TestPackageFileMagic(t *testing.T) {
	if PackageFileMagic != 0x9E2A83C1 {
		t.Errorf("PackageFileMagic = %#08x", uint32(PackageFileMagic))
	}
}
