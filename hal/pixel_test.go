package hal

import "testing"

func TestRGB565RoundTripPrimaries(t *testing.T) {
	cases := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0, 0},
		{0, 0xFF, 0},
		{0, 0, 0xFF},
	}
	for _, tc := range cases {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("round trip %02x%02x%02x: got %02x%02x%02x", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestConvertRGB565(t *testing.T) {
	p := rgb565(0xFF, 0, 0)
	src := []byte{byte(p), byte(p >> 8), 0, 0}
	dst := make([]byte, 8)
	convertRGB565(dst, src)

	want := []byte{0xFF, 0, 0, 0xFF, 0, 0, 0, 0xFF}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]=%#x, want %#x (dst=%v)", i, dst[i], want[i], dst)
		}
	}
}
