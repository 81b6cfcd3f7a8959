package declet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripExhaustive(t *testing.T) {
	for d2 := 0; d2 <= 9; d2++ {
		for d1 := 0; d1 <= 9; d1++ {
			for d0 := 0; d0 <= 9; d0++ {
				v := Encode(d2, d1, d0)
				require.LessOrEqual(t, v, uint16(0x3FF), "declet must fit in 10 bits")

				g2, g1, g0 := Decode(v)
				require.Equal(t, [3]int{d2, d1, d0}, [3]int{g2, g1, g0},
					"round trip mismatch for (%d,%d,%d) -> %#x", d2, d1, d0, v)
			}
		}
	}
}

func TestEncodeDistinctForAllCombinations(t *testing.T) {
	seen := make(map[uint16][3]int)
	for d2 := 0; d2 <= 9; d2++ {
		for d1 := 0; d1 <= 9; d1++ {
			for d0 := 0; d0 <= 9; d0++ {
				v := Encode(d2, d1, d0)
				if prior, ok := seen[v]; ok {
					t.Fatalf("declet %#x produced by both %v and %v", v, prior, [3]int{d2, d1, d0})
				}
				seen[v] = [3]int{d2, d1, d0}
			}
		}
	}
	require.Len(t, seen, 1000)
}

func TestCanonicalDPDValues(t *testing.T) {
	// Known bit-exact values for the IEEE-754-2008 DPD table, independent
	// of this package's own round-trip tests.
	cases := []struct {
		d2, d1, d0 int
		want       uint16
	}{
		{9, 9, 9, 0b1100111111},
		{0, 0, 0, 0b0000000000},
	}
	for _, c := range cases {
		got := Encode(c.d2, c.d1, c.d0)
		require.Equal(t, c.want, got, "Encode(%d,%d,%d)", c.d2, c.d1, c.d0)

		d2, d1, d0 := Decode(c.want)
		require.Equal(t, [3]int{c.d2, c.d1, c.d0}, [3]int{d2, d1, d0})
	}
}

func TestAllSmallLayout(t *testing.T) {
	v := Encode(3, 5, 7)
	require.Equal(t, uint16(0), v&(1<<3), "all-small declets leave bit 3 clear")
	d2, d1, d0 := Decode(v)
	require.Equal(t, 3, d2)
	require.Equal(t, 5, d1)
	require.Equal(t, 7, d0)
}

func TestEncodePanicsOnInvalidDigit(t *testing.T) {
	require.Panics(t, func() { Encode(10, 0, 0) })
	require.Panics(t, func() { Encode(0, -1, 0) })
}

func TestDecodeIgnoresUpperBits(t *testing.T) {
	v := Encode(9, 9, 9)
	g2, g1, g0 := Decode(v)
	h2, h1, h0 := Decode(v | 0xFC00)
	require.Equal(t, [3]int{g2, g1, g0}, [3]int{h2, h1, h0})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(0, 0, 0)
	f.Add(9, 9, 9)
	f.Add(8, 7, 9)
	f.Fuzz(func(t *testing.T, a, b, c int) {
		a = ((a % 10) + 10) % 10
		b = ((b % 10) + 10) % 10
		c = ((c % 10) + 10) % 10

		v := Encode(a, b, c)
		gotA, gotB, gotC := Decode(v)
		if gotA != a || gotB != b || gotC != c {
			t.Fatalf("round trip failed for (%d,%d,%d): got (%d,%d,%d) via %#x", a, b, c, gotA, gotB, gotC, v)
		}
	})
}
