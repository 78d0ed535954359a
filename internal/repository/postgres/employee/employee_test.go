package employee

import "testing"

func TestRandomDigitsLength(t *testing.T) {
	for _, length := range []int{4, 6} {
		got := randomDigits(length)
		if len(got) != length {
			t.Fatalf("expected %d digits, got %q", length, got)
		}
		for _, r := range got {
			if r < '0' || r > '9' {
				t.Fatalf("expected only digits, got %q", got)
			}
		}
	}
}

func TestRandomDigitsKeepsLeadingZeros(t *testing.T) {
	// With enough draws a leading zero must appear; a run that never
	// produces one means zeros are being stripped somewhere.
	for i := 0; i < 10000; i++ {
		if randomDigits(4)[0] == '0' {
			return
		}
	}
	t.Fatalf("no leading zero in 10000 draws")
}
