package password

import (
	"math/rand"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		pw   string
		want bool
	}{
		{"", false},
		{"Ab1", false},
		{"Abcdef1", false}, // 7 chars
		{"Abcdef12", true},
		{"abcdefg1", false}, // no upper
		{"ABCDEFG1", false}, // no lower
		{"Abcdefgh", false}, // no digit
		{"Secret123", true},
		{"xX1xX1xX1xX1xX1xX1xX1xX1", true}, // no maximum length
		{"pass word A1", true},             // spaces allowed
	}
	for _, c := range cases {
		if got := Validate(c.pw); got != c.want {
			t.Errorf("Validate(%q) = %v, want %v", c.pw, got, c.want)
		}
	}
}

// TestValidate_Random fuzzes over character classes: any string built from
// at least one lower, one upper, and one digit with length >= 8 must pass,
// and any string shorter than 8 must fail.
func TestValidate_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lowers := "abcdefghijklmnopqrstuvwxyz"
	uppers := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits := "0123456789"

	for i := 0; i < 200; i++ {
		n := 8 + rng.Intn(24)
		buf := make([]byte, n)
		buf[0] = lowers[rng.Intn(len(lowers))]
		buf[1] = uppers[rng.Intn(len(uppers))]
		buf[2] = digits[rng.Intn(len(digits))]
		all := lowers + uppers + digits
		for j := 3; j < n; j++ {
			buf[j] = all[rng.Intn(len(all))]
		}
		rng.Shuffle(n, func(a, b int) { buf[a], buf[b] = buf[b], buf[a] })
		if !Validate(string(buf)) {
			t.Fatalf("Validate(%q) = false, want true", buf)
		}
	}

	for i := 0; i < 200; i++ {
		n := rng.Intn(MinLength)
		buf := make([]byte, n)
		all := lowers + uppers + digits
		for j := 0; j < n; j++ {
			buf[j] = all[rng.Intn(len(all))]
		}
		if Validate(string(buf)) {
			t.Fatalf("Validate(%q) = true for %d chars, want false", buf, n)
		}
	}
}

func TestHashAndCheck(t *testing.T) {
	hash, err := Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "Secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !Check(hash, "Secret123") {
		t.Error("Check rejected the correct password")
	}
	if Check(hash, "wrong") {
		t.Error("Check accepted a wrong password")
	}
}
