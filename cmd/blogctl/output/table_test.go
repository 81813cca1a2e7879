package output

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestRenderTable(t *testing.T) {
	out := captureOutput(t, func() {
		RenderTable(
			[]string{"ID", "Email"},
			[][]interface{}{
				{1, "alice@example.com"},
				{2, "bob@example.com"},
			},
		)
	})

	for _, want := range []string{"ID", "EMAIL", "alice@example.com", "bob@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got: %s", want, out)
		}
	}
}
