package observability_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"villa_rooms/internal/adapters/observability"
)

func TestRegistryTextfile(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample of each so every family is exported
	observability.ObservePage(12_000)
	observability.ObserveFailure("write_failed")
	observability.ObservePass(30 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "villa.prom")
	if err := observability.WriteTextfile(path, reg); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		`villa_pages_generated_total{status="ok"}`,
		`villa_pages_generated_total{status="write_failed"}`,
		"villa_page_bytes_bucket",
		"villa_generation_duration_seconds_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}
