package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"villa_rooms/internal/adapters/console"
	"villa_rooms/internal/adapters/observability"
	"villa_rooms/internal/app"
	"villa_rooms/internal/catalog"
	"villa_rooms/internal/storage/fsstore"
)

var optionRe = regexp.MustCompile(`<option value="\d+">`)

// Full pass over the compiled-in catalog: pages on disk, acknowledgements on
// the console writer and a metrics textfile, wired the way cmd/generate does.
func TestGenerationPass_EndToEnd(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "site", "rooms")
	metricsPath := filepath.Join(root, "villa.prom")

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	reg := observability.InitRegistry()

	var stdout, logs bytes.Buffer
	svc := app.NewGenerationService(
		fsstore.New(outDir, fsstore.WithMkdir()),
		console.NewReporter(&stdout),
		observability.NewLogger("prod", "info", &logs),
	)
	sum, err := svc.Run(cat)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Pages != cat.Len() {
		t.Fatalf("pages = %d, want %d", sum.Pages, cat.Len())
	}
	if err := observability.WriteTextfile(metricsPath, reg); err != nil {
		t.Fatalf("metrics: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != cat.Len()+1 || lines[len(lines)-1] != "All room pages generated successfully!" {
		t.Fatalf("unexpected console output:\n%s", stdout.String())
	}

	for i, r := range cat.Rooms() {
		path := filepath.Join(outDir, r.ID+".html")
		if lines[i] != "Generated "+path {
			t.Errorf("line %d = %q", i, lines[i])
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if n := len(optionRe.FindAll(b, -1)); n != r.MaxGuests {
			t.Errorf("%s: %d guest options, want %d", r.ID, n, r.MaxGuests)
		}
	}

	room2, err := os.ReadFile(filepath.Join(outDir, "room-2.html"))
	if err != nil {
		t.Fatalf("read room-2: %v", err)
	}
	if !bytes.Contains(room2, []byte("$399/night")) || !bytes.Contains(room2, []byte("Maximum occupancy: 3 guests")) {
		t.Fatalf("room-2 page missing rate or occupancy")
	}

	m, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !bytes.Contains(m, []byte(`villa_pages_generated_total{status="ok"}`)) {
		t.Fatalf("metrics textfile missing page counter")
	}
	if !strings.Contains(logs.String(), `"message":"generation completed"`) {
		t.Fatalf("summary log line missing: %s", logs.String())
	}
}

func TestGenerationPass_MissingOutputDirFails(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	outDir := filepath.Join(t.TempDir(), "absent")
	var stdout bytes.Buffer
	svc := app.NewGenerationService(fsstore.New(outDir), console.NewReporter(&stdout), zerolog.Nop())

	if _, err := svc.Run(cat); err == nil {
		t.Fatalf("expected write failure for missing output dir")
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be acknowledged: %q", stdout.String())
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("output dir should not be created without WithMkdir")
	}
}
