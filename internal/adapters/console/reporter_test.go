package console_test

import (
	"bytes"
	"testing"

	"villa_rooms/internal/adapters/console"
)

func TestReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewReporter(&buf)
	r.Generated("rooms/room-2.html")
	r.Generated("rooms/room-3.html")
	r.Completed()

	want := "Generated rooms/room-2.html\nGenerated rooms/room-3.html\nAll room pages generated successfully!\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
