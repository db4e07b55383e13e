package domain_test

import (
	"errors"
	"testing"

	"villa_rooms/internal/domain"
)

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := domain.NewCatalog([]domain.Room{{ID: "a"}, {ID: "a"}}, nil)
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestNewCatalog_RejectsEmptyID(t *testing.T) {
	if _, err := domain.NewCatalog([]domain.Room{{Name: "nameless"}}, nil); err == nil {
		t.Fatalf("expected empty id error")
	}
}

func TestCatalog_IsReadOnly(t *testing.T) {
	rooms := []domain.Room{{ID: "room-1", Amenities: []string{"A", "B"}}}
	desc := domain.DescriptionMap{"room-1": "first"}
	cat, err := domain.NewCatalog(rooms, desc)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// mutate inputs and outputs; the catalog must not change
	rooms[0].Amenities[0] = "X"
	desc["room-1"] = "changed"
	got := cat.Rooms()
	got[0].Amenities[1] = "Y"

	again := cat.Rooms()
	if again[0].Amenities[0] != "A" || again[0].Amenities[1] != "B" {
		t.Fatalf("catalog amenities mutated: %v", again[0].Amenities)
	}
	if d, _ := cat.Description("room-1"); d != "first" {
		t.Fatalf("catalog description mutated: %q", d)
	}
}

func TestDescriptionMap_LookupMiss(t *testing.T) {
	_, err := domain.DescriptionMap{}.Lookup("room-9")
	if !errors.Is(err, domain.ErrDescriptionNotFound) {
		t.Fatalf("expected ErrDescriptionNotFound, got %v", err)
	}
	var le *domain.LookupError
	if !errors.As(err, &le) || le.RoomID != "room-9" {
		t.Fatalf("expected LookupError for room-9, got %v", err)
	}
}

func TestWriteError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(&domain.WriteError{Path: "rooms/x.html", Err: cause})
	if !errors.Is(err, domain.ErrWriteFailed) || !errors.Is(err, cause) {
		t.Fatalf("WriteError should match both sentinel and cause: %v", err)
	}
}
