package domain

import "fmt"

// Room is one catalog record. Price is the nightly rate in display units.
type Room struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Price     int      `yaml:"price"`
	MaxGuests int      `yaml:"maxGuests"`
	Amenities []string `yaml:"amenities"`
}

// DescriptionMap maps room id -> long-form description.
type DescriptionMap map[string]string

// Lookup returns the description for id or a *LookupError.
func (m DescriptionMap) Lookup(id string) (string, error) {
	d, ok := m[id]
	if !ok {
		return "", &LookupError{RoomID: id}
	}
	return d, nil
}

// Catalog is the ordered room list plus descriptions driving one generation pass.
// It is immutable once built: accessors hand out copies.
type Catalog struct {
	rooms        []Room
	descriptions DescriptionMap
}

// NewCatalog copies rooms and descriptions into a Catalog. Room ids must be
// non-empty and unique; nothing else about the records is checked.
func NewCatalog(rooms []Room, descriptions DescriptionMap) (Catalog, error) {
	seen := make(map[string]struct{}, len(rooms))
	out := make([]Room, 0, len(rooms))
	for i, r := range rooms {
		if r.ID == "" {
			return Catalog{}, fmt.Errorf("room #%d: empty id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return Catalog{}, fmt.Errorf("room %q: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}
		out = append(out, copyRoom(r))
	}
	d := make(DescriptionMap, len(descriptions))
	for k, v := range descriptions {
		d[k] = v
	}
	return Catalog{rooms: out, descriptions: d}, nil
}

// Rooms returns the records in catalog order.
func (c Catalog) Rooms() []Room {
	out := make([]Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = copyRoom(r)
	}
	return out
}

func (c Catalog) Len() int { return len(c.rooms) }

// Description resolves the description of a room id.
func (c Catalog) Description(id string) (string, error) {
	return c.descriptions.Lookup(id)
}

func copyRoom(r Room) Room {
	if r.Amenities != nil {
		r.Amenities = append([]string(nil), r.Amenities...)
	}
	return r
}
