package domain

// PageStore persists one rendered page under the room id and returns the path written.
// An existing page at that path is overwritten.
type PageStore interface {
	Put(id string, page []byte) (string, error)
}

// Reporter receives the human-readable acknowledgements of a generation pass.
type Reporter interface {
	Generated(path string)
	Completed()
}
