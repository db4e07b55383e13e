package app

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"villa_rooms/internal/adapters/observability"
	"villa_rooms/internal/domain"
	"villa_rooms/internal/render"
)

// Summary describes one completed generation pass.
type Summary struct {
	RunID    string
	Pages    int
	Bytes    int
	Duration time.Duration
}

type GenerationService struct {
	store    domain.PageStore
	reporter domain.Reporter
	log      zerolog.Logger
}

func NewGenerationService(s domain.PageStore, r domain.Reporter, l zerolog.Logger) *GenerationService {
	return &GenerationService{store: s, reporter: r, log: l}
}

// Run renders and stores every room in catalog order, one at a time.
// The first missing description or failed write stops the pass; pages already
// written stay on disk and Completed is not reported.
func (s *GenerationService) Run(cat domain.Catalog) (Summary, error) {
	start := time.Now()
	sum := Summary{RunID: uuid.NewString()}
	l := s.log.With().Str("run_id", sum.RunID).Logger()
	l.Info().Int("rooms", cat.Len()).Msg("generation starting")

	for _, room := range cat.Rooms() {
		desc, err := cat.Description(room.ID)
		if err != nil {
			observability.ObserveFailure("lookup_failed")
			return sum, err
		}

		page := []byte(render.Page(room, desc))
		path, err := s.store.Put(room.ID, page)
		if err != nil {
			observability.ObserveFailure("write_failed")
			return sum, fmt.Errorf("room %q: %w", room.ID, err)
		}
		observability.ObservePage(len(page))
		sum.Pages++
		sum.Bytes += len(page)

		l.Debug().Str("room", room.ID).Str("path", path).Int("bytes", len(page)).Msg("page generated")
		s.reporter.Generated(path)
	}

	sum.Duration = time.Since(start)
	observability.ObservePass(sum.Duration)
	s.reporter.Completed()

	l.Info().
		Int("pages", sum.Pages).
		Str("written", humanize.Bytes(uint64(sum.Bytes))).
		Dur("duration", sum.Duration).
		Msg("generation completed")
	return sum, nil
}
