package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillmatch/internal/database"

	"github.com/rs/zerolog"
)

var errNilDB = errors.New("nil db")

type Runner struct {
	Seeders []Seeder
	Log     zerolog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		r.Log.Info().Str("seeder", s.Name()).Msg("seeded")
	}
	return nil
}

// Select keeps the seeders named in names, preserving the order of all. An
// empty names returns all unchanged.
func Select(all []Seeder, names []string) ([]Seeder, error) {
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			want[n] = false
		}
	}

	out := make([]Seeder, 0, len(want))
	for _, s := range all {
		if _, ok := want[s.Name()]; ok {
			want[s.Name()] = true
			out = append(out, s)
		}
	}
	for n, found := range want {
		if !found {
			return nil, fmt.Errorf("unknown seeder %q", n)
		}
	}
	return out, nil
}
