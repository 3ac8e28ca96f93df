// Package seed loads the sample sites, tests and jobs shipped with the
// portal into an empty document store.
//
// Seeding never touches a collection that already holds records, so it is
// safe to run against a live database.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/store"
	"github.com/MKhiriev/arc-portal/models"
)

//go:embed data/*.json
var fixtures embed.FS

var ErrNoFixture = errors.New("no fixture for collection")

// CollectionEnsurer creates a collection when it does not exist yet.
type CollectionEnsurer interface {
	EnsureCollection(ctx context.Context, name string) error
}

// Result reports what seeding did to one collection.
type Result struct {
	Collection string
	Inserted   int

	// Existing is the record count found before seeding. A non-zero value
	// means the collection was skipped.
	Existing int64
}

// Skipped reports whether the collection already held records.
func (r Result) Skipped() bool {
	return r.Existing > 0
}

type Seeder struct {
	repository store.CollectionRepository
	ensurer    CollectionEnsurer
	cfg        config.Mongo
	logger     *logger.Logger
}

func NewSeeder(repository store.CollectionRepository, ensurer CollectionEnsurer, cfg config.Mongo, logger *logger.Logger) *Seeder {
	return &Seeder{
		repository: repository,
		ensurer:    ensurer,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run makes sure the attachment collection exists and then seeds the site,
// test and job collections that are empty. It stops at the first failure;
// results gathered so far are returned alongside the error.
func (s *Seeder) Run(ctx context.Context) ([]Result, error) {
	if err := s.ensurer.EnsureCollection(ctx, s.cfg.FilesCollection); err != nil {
		return nil, fmt.Errorf("ensuring %q: %w", s.cfg.FilesCollection, err)
	}

	targets := []struct {
		collection string
		fixture    string
	}{
		{s.cfg.SitesCollection, "sites"},
		{s.cfg.TestsCollection, "tests"},
		{s.cfg.JobsCollection, "jobs"},
	}

	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		records, err := Fixture(target.fixture)
		if err != nil {
			return results, err
		}

		result, err := s.seedIfEmpty(ctx, target.collection, records)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Seeder) seedIfEmpty(ctx context.Context, collection string, records []models.Record) (Result, error) {
	result := Result{Collection: collection}

	count, err := s.repository.Count(ctx, collection)
	if err != nil {
		return result, fmt.Errorf("counting %q: %w", collection, err)
	}
	if count > 0 {
		result.Existing = count
		s.logger.Info().Str("collection", collection).Int64("count", count).Msg("collection already has records, skipping")
		return result, nil
	}

	inserted, err := s.repository.InsertMany(ctx, collection, records)
	if err != nil {
		return result, fmt.Errorf("seeding %q: %w", collection, err)
	}

	result.Inserted = len(inserted)
	s.logger.Info().Str("collection", collection).Int("count", result.Inserted).Msg("records inserted")
	return result, nil
}

// Fixture returns the sample records named name: "sites", "tests" or "jobs".
func Fixture(name string) ([]models.Record, error) {
	raw, err := fixtures.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNoFixture, name)
	}

	var records []models.Record
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding fixture %q: %w", name, err)
	}
	return records, nil
}
