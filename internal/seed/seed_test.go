package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/arc-portal/internal/config"
	"github.com/MKhiriev/arc-portal/internal/logger"
	"github.com/MKhiriev/arc-portal/internal/mock"
	"github.com/MKhiriev/arc-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeEnsurer struct {
	names []string
	err   error
}

func (f *fakeEnsurer) EnsureCollection(_ context.Context, name string) error {
	f.names = append(f.names, name)
	return f.err
}

func testMongoConfig() config.Mongo {
	return config.Mongo{
		SitesCollection: "siteRecords",
		TestsCollection: "testRecords",
		JobsCollection:  "jobRecords",
		FilesCollection: "fileUploads",
	}
}

// echo returns the records it was given, as InsertMany does.
func echo(_ context.Context, _ string, records []models.Record) ([]models.Record, error) {
	return records, nil
}

func TestFixture(t *testing.T) {
	tests := []struct {
		name  string
		count int
		key   string
	}{
		{"sites", 7, "clientName"},
		{"tests", 10, "inwardNo"},
		{"jobs", 10, "jobNo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Fixture(tt.name)

			require.NoError(t, err)
			assert.Len(t, records, tt.count)
			for _, r := range records {
				assert.Contains(t, r, tt.key)
				assert.False(t, r.HasID())
			}
		})
	}
}

func TestFixture_Unknown(t *testing.T) {
	_, err := Fixture("clients")

	assert.ErrorIs(t, err, ErrNoFixture)
}

func TestRun_SeedsEmptyCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCollectionRepository(ctrl)
	ensurer := &fakeEnsurer{}

	repo.EXPECT().Count(gomock.Any(), "siteRecords").Return(int64(0), nil)
	repo.EXPECT().InsertMany(gomock.Any(), "siteRecords", gomock.Len(7)).DoAndReturn(echo)
	repo.EXPECT().Count(gomock.Any(), "testRecords").Return(int64(4), nil)
	repo.EXPECT().Count(gomock.Any(), "jobRecords").Return(int64(0), nil)
	repo.EXPECT().InsertMany(gomock.Any(), "jobRecords", gomock.Len(10)).DoAndReturn(echo)

	results, err := NewSeeder(repo, ensurer, testMongoConfig(), logger.Nop()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"fileUploads"}, ensurer.names)
	assert.Equal(t, []Result{
		{Collection: "siteRecords", Inserted: 7},
		{Collection: "testRecords", Existing: 4},
		{Collection: "jobRecords", Inserted: 10},
	}, results)
	assert.False(t, results[0].Skipped())
	assert.True(t, results[1].Skipped())
}

func TestRun_EnsureFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCollectionRepository(ctrl)
	ensurer := &fakeEnsurer{err: errors.New("not authorized")}

	results, err := NewSeeder(repo, ensurer, testMongoConfig(), logger.Nop()).Run(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "fileUploads")
	assert.Nil(t, results)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCollectionRepository(ctrl)
	insertErr := errors.New("write failed")

	repo.EXPECT().Count(gomock.Any(), "siteRecords").Return(int64(2), nil)
	repo.EXPECT().Count(gomock.Any(), "testRecords").Return(int64(0), nil)
	repo.EXPECT().InsertMany(gomock.Any(), "testRecords", gomock.Any()).Return(nil, insertErr)

	results, err := NewSeeder(repo, &fakeEnsurer{}, testMongoConfig(), logger.Nop()).Run(context.Background())

	require.ErrorIs(t, err, insertErr)
	assert.ErrorContains(t, err, "testRecords")
	assert.Equal(t, []Result{{Collection: "siteRecords", Existing: 2}}, results)
}

func TestRun_CountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCollectionRepository(ctrl)
	countErr := errors.New("no connection")

	repo.EXPECT().Count(gomock.Any(), "siteRecords").Return(int64(0), countErr)

	_, err := NewSeeder(repo, &fakeEnsurer{}, testMongoConfig(), logger.Nop()).Run(context.Background())

	require.ErrorIs(t, err, countErr)
}
