package sqlstore_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wayfinder/builder"
	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/route"
	"github.com/katalvlaran/wayfinder/sqlstore"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	store *sqlstore.Store
	hub   *core.Graph
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "nested", "wayfinder.db")

	var err error
	s.store, err = sqlstore.Open(s.path, sqlstore.WithCacheSize(4))
	s.Require().NoError(err)
	s.hub, err = builder.Hub()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Import(s.ctx, s.hub))
}

func (s *StoreSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *StoreSuite) TestMatchesGraph() {
	want, err := s.hub.Locations()
	s.Require().NoError(err)
	got, err := s.store.Locations()
	s.Require().NoError(err)
	s.Equal(want, got)

	for _, loc := range want {
		wantN, err := s.hub.Neighbors(loc.ID)
		s.Require().NoError(err)
		gotN, err := s.store.Neighbors(loc.ID)
		s.Require().NoError(err)
		s.Equal(wantN, gotN, loc.ID)
	}

	n, err := s.store.LocationCount()
	s.Require().NoError(err)
	s.Equal(len(want), n)
}

func (s *StoreSuite) TestLocation() {
	loc, err := s.store.Location(" hall1 ")
	s.Require().NoError(err)
	s.Equal("First Floor Hall", loc.Name)
	s.Equal(1, loc.Level)

	// second read comes from the cache
	again, err := s.store.Location("HALL1")
	s.Require().NoError(err)
	s.Equal(loc, again)

	_, err = s.store.Location("ATTIC")
	s.ErrorIs(err, core.ErrLocationNotFound)
	_, err = s.store.Location("   ")
	s.ErrorIs(err, core.ErrEmptyLocationID)
}

func (s *StoreSuite) TestNeighbors() {
	got, err := s.store.Neighbors("BOILER")
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)

	_, err = s.store.Neighbors("ATTIC")
	s.ErrorIs(err, core.ErrLocationNotFound)
}

func (s *StoreSuite) TestMutation() {
	s.ErrorIs(s.store.AddLocation(s.ctx, core.Location{ID: "r01"}), core.ErrDuplicateLocation)
	s.ErrorIs(s.store.AddLocation(s.ctx, core.Location{ID: " "}), core.ErrEmptyLocationID)
	s.ErrorIs(s.store.Connect(s.ctx, "R01", "r01"), core.ErrSelfLoop)
	s.ErrorIs(s.store.Connect(s.ctx, "R01", "ATTIC"), core.ErrLocationNotFound)

	s.Require().NoError(s.store.AddLocation(s.ctx, core.Location{ID: "lift0", Name: "Lift", Category: "lift"}))
	s.Require().NoError(s.store.Connect(s.ctx, "LIFT0", "HALL0"))
	s.Require().NoError(s.store.Connect(s.ctx, "hall0", "lift0"))

	got, err := s.store.Neighbors("HALL0")
	s.Require().NoError(err)
	s.Equal([]string{"R01", "R02", "R03", "ST0", "LIFT0"}, got)

	st, err := s.store.Stats()
	s.Require().NoError(err)
	s.Equal(12, st.Locations)
	s.Equal(10, st.Connections)
	s.Equal(1, st.Categories["lift"])
}

func (s *StoreSuite) TestImportIsAtomic() {
	s.Require().NoError(s.store.Reset(s.ctx))
	corridor, err := builder.Corridor()
	s.Require().NoError(err)
	s.Require().NoError(s.store.Import(s.ctx, corridor))

	clash := core.NewGraph()
	s.Require().NoError(clash.AddLocation(core.Location{ID: "LAB"}))
	s.Require().NoError(clash.AddLocation(core.Location{ID: "R132"}))
	s.ErrorIs(s.store.Import(s.ctx, clash), core.ErrDuplicateLocation)

	_, err = s.store.Location("LAB")
	s.ErrorIs(err, core.ErrLocationNotFound)
	n, err := s.store.LocationCount()
	s.Require().NoError(err)
	s.Equal(6, n)
}

func (s *StoreSuite) TestStats() {
	want, err := s.hub.Stats()
	s.Require().NoError(err)
	got, err := s.store.Stats()
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *StoreSuite) TestPersistsAcrossOpen() {
	s.Require().NoError(s.store.Close())
	s.ErrorIs(s.store.Close(), sqlstore.ErrClosed)

	reopened, err := sqlstore.Open(s.path)
	s.Require().NoError(err)
	s.store = reopened

	loc, err := s.store.Location("R102")
	s.Require().NoError(err)
	s.Equal("Room 102", loc.Name)
}

func (s *StoreSuite) TestScans() {
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store, err := sqlstore.Open(sqlstore.MemoryPath, sqlstore.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	s.Require().NoError(err)
	defer store.Close()

	for _, id := range []string{"r01", "HALL0", "r101"} {
		_, err := store.LogScan(s.ctx, id)
		s.Require().NoError(err)
	}
	_, err = store.LogScan(s.ctx, "")
	s.ErrorIs(err, core.ErrEmptyLocationID)

	scans, err := store.RecentScans(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(scans, 2)
	s.Equal("R101", scans[0].LocationID)
	s.Equal("HALL0", scans[1].LocationID)
	s.True(scans[0].ScannedAt.After(scans[1].ScannedAt))
	s.NotEqual(scans[0].ID, scans[1].ID)

	all, err := store.RecentScans(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *StoreSuite) TestRoutesLikeGraph() {
	fromGraph, err := route.NewEngine(s.hub)
	s.Require().NoError(err)
	fromStore, err := route.NewEngine(s.store)
	s.Require().NoError(err)

	for _, pair := range [][2]string{{"R01", "R103"}, {"R02", "BOILER"}, {"ST1", "ST1"}} {
		want := fromGraph.ComputeRoute(s.ctx, pair[0], pair[1])
		got := fromStore.ComputeRoute(s.ctx, pair[0], pair[1])
		s.Equal(want.Success, got.Success, pair)
		s.Equal(want.Path, got.Path, pair)
		s.Equal(want.Description, got.Description, pair)
	}
}

func TestStore_ConcurrentReads(t *testing.T) {
	store, err := sqlstore.Open(sqlstore.MemoryPath)
	require.NoError(t, err)
	defer store.Close()
	hub, err := builder.Hub()
	require.NoError(t, err)
	require.NoError(t, store.Import(context.Background(), hub))

	e, err := route.NewEngine(store)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := e.ComputeRoute(context.Background(), "R03", "R102")
			assert.True(t, res.Success)
			assert.Equal(t, 5, res.HopCount)
		}()
	}
	wg.Wait()
}

func TestStore_CloseDuringReads(t *testing.T) {
	store, err := sqlstore.Open(sqlstore.MemoryPath)
	require.NoError(t, err)
	hub, err := builder.Hub()
	require.NoError(t, err)
	require.NoError(t, store.Import(context.Background(), hub))

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 200; j++ {
				if _, err := store.Neighbors("HALL0"); err != nil {
					return
				}
			}
		}()
	}
	close(start)
	require.NoError(t, store.Close())
	wg.Wait()

	_, err = store.Neighbors("HALL0")
	require.ErrorIs(t, err, sqlstore.ErrClosed)
	_, err = store.Location("R101")
	require.ErrorIs(t, err, sqlstore.ErrClosed)
	require.ErrorIs(t, store.Close(), sqlstore.ErrClosed)
}
