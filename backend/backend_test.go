package backend_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusnav/backend"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/loader"
	"github.com/katalvlaran/campusnav/metrics"
)

var campusFile = filepath.Join("testdata", "campus.dot")

type BackendSuite struct {
	suite.Suite
	b *backend.Backend
}

func (s *BackendSuite) SetupTest() {
	s.b = backend.New(backend.WithMetrics(metrics.New(prometheus.NewRegistry())))
	s.Require().NoError(s.b.LoadGraphData(campusFile))
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendSuite))
}

func (s *BackendSuite) TestLocationsSorted() {
	s.Equal([]string{
		"Bascom Hall",
		"Camp Randall Stadium",
		"Chadbourne Hall",
		"Helen C White Hall",
		"Memorial Union",
		"Observatory",
		"Science Hall",
		"Union South",
	}, s.b.Locations())
	s.True(s.b.HasLocation("Observatory"))
	s.False(s.b.HasLocation("observatory"))
}

func (s *BackendSuite) TestSuggest() {
	s.Equal([]string{"Camp Randall Stadium", "Chadbourne Hall"}, s.b.Suggest("C", 0))
	s.Equal([]string{"Camp Randall Stadium"}, s.b.Suggest("C", 1))
	s.Equal([]string{"Bascom Hall", "Camp Randall Stadium"}, s.b.Suggest("", 2))
	s.Empty(s.b.Suggest("Z", 5))
}

func (s *BackendSuite) TestShortestPathQueries() {
	want := []string{"Memorial Union", "Science Hall", "Bascom Hall", "Chadbourne Hall", "Union South"}

	locs, err := s.b.LocationsOnShortestPath("Memorial Union", "Union South")
	s.Require().NoError(err)
	s.Equal(want, locs)

	times, err := s.b.TimesOnShortestPath("Memorial Union", "Union South")
	s.Require().NoError(err)
	s.Equal([]float64{105.8, 176.4, 198.1, 402.0}, times)

	total, err := s.b.TotalTime("Memorial Union", "Union South")
	s.Require().NoError(err)
	s.InDelta(882.3, total, 1e-9)

	p, err := s.b.ShortestPath("Memorial Union", "Union South")
	s.Require().NoError(err)
	s.Equal(want, p.Nodes)
}

func (s *BackendSuite) TestQueryErrorKinds() {
	tests := []struct {
		name       string
		start, end string
		kind       backend.ErrorKind
		is         error
	}{
		{"start", "Nowhere", "Union South", backend.KindStartMissing, dijkstra.ErrStartNotFound},
		{"end", "Union South", "Nowhere", backend.KindEndMissing, dijkstra.ErrEndNotFound},
		{"both", "Here", "There", backend.KindBothMissing, core.ErrUnknownNode},
		{"nopath", "Union South", "Observatory", backend.KindNoPath, dijkstra.ErrPathNotFound},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.b.LocationsOnShortestPath(tc.start, tc.end)
			s.Require().Error(err)
			s.Equal(tc.kind, backend.KindOf(err))
			s.ErrorIs(err, tc.is)

			var qe *backend.QueryError
			s.Require().True(errors.As(err, &qe))
			s.Equal(tc.start, qe.Start)
			s.Equal(tc.end, qe.End)
		})
	}
}

func (s *BackendSuite) TestLongestLocationListFrom() {
	got, err := s.b.LongestLocationListFrom("Memorial Union")
	s.Require().NoError(err)
	s.Equal([]string{
		"Memorial Union", "Science Hall", "Bascom Hall", "Chadbourne Hall", "Union South", "Camp Randall Stadium",
	}, got)

	_, err = s.b.LongestLocationListFrom("Nowhere")
	s.Equal(backend.KindStartMissing, backend.KindOf(err))
}

func (s *BackendSuite) TestFewestStops() {
	got, err := s.b.FewestStops("Observatory", "Memorial Union")
	s.Require().NoError(err)
	s.Equal([]string{"Observatory", "Science Hall", "Memorial Union"}, got)

	got, err = s.b.FewestStops("Memorial Union", "Camp Randall Stadium")
	s.Require().NoError(err)
	s.Equal([]string{
		"Memorial Union", "Science Hall", "Bascom Hall", "Chadbourne Hall", "Union South", "Camp Randall Stadium",
	}, got)

	got, err = s.b.FewestStops("Bascom Hall", "Bascom Hall")
	s.Require().NoError(err)
	s.Equal([]string{"Bascom Hall"}, got)

	tests := []struct {
		start, end string
		kind       backend.ErrorKind
	}{
		{"Union South", "Observatory", backend.KindNoPath},
		{"Nowhere", "Observatory", backend.KindStartMissing},
		{"Observatory", "Nowhere", backend.KindEndMissing},
		{"Nowhere", "Elsewhere", backend.KindBothMissing},
	}
	for _, tc := range tests {
		_, err := s.b.FewestStops(tc.start, tc.end)
		s.Equal(tc.kind, backend.KindOf(err), "%s -> %s", tc.start, tc.end)
	}
}

func (s *BackendSuite) TestNearby() {
	got, err := s.b.Nearby("Memorial Union", 1)
	s.Require().NoError(err)
	s.Equal([]string{"Science Hall", "Helen C White Hall"}, got)

	got, err = s.b.Nearby("Memorial Union", 2)
	s.Require().NoError(err)
	s.Equal([]string{"Science Hall", "Helen C White Hall", "Bascom Hall"}, got)

	got, err = s.b.Nearby("Camp Randall Stadium", 10)
	s.Require().NoError(err)
	s.Len(got, 6) // everything except itself and Observatory

	_, err = s.b.Nearby("Memorial Union", 0)
	s.ErrorIs(err, backend.ErrBadStops)

	_, err = s.b.Nearby("Nowhere", 1)
	s.Equal(backend.KindStartMissing, backend.KindOf(err))
}

func (s *BackendSuite) TestFailedReloadKeepsMap() {
	err := s.b.LoadGraphData(filepath.Join("testdata", "missing.dot"))
	s.Require().ErrorIs(err, loader.ErrSourceRead)
	s.Len(s.b.Locations(), 8)
	s.Equal(campusFile, s.b.Info().Source)
}

func TestLongestLocationListFrom_NoReachable(t *testing.T) {
	g := core.NewStringGraph()
	_, _ = g.AddNode("Island")
	_, _ = g.AddNode("Shore")
	require.NoError(t, g.AddEdge("Shore", "Island", 60))

	b := backend.New()
	b.ReplaceGraph(g, "inline")

	_, err := b.LongestLocationListFrom("Island")
	require.Equal(t, backend.KindNoReachable, backend.KindOf(err))
	require.ErrorIs(t, err, dijkstra.ErrNoReachableNodes)
	require.Contains(t, err.Error(), `"Island"`)

	info := b.Info()
	require.Equal(t, "inline", info.Source)
	require.Equal(t, 2, info.Stats.NodeCount)
	require.Equal(t, 1, info.Stats.EdgeCount)
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "both_missing", backend.KindBothMissing.String())
	require.Equal(t, "unknown", backend.ErrorKind(99).String())
	require.Equal(t, backend.KindUnknown, backend.KindOf(errors.New("plain")))
}

// Queries share the read lock while loads swap the map in.
func TestBackend_ConcurrentQueriesAndReloads(t *testing.T) {
	b := backend.New()
	require.NoError(t, b.LoadGraphData(campusFile))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				locs, err := b.LocationsOnShortestPath("Memorial Union", "Camp Randall Stadium")
				if err != nil || len(locs) != 6 {
					t.Errorf("query: %v %v", locs, err)
					return
				}
			}
		}()
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, b.LoadGraphData(campusFile))
	}
	wg.Wait()
}
