//go:build !integration

package infra_redis_selection

import (
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SelectionCacheUnitSuite struct {
	suite.Suite
}

func (s *SelectionCacheUnitSuite) TestDecodeKeepsOrder(t provider.T) {
	raw := []string{
		`{"movie_id":"m2","title":"Fargo","year":1996,"genres":["Crime"],"streaming_platforms":[],"score":5}`,
		`{"movie_id":"m1","title":"Heat","year":1995,"genres":["Crime"],"streaming_platforms":[],"score":3,"blind_summary":"A heist."}`,
	}

	movies, err := decode(raw)

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "m2", movies[0].ID)
	assert.Equal(t, "A heist.", movies[1].BlindSummary)
	assert.Equal(t, 3.0, movies[1].Score)
}

func (s *SelectionCacheUnitSuite) TestDecodeRejectsCorruptEntry(t provider.T) {
	_, err := decode([]string{`{"movie_id":`})

	assert.Error(t, err)
}

func (s *SelectionCacheUnitSuite) TestKey(t provider.T) {
	d := New(nil, 0)

	assert.Equal(t, "selected_movies:party", d.getFullKey("party"))
}

func TestSelectionCacheUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SelectionCacheUnitSuite))
}
