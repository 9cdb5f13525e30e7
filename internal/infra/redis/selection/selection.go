package infra_redis_selection

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const prefix = "selected_movies"

// Driver stores a party's shortlist as an ordered list of JSON entries.
type Driver struct {
	client *redis.Client
	ttl    time.Duration
}

func New(
	client *redis.Client,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		ttl:    ttl,
	}
}

// Save replaces the whole list so a re-run never mixes shortlists.
func (d *Driver) Save(partyID string, movies []model.SelectedMovie) error {
	values := make([]interface{}, 0, len(movies))
	for _, m := range movies {
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, raw)
	}

	key := d.getFullKey(partyID)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Del(key)
		if len(values) > 0 {
			pipe.RPush(key, values...)
			pipe.Expire(key, d.ttl)
		}
		return nil
	})
	return err
}

func (d *Driver) Load(partyID string) ([]model.SelectedMovie, bool, error) {
	raw, err := d.client.LRange(d.getFullKey(partyID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(raw) == 0 {
		return nil, false, nil
	}

	movies, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return movies, true, nil
}

func decode(raw []string) ([]model.SelectedMovie, error) {
	movies := make([]model.SelectedMovie, 0, len(raw))
	for _, entry := range raw {
		var m model.SelectedMovie
		if err := json.Unmarshal([]byte(entry), &m); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func (d *Driver) getFullKey(partyID string) string {
	return prefix + ":" + partyID
}
