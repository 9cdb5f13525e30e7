package infra_redis_party

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const prefix = "party"

// Driver keeps the real-time party hash at party:{id}. Every write refreshes
// the key's TTL.
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

func (d *Driver) Save(partyID string, state model.PartyState) error {
	if len(state) == 0 {
		return nil
	}

	fields := make(map[string]interface{}, len(state))
	for k, v := range state {
		fields[k] = v
	}

	key := d.getFullKey(partyID)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HMSet(key, fields)
		pipe.Expire(key, d.ttl)
		return nil
	})
	return err
}

func (d *Driver) Set(partyID string, field string, value string) error {
	key := d.getFullKey(partyID)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HSet(key, field, value)
		pipe.Expire(key, d.ttl)
		return nil
	})
	return err
}

// State returns the cached fields; an expired party yields an empty state.
func (d *Driver) State(partyID string) (model.PartyState, error) {
	val, err := d.client.HGetAll(d.getFullKey(partyID)).Result()
	if err != nil {
		if err == redis.Nil {
			return model.PartyState{}, nil
		}
		return nil, err
	}
	return model.PartyState(val), nil
}

func (d *Driver) getFullKey(partyID string) string {
	return prefix + ":" + partyID
}
