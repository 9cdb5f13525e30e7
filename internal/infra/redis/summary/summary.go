package infra_redis_summary

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/goccy/go-json"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const prefix = "preferences"

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

func (d *Driver) Save(partyID string, summary model.PartyPreferenceSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return d.client.Set(d.getFullKey(partyID), raw, d.ttl).Err()
}

func (d *Driver) Load(partyID string) (model.PartyPreferenceSummary, bool, error) {
	raw, err := d.client.Get(d.getFullKey(partyID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.PartyPreferenceSummary{}, false, nil
		}
		return model.PartyPreferenceSummary{}, false, err
	}

	var summary model.PartyPreferenceSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return model.PartyPreferenceSummary{}, false, err
	}
	return summary, true, nil
}

func (d *Driver) Invalidate(partyID string) error {
	return d.client.Del(d.getFullKey(partyID)).Err()
}

func (d *Driver) getFullKey(partyID string) string {
	return prefix + ":" + partyID
}
