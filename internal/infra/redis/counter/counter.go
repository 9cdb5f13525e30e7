package infra_redis_counter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/popcorn/core/internal/model"
)

const (
	ratingsPrefix = "suite2_ratings"
	votesPrefix   = "votes"

	fieldTotalRatings = "total_ratings"
	fieldSumRatings   = "sum_ratings"
	fieldTotal        = "total"
)

// Driver keeps per-movie rating and vote counters as redis hashes. Counters
// expire with the party and are rebuilt from the store on a miss.
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

// AddRating applies the deltas and reports whether the counter existed
// beforehand. A false result means the hash now holds only the deltas and must
// be rebuilt from the store.
func (d *Driver) AddRating(partyID string, movieID string, countDelta int, sumDelta int) (bool, error) {
	key := ratingsKey(partyID, movieID)

	var exists *redis.IntCmd
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		exists = pipe.Exists(key)
		if countDelta != 0 {
			pipe.HIncrBy(key, fieldTotalRatings, int64(countDelta))
		}
		if sumDelta != 0 {
			pipe.HIncrBy(key, fieldSumRatings, int64(sumDelta))
		}
		pipe.Expire(key, d.ttl)
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists.Val() > 0, nil
}

func (d *Driver) Ratings(partyID string, movieID string) (model.RatingStats, bool, error) {
	fields, err := d.client.HGetAll(ratingsKey(partyID, movieID)).Result()
	if err != nil && err != redis.Nil {
		return model.RatingStats{}, false, err
	}
	if len(fields) == 0 {
		return model.RatingStats{}, false, nil
	}

	stats, err := parseRatingStats(fields)
	if err != nil {
		return model.RatingStats{}, false, err
	}
	return stats, true, nil
}

func (d *Driver) SetRatings(partyID string, movieID string, stats model.RatingStats) error {
	key := ratingsKey(partyID, movieID)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HMSet(key, map[string]interface{}{
			fieldTotalRatings: stats.Total,
			fieldSumRatings:   stats.Sum,
		})
		pipe.Expire(key, d.ttl)
		return nil
	})
	return err
}

// MoveVote applies a vote change atomically: the previous choice loses one,
// the next gains one, and total grows only for a first vote. The bool reports
// whether the counter existed before the move; when it did not, the returned
// counts cover this vote alone.
func (d *Driver) MoveVote(partyID string, movieID string, previous model.VoteChoice, next model.VoteChoice) (model.VoteCounts, bool, error) {
	key := votesKey(partyID, movieID)

	var (
		exists *redis.IntCmd
		all    *redis.StringStringMapCmd
	)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		exists = pipe.Exists(key)
		if previous != next {
			if previous != "" {
				pipe.HIncrBy(key, string(previous), -1)
			}
			pipe.HIncrBy(key, string(next), 1)
		}
		if previous == "" {
			pipe.HIncrBy(key, fieldTotal, 1)
		}
		pipe.Expire(key, d.ttl)
		all = pipe.HGetAll(key)
		return nil
	})
	if err != nil {
		return model.VoteCounts{}, false, err
	}

	counts, err := parseVoteCounts(all.Val())
	if err != nil {
		return model.VoteCounts{}, false, err
	}
	return counts, exists.Val() > 0, nil
}

func (d *Driver) Votes(partyID string, movieID string) (model.VoteCounts, bool, error) {
	fields, err := d.client.HGetAll(votesKey(partyID, movieID)).Result()
	if err != nil && err != redis.Nil {
		return model.VoteCounts{}, false, err
	}
	if len(fields) == 0 {
		return model.VoteCounts{}, false, nil
	}

	counts, err := parseVoteCounts(fields)
	if err != nil {
		return model.VoteCounts{}, false, err
	}
	return counts, true, nil
}

func (d *Driver) SetVotes(partyID string, movieID string, counts model.VoteCounts) error {
	key := votesKey(partyID, movieID)
	_, err := d.client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HMSet(key, map[string]interface{}{
			string(model.VoteYes):  counts.Yes,
			string(model.VoteNo):   counts.No,
			string(model.VoteSeen): counts.Seen,
			fieldTotal:             counts.Total,
		})
		pipe.Expire(key, d.ttl)
		return nil
	})
	return err
}

func ratingsKey(partyID string, movieID string) string {
	return ratingsPrefix + ":" + partyID + ":" + movieID
}

func votesKey(partyID string, movieID string) string {
	return votesPrefix + ":" + partyID + ":" + movieID
}

func parseRatingStats(fields map[string]string) (model.RatingStats, error) {
	total, err := intField(fields, fieldTotalRatings)
	if err != nil {
		return model.RatingStats{}, err
	}
	sum, err := intField(fields, fieldSumRatings)
	if err != nil {
		return model.RatingStats{}, err
	}
	return model.RatingStats{Total: total, Sum: sum}, nil
}

func parseVoteCounts(fields map[string]string) (model.VoteCounts, error) {
	var counts model.VoteCounts
	for _, choice := range []model.VoteChoice{model.VoteYes, model.VoteNo, model.VoteSeen} {
		n, err := intField(fields, string(choice))
		if err != nil {
			return model.VoteCounts{}, err
		}
		counts.Add(choice, n)
	}

	total, err := intField(fields, fieldTotal)
	if err != nil {
		return model.VoteCounts{}, err
	}
	counts.Total = total
	return counts, nil
}

func intField(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("counter field %s: %w", name, err)
	}
	return n, nil
}
