package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type redisScore struct {
	client *redis.Client
	key    string
}

func NewRedisScoreRepository(client *redis.Client, key string) ScoreRepository {
	return &redisScore{
		client: client,
		key:    key,
	}
}

func (that *redisScore) Load(ctx context.Context) (*entity.Score, error) {
	response, err := that.client.Get(ctx, that.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var score entity.Score
	if err = json.Unmarshal([]byte(response), &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &score, nil
}

func (that *redisScore) Save(ctx context.Context, score *entity.Score) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.client.Set(ctx, that.key, scoreJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}
