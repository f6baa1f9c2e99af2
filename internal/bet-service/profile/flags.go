// Package profile guarda flags de onboarding e identidade por usuário.
// É o único estado do app que sobrevive a restart: semântica simples de
// get/set/remove em cima do Redis, sem TTL.
package profile

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("flag not found")

type FlagStore struct {
	R *redis.Client
}

func NewFlagStore(r *redis.Client) *FlagStore { return &FlagStore{R: r} }

func key(userID, flag string) string { return "profile:" + userID + ":" + flag }

func (s *FlagStore) Get(ctx context.Context, userID, flag string) (string, error) {
	v, err := s.R.Get(ctx, key(userID, flag)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *FlagStore) Set(ctx context.Context, userID, flag, value string) error {
	return s.R.Set(ctx, key(userID, flag), value, 0).Err()
}

func (s *FlagStore) Remove(ctx context.Context, userID, flag string) error {
	return s.R.Del(ctx, key(userID, flag)).Err()
}
