package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Le miroir Redis conserve les clés 30 jours, comme le panier côté backend.
const redisTTL = 30 * 24 * time.Hour

// RedisStore est le backend miroir pour les déploiements hébergés : mêmes
// clés que FileStore, préfixées par installation cliente.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore initialise la connexion Redis et vérifie qu'elle répond.
func NewRedisStore(host, password, prefix string) (*RedisStore, error) {
	if host == "" {
		return nil, fmt.Errorf("REDIS_HOST non configuré")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("impossible de se connecter à Redis: %v", err)
	}

	log.Println("✅ Redis connecté avec succès")
	return &RedisStore{client: client, prefix: prefix + ":"}, nil
}

func (s *RedisStore) Get(key string) (string, bool) {
	data, err := s.client.Get(context.Background(), s.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return data, true
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), s.prefix+key, value, redisTTL).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.prefix+key).Err()
}

func (s *RedisStore) Clear() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close ferme la connexion Redis.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
