package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	pkgredis "github.com/foodexpress/foodexpress-backend/pkg/redis"
)

// Redis keeps client state in a shared redis instance, namespaced per
// profile so several ordering clients can share one server.
type Redis struct {
	client  *pkgredis.Client
	profile string
}

// NewRedis binds a store to the given profile name.
func NewRedis(client *pkgredis.Client, profile string) *Redis {
	return &Redis{client: client, profile: profile}
}

func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.client.Get(ctx, r.client.ClientStateKey(r.profile, key))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.client.ClientStateKey(r.profile, key), string(raw), 0)
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.client.ClientStateKey(r.profile, key))
}
