package main

import (
	"github.com/aretw0/sofakit/internal/config"
	"github.com/aretw0/sofakit/pkg/adapters/file"
	"github.com/aretw0/sofakit/pkg/adapters/memory"
	"github.com/aretw0/sofakit/pkg/adapters/redis"
	"github.com/aretw0/sofakit/pkg/ports"
)

// openStore builds the configured plan store. The returned close function
// releases its connections and is never nil.
func openStore(cfg config.StoreConfig) (ports.PlanStore, func() error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendFile:
		return file.New(cfg.Path), noop
	case config.BackendRedis:
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return s, s.Close
	default:
		return memory.NewStore(), noop
	}
}
