// Package redis connects to Redis with retries and exposes a readiness
// check. It is optional: an empty REDIS_URL leaves Redis disabled and
// callers fall back to in-process state.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		...
//		checks = append(checks, redis.Healthcheck(client))
//	}
package redis
