// Package ratelimiter implements a token bucket rate limiter with an
// in-memory store and net/http middleware.
//
// Each key owns a bucket holding up to Capacity tokens. RefillRate tokens
// are added every RefillInterval and every request takes one. A request
// that finds the bucket empty is denied and does not drain it further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.New(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	})).Post("/applications", submit)
//
// Config carries env tags (RATE_LIMIT_*) for pkg/config.
package ratelimiter
