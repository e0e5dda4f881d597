package middleware

import (
	"nurse-manager/config"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	cors        config.CORSConfig
	rateLimit   config.RateLimitConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, corsCfg config.CORSConfig, rateCfg config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
		cors:       corsCfg,
		rateLimit:  rateCfg,
	}
	if rateCfg.Enabled {
		mw.rateLimiter = newRateLimiter(rateCfg.RequestsPerMinute, rateCfg.Burst)
	}
	return mw
}
