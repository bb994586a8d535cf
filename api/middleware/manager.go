package middleware

import (
	"activofijo_server/config"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger            gecho.Logger
	accessTokenSecret string
}

func NewMiddleware() *Middleware {
	cfg := config.GetConfig()
	return &Middleware{
		logger:            *gecho.NewDefaultLogger(),
		accessTokenSecret: cfg.Auth.AccessTokenSecret,
	}
}
