package api

import (
	"social-backend/internal/config"
	"social-backend/internal/database"
	"social-backend/internal/service"
	"social-backend/internal/websocket"
)

type Server struct {
	config       *config.Config
	store        *database.Store
	profiles     *service.UserProfileService
	visibility   *service.VisibilityGrantService
	registration *service.Registration
	auth         *service.AuthService
	wsHub        *websocket.Hub
}

// Services bundles the domain services the HTTP layer dispatches to.
type Services struct {
	Profiles     *service.UserProfileService
	Visibility   *service.VisibilityGrantService
	Registration *service.Registration
	Auth         *service.AuthService
}

func NewServer(cfg *config.Config, store *database.Store, svc Services, wsHub *websocket.Hub) *Server {
	return &Server{
		config:       cfg,
		store:        store,
		profiles:     svc.Profiles,
		visibility:   svc.Visibility,
		registration: svc.Registration,
		auth:         svc.Auth,
		wsHub:        wsHub,
	}
}
