package service

import (
	"github.com/GlebRadaev/ordertrack/internal/handlers/auth"
	"github.com/GlebRadaev/ordertrack/internal/handlers/orders"

	pkgauth "github.com/GlebRadaev/ordertrack/pkg/auth"

	"github.com/GlebRadaev/ordertrack/internal/repo"
	authservice "github.com/GlebRadaev/ordertrack/internal/service/authservice"
	orderservice "github.com/GlebRadaev/ordertrack/internal/service/orderservice"
)

type Services struct {
	AuthService  auth.Service
	OrderService orders.Service
}

func New(repo *repo.Repositories) *Services {
	orderService := orderservice.New(repo.OrderRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{})

	return &Services{
		AuthService:  authService,
		OrderService: orderService,
	}
}
