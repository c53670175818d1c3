package repo

import (
	"github.com/GlebRadaev/ordertrack/internal/pg"
	orderrepo "github.com/GlebRadaev/ordertrack/internal/repo/order-repo"
	userrepo "github.com/GlebRadaev/ordertrack/internal/repo/user-repo"
	"github.com/GlebRadaev/ordertrack/internal/service/authservice"
	"github.com/GlebRadaev/ordertrack/internal/service/orderservice"
)

type Repositories struct {
	UserRepo  authservice.Repo
	OrderRepo orderservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:  userrepo.New(conn),
		OrderRepo: orderrepo.New(conn),
	}
}
