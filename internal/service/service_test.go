package service

import (
	"testing"

	"github.com/GlebRadaev/ordertrack/internal/repo"
	"github.com/GlebRadaev/ordertrack/internal/service/authservice"
	"github.com/GlebRadaev/ordertrack/internal/service/orderservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockOrderRepo := orderservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		UserRepo:  mockUserRepo,
		OrderRepo: mockOrderRepo,
	}

	services := New(repos)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrderService)
}
