package dto

import (
	"time"

	"github.com/GlebRadaev/ordertrack/internal/domain"
)

type OrderResponseDTO struct {
	ID          int64   `json:"id" example:"1"`
	Address     string  `json:"address" example:"5 Elm St"`
	Description string  `json:"description" example:"leave at the door"`
	Price       int64   `json:"price" example:"0"`
	Status      string  `json:"status" example:"new"`
	Assignee    *string `json:"assignee" example:"carl"`
	Paid        bool    `json:"paid" example:"false"`
	CreatedAt   string  `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type OrdersPageDTO struct {
	Username string             `json:"username" example:"bob"`
	Role     string             `json:"role" example:"customer"`
	Orders   []OrderResponseDTO `json:"orders"`
}

func NewOrderResponse(order domain.Order) OrderResponseDTO {
	return OrderResponseDTO{
		ID:          order.ID,
		Address:     order.Address,
		Description: order.Description,
		Price:       order.Price,
		Status:      order.Status,
		Assignee:    order.Assignee,
		Paid:        order.Paid,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
}
