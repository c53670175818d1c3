// Package policy holds the single table deciding which roles may perform
// which order actions. Routes reference actions, never roles.
package policy

import (
	"slices"

	"github.com/GlebRadaev/ordertrack/internal/domain"
)

type Action string

const (
	ViewOrders    Action = "view_orders"
	CreateOrder   Action = "create_order"
	TakeOrder     Action = "take_order"
	CompleteOrder Action = "complete_order"
	SetStatus     Action = "set_status"
	MarkPaid      Action = "mark_paid"
)

var table = map[Action][]domain.Role{
	ViewOrders:    {domain.RoleCustomer, domain.RoleWorker, domain.RoleAdmin},
	CreateOrder:   {domain.RoleCustomer, domain.RoleAdmin},
	TakeOrder:     {domain.RoleWorker, domain.RoleAdmin},
	CompleteOrder: {domain.RoleWorker, domain.RoleAdmin},
	SetStatus:     {domain.RoleAdmin},
	MarkPaid:      {domain.RoleAdmin},
}

// Allows reports whether role may perform action. Unknown actions are denied.
func Allows(role domain.Role, action Action) bool {
	return slices.Contains(table[action], role)
}

func AllowedRoles(action Action) []domain.Role {
	return slices.Clone(table[action])
}

func actions() []Action {
	return []Action{ViewOrders, CreateOrder, TakeOrder, CompleteOrder, SetStatus, MarkPaid}
}
