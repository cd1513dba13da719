package models

import "sort"

// User keys on Email. Comparison is case-sensitive everywhere, so two
// accounts differing only in case can coexist. The password is stored
// in plaintext.
type User struct {
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Orders   []*Order `json:"orders,omitempty"`
}

// AddOrder appends to the order history and keeps it sorted by date,
// oldest first.
func (u *User) AddOrder(order *Order) {
	u.Orders = append(u.Orders, order)
	sort.Slice(u.Orders, func(i, j int) bool {
		return u.Orders[i].CreatedAt.Before(u.Orders[j].CreatedAt)
	})
}

func (u *User) OrderHistory() []*Order {
	history := make([]*Order, len(u.Orders))
	copy(history, u.Orders)
	return history
}
