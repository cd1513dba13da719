// Package store holds all application state. Everything lives in
// process memory; a restart loses every cart, user and order.
package store

import (
	"log"

	"bookery_back_end/internal/models"
)

var (
	Catalog *BookCatalog
	Users   *UserStore
	Orders  *OrderStore

	// Cart is shared by all requests, not scoped per user or session.
	Cart *models.Cart
)

// Init creates the empty stores. The catalog and demo accounts are
// seeded by the caller.
func Init() {
	Catalog = NewBookCatalog()
	Users = NewUserStore()
	Orders = NewOrderStore()
	Cart = models.NewCart()
	log.Println("✅ In-memory stores initialised")
}
