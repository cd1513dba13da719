package store

import (
	"sync"

	"bookery_back_end/internal/models"
)

// BookCatalog is the fixed book list, queried by exact title match.
type BookCatalog struct {
	mu    sync.RWMutex
	books []models.Book
}

func NewBookCatalog(books ...models.Book) *BookCatalog {
	return &BookCatalog{books: books}
}

// Seed replaces the catalog contents. Meant to be called once at
// startup, before the server accepts requests.
func (c *BookCatalog) Seed(books ...models.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = books
}

func (c *BookCatalog) All() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]models.Book, len(c.books))
	copy(books, c.books)
	return books
}

func (c *BookCatalog) GetByTitle(title string) (models.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, book := range c.books {
		if book.Title == title {
			return book, true
		}
	}
	return models.Book{}, false
}

func (c *BookCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}
