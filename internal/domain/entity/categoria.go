package entity

import "time"

// Categoria representa uma categoria de produtos.
type Categoria struct {
	ID        string
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
