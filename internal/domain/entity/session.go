package entity

import "time"

// Session instantánea persistida del usuario autenticado. Se vuelve a leer en cada
// petición, de modo que sobrevive a reinicios con backends persistentes y se
// elimina explícitamente en logout.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"` // sin contraseña
	CreatedAt time.Time `json:"createdAt"`
}
