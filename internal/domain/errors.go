package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Textos visibles cuando la IA no puede aportar contenido. Una extracción fallida
// nunca impide guardar la actividad: se guarda con ExtractionPlaceholder.
const (
	ExtractionPlaceholder = "Error extracting content from PDF. Please check the file format or try again later."
	NoContentExtracted    = "No content extracted."
	AdviceUnavailable     = "AI insights currently unavailable."
	AdviceEmpty           = "Unable to generate advice."
)
