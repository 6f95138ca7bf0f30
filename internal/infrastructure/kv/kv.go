// Package kv define el puerto clave-valor sobre el que se guardan las colecciones
// del portafolio, más los backends en memoria y en archivos.
package kv

import "context"

// Store almacenamiento clave-valor mínimo. Los valores son documentos JSON opacos.
type Store interface {
	// Get devuelve (nil, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
	Close() error
}
