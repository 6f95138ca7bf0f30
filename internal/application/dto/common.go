package dto

import "github.com/jhoicas/Portafolio-api/pkg/validation"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}
