package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portafolio-api/pkg/validation"
)

type sample struct {
	Title string `json:"title" validate:"notblank"`
	Type  string `json:"type" validate:"required,oneof=PRACTICE SEMINAR"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestStruct_Valido(t *testing.T) {
	assert.NoError(t, validation.Struct(sample{Title: "Workshop", Type: "PRACTICE"}))
}

func TestStruct_UsaNombresJSON(t *testing.T) {
	err := validation.Struct(sample{Title: "   ", Type: "COURSE", Email: "no-es-email"})
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))

	fields := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "email")
	assert.Equal(t, "title cannot be blank", fields["title"])
}

type registerSample struct {
	Role string `json:"role" validate:"omitempty,role"`
	Type string `json:"type" validate:"activity_type"`
}

func TestStruct_TagsDeDominio(t *testing.T) {
	assert.NoError(t, validation.Struct(registerSample{Role: "ADMIN", Type: "SEMINAR"}))
	assert.NoError(t, validation.Struct(registerSample{Type: "PRACTICE"}))

	err := validation.Struct(registerSample{Role: "admin", Type: "practice"})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "role must be TEACHER or ADMIN", verr.Fields[0].Message)
	assert.Equal(t, "type must be PRACTICE or SEMINAR", verr.Fields[1].Message)
}
