// Package validation valida los DTOs de entrada con go-playground/validator
// y traduce los errores a mensajes legibles por campo JSON.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

const (
	notBlankTag     = "notblank"
	activityTypeTag = "activity_type"
	roleTag         = "role"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	// Usar el nombre JSON del campo en los mensajes.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		if s, ok := fl.Field().Interface().(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return false
	})
	registerMessage(notBlankTag, "%s cannot be blank")

	// Valores en mayúsculas, como se persisten.
	_ = validate.RegisterValidation(activityTypeTag, func(fl validator.FieldLevel) bool {
		return entity.ActivityType(fl.Field().String()).Valid()
	})
	registerMessage(activityTypeTag, "%s must be PRACTICE or SEMINAR")

	_ = validate.RegisterValidation(roleTag, func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).Valid()
	})
	registerMessage(roleTag, "%s must be TEACHER or ADMIN")
}

func registerMessage(tag, format string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fmt.Sprintf(format, fe.Field())
		},
	)
}

// FieldError un error de validación de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error agrupa los errores de validación de un DTO.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Struct valida s según sus tags `validate`. Devuelve *Error si falla alguna regla.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fe.Translate(translator)})
	}
	return out
}
