package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describe la primera regla incumplida de un campo.
type FieldError struct {
	FailedField string
	Tag         string
	Value       string
}

// Error implementa error con un mensaje legible para la respuesta HTTP.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("campo '%s' no cumple '%s=%s'", e.FailedField, e.Tag, e.Value)
	}
	return fmt.Sprintf("campo '%s' no cumple '%s'", e.FailedField, e.Tag)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct valida las etiquetas `validate` de data y devuelve los campos que fallan.
func ValidateStruct(data interface{}) []*FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*FieldError{{FailedField: "body", Tag: "invalid"}}
	}
	out := make([]*FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &FieldError{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return out
}
