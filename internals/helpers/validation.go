// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors: ubah error validator/v10 jadi map field → pesan,
// dipakai bersama JsonValidationError.
func FormatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg := "invalid value"
		switch fe.Tag() {
		case "required":
			msg = "field is required"
		case "min":
			msg = "value below minimum " + fe.Param()
		case "max":
			msg = "value above maximum " + fe.Param()
		case "oneof":
			msg = "must be one of: " + fe.Param()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
