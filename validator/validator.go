package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field -> code for every violation, nil when i is valid.
// Field paths are relative to the validated struct: "Log.Env", not "Config.Log.Env".
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string, len(errs))
			for _, e := range errs {
				out[fieldPath(e.StructNamespace())] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
