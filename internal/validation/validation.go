package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names reported in
// violation messages come from the `errname` struct tag when present,
// falling back to the `json` tag. This keeps the public error messages
// decoupled from Go field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("errname"); name != "" {
			return name
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckRequired runs the struct's `validate` rules and returns one message
// per violated rule, in field declaration order. All violations are
// collected in a single pass so a client can fix every field at once.
// A nil result means the payload passed validation.
func CheckRequired(payload any) []string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("Please provide a value for %q", fe.Field()))
	}
	return messages
}
