package authoring

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so field keys match the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs struct validation and folds failures into verr.
func check(verr *ValidationError, s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.add("_", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), message(fe))
	}
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required!"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s %s!", fe.Param(), strings.ToLower(label))
		}
		return fmt.Sprintf("%s must be at least %s characters long!", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range!", label)
	default:
		return label + " is invalid!"
	}
}

// humanize turns "dueDate" into "Due date".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			r += 'a' - 'A'
		}
		if i == 0 && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
