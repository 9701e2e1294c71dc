package courseValidator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	courseModels "lms/models/course"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors maps validator failures to the field -> message form the
// API returns with a 422.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if err == nil {
		return errors
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, fe := range fieldErrs {
		key := strings.SplitN(fe.Namespace(), ".", 2)
		field := fe.Field()
		if len(key) == 2 {
			field = key[1]
		}
		if _, exists := errors[field]; !exists {
			errors[field] = message(fe)
		}
	}
	return errors
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required!"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s %s!", fe.Param(), label)
		}
		return fmt.Sprintf("%s must be at least %s characters long!", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long!", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte", "lte":
		return label + " is out of range!"
	case "url":
		return label + " must be a valid URL!"
	default:
		return label + " is invalid!"
	}
}

// ParamID validates the named path parameter and stores it in Locals under
// the same name.
func ParamID(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, name := range names {
			id, ok := courseModels.ParseID(strings.TrimSpace(c.Params(name)))
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+name+"!", nil)
			}
			c.Locals(name, id)
		}
		return c.Next()
	}
}
