package paystack

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Builders validate finalized requests with the same engine gin uses for
// binding, so constraint tags live on the request structs themselves.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names, not Go field names, in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequest runs struct validation and converts the first failure into a
// *ValidationError naming the offending json field.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
		fe := errs[0]
		msg := "is invalid"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "email":
			msg = "must be a valid email address"
		case "gt":
			msg = "must be greater than " + fe.Param()
		case "min":
			msg = "must have at least " + fe.Param() + " entries"
		}
		return &ValidationError{Field: fe.Field(), Message: msg}
	}
	return err
}

// checkAmount enforces the "positive integer subunits" convention Paystack
// uses for monetary amounts, e.g. "10000" kobo.
func checkAmount(field, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive amount in subunits"}
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}
