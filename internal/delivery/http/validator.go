package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	goValidator "github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their wire names (json, then param, then query).
func NewValidator() *goValidator.Validate {
	v := goValidator.New(goValidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

var requiredMessages = map[string]string{
	"symbol":             "stock symbol is required",
	"initial_investment": "initial investment is required",
}

// validationMessage turns the first failed rule into a client message.
func validationMessage(err error) string {
	var verrs goValidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", fe.Field())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag())
}
