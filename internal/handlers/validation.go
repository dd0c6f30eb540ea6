package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts anything shaped local@domain.tld with no whitespace.
// Deliberately loose, matching the validation the UI applies client-side.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// newValidate builds the validator shared by the handlers. Field names in
// validation errors are taken from json tags so the details map lines up
// with the request body the client sent.
func newValidate() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// An image reference is either a path produced by the upload endpoint
	// or an absolute external URL.
	mustRegister(v, "image_url", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if strings.HasPrefix(s, "/") {
			return true
		}
		u, err := url.Parse(s)
		return err == nil && u.IsAbs() && u.Host != ""
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// Human-readable messages keyed by "field.tag". Anything unmapped falls back
// to a generic message naming the failed rule.
var contactMessages = map[string]string{
	"name.required":       "Name is required",
	"email.required":      "Email is required",
	"email.contact_email": "Please provide a valid email address",
	"phone.max":           "Phone must be at most 50 characters",
	"group.max":           "Group must be at most 100 characters",
}

var postMessages = map[string]string{
	"name.required":        "Name is required",
	"name.max":             "Name must be at most 100 characters",
	"description.required": "Description is required",
	"description.max":      "Description must be at most 1000 characters",
	"imageUrl.image_url":   "Please enter a valid URL",
}

// validationDetails flattens validator errors into a field -> message map so
// the caller sees every violation at once instead of just the first.
func validationDetails(err error, messages map[string]string) map[string]string {
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			details[fe.Field()] = msg
		} else {
			details[fe.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' rule", fe.Field(), fe.Tag())
		}
	}
	return details
}
