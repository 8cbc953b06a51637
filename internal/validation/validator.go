// Package validation turns raw form input into validated domain inputs.
// Failures are returned as domain validation errors whose message joins
// every failing field.
package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RecipeBook_Go/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// messages maps "<StructField>.<tag>" to the user-visible message
var messages = map[string]string{
	"Name.required":                  MsgNameRequired,
	"Name.max":                       MsgNameTooLong,
	"Category." + tagCategory:        MsgInvalidCategory,
	"Unit." + tagUnit:                MsgInvalidUnit,
	"PricePerUnit." + tagPriceNumber: MsgPriceNotNumber,
	"PricePerUnit." + tagPriceNonNeg: MsgPriceNegative,
	"Email.required":                 MsgEmailRequired,
	"Email.email":                    MsgEmailInvalid,
	"Password.required":              MsgPasswordRequired,
	"Password.min":                   MsgPasswordTooShort,
	"ConfirmPassword.eqfield":        domain.MsgPasswordsDontMatch,
	"ImageURL.http_url":              MsgImageURLInvalid,
}

func get() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation(tagCategory, func(fl validator.FieldLevel) bool {
			return domain.Category(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation(tagUnit, func(fl validator.FieldLevel) bool {
			return domain.Unit(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation(tagPriceNumber, func(fl validator.FieldLevel) bool {
			_, ok := parseDecimal(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation(tagPriceNonNeg, func(fl validator.FieldLevel) bool {
			f, ok := parseDecimal(fl.Field().String())
			return ok && f >= 0
		})
		validate = v
	})
	return validate
}

// check validates s and returns one message per failing field, in field order
func check(s interface{}) []string {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{MsgInvalidValue}
	}

	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msg, ok := messages[e.StructField()+"."+e.Tag()]
		if !ok {
			msg = MsgInvalidValue
		}
		out = append(out, msg)
	}
	return out
}

// failure builds the joined validation error, or nil when msgs is empty
func failure(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return domain.Validation(strings.Join(msgs, MessageSeparator))
}
