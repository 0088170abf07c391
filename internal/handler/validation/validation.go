// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Register must run before the router handles requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return errs.Wrap(err, "register notblank")
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return errs.Wrap(err, "register isodate")
	}
	if err := v.RegisterValidation("amount", amount); err != nil {
		return errs.Wrap(err, "register amount")
	}
	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := stay.ParseDate(fl.Field().String())
	return err == nil
}

func amount(fl validator.FieldLevel) bool {
	m, err := money.Parse(fl.Field().String())
	return err == nil && m.Cents() >= 0
}
