// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"monedero/internal/timeframe"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("ymd_date", validateYMDDate)
		_ = v.RegisterValidation("timeframe", validateTimeframe)
	}
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateYMDDate(fl validator.FieldLevel) bool {
	return timeframe.ValidDate(fl.Field().String())
}

func validateTimeframe(fl validator.FieldLevel) bool {
	_, err := timeframe.Parse(fl.Field().String())
	return err == nil
}
