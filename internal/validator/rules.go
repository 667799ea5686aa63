package validator

import (
	"log"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// Драйверы хранилища, которые понимает database.Connect
var dbDrivers = map[string]bool{
	"postgres": true,
	"mysql":    true,
	"memory":   true,
}

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-db-driver", validateDBDriver)
	mustRegister("is-origin", validateOrigin)
}

func validateDBDriver(fl validator.FieldLevel) bool {
	return dbDrivers[fl.Field().String()]
}

// validateOrigin принимает только "scheme://host[:port]",
// то есть то, что браузер шлет в заголовке Origin.
func validateOrigin(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Path == "" && u.RawQuery == "" && u.User == nil
}
