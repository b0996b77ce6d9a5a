package validator

import (
	"sync"

	govalidator "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *govalidator.Validate
)

func Get() *govalidator.Validate {
	once.Do(func() {
		validate = govalidator.New()
	})

	return validate
}
