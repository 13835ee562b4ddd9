package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	shared     *validator.Validate
	sharedOnce sync.Once
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	return &CustomValidator{v: Shared()}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Shared returns the process-wide validator instance; validator.Validate caches
// struct metadata and is safe for concurrent use.
func Shared() *validator.Validate {
	sharedOnce.Do(func() {
		shared = validator.New()
	})
	return shared
}
