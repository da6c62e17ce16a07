package providers

import (
	"errors"

	"github.com/gookit/validate"

	"bevlog/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the config against its struct tags and returns the
// first violation found.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return errors.New(v.Errors.One())
	}
	return nil
}
