package handlers

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request bodies.
var validate = validator.New()
