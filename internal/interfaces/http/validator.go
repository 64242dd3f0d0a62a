package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida por todos los handlers; los DTOs declaran sus
// reglas en tags `validate`.
var validate = validator.New()
