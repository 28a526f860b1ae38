package api

import (
	"github.com/campushire/jobboard/internal/entities"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		_, ok := entities.ToJobType(fl.Field().String())
		return ok
	})
}
