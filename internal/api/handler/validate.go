package handler

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/softspace/internal/model"
)

// RegisterValidators 注册枚举校验标签：emotion、content_type、filter、view
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	rules := map[string]validator.Func{
		"emotion": func(fl validator.FieldLevel) bool {
			return model.EmotionType(fl.Field().String()).Valid()
		},
		"content_type": func(fl validator.FieldLevel) bool {
			return model.ContentType(fl.Field().String()).Valid()
		},
		"filter": func(fl validator.FieldLevel) bool {
			return model.Filter(fl.Field().String()).Valid()
		},
		"view": func(fl validator.FieldLevel) bool {
			return model.ViewState(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
