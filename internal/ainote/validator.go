// Пакет для валидации данных, используемых в ainote.  Содержит валидаторы для полей статей, таких как заголовок и темы.  Использует библиотеку go-playground/validator для выполнения проверок.
//
// Основные возможности:
//   - Валидация полей данных с использованием предопределенных валидаторов.
//   - Использование регулярных выражений для проверки формата данных.
package ainote

import (
	"regexp"

	"github.com/go-playground/validator"
)

var topicRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,49}$`)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	if err := v.RegisterValidation("topic", topicValidator); err != nil {
		return nil
	}

	return &RequestValidator{v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validator.Struct(i)
}

func topicValidator(fl validator.FieldLevel) bool {
	return topicRegexp.MatchString(fl.Field().String())
}
