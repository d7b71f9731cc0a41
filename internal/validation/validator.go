package validation

import "github.com/go-playground/validator/v10"

// echo.Validatorの実装。必須フィールドのpresenceチェックだけに使う。
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
