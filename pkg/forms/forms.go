package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the struct's validate tags and returns per-field messages
// keyed by struct field name. A nil map means the form passed.
func Validate(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = message(fe)
		}
		return out
	}
	out["Form"] = "入力内容を確認してください"
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必須です"
	case "max":
		return fmt.Sprintf("%s文字以内で入力してください", fe.Param())
	case "email":
		return "有効なメールアドレスではありません"
	case "eqfield":
		return "パスワードと一致しません"
	}
	return "入力内容を確認してください"
}
