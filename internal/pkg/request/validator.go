package request

import (
	cErr "fieldforce/internal/pkg/error"
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

// GetError 把 validator 的錯誤整理成欄位→訊息列表，整包以資料形式帶回
func GetError(request interface{}, err error) *cErr.Error {
	if verrs, isValidatorErrors := err.(validator.ValidationErrors); isValidatorErrors {
		messages := ValidatorMessages{}
		if v, isValidator := request.(Validator); isValidator {
			messages = v.GetMessages()
		}

		fields := map[string][]string{}
		for _, fe := range verrs {
			field := fe.Field()
			key := reg.ReplaceAllString(field, ".*")
			if message, exist := messages[key+"."+fe.Tag()]; exist {
				fields[field] = append(fields[field], message)
				continue
			}
			fields[field] = append(fields[field], fe.Error())
		}
		if len(fields) > 0 {
			return cErr.ValidationFailed("one or more fields failed validation", fields)
		}
	}

	return cErr.ValidateErr("Parameter error")
}

// FieldError 單一欄位的業務層驗證錯誤（跨欄位 refinement 用）
func FieldError(field, message string) *cErr.Error {
	return cErr.ValidationFailed(message, map[string][]string{field: {message}})
}
