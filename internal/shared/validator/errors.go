package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목을 입력해 주세요."
	case "email":
		return "이메일 형식이 올바르지 않습니다."
	case "min":
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "phone":
		return "휴대폰 번호는 010으로 시작하는 11자리 숫자여야 합니다."
	case "safe_email":
		return "이메일 형식이 올바르지 않거나 한글이 포함되어 있습니다."
	case "oneof":
		return fmt.Sprintf("유효하지 않은 상태 값입니다. (%s 중 하나)", fe.Param())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
