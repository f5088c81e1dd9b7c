package member

import (
	"net/http"

	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
)

const (
	memberAlreadyExists     = "MEMBER_ALREADY_EXISTS"      // errInfo
	memberNotFound          = "MEMBER_NOT_FOUND"           // errInfo
	emailInUse              = "EMAIL_IN_USE"               // errInfo
	alreadyDeactivated      = "ALREADY_DEACTIVATED"        // errInfo
	nicknameHistoryNotFound = "NICKNAME_HISTORY_NOT_FOUND" // errInfo
	deactivationConflict    = "DEACTIVATION_CONFLICT"      // errInfo
)

var (
	ErrMemberAlreadyExists     = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound          = sharedError.NewDomainError(memberNotFound)
	ErrEmailInUse              = sharedError.NewDomainError(emailInUse)
	ErrAlreadyDeactivated      = sharedError.NewDomainError(alreadyDeactivated)
	ErrNicknameHistoryNotFound = sharedError.NewDomainError(nicknameHistoryNotFound)
	ErrDeactivationConflict    = sharedError.NewDomainError(deactivationConflict)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 사용자입니다.",
	})

	sharedError.RegisterDomainErrorResponse(emailInUse, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "이미 사용 중인 이메일입니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyDeactivated, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-004",
		Message: "이미 탈퇴 처리된 회원입니다.",
	})

	sharedError.RegisterDomainErrorResponse(nicknameHistoryNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-005",
		Message: "닉네임 변경 이력이 없습니다.",
	})

	// 탈퇴 처리 도중 회원 행이 사라진 경우 (동시 삭제 race)
	sharedError.RegisterDomainErrorResponse(deactivationConflict, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-006",
		Message: "회원 탈퇴 처리에 실패했습니다.",
	})
}
