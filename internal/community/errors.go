package community

import (
	"net/http"

	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
)

const (
	postNotFound    = "POST_NOT_FOUND"    // errInfo
	commentNotFound = "COMMENT_NOT_FOUND" // errInfo
)

var (
	ErrPostNotFound    = sharedError.NewDomainError(postNotFound)
	ErrCommentNotFound = sharedError.NewDomainError(commentNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(postNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "COMMUNITY-001",
		Message: "게시글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(commentNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "COMMUNITY-002",
		Message: "댓글이 없습니다.",
	})
}
