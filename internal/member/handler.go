package member

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/minjikang/book-community/go-api-server/internal/shared/context"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
	"github.com/minjikang/book-community/go-api-server/internal/shared/handler"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.memberService.GetProfile(c.Request.Context(), memberNum)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) GetNicknameHistory(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	history, err := h.memberService.GetNicknameHistory(c.Request.Context(), memberNum)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.UpdateProfile(c.Request.Context(), memberNum, &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Deactivate soft-deletes the authenticated member.
// 대상 회원 번호는 항상 인증 토큰에서 가져온다 (path parameter 사용 금지)
func (h *MemberHandler) Deactivate(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.memberService.Deactivate(c.Request.Context(), memberNum)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
