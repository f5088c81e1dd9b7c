package community

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/minjikang/book-community/go-api-server/internal/shared/context"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
	"github.com/minjikang/book-community/go-api-server/internal/shared/handler"
)

type CommunityHandler struct {
	communityService *CommunityService
}

func NewCommunityHandler(communityService *CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

func (h *CommunityHandler) ListPosts(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	// 문자열로 받은 visibility를 불리언으로 변환 (기본: 전체 공개 목록)
	visibility := c.Query("visibility") == "true"

	posts, err := h.communityService.ListPosts(c.Request.Context(), visibility, memberNum)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *CommunityHandler) CreatePost(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreatePostRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.communityService.CreatePost(c.Request.Context(), memberNum, &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CommunityHandler) GetPost(c *gin.Context) {
	postsID, ok := parsePostID(c)
	if !ok {
		return
	}

	response, err := h.communityService.GetPost(c.Request.Context(), postsID)
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

func (h *CommunityHandler) CreateComment(c *gin.Context) {
	memberNum, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	postsID, ok := parsePostID(c)
	if !ok {
		return
	}

	var request CreateCommentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.communityService.CreateComment(c.Request.Context(), memberNum, postsID, &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CommunityHandler) ListComments(c *gin.Context) {
	postsID, ok := parsePostID(c)
	if !ok {
		return
	}

	comments, err := h.communityService.ListComments(c.Request.Context(), postsID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func parsePostID(c *gin.Context) (int64, bool) {
	postsID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return postsID, true
}
