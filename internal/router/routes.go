package router

import (
	"github.com/gin-gonic/gin"
	"github.com/minjikang/book-community/go-api-server/internal/auth"
	"github.com/minjikang/book-community/go-api-server/internal/bookreview"
	"github.com/minjikang/book-community/go-api-server/internal/community"
	"github.com/minjikang/book-community/go-api-server/internal/config"
	"github.com/minjikang/book-community/go-api-server/internal/member"
	"github.com/minjikang/book-community/go-api-server/internal/meta"
	"github.com/minjikang/book-community/go-api-server/internal/shared/database"
	"github.com/minjikang/book-community/go-api-server/internal/shared/middleware"
	"github.com/minjikang/book-community/go-api-server/internal/shared/token"
	"github.com/minjikang/book-community/go-api-server/internal/thread"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, app version, legal documents)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	reviewRepository := bookreview.NewReviewRepository()
	communityRepository := community.NewCommunityRepository()
	threadRepository := thread.NewThreadRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository, reviewRepository, communityRepository, threadRepository)
	communityService := community.NewCommunityService(db.DB, communityRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	communityHandler := community.NewCommunityHandler(communityService)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/join", authHandler.Join)
		authV1.POST("/login", authHandler.Login)
	}

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(middleware.JWT(cfg))
	{
		memberV1.GET("/me", memberHandler.GetProfile)
		memberV1.PUT("/me", memberHandler.UpdateProfile)
		memberV1.GET("/me/nicknames", memberHandler.GetNicknameHistory)
		memberV1.DELETE("/me", memberHandler.Deactivate)
	}

	communityV1 := router.Group("/api/v1/community")
	communityV1.Use(middleware.JWT(cfg))
	{
		communityV1.GET("/posts", communityHandler.ListPosts)
		communityV1.POST("/posts", communityHandler.CreatePost)
		communityV1.GET("/posts/:postId", communityHandler.GetPost)
		communityV1.POST("/posts/:postId/comments", communityHandler.CreateComment)
		communityV1.GET("/posts/:postId/comments", communityHandler.ListComments)
	}
}
