package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/minjikang/book-community/go-api-server/internal/model"
	"github.com/minjikang/book-community/go-api-server/internal/shared/database"
	"github.com/minjikang/book-community/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type CommunityService struct {
	db                  *gorm.DB
	communityRepository *CommunityRepository
}

func NewCommunityService(db *gorm.DB, communityRepository *CommunityRepository) *CommunityService {
	return &CommunityService{
		db:                  db,
		communityRepository: communityRepository,
	}
}

func (s *CommunityService) ListPosts(ctx context.Context, visibility bool, memberNum int64) ([]PostListItem, error) {
	posts, err := s.communityRepository.FindPosts(ctx, s.db, visibility, memberNum)
	if err != nil {
		return nil, fmt.Errorf("게시글 목록 조회 실패: %w", err)
	}
	return posts, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, memberNum int64, request *CreatePostRequest) (*PostResponse, error) {
	log := logger.FromContext(ctx)

	status := request.Status
	if status == "" {
		status = model.PostStatusActive
	}

	post := &model.Post{
		MemberNum:  memberNum,
		Title:      request.Title,
		Content:    request.Content,
		Status:     status,
		Visibility: *request.Visibility,
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.communityRepository.CreatePost(ctx, tx, post); err != nil {
			log.Error("게시글 생성 실패", "error", err)
			return fmt.Errorf("create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("게시글 생성 성공", "posts_id", post.PostsID, "member_num", memberNum)

	return &PostResponse{
		PostsID:    post.PostsID,
		MemberNum:  post.MemberNum,
		Title:      post.Title,
		Content:    post.Content,
		CreatedAt:  post.CreatedAt,
		Status:     post.Status,
		Visibility: post.Visibility,
	}, nil
}

func (s *CommunityService) GetPost(ctx context.Context, postsID int64) (*PostListItem, error) {
	post, err := s.communityRepository.FindPostByID(ctx, s.db, postsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("게시글 없음 postsID=%d %w", postsID, ErrPostNotFound)
		}
		return nil, fmt.Errorf("게시글 조회 실패: %w", err)
	}
	return post, nil
}

func (s *CommunityService) CreateComment(ctx context.Context, memberNum, postsID int64, request *CreateCommentRequest) (*CommentResponse, error) {
	log := logger.FromContext(ctx)

	comment := &model.Comment{
		PostsID:   postsID,
		MemberNum: memberNum,
		Content:   request.Content,
		Status:    model.CommentStatusActive,
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// 삭제된 게시글에는 댓글을 달 수 없다
		if _, err := s.communityRepository.FindPostByID(ctx, tx, postsID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("게시글 없음 postsID=%d %w", postsID, ErrPostNotFound)
			}
			return fmt.Errorf("게시글 조회 실패: %w", err)
		}

		if err := s.communityRepository.CreateComment(ctx, tx, comment); err != nil {
			log.Error("댓글 생성 실패", "error", err)
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("댓글 생성 성공", "comment_id", comment.CommentID, "posts_id", postsID)

	return &CommentResponse{
		CommentID: comment.CommentID,
		PostsID:   comment.PostsID,
		MemberNum: comment.MemberNum,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Status:    comment.Status,
	}, nil
}

func (s *CommunityService) ListComments(ctx context.Context, postsID int64) ([]CommentListItem, error) {
	comments, err := s.communityRepository.FindCommentsByPost(ctx, s.db, postsID)
	if err != nil {
		return nil, fmt.Errorf("댓글 목록 조회 실패: %w", err)
	}

	if len(comments) == 0 {
		return nil, fmt.Errorf("댓글 없음 postsID=%d %w", postsID, ErrCommentNotFound)
	}

	return comments, nil
}
