package community

import (
	"context"

	"github.com/minjikang/book-community/go-api-server/internal/model"
	"gorm.io/gorm"
)

type CommunityRepository struct{}

func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{}
}

func (r *CommunityRepository) CreatePost(ctx context.Context, db *gorm.DB, post *model.Post) error {
	return db.WithContext(ctx).Create(post).Error
}

// FindPosts returns non-deleted posts with author nickname/email.
// visibility=false(나만 보기) 목록은 요청한 회원의 글로 제한된다.
func (r *CommunityRepository) FindPosts(ctx context.Context, db *gorm.DB, visibility bool, memberNum int64) ([]PostListItem, error) {
	query := db.WithContext(ctx).
		Model(&model.Post{}).
		Select(`community.posts_id, community.post_title, community.post_content,
			community.post_created_at, community.post_status, community.visibility,
			community.member_num, member.member_nickname, member.member_email`).
		Joins("JOIN member ON community.member_num = member.member_num").
		Where("community.post_deleted_at IS NULL").
		Where("community.visibility = ?", visibility)

	if !visibility {
		query = query.Where("community.member_num = ?", memberNum)
	}

	var posts []PostListItem
	err := query.Order("community.post_created_at DESC").Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *CommunityRepository) FindPostByID(ctx context.Context, db *gorm.DB, postsID int64) (*PostListItem, error) {
	var post PostListItem
	result := db.WithContext(ctx).
		Model(&model.Post{}).
		Select(`community.posts_id, community.post_title, community.post_content,
			community.post_created_at, community.post_status, community.visibility,
			community.member_num, member.member_nickname, member.member_email`).
		Joins("JOIN member ON community.member_num = member.member_num").
		Where("community.posts_id = ? AND community.post_deleted_at IS NULL", postsID).
		Limit(1).
		Scan(&post)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &post, nil
}

func (r *CommunityRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *model.Comment) error {
	return db.WithContext(ctx).Create(comment).Error
}

// FindCommentsByPost returns non-deleted comments of a post, oldest first.
func (r *CommunityRepository) FindCommentsByPost(ctx context.Context, db *gorm.DB, postsID int64) ([]CommentListItem, error) {
	var comments []CommentListItem
	err := db.WithContext(ctx).
		Model(&model.Comment{}).
		Select(`community_comment.comment_id, community_comment.posts_id,
			community_comment.comment_content, community_comment.comment_created_at,
			community_comment.comment_status, member.member_nickname, member.member_email`).
		Joins("JOIN member ON community_comment.member_num = member.member_num").
		Where("community_comment.posts_id = ? AND community_comment.comment_deleted_at IS NULL", postsID).
		Order("community_comment.comment_created_at ASC").
		Scan(&comments).Error

	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeactivatePostsByMember marks every post of the member deleted.
// 멱등: 0건 매칭도 성공으로 처리
func (r *CommunityRepository) DeactivatePostsByMember(ctx context.Context, db *gorm.DB, memberNum int64) error {
	return db.WithContext(ctx).
		Model(&model.Post{}).
		Where("member_num = ?", memberNum).
		Update("post_status", model.PostStatusDeleted).Error
}

// DeactivateCommentsByMember marks every comment of the member deleted.
// 멱등: 0건 매칭도 성공으로 처리
func (r *CommunityRepository) DeactivateCommentsByMember(ctx context.Context, db *gorm.DB, memberNum int64) error {
	return db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("member_num = ?", memberNum).
		Update("comment_status", model.CommentStatusDeleted).Error
}
