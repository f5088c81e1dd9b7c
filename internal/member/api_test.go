package member_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/minjikang/book-community/go-api-server/internal/bookreview"
	"github.com/minjikang/book-community/go-api-server/internal/community"
	"github.com/minjikang/book-community/go-api-server/internal/member"
	"github.com/minjikang/book-community/go-api-server/internal/model"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
	"github.com/minjikang/book-community/go-api-server/internal/shared/testutil"
	"github.com/minjikang/book-community/go-api-server/internal/thread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for member handler tests
func setupTestEnvironment(t *testing.T) (*member.MemberHandler, *gorm.DB) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	reviewRepo := bookreview.NewReviewRepository()
	communityRepo := community.NewCommunityRepository()
	threadRepo := thread.NewThreadRepository()
	memberService := member.NewMemberService(db, memberRepo, reviewRepo, communityRepo, threadRepo)
	memberHandler := member.NewMemberHandler(memberService)

	return memberHandler, db
}

func seedMember(t *testing.T, db *gorm.DB, nickname, email, status string) *model.Member {
	t.Helper()

	m := &model.Member{
		LoginID:  nickname + "_id",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Email:    email,
		Phone:    "01012345678",
		Nickname: nickname,
		Status:   status,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestDeactivate_Success(t *testing.T) {
	// Given: an active member with records in every related table
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "reader", "reader@example.com", model.MemberStatusActive)
	other := seedMember(t, db, "other", "other@example.com", model.MemberStatusActive)

	require.NoError(t, db.Create(&model.BookReview{MemberNum: m.MemberNum, Content: "좋은 책", Status: model.ReviewStatusActive}).Error)
	require.NoError(t, db.Create(&model.Post{MemberNum: m.MemberNum, Title: "첫 글", Content: "내용", Status: model.PostStatusActive, Visibility: true}).Error)
	require.NoError(t, db.Create(&model.Post{MemberNum: other.MemberNum, Title: "남의 글", Content: "내용", Status: model.PostStatusActive, Visibility: true}).Error)
	require.NoError(t, db.Create(&model.Comment{PostsID: 1, MemberNum: m.MemberNum, Content: "댓글", Status: model.CommentStatusActive}).Error)
	require.NoError(t, db.Create(&model.Thread{Title: "스레드"}).Error)
	require.NoError(t, db.Create(&model.ThreadEntry{ThreadNum: 1, MemberNum: m.MemberNum, Content: "스레드 댓글", Status: true}).Error)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.Deactivate)

	// When: the member deactivates their account
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})

	// Then: 200 with member_status=inactive
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.DeactivateResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, m.MemberNum, response.MemberNum)
	assert.Equal(t, model.MemberStatusInactive, response.Status)

	// Member row: status flipped, leave date stamped
	var updated model.Member
	require.NoError(t, db.First(&updated, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, model.MemberStatusInactive, updated.Status)
	require.NotNil(t, updated.LeaveDate)
	assert.WithinDuration(t, time.Now().UTC(), *updated.LeaveDate, 5*time.Second)

	// Related tables carry their deactivated values
	var review model.BookReview
	require.NoError(t, db.First(&review, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, model.ReviewStatusInactive, review.Status)

	var post model.Post
	require.NoError(t, db.First(&post, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, model.PostStatusDeleted, post.Status)

	var comment model.Comment
	require.NoError(t, db.First(&comment, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, model.CommentStatusDeleted, comment.Status)

	var entry model.ThreadEntry
	require.NoError(t, db.First(&entry, "member_num = ?", m.MemberNum).Error)
	assert.False(t, entry.Status)

	// Other members' rows are untouched
	var otherPost model.Post
	require.NoError(t, db.First(&otherPost, "member_num = ?", other.MemberNum).Error)
	assert.Equal(t, model.PostStatusActive, otherPost.Status)
}

func TestDeactivate_AlreadyInactive(t *testing.T) {
	// Given: a member who already left
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "gone", "gone@example.com", model.MemberStatusInactive)
	require.NoError(t, db.Create(&model.Post{MemberNum: m.MemberNum, Title: "글", Content: "내용", Status: model.PostStatusActive, Visibility: true}).Error)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.Deactivate)

	// When: they try to deactivate again
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})

	// Then: 400 and no writes happened
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-004", errorResponse.Code)

	var post model.Post
	require.NoError(t, db.First(&post, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, model.PostStatusActive, post.Status)

	var unchanged model.Member
	require.NoError(t, db.First(&unchanged, "member_num = ?", m.MemberNum).Error)
	assert.Nil(t, unchanged.LeaveDate)
}

func TestDeactivate_MemberNotFound(t *testing.T) {
	memberHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/members/me", testutil.WithMemberID(999), memberHandler.Deactivate)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestDeactivate_CleansUpOrphanedThreadEntries(t *testing.T) {
	// Given: one entry under a live thread (soft-deleted), one orphaned entry
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "cleaner", "cleaner@example.com", model.MemberStatusActive)

	require.NoError(t, db.Create(&model.Thread{Title: "살아있는 스레드"}).Error)
	require.NoError(t, db.Create(&model.ThreadEntry{ThreadNum: 1, MemberNum: m.MemberNum, Content: "남는 댓글", Status: false}).Error)
	// thread_num 77 does not exist → orphan
	require.NoError(t, db.Create(&model.ThreadEntry{ThreadNum: 77, MemberNum: m.MemberNum, Content: "고아 댓글", Status: true}).Error)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.Deactivate)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then: the orphan is physically gone, the live-thread entry remains
	// (its own status value is irrelevant to cleanup)
	var entries []model.ThreadEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ThreadNum)
}

func TestDeactivate_Member42Scenario(t *testing.T) {
	// 회원 #42: 활성 게시글 2건 + 활성 스레드 댓글 1건
	memberHandler, db := setupTestEnvironment(t)

	var m *model.Member
	for i := 1; i <= 42; i++ {
		m = seedMember(t, db, fmt.Sprintf("m%d", i), fmt.Sprintf("m%d@example.com", i), model.MemberStatusActive)
	}
	require.Equal(t, int64(42), m.MemberNum)

	require.NoError(t, db.Create(&model.Post{MemberNum: 42, Title: "글 1", Content: "내용", Status: model.PostStatusActive, Visibility: true}).Error)
	require.NoError(t, db.Create(&model.Post{MemberNum: 42, Title: "글 2", Content: "내용", Status: model.PostStatusActive, Visibility: false}).Error)
	require.NoError(t, db.Create(&model.Thread{Title: "스레드"}).Error)
	require.NoError(t, db.Create(&model.ThreadEntry{ThreadNum: 1, MemberNum: 42, Content: "댓글", Status: true}).Error)

	router := testutil.SetupTestRouter()
	router.DELETE("/api/v1/members/me", testutil.WithMemberID(42), memberHandler.Deactivate)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/members/me",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var posts []model.Post
	require.NoError(t, db.Where("member_num = ?", 42).Find(&posts).Error)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, model.PostStatusDeleted, p.Status)
	}

	var entry model.ThreadEntry
	require.NoError(t, db.First(&entry, "member_num = ?", 42).Error)
	assert.False(t, entry.Status)

	var updated model.Member
	require.NoError(t, db.First(&updated, "member_num = ?", 42).Error)
	assert.Equal(t, model.MemberStatusInactive, updated.Status)
}

func TestUpdateProfile_PartialNicknameOnly(t *testing.T) {
	// Given: only member_nickname is supplied
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "oldnick", "keep@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.PUT("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.UpdateProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body:   map[string]interface{}{"member_nickname": "newnick"},
	})

	// Then: only the nickname changed, exactly one history row appended
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Member
	require.NoError(t, db.First(&updated, "member_num = ?", m.MemberNum).Error)
	assert.Equal(t, "newnick", updated.Nickname)
	assert.Equal(t, "keep@example.com", updated.Email)
	assert.Equal(t, "01012345678", updated.Phone)

	var count int64
	require.NoError(t, db.Model(&model.NicknameChange{}).Where("member_num = ?", m.MemberNum).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProfile_SameNickname_NoHistoryRow(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "samenick", "same@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.PUT("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.UpdateProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body:   map[string]interface{}{"member_nickname": "samenick"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, db.Model(&model.NicknameChange{}).Where("member_num = ?", m.MemberNum).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateProfile_DuplicateEmail(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "first", "first@example.com", model.MemberStatusActive)
	seedMember(t, db, "second", "second@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.PUT("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.UpdateProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body:   map[string]interface{}{"member_email": "second@example.com"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)
}

func TestUpdateProfile_OwnEmailIsNotDuplicate(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "selfsame", "selfsame@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.PUT("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.UpdateProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body:   map[string]interface{}{"member_email": "selfsame@example.com"},
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateProfile_ValidationErrors(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "valid", "valid@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.PUT("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.UpdateProfile)

	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "Email without @", body: map[string]interface{}{"member_email": "abc"}},
		{name: "Email with Hangul", body: map[string]interface{}{"member_email": "가@b.com"}},
		{name: "Nickname too long (21)", body: map[string]interface{}{"member_nickname": strings.Repeat("a", 21)}},
		{name: "Nickname empty", body: map[string]interface{}{"member_nickname": ""}},
		{name: "Phone wrong prefix", body: map[string]interface{}{"member_phone": "02012345678"}},
		{name: "Phone too short (10 digits)", body: map[string]interface{}{"member_phone": "0101234567"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPut,
				URL:    "/api/v1/members/me",
				Body:   tc.body,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}

	// Boundary: nickname of exactly 20 characters passes
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/members/me",
		Body:   map[string]interface{}{"member_nickname": strings.Repeat("a", 20)},
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetNicknameHistory_OrderedDescending(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "history", "history@example.com", model.MemberStatusActive)

	base := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.NicknameChange{MemberNum: m.MemberNum, NewNickname: "first", ChangeDate: base}).Error)
	require.NoError(t, db.Create(&model.NicknameChange{MemberNum: m.MemberNum, NewNickname: "second", ChangeDate: base.Add(24 * time.Hour)}).Error)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/me/nicknames", testutil.WithMemberID(m.MemberNum), memberHandler.GetNicknameHistory)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me/nicknames",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var history []member.NicknameHistoryItem
	testutil.ParseResponse(t, recorder, &history)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].NewNickname)
	assert.Equal(t, "first", history[1].NewNickname)
}

func TestGetNicknameHistory_EmptyReturns404(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "nohistory", "nohistory@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/me/nicknames", testutil.WithMemberID(m.MemberNum), memberHandler.GetNicknameHistory)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me/nicknames",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-005", errorResponse.Code)
}

func TestGetProfile_Success(t *testing.T) {
	memberHandler, db := setupTestEnvironment(t)

	m := seedMember(t, db, "profile", "profile@example.com", model.MemberStatusActive)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/me", testutil.WithMemberID(m.MemberNum), memberHandler.GetProfile)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, m.MemberNum, response.MemberNum)
	assert.Equal(t, "profile@example.com", response.Email)
	assert.Equal(t, model.MemberStatusActive, response.Status)
	assert.Empty(t, response.LeaveDate)
}
