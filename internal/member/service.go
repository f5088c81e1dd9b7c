package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minjikang/book-community/go-api-server/internal/bookreview"
	"github.com/minjikang/book-community/go-api-server/internal/community"
	"github.com/minjikang/book-community/go-api-server/internal/model"
	"github.com/minjikang/book-community/go-api-server/internal/shared/database"
	"github.com/minjikang/book-community/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db                  *gorm.DB
	memberRepository    *MemberRepository
	reviewRepository    *bookreview.ReviewRepository
	communityRepository *community.CommunityRepository
	threadRepository    ThreadRepository
}

// ThreadRepository is the subset of thread operations the member domain needs.
type ThreadRepository interface {
	DeactivateEntriesByMember(ctx context.Context, db *gorm.DB, memberNum int64) error
	DeleteOrphanEntries(ctx context.Context, db *gorm.DB) (int64, error)
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	reviewRepository *bookreview.ReviewRepository,
	communityRepository *community.CommunityRepository,
	threadRepository ThreadRepository,
) *MemberService {
	return &MemberService{
		db:                  db,
		memberRepository:    memberRepository,
		reviewRepository:    reviewRepository,
		communityRepository: communityRepository,
		threadRepository:    threadRepository,
	}
}

func (s *MemberService) GetProfile(ctx context.Context, memberNum int64) (*GetProfileResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberNum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberNum=%d %w", memberNum, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	return newGetProfileResponse(member), nil
}

func newGetProfileResponse(member *model.Member) *GetProfileResponse {
	response := &GetProfileResponse{
		MemberNum:        member.MemberNum,
		LoginID:          member.LoginID,
		Email:            member.Email,
		Phone:            member.Phone,
		Gender:           member.Gender,
		Nickname:         member.Nickname,
		Status:           member.Status,
		JoinDate:         member.JoinDate.Format(birthDateLayout),
		MarketingConsent: member.MarketingConsent,
	}

	if member.BirthDate != nil {
		response.BirthDate = member.BirthDate.Format(birthDateLayout)
	}
	if member.LeaveDate != nil {
		response.LeaveDate = member.LeaveDate.Format(birthDateLayout)
	}

	return response
}

func (s *MemberService) GetNicknameHistory(ctx context.Context, memberNum int64) ([]NicknameHistoryItem, error) {
	history, err := s.memberRepository.FindNicknameHistory(ctx, s.db, memberNum)
	if err != nil {
		return nil, fmt.Errorf("닉네임 이력 조회 실패: %w", err)
	}

	if len(history) == 0 {
		return nil, fmt.Errorf("닉네임 이력 없음 memberNum=%d %w", memberNum, ErrNicknameHistoryNotFound)
	}

	items := make([]NicknameHistoryItem, 0, len(history))
	for _, change := range history {
		items = append(items, NicknameHistoryItem{
			NewNickname: change.NewNickname,
			ChangeDate:  change.ChangeDate.Format(changeDateLayout),
		})
	}

	return items, nil
}

// UpdateProfile applies the supplied subset of profile fields (coalesce update)
// and appends one nickname-history row iff the nickname actually changed.
func (s *MemberService) UpdateProfile(ctx context.Context, memberNum int64, request *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	log := logger.FromContext(ctx)

	var response *UpdateProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberNum)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberNum=%d %w", memberNum, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		// 이메일 중복 검사 (본인 행 제외)
		if request.Email != nil {
			taken, err := s.memberRepository.IsEmailTakenByOther(ctx, tx, *request.Email, memberNum)
			if err != nil {
				return fmt.Errorf("이메일 중복 검사 실패: %w", err)
			}
			if taken {
				log.Warn("프로필 수정 실패 - 이메일 중복", "email", logger.MaskEmail(*request.Email))
				return fmt.Errorf("error %w", ErrEmailInUse)
			}
		}

		updates := map[string]interface{}{}
		if request.Email != nil {
			updates["member_email"] = *request.Email
		}
		if request.Phone != nil {
			updates["member_phone"] = *request.Phone
		}
		if request.Nickname != nil {
			updates["member_nickname"] = *request.Nickname
		}
		if request.MarketingConsent != nil {
			updates["marketing_consent"] = *request.MarketingConsent
		}

		if len(updates) > 0 {
			rows, err := s.memberRepository.UpdateProfile(ctx, tx, memberNum, updates)
			if err != nil {
				return fmt.Errorf("프로필 수정 실패: %w", err)
			}
			if rows == 0 {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberNum=%d %w", memberNum, ErrMemberNotFound)
			}
		}

		// 닉네임이 변경된 경우에만 이력을 한 건 추가
		if request.Nickname != nil && *request.Nickname != member.Nickname {
			if err := s.memberRepository.AppendNicknameChange(ctx, tx, memberNum, *request.Nickname, time.Now().UTC()); err != nil {
				return fmt.Errorf("닉네임 이력 기록 실패: %w", err)
			}
		}

		updated, err := s.memberRepository.FindByID(ctx, tx, memberNum)
		if err != nil {
			return fmt.Errorf("수정된 회원 조회 실패: %w", err)
		}

		response = &UpdateProfileResponse{
			Message: "회원 정보가 수정되었습니다.",
			Data: UpdatedProfileFields{
				MemberNum:        updated.MemberNum,
				LoginID:          updated.LoginID,
				Email:            updated.Email,
				Phone:            updated.Phone,
				Nickname:         updated.Nickname,
				MarketingConsent: updated.MarketingConsent,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("프로필 수정 성공", "member_num", memberNum)
	return response, nil
}

// Deactivate runs the membership deactivation workflow:
// status check → related-record cascade → member status flip, all in one
// transaction, then best-effort orphan cleanup after commit.
func (s *MemberService) Deactivate(ctx context.Context, memberNum int64) (*DeactivateResponse, error) {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberNum)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberNum=%d %w", memberNum, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		if member.Status == model.MemberStatusInactive {
			log.Warn("탈퇴 요청 거부 - 이미 탈퇴한 회원", "member_num", memberNum)
			return fmt.Errorf("error %w", ErrAlreadyDeactivated)
		}

		// 연관 테이블 일괄 비활성화
		// 고정 순서: book_review → community → community_comment → thread_main
		// (의미상 순서 의존성은 없지만 로그/테스트 재현성을 위해 고정)
		if err := s.reviewRepository.DeactivateByMember(ctx, tx, memberNum); err != nil {
			return fmt.Errorf("서평 비활성화 실패: %w", err)
		}
		if err := s.communityRepository.DeactivatePostsByMember(ctx, tx, memberNum); err != nil {
			return fmt.Errorf("게시글 비활성화 실패: %w", err)
		}
		if err := s.communityRepository.DeactivateCommentsByMember(ctx, tx, memberNum); err != nil {
			return fmt.Errorf("댓글 비활성화 실패: %w", err)
		}
		if err := s.threadRepository.DeactivateEntriesByMember(ctx, tx, memberNum); err != nil {
			return fmt.Errorf("스레드 댓글 비활성화 실패: %w", err)
		}

		// 회원 상태 전환 + 탈퇴일 기록
		now := time.Now().UTC()
		rows, err := s.memberRepository.UpdateStatus(ctx, tx, memberNum, model.MemberStatusInactive, &now)
		if err != nil {
			return fmt.Errorf("회원 상태 변경 실패: %w", err)
		}
		if rows == 0 {
			// 1단계 조회와 상태 변경 사이에 회원 행이 사라진 경우
			log.Error("탈퇴 처리 중 회원 행 소실", "member_num", memberNum)
			return fmt.Errorf("error %w", ErrDeactivationConflict)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 고아 스레드 댓글 정리 (best effort)
	// 실패해도 탈퇴 자체는 성공으로 응답한다
	if deleted, err := s.threadRepository.DeleteOrphanEntries(ctx, s.db); err != nil {
		log.Error("고아 스레드 댓글 정리 실패", "error", err)
	} else {
		log.Info("고아 스레드 댓글 정리 완료", "deleted", deleted)
	}

	log.Info("회원 탈퇴 성공", "member_num", memberNum)

	return &DeactivateResponse{
		Message:   "회원 탈퇴가 완료되었습니다.",
		MemberNum: memberNum,
		Status:    model.MemberStatusInactive,
	}, nil
}
