package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	identity "akademiku_backend/internals/features/identity/service"
	"akademiku_backend/internals/features/subscriptions/model"
)

// SubscriptionInfo is the normalized shape shared by all three
// subscription sources. StudentKey follows the same dual-key convention as
// sessions: user key for quran/academic, profile key for course rows.
type SubscriptionInfo struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	StudentKey uuid.UUID `json:"student_key"`

	PackageName *string    `json:"package_name"`
	Subject     *string    `json:"subject"`
	CourseID    *uuid.UUID `json:"course_id"`
	CourseName  *string    `json:"course_name"`

	Status            string     `json:"status"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	GracePeriodEndsAt *time.Time `json:"grace_period_ends_at"`
	InGracePeriod     bool       `json:"in_grace_period"`
	NeedsRenewal      bool       `json:"needs_renewal"`

	SessionsPerWeek  *int    `json:"sessions_per_week"`
	ProgressSessions *int    `json:"progress_sessions"`
	TotalSessions    *int    `json:"total_sessions"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
}

// UnifiedSubscriptionService mirrors the unified session layer: one read
// per source per request, covering every child at once.
type UnifiedSubscriptionService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewUnifiedSubscriptionService(db *gorm.DB) *UnifiedSubscriptionService {
	return &UnifiedSubscriptionService{DB: db, now: time.Now}
}

// GetForStudents fetches all subscription types concurrently and merges
// them newest-start-first. One source failing fails the call.
func (s *UnifiedSubscriptionService) GetForStudents(ctx context.Context, academyID uuid.UUID, keys identity.KeySet) ([]SubscriptionInfo, error) {
	if keys.Empty() {
		return []SubscriptionInfo{}, nil
	}
	now := s.now()

	var (
		mu     sync.Mutex
		merged = make([]SubscriptionInfo, 0, 8)
	)
	collect := func(items []SubscriptionInfo) {
		mu.Lock()
		merged = append(merged, items...)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.fetchQuran(gctx, academyID, keys.User, now)
		if err != nil {
			return err
		}
		collect(items)
		return nil
	})
	g.Go(func() error {
		items, err := s.fetchAcademic(gctx, academyID, keys.User, now)
		if err != nil {
			return err
		}
		collect(items)
		return nil
	})
	g.Go(func() error {
		items, err := s.fetchCourse(gctx, academyID, keys.Profile, now)
		if err != nil {
			return err
		}
		collect(items)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i].StartDate, merged[j].StartDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return merged, nil
}

func (s *UnifiedSubscriptionService) fetchQuran(ctx context.Context, academyID uuid.UUID, keys identity.UserKeys, now time.Time) ([]SubscriptionInfo, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []model.QuranSubscriptionModel
	err := s.DB.WithContext(ctx).
		Where("quran_subscription_academy_id = ?", academyID).
		Where("quran_subscription_student_id IN ?", []uuid.UUID(keys)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]SubscriptionInfo, 0, len(rows))
	for _, r := range rows {
		pkg := r.QuranSubscriptionPackageName
		spw := r.QuranSubscriptionSessionsPerWeek
		out = append(out, SubscriptionInfo{
			ID:                r.QuranSubscriptionID,
			Type:              constants.TypeQuran,
			StudentKey:        r.QuranSubscriptionStudentID,
			PackageName:       &pkg,
			Status:            r.QuranSubscriptionStatus,
			StartDate:         r.QuranSubscriptionStartDate,
			EndDate:           r.QuranSubscriptionEndDate,
			GracePeriodEndsAt: r.GracePeriodEndsAt(),
			InGracePeriod:     r.IsInGracePeriod(now),
			NeedsRenewal:      r.NeedsRenewal(now),
			SessionsPerWeek:   &spw,
			Price:             r.QuranSubscriptionPrice,
			Currency:          r.QuranSubscriptionCurrency,
		})
	}
	return out, nil
}

func (s *UnifiedSubscriptionService) fetchAcademic(ctx context.Context, academyID uuid.UUID, keys identity.UserKeys, now time.Time) ([]SubscriptionInfo, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []model.AcademicSubscriptionModel
	err := s.DB.WithContext(ctx).
		Where("academic_subscription_academy_id = ?", academyID).
		Where("academic_subscription_student_id IN ?", []uuid.UUID(keys)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]SubscriptionInfo, 0, len(rows))
	for _, r := range rows {
		spw := r.AcademicSubscriptionSessionsPerWeek
		out = append(out, SubscriptionInfo{
			ID:                r.AcademicSubscriptionID,
			Type:              constants.TypeAcademic,
			StudentKey:        r.AcademicSubscriptionStudentID,
			PackageName:       r.AcademicSubscriptionPackageName,
			Subject:           r.AcademicSubscriptionSubjectName,
			Status:            r.AcademicSubscriptionStatus,
			StartDate:         r.AcademicSubscriptionStartDate,
			EndDate:           r.AcademicSubscriptionEndDate,
			GracePeriodEndsAt: r.GracePeriodEndsAt(),
			InGracePeriod:     r.IsInGracePeriod(now),
			NeedsRenewal:      r.NeedsRenewal(now),
			SessionsPerWeek:   &spw,
			Price:             r.AcademicSubscriptionPrice,
			Currency:          r.AcademicSubscriptionCurrency,
		})
	}
	return out, nil
}

type courseSubRow struct {
	model.CourseSubscriptionModel
	CourseTitle         *string `gorm:"column:interactive_course_title"`
	CourseTotalSessions *int    `gorm:"column:interactive_course_total_sessions"`
}

func (s *UnifiedSubscriptionService) fetchCourse(ctx context.Context, academyID uuid.UUID, keys identity.ProfileKeys, now time.Time) ([]SubscriptionInfo, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []courseSubRow
	err := s.DB.WithContext(ctx).
		Table("course_subscriptions AS cs").
		Select("cs.*, ic.interactive_course_title, ic.interactive_course_total_sessions").
		Joins("LEFT JOIN interactive_courses AS ic ON ic.interactive_course_id = cs.course_subscription_course_id AND ic.interactive_course_deleted_at IS NULL").
		Where("cs.course_subscription_deleted_at IS NULL").
		Where("cs.course_subscription_academy_id = ?", academyID).
		Where("cs.course_subscription_student_profile_id IN ?", []uuid.UUID(keys)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]SubscriptionInfo, 0, len(rows))
	for _, r := range rows {
		courseID := r.CourseSubscriptionCourseID
		progress := r.CourseSubscriptionProgressSessions
		out = append(out, SubscriptionInfo{
			ID:                r.CourseSubscriptionID,
			Type:              constants.TypeCourse,
			StudentKey:        r.CourseSubscriptionStudentProfileID,
			CourseID:          &courseID,
			CourseName:        r.CourseTitle,
			Status:            r.CourseSubscriptionStatus,
			StartDate:         r.CourseSubscriptionStartDate,
			EndDate:           r.CourseSubscriptionEndDate,
			GracePeriodEndsAt: r.GracePeriodEndsAt(),
			InGracePeriod:     r.IsInGracePeriod(now),
			NeedsRenewal:      r.NeedsRenewal(now),
			ProgressSessions:  &progress,
			TotalSessions:     r.CourseTotalSessions,
			Price:             r.CourseSubscriptionPrice,
			Currency:          r.CourseSubscriptionCurrency,
		})
	}
	return out, nil
}

// CountByStatus buckets subscriptions for the summary. A row inside its
// grace window counts as in_grace_period, never as active, so the two
// buckets stay disjoint.
func CountByStatus(subs []SubscriptionInfo) map[string]int {
	counts := map[string]int{}
	for _, sub := range subs {
		switch {
		case sub.InGracePeriod:
			counts[model.DerivedInGrace]++
		default:
			counts[sub.Status]++
		}
	}
	return counts
}

// Summary is the dashboard-facing rollup.
type Summary struct {
	Total        int                `json:"total"`
	ByStatus     map[string]int     `json:"by_status"`
	NeedsRenewal int                `json:"needs_renewal"`
	ExpiringSoon []SubscriptionInfo `json:"expiring_soon"`
}

// BuildSummary derives the rollup from an already-fetched list.
// expiring_soon lists active rows ending within the next 7 days.
func BuildSummary(subs []SubscriptionInfo, now time.Time) Summary {
	summary := Summary{
		Total:        len(subs),
		ByStatus:     CountByStatus(subs),
		ExpiringSoon: []SubscriptionInfo{},
	}
	cutoff := now.AddDate(0, 0, 7)
	for _, sub := range subs {
		if sub.NeedsRenewal {
			summary.NeedsRenewal++
		}
		if sub.Status == model.SubscriptionActive && !sub.InGracePeriod &&
			sub.EndDate != nil && sub.EndDate.After(now) && !sub.EndDate.After(cutoff) {
			summary.ExpiringSoon = append(summary.ExpiringSoon, sub)
		}
	}
	return summary
}

// GetSummary fetches and rolls up in one call for the dashboard.
func (s *UnifiedSubscriptionService) GetSummary(ctx context.Context, academyID uuid.UUID, keys identity.KeySet) (Summary, error) {
	subs, err := s.GetForStudents(ctx, academyID, keys)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(subs, s.now()), nil
}
