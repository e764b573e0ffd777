package repository

import (
	"context"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// CreateBatch inserts attendance rows, skipping pairs that already exist
func (r *AttendanceRepository) CreateBatch(ctx context.Context, attendances []models.Attendance) error {
	if len(attendances) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(attendances, 100).Error
}

// Upsert writes the status for a (match, member) pair and returns the stored row
func (r *AttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(attendance).Error
	if err != nil {
		return nil, err
	}
	return r.GetByMatchAndMember(ctx, attendance.MatchID, attendance.MemberID)
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := conn(ctx, r.db).First(&attendance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// GetByMatchAndMember retrieves the attendance of a member for a match
func (r *AttendanceRepository) GetByMatchAndMember(ctx context.Context, matchID, memberID uuid.UUID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := conn(ctx, r.db).First(&attendance, "match_id = ? AND member_id = ?", matchID, memberID).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// ListByMatch retrieves all attendance rows of a match with their members
func (r *AttendanceRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := conn(ctx, r.db).
		Preload("Member").
		Joins("JOIN members ON members.id = attendances.member_id").
		Where("attendances.match_id = ?", matchID).
		Order("members.name ASC").
		Find(&attendances).Error
	return attendances, err
}

// CountConfirmedByMatches counts confirmed attendance for each of the given matches
func (r *AttendanceRepository) CountConfirmedByMatches(ctx context.Context, matchIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(matchIDs))
	if len(matchIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		MatchID uuid.UUID
		Total   int64
	}
	err := conn(ctx, r.db).Model(&models.Attendance{}).
		Select("match_id, COUNT(*) AS total").
		Where("match_id IN ? AND status = ?", matchIDs, models.AttendanceStatusConfirmed).
		Group("match_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.MatchID] = row.Total
	}
	return counts, nil
}

// CountByMember returns the number of matches a member was called for and confirmed
func (r *AttendanceRepository) CountByMember(ctx context.Context, memberID uuid.UUID) (int64, int64, error) {
	var total, confirmed int64
	if err := conn(ctx, r.db).Model(&models.Attendance{}).Where("member_id = ?", memberID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := conn(ctx, r.db).Model(&models.Attendance{}).
		Where("member_id = ? AND status = ?", memberID, models.AttendanceStatusConfirmed).
		Count(&confirmed).Error
	if err != nil {
		return 0, 0, err
	}
	return total, confirmed, nil
}

// Update saves all attendance fields
func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	return conn(ctx, r.db).Save(attendance).Error
}
