package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/repository"
	"quemjoga-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const profilePhotoDir = "profiles"

// ProfileService manages the group-independent athlete profile of a user
type ProfileService struct {
	tx          repository.TransactorInterface
	profileRepo repository.AthleteProfileRepositoryInterface
	memberRepo  repository.MemberRepositoryInterface
	photos      PhotoStorageInterface
	validator   *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(
	tx repository.TransactorInterface,
	profileRepo repository.AthleteProfileRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	photos PhotoStorageInterface,
	validator *validator.Validate,
) *ProfileService {
	return &ProfileService{
		tx:          tx,
		profileRepo: profileRepo,
		memberRepo:  memberRepo,
		photos:      photos,
		validator:   validator,
	}
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name          *string               `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Nickname      *string               `json:"nickname,omitempty" validate:"omitempty,max=60"`
	Phone         *string               `json:"phone,omitempty" validate:"omitempty,max=30"`
	Position      *models.Position      `json:"position,omitempty" validate:"omitempty,oneof=goalkeeper defender fullback defensive_mid midfielder forward winger"`
	PreferredFoot *models.PreferredFoot `json:"preferred_foot,omitempty" validate:"omitempty,oneof=right left both"`
	JerseyNumber  *int                  `json:"jersey_number,omitempty" validate:"omitempty,min=0,max=99"`
}

// ProfileResponse represents an athlete profile in API responses
type ProfileResponse struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	Name          string               `json:"name"`
	Nickname      string               `json:"nickname,omitempty"`
	Phone         string               `json:"phone,omitempty"`
	Position      models.Position      `json:"position,omitempty"`
	PreferredFoot models.PreferredFoot `json:"preferred_foot,omitempty"`
	JerseyNumber  *int                 `json:"jersey_number,omitempty"`
	PhotoURL      string               `json:"photo_url,omitempty"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Get returns the user's profile, creating it from the account on first access
func (s *ProfileService) Get(ctx context.Context, user *models.User) (*ProfileResponse, error) {
	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Update applies the non-nil fields of req to the user's profile
func (s *ProfileService) Update(ctx context.Context, user *models.User, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Nickname != nil {
		profile.Nickname = strings.TrimSpace(*req.Nickname)
	}
	if req.Phone != nil {
		profile.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Position != nil {
		profile.Position = *req.Position
	}
	if req.PreferredFoot != nil {
		profile.PreferredFoot = *req.PreferredFoot
	}
	if req.JerseyNumber != nil {
		profile.JerseyNumber = req.JerseyNumber
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

// UploadPhoto replaces the profile photo and mirrors it onto the user's members
func (s *ProfileService) UploadPhoto(ctx context.Context, user *models.User, upload storage.Upload) (*ProfileResponse, error) {
	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.photos.Save(ctx, profilePhotoDir, upload)
	if err != nil {
		return nil, err
	}
	previous := profile.PhotoURL
	if err := s.setPhoto(ctx, profile, photoURL); err != nil {
		if delErr := s.photos.Delete(ctx, photoURL); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).Warn("Failed to remove orphaned profile photo")
		}
		return nil, err
	}
	s.removePhoto(ctx, previous)
	return toProfileResponse(profile), nil
}

// DeletePhoto clears the profile photo and the photo of the user's members
func (s *ProfileService) DeletePhoto(ctx context.Context, user *models.User) (*ProfileResponse, error) {
	profile, err := s.getOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}
	if profile.PhotoURL == "" {
		return nil, apperrors.ErrPhotoNotFound
	}

	previous := profile.PhotoURL
	if err := s.setPhoto(ctx, profile, ""); err != nil {
		return nil, err
	}
	s.removePhoto(ctx, previous)
	return toProfileResponse(profile), nil
}

func (s *ProfileService) setPhoto(ctx context.Context, profile *models.AthleteProfile, photoURL string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		profile.PhotoURL = photoURL
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return fmt.Errorf("failed to update profile photo: %w", err)
		}
		if err := s.memberRepo.UpdatePhotoForUser(ctx, profile.UserID, photoURL); err != nil {
			return fmt.Errorf("failed to sync member photos: %w", err)
		}
		return nil
	})
}

func (s *ProfileService) removePhoto(ctx context.Context, photoURL string) {
	if photoURL == "" {
		return
	}
	if err := s.photos.Delete(ctx, photoURL); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to remove previous profile photo")
	}
}

func (s *ProfileService) getOrCreate(ctx context.Context, user *models.User) (*models.AthleteProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile = &models.AthleteProfile{
		UserID: user.ID,
		Name:   user.Name,
		Phone:  user.PhoneValue(),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func toProfileResponse(profile *models.AthleteProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Name:          profile.Name,
		Nickname:      profile.Nickname,
		Phone:         profile.Phone,
		Position:      profile.Position,
		PreferredFoot: profile.PreferredFoot,
		JerseyNumber:  profile.JerseyNumber,
		PhotoURL:      profile.PhotoURL,
		UpdatedAt:     profile.UpdatedAt,
	}
}
