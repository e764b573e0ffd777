package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"
	"quemjoga-backend/internal/notify"
	"quemjoga-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and reports the first failing field
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// translate maps a missing row to the entity sentinel and wraps anything else
func translate(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// pagination clamps page and pageSize and returns the matching limit and offset
func pagination(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// FormatMoney renders an amount in centavos as a BRL string
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, cents/100, cents%100)
}

// notifyUsers looks up the device tokens of users and publishes one notification.
// Failures are logged; a missed push never fails the operation that triggered it.
func notifyUsers(ctx context.Context, tokens repository.PushTokenRepositoryInterface, notifier NotifierInterface, userIDs []uuid.UUID, n notify.Notification) {
	if notifier == nil || len(userIDs) == 0 {
		return
	}
	log := logger.WithContext(ctx).WithField("title", n.Title)

	rows, err := tokens.ListByUserIDs(ctx, userIDs)
	if err != nil {
		log.WithError(err).Warn("Failed to load push tokens")
		return
	}
	for _, row := range rows {
		n.Tokens = append(n.Tokens, row.Token)
	}
	if err := notifier.Notify(ctx, n); err != nil {
		log.WithError(err).Warn("Failed to publish notification")
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
