package service

import (
	"errors"
	"testing"

	apperrors "quemjoga-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPagination(t *testing.T) {
	tests := []struct {
		name                        string
		page, pageSize              int
		wantPage, wantSize, wantOff int
	}{
		{"defaults", 0, 0, 1, 20, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"clamped size", 3, 500, 3, 100, 200},
		{"negative page", -4, 5, 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, limit, offset := pagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantSize, limit)
			assert.Equal(t, tt.wantOff, offset)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R$ 0.00", FormatMoney(0))
	assert.Equal(t, "R$ 10.00", FormatMoney(1000))
	assert.Equal(t, "R$ 1234.05", FormatMoney(123405))
	assert.Equal(t, "-R$ 1.50", FormatMoney(-150))
}

func TestTranslate(t *testing.T) {
	assert.Same(t, apperrors.ErrGroupNotFound, translate(gorm.ErrRecordNotFound, apperrors.ErrGroupNotFound, "get group"))

	cause := errors.New("connection reset")
	err := translate(cause, apperrors.ErrGroupNotFound, "get group")
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "failed to get group: connection reset")
}

func TestValidateRequestUsesJSONNames(t *testing.T) {
	type request struct {
		GroupName string `json:"group_name" validate:"required"`
	}

	err := validateRequest(NewValidator(), &request{})

	var validationErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "group_name", validationErr.Field)
	assert.Equal(t, "failed on the 'required' rule", validationErr.Message)
}
