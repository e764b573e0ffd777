package testutils

import (
	"testing"
	"time"

	"quemjoga-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFactory(t *testing.T) {
	f := NewUserFactory()

	t.Run("unique emails", func(t *testing.T) {
		a, b := f.Create(), f.Create()
		assert.NotEqual(t, a.ID, b.ID)
		assert.NotEqual(t, a.EmailValue(), b.EmailValue())
		assert.True(t, a.IsActive)
	})

	t.Run("phone only", func(t *testing.T) {
		user := f.WithPhone("+5511900000000")
		assert.Nil(t, user.Email)
		assert.Equal(t, "+5511900000000", user.PhoneValue())
	})
}

func TestMemberFactoryWithUser(t *testing.T) {
	groupID, userID := uuid.New(), uuid.New()

	member := NewMemberFactory().WithUser(groupID, userID)

	assert.Equal(t, groupID, member.GroupID)
	assert.True(t, member.BelongsTo(userID))
	assert.False(t, member.BelongsTo(uuid.New()))
}

func TestMatchFactoryAt(t *testing.T) {
	groupID := uuid.New()
	when := time.Date(2026, 3, 5, 20, 0, 0, 0, time.UTC)

	match := NewMatchFactory().At(groupID, when)

	assert.Equal(t, groupID, match.GroupID)
	assert.True(t, match.ScheduledAt.Equal(when))
	assert.False(t, match.IsCanceled)
}

func TestPaymentFactoryWithStatus(t *testing.T) {
	memberID := uuid.New()

	payment := NewPaymentFactory().WithStatus(memberID, models.PaymentStatusAwaitingApproval)

	assert.Equal(t, memberID, payment.MemberID)
	assert.Equal(t, models.PaymentStatusAwaitingApproval, payment.Status)
	assert.True(t, payment.Status.IsOutstanding())
}

func TestInviteFactory(t *testing.T) {
	invite := NewInviteFactory().Create(uuid.New(), uuid.New())

	require.NotNil(t, invite.ExpiresAt)
	assert.True(t, invite.ExpiresAt.After(time.Now()))
	assert.Equal(t, invite.ID.String(), invite.Token)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
}

func TestNewFactorySet(t *testing.T) {
	set := NewFactorySet()

	assert.NotNil(t, set.User)
	assert.NotNil(t, set.Group)
	assert.NotNil(t, set.Member)
	assert.NotNil(t, set.Match)
	assert.NotNil(t, set.Payment)
	assert.NotNil(t, set.Card)
	assert.NotNil(t, set.Team)
	assert.NotNil(t, set.Invite)
}
