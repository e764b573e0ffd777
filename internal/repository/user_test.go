//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"quemjoga-backend/internal/database/models"
	"quemjoga-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository and the account-side repositories
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByEmailIsCaseInsensitive tests email lookup ignoring case
func (suite *UserRepositoryTestSuite) TestGetByEmailIsCaseInsensitive() {
	user := suite.factories.User.WithEmail("Pele@Santos.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	retrieved, err := suite.repo.GetByEmail(suite.ctx, "pele@santos.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestGetByIdentifier tests login lookup by email or phone
func (suite *UserRepositoryTestSuite) TestGetByIdentifier() {
	byEmail := suite.factories.User.WithEmail("garrincha@botafogo.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, byEmail))
	byPhone := suite.factories.User.WithPhone("+5521988887777")
	suite.Require().NoError(suite.repo.Create(suite.ctx, byPhone))

	retrieved, err := suite.repo.GetByIdentifier(suite.ctx, "GARRINCHA@botafogo.com")
	suite.NoError(err)
	suite.Equal(byEmail.ID, retrieved.ID)

	retrieved, err = suite.repo.GetByIdentifier(suite.ctx, "+5521988887777")
	suite.NoError(err)
	suite.Equal(byPhone.ID, retrieved.ID)

	retrieved, err = suite.repo.GetByPhone(suite.ctx, "+5521988887777")
	suite.NoError(err)
	suite.Equal(byPhone.ID, retrieved.ID)

	_, err = suite.repo.GetByIdentifier(suite.ctx, "ninguem@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@test.com")))

	err := suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@test.com"))

	suite.Error(err)
}

// TestUpdate tests saving user fields
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	user.Name = "Novo Nome"
	user.IsActive = false

	suite.NoError(suite.repo.Update(suite.ctx, user))

	retrieved, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal("Novo Nome", retrieved.Name)
	suite.False(retrieved.IsActive)
}

// TestAthleteProfile tests one profile per user
func (suite *UserRepositoryTestSuite) TestAthleteProfile() {
	profiles := NewAthleteProfileRepository(suite.baseTestSuite.DB)
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	_, err := profiles.GetByUserID(suite.ctx, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	profile := &models.AthleteProfile{UserID: user.ID, Name: user.Name, Position: models.PositionGoalkeeper}
	suite.Require().NoError(profiles.Create(suite.ctx, profile))
	suite.Error(profiles.Create(suite.ctx, &models.AthleteProfile{UserID: user.ID}))

	profile.PreferredFoot = models.PreferredFootLeft
	suite.NoError(profiles.Update(suite.ctx, profile))

	retrieved, err := profiles.GetByUserID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal(models.PositionGoalkeeper, retrieved.Position)
	suite.Equal(models.PreferredFootLeft, retrieved.PreferredFoot)
}

// TestPushTokenUpsert tests that registering the same device twice keeps one row
func (suite *UserRepositoryTestSuite) TestPushTokenUpsert() {
	tokens := NewPushTokenRepository(suite.baseTestSuite.DB)
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	suite.NoError(tokens.Upsert(suite.ctx, &models.PushToken{UserID: user.ID, Token: "device-1", Platform: "android"}))
	suite.NoError(tokens.Upsert(suite.ctx, &models.PushToken{UserID: user.ID, Token: "device-1", Platform: "ios"}))
	suite.NoError(tokens.Upsert(suite.ctx, &models.PushToken{UserID: user.ID, Token: "device-2", Platform: "ios"}))

	listed, err := tokens.ListByUserIDs(suite.ctx, []uuid.UUID{user.ID})
	suite.NoError(err)
	suite.Len(listed, 2)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
