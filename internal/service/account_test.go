package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/database/models"
	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/mocks"
	"quemjoga-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	tx            *mocks.MockTransactorInterface
	userRepo      *mocks.MockUserRepositoryInterface
	profileRepo   *mocks.MockAthleteProfileRepositoryInterface
	pushTokenRepo *mocks.MockPushTokenRepositoryInterface
	invites       *mocks.MockInviteAcceptorInterface
	hasher        *mocks.MockPasswordHasherInterface
	tokens        *mocks.MockTokenIssuerInterface
	google        *mocks.MockIdentityProviderInterface
	mailer        *mocks.MockMailerInterface
	service       *service.AccountService
	ctx           context.Context
	expiresAt     time.Time
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.userRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.profileRepo = mocks.NewMockAthleteProfileRepositoryInterface(suite.ctrl)
	suite.pushTokenRepo = mocks.NewMockPushTokenRepositoryInterface(suite.ctrl)
	suite.invites = mocks.NewMockInviteAcceptorInterface(suite.ctrl)
	suite.hasher = mocks.NewMockPasswordHasherInterface(suite.ctrl)
	suite.tokens = mocks.NewMockTokenIssuerInterface(suite.ctrl)
	suite.google = mocks.NewMockIdentityProviderInterface(suite.ctrl)
	suite.mailer = mocks.NewMockMailerInterface(suite.ctrl)
	suite.service = service.NewAccountService(
		suite.tx, suite.userRepo, suite.profileRepo, suite.pushTokenRepo, suite.invites,
		suite.hasher, suite.tokens, suite.google, suite.mailer, service.NewValidator(),
		"https://app.quemjoga.test/",
	)
	suite.ctx = context.Background()
	suite.expiresAt = time.Now().Add(time.Hour)
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) activeUser() *models.User {
	email := "bruno@example.com"
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Bruno",
		Email:        &email,
		PasswordHash: "hash",
		Role:         models.UserRolePlayer,
		IsActive:     true,
	}
}

func (suite *AccountServiceTestSuite) TestRegisterWithInvite() {
	suite.userRepo.EXPECT().GetByEmail(suite.ctx, "bruno@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.hasher.EXPECT().Hash("segredo1").Return("hashed", nil)
	expectTx(suite.tx)
	suite.userRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			suite.Equal("hashed", u.PasswordHash)
			suite.Equal("bruno@example.com", u.EmailValue())
			suite.Nil(u.Phone)
			return nil
		})
	suite.invites.EXPECT().AcceptToken(suite.ctx, gomock.Any(), "tok").Return(&models.Invite{}, nil)
	suite.tokens.EXPECT().IssueAccessToken(gomock.Any()).Return("jwt", suite.expiresAt, nil)

	resp, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		Name:        "Bruno",
		Email:       "Bruno@Example.com",
		Password:    "segredo1",
		InviteToken: "tok",
	})

	suite.Require().NoError(err)
	suite.Equal("jwt", resp.AccessToken)
	suite.Equal("bearer", resp.TokenType)
	suite.Equal(models.UserRolePlayer, resp.User.Role)
}

func (suite *AccountServiceTestSuite) TestRegisterFailsWhenInviteFails() {
	suite.userRepo.EXPECT().GetByPhone(suite.ctx, "+5511988887777").Return(nil, gorm.ErrRecordNotFound)
	suite.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	expectTx(suite.tx)
	suite.userRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.invites.EXPECT().AcceptToken(suite.ctx, gomock.Any(), "used").Return(nil, apperrors.ErrInviteNotPending)

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		Name:        "Bruno",
		Phone:       "+5511988887777",
		Password:    "segredo1",
		InviteToken: "used",
	})

	suite.ErrorIs(err, apperrors.ErrInviteNotPending)
}

func (suite *AccountServiceTestSuite) TestRegisterRequiresContact() {
	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{Name: "Sem Contato", Password: "segredo1"})

	suite.ErrorIs(err, apperrors.ErrContactRequired)
}

func (suite *AccountServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.userRepo.EXPECT().GetByEmail(suite.ctx, "bruno@example.com").Return(suite.activeUser(), nil)

	_, err := suite.service.Register(suite.ctx, &service.RegisterRequest{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "segredo1",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AccountServiceTestSuite) TestLoginRegistersPushToken() {
	user := suite.activeUser()

	suite.userRepo.EXPECT().GetByIdentifier(suite.ctx, "bruno@example.com").Return(user, nil)
	suite.hasher.EXPECT().Verify("segredo1", "hash").Return(true)
	suite.pushTokenRepo.EXPECT().Upsert(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, t *models.PushToken) error {
			suite.Equal(user.ID, t.UserID)
			suite.Equal("device", t.Token)
			return nil
		})
	suite.tokens.EXPECT().IssueAccessToken(user.ID).Return("jwt", suite.expiresAt, nil)

	resp, err := suite.service.Login(suite.ctx, &service.LoginRequest{
		Identifier: "BRUNO@example.com",
		Password:   "segredo1",
		PushToken:  "device",
	})

	suite.Require().NoError(err)
	suite.Equal(user.ID, resp.User.ID)
}

func (suite *AccountServiceTestSuite) TestLoginWrongPassword() {
	suite.userRepo.EXPECT().GetByIdentifier(suite.ctx, gomock.Any()).Return(suite.activeUser(), nil)
	suite.hasher.EXPECT().Verify("errada", "hash").Return(false)

	_, err := suite.service.Login(suite.ctx, &service.LoginRequest{Identifier: "bruno@example.com", Password: "errada"})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestLoginUnknownUser() {
	suite.userRepo.EXPECT().GetByIdentifier(suite.ctx, "+5511000000000").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Login(suite.ctx, &service.LoginRequest{Identifier: "+5511000000000", Password: "x"})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AccountServiceTestSuite) TestLoginInactiveUser() {
	user := suite.activeUser()
	user.IsActive = false

	suite.userRepo.EXPECT().GetByIdentifier(suite.ctx, gomock.Any()).Return(user, nil)
	suite.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)

	_, err := suite.service.Login(suite.ctx, &service.LoginRequest{Identifier: "bruno@example.com", Password: "segredo1"})

	suite.ErrorIs(err, apperrors.ErrInactiveUser)
}

func (suite *AccountServiceTestSuite) TestForgotPasswordSendsLink() {
	user := suite.activeUser()

	suite.userRepo.EXPECT().GetByEmail(suite.ctx, "bruno@example.com").Return(user, nil)
	suite.tokens.EXPECT().IssueResetToken(user.ID, "hash").Return("a+b", nil)
	suite.mailer.EXPECT().
		SendPasswordReset(suite.ctx, "bruno@example.com", "Bruno", "https://app.quemjoga.test/reset-password?token=a%2Bb").
		Return(nil)

	suite.NoError(suite.service.ForgotPassword(suite.ctx, &service.ForgotPasswordRequest{Email: "bruno@example.com"}))
}

func (suite *AccountServiceTestSuite) TestForgotPasswordIsSilentForUnknownEmail() {
	suite.userRepo.EXPECT().GetByEmail(suite.ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	suite.NoError(suite.service.ForgotPassword(suite.ctx, &service.ForgotPasswordRequest{Email: "ghost@example.com"}))
}

func (suite *AccountServiceTestSuite) TestForgotPasswordIgnoresMailFailure() {
	user := suite.activeUser()

	suite.userRepo.EXPECT().GetByEmail(suite.ctx, gomock.Any()).Return(user, nil)
	suite.tokens.EXPECT().IssueResetToken(user.ID, "hash").Return("tok", nil)
	suite.mailer.EXPECT().SendPasswordReset(suite.ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	suite.NoError(suite.service.ForgotPassword(suite.ctx, &service.ForgotPasswordRequest{Email: "bruno@example.com"}))
}

func (suite *AccountServiceTestSuite) TestResetPassword() {
	user := suite.activeUser()

	suite.tokens.EXPECT().ValidateResetToken("reset").Return(user.ID, auth.PasswordMarker("hash"), nil)
	suite.userRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.hasher.EXPECT().Hash("novasenha").Return("newhash", nil)
	suite.userRepo.EXPECT().Update(suite.ctx, user).Return(nil)

	suite.NoError(suite.service.ResetPassword(suite.ctx, &service.ResetPasswordRequest{Token: "reset", NewPassword: "novasenha"}))
	suite.Equal("newhash", user.PasswordHash)
}

// TestResetTokenStopsWorkingAfterPasswordChange rejects a token minted for an older hash
func (suite *AccountServiceTestSuite) TestResetTokenStopsWorkingAfterPasswordChange() {
	user := suite.activeUser()
	user.PasswordHash = "changed-hash-after-token"

	suite.tokens.EXPECT().ValidateResetToken("reset").Return(user.ID, auth.PasswordMarker("hash"), nil)
	suite.userRepo.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)

	err := suite.service.ResetPassword(suite.ctx, &service.ResetPasswordRequest{Token: "reset", NewPassword: "novasenha"})

	suite.ErrorIs(err, apperrors.ErrInvalidResetToken)
}

func (suite *AccountServiceTestSuite) TestGoogleLoginProvisionsUser() {
	suite.google.EXPECT().Enabled().Return(true)
	suite.google.EXPECT().
		FetchIdentity(suite.ctx, "code", "https://app.quemjoga.test/callback").
		Return(&auth.Identity{Email: "Nova@Gmail.com", Name: "Nova", Picture: "https://pic"}, nil)
	suite.userRepo.EXPECT().GetByEmail(suite.ctx, "nova@gmail.com").Return(nil, gorm.ErrRecordNotFound)
	suite.hasher.EXPECT().Hash(gomock.Any()).Return("randomhash", nil)
	expectTx(suite.tx)
	suite.userRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.profileRepo.EXPECT().Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.AthleteProfile) error {
			suite.Equal("https://pic", p.PhotoURL)
			suite.Equal("Nova", p.Name)
			return nil
		})
	suite.tokens.EXPECT().IssueAccessToken(gomock.Any()).Return("jwt", suite.expiresAt, nil)

	resp, err := suite.service.GoogleLogin(suite.ctx, &service.GoogleLoginRequest{
		Code:        "code",
		RedirectURI: "https://app.quemjoga.test/callback",
	})

	suite.Require().NoError(err)
	suite.Equal("nova@gmail.com", resp.User.Email)
}

func (suite *AccountServiceTestSuite) TestGoogleLoginNotConfigured() {
	suite.google.EXPECT().Enabled().Return(false)

	_, err := suite.service.GoogleLogin(suite.ctx, &service.GoogleLoginRequest{Code: "c", RedirectURI: "https://x.test"})

	suite.ErrorIs(err, apperrors.ErrOAuthNotConfigured)
}

func (suite *AccountServiceTestSuite) TestGoogleLoginExchangeFailure() {
	suite.google.EXPECT().Enabled().Return(true)
	suite.google.EXPECT().FetchIdentity(suite.ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("bad code"))

	_, err := suite.service.GoogleLogin(suite.ctx, &service.GoogleLoginRequest{Code: "c", RedirectURI: "https://x.test"})

	suite.ErrorIs(err, apperrors.ErrOAuthExchange)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AccountServiceTestSuite) TestGoogleAuthURL() {
	suite.google.EXPECT().Enabled().Return(true)
	suite.google.EXPECT().AuthCodeURL(gomock.Any(), "https://x.test/cb").
		DoAndReturn(func(state, redirectURI string) string {
			return "https://accounts.google.com/o?state=" + state
		})

	resp, err := suite.service.GoogleAuthURL(suite.ctx, "https://x.test/cb")

	suite.Require().NoError(err)
	suite.NotEmpty(resp.State)
	suite.True(strings.HasSuffix(resp.URL, resp.State))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
