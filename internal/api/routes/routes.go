package routes

import (
	"fmt"

	"quemjoga-backend/internal/api/handlers"
	"quemjoga-backend/internal/api/middleware"
	"quemjoga-backend/internal/auth"
	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/mailer"
	"quemjoga-backend/internal/repository"
	"quemjoga-backend/internal/service"
	"quemjoga-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, notifier service.NotifierInterface) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.MaxMultipartMemory = cfg.MaxUploadSize

	validate := service.NewValidator()

	// Initialize repositories
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewAthleteProfileRepository(db)
	pushTokenRepo := repository.NewPushTokenRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	adminRepo := repository.NewGroupAdminRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cardRepo := repository.NewCardRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	statRepo := repository.NewMemberStatRepository(db)

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}
	tokens, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewPasswordHasher()
	google := auth.NewGoogleClient(authConfig.Google)
	authMiddleware := auth.NewAuthMiddleware(tokens, userRepo)

	photos := storage.NewPhotoStore(cfg.UploadDir, cfg.MaxUploadSize)
	mail := mailer.New(cfg)

	// Initialize services
	access := service.NewAccessService(adminRepo, memberRepo)
	inviteService := service.NewInviteService(tx, inviteRepo, groupRepo, teamRepo, adminRepo, memberRepo,
		teamMemberRepo, profileRepo, access, validate, cfg.InviteTTL())
	accountService := service.NewAccountService(tx, userRepo, profileRepo, pushTokenRepo, inviteService,
		hasher, tokens, google, mail, validate, cfg.FrontendURL)
	groupService := service.NewGroupService(tx, groupRepo, adminRepo, memberRepo, paymentRepo, userRepo, access, validate)
	memberService := service.NewMemberService(tx, memberRepo, groupRepo, attendanceRepo, paymentRepo, cardRepo,
		teamMemberRepo, photos, access, validate)
	matchService := service.NewMatchService(tx, matchRepo, groupRepo, memberRepo, attendanceRepo, pushTokenRepo,
		notifier, access, validate)
	attendanceService := service.NewAttendanceService(matchRepo, memberRepo, attendanceRepo, access, validate)
	paymentService := service.NewPaymentService(tx, paymentRepo, memberRepo, groupRepo, pushTokenRepo, notifier, access, validate)
	cardService := service.NewCardService(tx, cardRepo, memberRepo, matchRepo, groupRepo, paymentRepo, access, validate)
	teamService := service.NewTeamService(tx, teamRepo, teamMemberRepo, memberRepo, groupRepo, access, validate)
	profileService := service.NewProfileService(tx, profileRepo, memberRepo, photos, validate)
	statsService := service.NewStatsService(statRepo, memberRepo, access, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version).WithCheck("storage", photos.Check)
	accountHandler := handlers.NewAccountHandler(accountService)
	groupHandler := handlers.NewGroupHandler(groupService)
	memberHandler := handlers.NewMemberHandler(memberService)
	matchHandler := handlers.NewMatchHandler(matchService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, photos)
	cardHandler := handlers.NewCardHandler(cardService)
	teamHandler := handlers.NewTeamHandler(teamService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	profileHandler := handlers.NewProfileHandler(profileService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded photos and receipts
	router.StaticFS(storage.PublicPrefix, afero.NewHttpFs(photos.Fs()))

	v1 := router.Group("/api/v1")

	// Public routes
	public := v1.Group("")
	{
		public.POST("/auth/register", accountHandler.Register)
		public.POST("/auth/login", accountHandler.Login)
		public.POST("/auth/forgot-password", accountHandler.ForgotPassword)
		public.POST("/auth/reset-password", accountHandler.ResetPassword)
		public.GET("/auth/google/url", accountHandler.GoogleAuthURL)
		public.POST("/auth/google", accountHandler.GoogleLogin)
		public.GET("/invites/:token", inviteHandler.GetInvite)
	}

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", accountHandler.Me)
		protected.POST("/auth/push-token", accountHandler.RegisterPushToken)

		profile := protected.Group("/profile/me")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PATCH("", profileHandler.UpdateProfile)
			profile.POST("/photo", profileHandler.UploadPhoto)
			profile.DELETE("/photo", profileHandler.DeletePhoto)
		}

		groups := protected.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PATCH("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.GET("/:id/balance", groupHandler.GetBalance)
			groups.GET("/:id/admins", groupHandler.ListAdmins)
			groups.GET("/:id/members", memberHandler.ListMembers)
			groups.GET("/:id/matches", matchHandler.ListMatches)
			groups.GET("/:id/payments", paymentHandler.ListPayments)
			groups.GET("/:id/payments/awaiting", paymentHandler.ListAwaiting)
			groups.POST("/:id/dues", paymentHandler.GenerateDues)
			groups.GET("/:id/teams", teamHandler.ListTeams)
			groups.GET("/:id/invites", inviteHandler.ListPendingInvites)
			groups.GET("/:id/scorers", statsHandler.GetLeaderboard)
			groups.PATCH("/:id/scorers/:memberId", statsHandler.UpdateStats)
		}

		members := protected.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PATCH("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.GET("/:id/history", memberHandler.GetHistory)
			members.POST("/:id/photo", memberHandler.UploadPhoto)
			members.GET("/:id/cards", cardHandler.ListMemberCards)
			members.DELETE("/:id/cards/:type", cardHandler.RemoveLatestCard)
			members.POST("/:id/dues/confirm", paymentHandler.ConfirmDues)
			members.POST("/:id/dues/unconfirm", paymentHandler.UnconfirmDues)
		}

		matches := protected.Group("/matches")
		{
			matches.POST("", matchHandler.CreateMatch)
			matches.GET("/:id", matchHandler.GetMatch)
			matches.PATCH("/:id", matchHandler.UpdateMatch)
			matches.DELETE("/:id", matchHandler.CancelMatch)
			matches.GET("/:id/roster", matchHandler.GetRoster)
			matches.POST("/:id/members/:memberId/confirm", attendanceHandler.Confirm)
			matches.POST("/:id/members/:memberId/decline", attendanceHandler.Decline)
		}

		attendance := protected.Group("/attendance")
		{
			attendance.POST("", attendanceHandler.SubmitAttendance)
			attendance.PATCH("/:id", attendanceHandler.UpdateAttendance)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", paymentHandler.CreatePayment)
			payments.POST("/:id/receipt", paymentHandler.SubmitReceipt)
			payments.POST("/:id/review", paymentHandler.ReviewPayment)
		}

		protected.POST("/cards", cardHandler.IssueCard)

		teams := protected.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.PATCH("/:id/members/:memberId", teamHandler.UpdateMember)
			teams.DELETE("/:id/members/:memberId", teamHandler.RemoveMember)
		}

		invites := protected.Group("/invites")
		{
			invites.POST("", inviteHandler.CreateInvite)
			invites.POST("/accept", inviteHandler.AcceptInvite)
			invites.DELETE("/:id", inviteHandler.CancelInvite)
		}
	}

	return router, nil
}
