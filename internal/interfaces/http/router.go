package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	aiusecases "autocrm/internal/application/ai/usecases"
	emailusecases "autocrm/internal/application/email/usecases"
	teamusecases "autocrm/internal/application/team/usecases"
	ticketusecases "autocrm/internal/application/ticket/usecases"
	userusecases "autocrm/internal/application/user/usecases"
	infraai "autocrm/internal/infrastructure/ai"
	"autocrm/internal/infrastructure/auth"
	"autocrm/internal/infrastructure/cache"
	"autocrm/internal/infrastructure/config"
	"autocrm/internal/infrastructure/email"
	"autocrm/internal/infrastructure/repository"
	"autocrm/internal/infrastructure/storage"
	"autocrm/internal/interfaces/http/handlers"
	tickethandlers "autocrm/internal/interfaces/http/handlers/ticket"
	"autocrm/internal/interfaces/http/middleware"
	"autocrm/internal/interfaces/http/routes"
	"autocrm/internal/shared/authorization"
	shareddb "autocrm/internal/shared/db"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/services/richtext"
)

// Router wires repositories, use cases and handlers into a Gin engine.
type Router struct {
	engine         *gin.Engine
	ticketHandler  *tickethandlers.TicketHandler
	authHandler    *handlers.AuthHandler
	adminHandler   *handlers.AdminHandler
	aiHandler      *handlers.AIHandler
	emailHandler   *handlers.EmailHandler
	authMiddleware *middleware.AuthMiddleware
	cfg            *config.Config
	logger         logger.Interface
}

// jwtServiceAdapter bridges the infrastructure token pair to the
// application-layer interface.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, email string, role authorization.UserRole) (*userusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, email, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewUserRoleRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	txMgr := shareddb.NewTransactionManager(db)
	richtextSvc := richtext.NewService()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	objectStorage, err := storage.NewLocalStorage(cfg.Storage.RootDir)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	statsCache := cache.NewTicketStatsCache(redisClient, time.Duration(cfg.Redis.StatsTTLSeconds)*time.Second)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, richtextSvc, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, responseRepo, attachmentRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, richtextSvc, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, txMgr, log)
	bulkUpdateUC := ticketusecases.NewBulkUpdateTicketsUseCase(ticketRepo, log)
	rateTicketUC := ticketusecases.NewRateTicketUseCase(ticketRepo, log)
	addResponseUC := ticketusecases.NewAddResponseUseCase(ticketRepo, responseRepo, richtextSvc, log)
	listResponsesUC := ticketusecases.NewListResponsesUseCase(ticketRepo, responseRepo, log)
	exportTicketsUC := ticketusecases.NewExportTicketsUseCase(ticketRepo, richtextSvc, log)
	statsUC := ticketusecases.NewGetTicketStatsUseCase(ticketRepo, statsCache, log)
	uploadAttachmentsUC := ticketusecases.NewUploadAttachmentsUseCase(ticketRepo, attachmentRepo, objectStorage, cfg.Storage.MaxUploadBytes, log)
	deleteAttachmentUC := ticketusecases.NewDeleteAttachmentUseCase(ticketRepo, attachmentRepo, objectStorage, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		listTicketsUC,
		updateTicketUC,
		deleteTicketUC,
		bulkUpdateUC,
		rateTicketUC,
		addResponseUC,
		listResponsesUC,
		exportTicketsUC,
		statsUC,
		uploadAttachmentsUC,
		deleteAttachmentUC,
		cfg.Storage.PublicBaseURL,
		cfg.Storage.MaxUploadBytes,
	)

	resolveRoleUC := userusecases.NewResolveRoleUseCase(roleRepo, log)
	registerUC := userusecases.NewRegisterUserUseCase(userRepo, roleRepo, hasher, jwtService, resolveRoleUC, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, resolveRoleUC, log)
	getCurrentUserUC := userusecases.NewGetCurrentUserUseCase(userRepo, roleRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, roleRepo, log)
	updateUserRoleUC := userusecases.NewUpdateUserRoleUseCase(roleRepo, log)
	assignUserTeamUC := userusecases.NewAssignUserTeamUseCase(roleRepo, teamRepo, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, getCurrentUserUC, jwtSvc, cfg.Auth)

	createTeamUC := teamusecases.NewCreateTeamUseCase(teamRepo, log)
	listTeamsUC := teamusecases.NewListTeamsUseCase(teamRepo, log)
	deleteTeamUC := teamusecases.NewDeleteTeamUseCase(teamRepo, log)

	adminHandler := handlers.NewAdminHandler(listUsersUC, updateUserRoleUC, assignUserTeamUC, createTeamUC, listTeamsUC, deleteTeamUC)

	var aiHandler *handlers.AIHandler
	if cfg.AI.APIKey != "" {
		completer, err := infraai.NewOpenAIChatCompleter(&cfg.AI)
		if err != nil {
			return nil, err
		}
		generateDraftUC := aiusecases.NewGenerateDraftUseCase(completer, richtextSvc, log)
		aiHandler = handlers.NewAIHandler(generateDraftUC, getTicketUC, listTicketsUC)
	} else {
		log.Warnw("AI draft generation disabled, no API key configured")
	}

	sendTicketEmailUC := emailusecases.NewSendTicketEmailUseCase(emailService, log)
	emailHandler := handlers.NewEmailHandler(sendTicketEmailUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	return &Router{
		engine:         engine,
		ticketHandler:  ticketHandler,
		authHandler:    authHandler,
		adminHandler:   adminHandler,
		aiHandler:      aiHandler,
		emailHandler:   emailHandler,
		authMiddleware: authMiddleware,
		cfg:            cfg,
		logger:         log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Logger(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Attachment objects are served straight from the local store. The
	// public base URL in config must point at this prefix.
	r.engine.Static("/files", r.cfg.Storage.RootDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAIRoutes(r.engine, &routes.AIRouteConfig{
		AIHandler:      r.aiHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupEmailRoutes(r.engine, &routes.EmailRouteConfig{
		EmailHandler:   r.emailHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
