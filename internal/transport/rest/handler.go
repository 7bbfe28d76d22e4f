package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"legalease/config"
	"legalease/internal/domain"
	"legalease/internal/service"
	"legalease/pkg/validator"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	limiter  *ipLimiter
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	if engine, ok := binding.Validator.Engine().(*playground.Validate); ok {
		if err := validator.Register(engine); err != nil {
			logger.Error("failed to register binding validators", zap.Error(err))
		}
	}

	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		limiter:  newIPLimiter(config.RateLimit.RequestsPerMinute, config.RateLimit.Burst),
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.MaxMultipartMemory = int64(h.config.HTTP.MaxBodyMB) << 20

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	if len(h.config.CORS.AllowedOrigins) > 0 {
		router.Use(h.corsMiddleware())
	}

	router.Use(h.rateLimitMiddleware())

	router.Use(h.bodyLimitMiddleware())

	lawyerOnly := h.requireRole(domain.UserRoleLawyer)
	clientOnly := h.requireRole(domain.UserRoleClient)
	anyUser := h.requireRole(domain.UserRoleLawyer, domain.UserRoleClient)

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.health)

		auth := api.Group("/auth")
		{
			auth.POST("/lawyer/register", h.register(domain.UserRoleLawyer))
			auth.POST("/lawyer/login", h.login(domain.UserRoleLawyer))
			auth.GET("/lawyer/verify", lawyerOnly, h.verify)

			auth.POST("/client/register", h.register(domain.UserRoleClient))
			auth.POST("/client/login", h.login(domain.UserRoleClient))
			auth.GET("/client/verify", clientOnly, h.verify)

			auth.POST("/logout", h.logout)
		}

		availability := api.Group("/availability")
		{
			availability.GET("/public", h.getPublicSlots)

			availability.POST("", lawyerOnly, h.createSlot)
			availability.GET("", lawyerOnly, h.getSlots)
			availability.DELETE("/:id", lawyerOnly, h.deleteSlot)
		}

		profiles := api.Group("/lawyer-profiles")
		{
			profiles.GET("", h.getProfiles)

			me := profiles.Group("/me", lawyerOnly)
			{
				me.GET("", h.getMyProfile)
				me.PUT("", h.updateMyProfile)
				me.POST("/image", h.uploadProfileImage)
			}

			profiles.POST("", lawyerOnly, h.createProfile)
			profiles.GET("/:id", h.getProfileByID)
		}

		cases := api.Group("/cases")
		{
			cases.POST("", clientOnly, h.createCase)
			cases.GET("/client", clientOnly, h.getClientCases)
			cases.GET("/lawyer", lawyerOnly, h.getLawyerCases)
			cases.GET("/lawyer/stats", lawyerOnly, h.getLawyerStats)
			cases.GET("/:id/document", anyUser, h.getCaseDocument)
		}
	}
}
