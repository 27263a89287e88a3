package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-clone/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	assessmentH *AssessmentHandler,
	profileH *ProfileHandler,
	hybridH *HybridHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/token", authH.IssueToken)
	auth.POST("/refresh", authH.RefreshToken)

	protected := r.Group("/")
	protected.Use(JWTAuthMiddleware(jwtSvc))

	assessment := protected.Group("/assessment")
	assessment.POST("/start", assessmentH.StartAssessment)
	assessment.POST("/:id/respond", assessmentH.SubmitResponse)
	assessment.GET("/:id/results", assessmentH.GetResults)

	profiles := protected.Group("/profiles")
	profiles.GET("", profileH.ListProfiles)
	profiles.GET("/:id", profileH.GetProfile)
	profiles.DELETE("/:id", profileH.DeleteProfile)
	profiles.GET("/:id/similar", profileH.FindSimilar)
	profiles.POST("/:id/reason", profileH.ReasonAboutProblem)

	hybrid := protected.Group("/hybrid")
	hybrid.POST("", hybridH.CreateHybrid)
	hybrid.GET("/:id", hybridH.GetHybrid)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
