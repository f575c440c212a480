package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/mustang1105/twilio-service/internal/errors"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/internal/validation"
	"github.com/mustang1105/twilio-service/rooms"
)

const (
	sessionCookieName = "vr_session"
	identityHeader    = "X-Identity"

	ctxCallerID = "callerID"
)

type Config struct {
	TemplatesGlob    string        `mapstructure:"templates_glob"`
	CORSOrigins      []string      `mapstructure:"cors_origins"`
	SessionCookieTTL time.Duration `mapstructure:"session_cookie_ttl"`
	// Join-view rate limit guards token minting.
	JoinRate  float64 `mapstructure:"join_rate"`
	JoinBurst int     `mapstructure:"join_burst"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("templates_glob"), "web/templates/*.html")
	v.SetDefault(p("cors_origins"), []string{})
	v.SetDefault(p("session_cookie_ttl"), "24h")
	v.SetDefault(p("join_rate"), 10.0)
	v.SetDefault(p("join_burst"), 20)
}

type Router struct {
	roomService rooms.RoomService
	engine      *gin.Engine
	joinLimiter *rate.Limiter
	cookieTTL   time.Duration
	logger      *log.Logger
}

func NewRouter(roomService rooms.RoomService, cfg *Config, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware("video-rooms"))

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
		engine.Use(cors.New(corsCfg))
	}

	if cfg.TemplatesGlob != "" {
		engine.LoadHTMLGlob(cfg.TemplatesGlob)
	}

	cookieTTL := cfg.SessionCookieTTL
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}

	r := &Router{
		roomService: roomService,
		engine:      engine,
		joinLimiter: rate.NewLimiter(rate.Limit(cfg.JoinRate), cfg.JoinBurst),
		cookieTTL:   cookieTTL,
		logger:      logger,
	}

	// Request logging middleware
	r.engine.Use(func(c *gin.Context) {
		r.logger.Info("Incoming request",
			log.String("method", c.Request.Method),
			log.String("url", c.Request.URL.String()))
		c.Next()
	})
	r.engine.Use(r.sessionCookie)

	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	// Rendered views
	r.engine.GET("/video-rooms", r.index)
	r.engine.GET("/video-rooms/:roomId/preview", r.preview)
	r.engine.GET("/video-rooms/:roomId", r.show)

	// JSON API
	r.engine.GET("/api/video-rooms", r.listRooms)
	r.engine.POST("/api/video-rooms", r.createRoom)
	r.engine.POST("/api/video-rooms/store-blur-strength", r.storeBlurStrength)

	// Health check
	r.engine.GET("/health", r.healthCheck)
}

// sessionCookie assigns every caller a stable id. Blur preferences key off
// it, and it doubles as the default join identity.
func (r *Router) sessionCookie(c *gin.Context) {
	callerID, err := c.Cookie(sessionCookieName)
	if err != nil || callerID == "" {
		callerID = uuid.NewString()
		c.SetCookie(sessionCookieName, callerID, int(r.cookieTTL.Seconds()), "/", "", false, true)
	}
	c.Set(ctxCallerID, callerID)
	c.Next()
}

func (r *Router) callerID(c *gin.Context) string {
	return c.GetString(ctxCallerID)
}

func (r *Router) identity(c *gin.Context) string {
	if id := c.GetHeader(identityHeader); id != "" {
		return id
	}
	return r.callerID(c)
}

func (r *Router) index(c *gin.Context) {
	list, err := r.roomService.ListRooms(c.Request.Context())
	if err != nil {
		r.logger.Error("Failed to list rooms", log.Error(err))
		c.String(http.StatusInternalServerError, "failed to list rooms")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"rooms": list,
	})
}

func (r *Router) listRooms(c *gin.Context) {
	list, err := r.roomService.ListRooms(c.Request.Context())
	if err != nil {
		r.logger.Error("Failed to list rooms", log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list rooms",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": list,
	})
}

func (r *Router) createRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed.Add(c.Request.Context(), 1)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	if _, err := r.roomService.CreateRoom(c.Request.Context(), req.Name); err != nil {
		r.respondJSONError(c, err, "Failed to create room")
		return
	}

	roomsCreated.Add(c.Request.Context(), 1)
	c.JSON(http.StatusCreated, gin.H{})
}

func (r *Router) preview(c *gin.Context) {
	var uri RoomURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.String(http.StatusNotFound, "room not found")
		return
	}

	room, err := r.roomService.GetRoom(c.Request.Context(), uri.RoomID)
	if err != nil {
		r.respondViewError(c, err)
		return
	}

	c.HTML(http.StatusOK, "preview.html", gin.H{
		"videoRoom": room,
	})
}

func (r *Router) show(c *gin.Context) {
	if !r.joinLimiter.Allow() {
		joinsRateLimited.Add(c.Request.Context(), 1)
		c.String(http.StatusTooManyRequests, "too many join requests")
		return
	}

	var uri RoomURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.String(http.StatusNotFound, "room not found")
		return
	}

	join, err := r.roomService.ResolveForJoin(c.Request.Context(), uri.RoomID, r.identity(c), r.callerID(c))
	if err != nil {
		r.respondViewError(c, err)
		return
	}

	joinsServed.Add(c.Request.Context(), 1)
	c.HTML(http.StatusOK, "show.html", gin.H{
		"videoRoom":    join.Room,
		"token":        join.Token,
		"blurStrength": join.BlurStrength,
	})
}

func (r *Router) storeBlurStrength(c *gin.Context) {
	var req StoreBlurStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed.Add(c.Request.Context(), 1)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	err := r.roomService.RecordBlurPreference(c.Request.Context(), r.callerID(c), *req.BlurStrength)
	if err != nil {
		r.respondJSONError(c, err, "Failed to store blur strength")
		return
	}

	blurPrefsStored.Add(c.Request.Context(), 1)
	c.JSON(http.StatusOK, gin.H{})
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "video-rooms",
		"timestamp": time.Now().Unix(),
	})
}

func (r *Router) respondJSONError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, rooms.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, rooms.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, rooms.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		r.logger.Error(fallback, log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (r *Router) respondViewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		c.String(http.StatusNotFound, "room not found")
	case errors.Is(err, rooms.ErrUpstream):
		// retryable: the room record stays session-less, a fresh request
		// provisions again
		c.String(http.StatusBadGateway, "video provider unavailable, retry shortly")
	default:
		r.logger.Error("Failed to render view", log.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
	}
}
