package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"jobboard/database"
	"jobboard/internal/config"
	"jobboard/internal/http-api/handler"
	"jobboard/internal/http-api/middleware"
	"jobboard/internal/http-api/repository"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/templates"
	"jobboard/internal/translate"
)

// Dependencies are the long-lived objects the routes are built from.
type Dependencies struct {
	Config     *config.Config
	DB         *gorm.DB
	Logger     *slog.Logger
	Denylist   repository.TokenDenylist
	Translator translate.Translator
	// Registry receives the HTTP metrics when Config.PrometheusEnabled is
	// set; prometheus.DefaultRegisterer is used when nil.
	Registry *prometheus.Registry
}

// New builds the route table once at startup.
func New(deps Dependencies) (*gin.Engine, error) {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(deps.DB)
	postRepo := repository.NewPostRepository(deps.DB)
	commentRepo := repository.NewCommentRepository(deps.DB)
	songRepo := repository.NewSongRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Denylist, deps.Config)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)
	searchService := service.NewSearchService(songRepo)
	translateService := service.NewTranslateService(postRepo, deps.Translator, deps.Config)

	authHandler := handler.NewAuthHandler(authService, deps.Config.SessionTTL)
	blogHandler := handler.NewBlogHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	searchHandler := handler.NewSearchHandler(searchService)
	translateHandler := handler.NewTranslateHandler(translateService)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))

	if deps.Config.PrometheusEnabled {
		var reg prometheus.Registerer = prometheus.DefaultRegisterer
		var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
		if deps.Registry != nil {
			reg, gatherer = deps.Registry, deps.Registry
		}
		r.Use(middleware.NewMetrics(reg).Handler())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	r.Use(database.Middleware(deps.DB))
	r.Use(middleware.LoadUser(authService))

	loginRequired := middleware.RequireLogin()
	ownPost := handler.LoadPost(postService, true)
	anyPost := handler.LoadPost(postService, false)

	// Public routes
	r.GET("/", blogHandler.Index)
	r.GET("/:id/comments", anyPost, commentHandler.Comments)
	r.POST("/:id/comments", anyPost, commentHandler.Comments)

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/register", authHandler.RegisterForm)
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/login", authHandler.LoginForm)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/logout", authHandler.Logout)
	}

	// Protected routes
	protected := r.Group("/")
	protected.Use(loginRequired)
	{
		protected.GET("/create", blogHandler.CreateForm)
		protected.POST("/create", blogHandler.Create)

		protected.GET("/:id/update", ownPost, blogHandler.UpdateForm)
		protected.POST("/:id/update", ownPost, blogHandler.Update)
		protected.POST("/:id/delete", ownPost, blogHandler.Delete)
		protected.GET("/:id/translate", ownPost, translateHandler.TranslateForm)
		protected.POST("/:id/translate", ownPost, translateHandler.Translate)

		protected.GET("/search", searchHandler.SearchForm)
		protected.POST("/search", searchHandler.Search)
	}

	return r, nil
}
