package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "planora-api/docs"

	authHTTP "planora-api/internal/auth/delivery/http"
	authRedis "planora-api/internal/auth/repository/redis"
	authUsecase "planora-api/internal/auth/usecase"
	guestHTTP "planora-api/internal/guest/delivery/http"
	guestPostgre "planora-api/internal/guest/repository/postgre"
	guestUsecase "planora-api/internal/guest/usecase"
	"planora-api/internal/middleware"
	planHTTP "planora-api/internal/plan/delivery/http"
	planPostgre "planora-api/internal/plan/repository/postgre"
	planUsecase "planora-api/internal/plan/usecase"
	taskHTTP "planora-api/internal/task/delivery/http"
	taskPostgre "planora-api/internal/task/repository/postgre"
	taskUsecase "planora-api/internal/task/usecase"
	userHTTP "planora-api/internal/user/delivery/http"
	userPostgre "planora-api/internal/user/repository/postgre"
	userUsecase "planora-api/internal/user/usecase"
)

func (srv *HTTPServer) mapHandlers() {
	userRepo := userPostgre.New(srv.l, srv.cfg.DB)
	planRepo := planPostgre.New(srv.l, srv.cfg.DB)
	guestRepo := guestPostgre.New(srv.l, srv.cfg.DB, srv.cfg.Encrypter)
	taskRepo := taskPostgre.New(srv.l, srv.cfg.DB)
	revoker := authRedis.New(srv.l, srv.cfg.Redis)

	authUC := authUsecase.New(srv.l, userRepo, srv.cfg.ScopeManager, revoker)
	userUC := userUsecase.New(srv.l, userRepo, srv.cfg.Storage, srv.cfg.AvatarBucket)
	planUC := planUsecase.New(srv.l, planRepo)
	guestUC := guestUsecase.New(srv.l, guestRepo, planRepo)
	taskUC := taskUsecase.New(srv.l, taskRepo, planRepo)

	mw := middleware.New(srv.l, srv.cfg.ScopeManager, revoker, authUC, srv.cfg.Discord)

	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.Cors())

	srv.gin.GET("/health", srv.health)
	srv.gin.GET("/live", srv.live)
	srv.gin.GET("/ready", srv.ready)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := srv.gin.Group("/api/v1")

	authHTTP.MapAuthRoutes(api.Group("/auth"), authHTTP.New(srv.l, authUC, srv.cfg.Discord), mw)
	userHTTP.MapUserRoutes(api.Group("/users"), userHTTP.New(srv.l, userUC, srv.cfg.Discord), mw)
	planHTTP.MapPlanRoutes(api.Group("/plans"), planHTTP.New(srv.l, planUC, srv.cfg.Discord), mw)
	guestHTTP.MapGuestRoutes(api.Group("/plans"), guestHTTP.New(srv.l, guestUC, srv.cfg.Discord), mw)
	taskHTTP.MapTaskRoutes(api.Group("/plans"), taskHTTP.New(srv.l, taskUC, srv.cfg.Discord), mw)
}
