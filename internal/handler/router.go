package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/auth"
	"github.com/pustaka-app/backend/internal/config"
)

// NewRouter wires every route behind the edge guard. The admin group also
// carries RequireRole so a misconfigured prefix table cannot silently open
// admin routes to regular users.
func NewRouter(
	cfg config.Config,
	codec *auth.Codec,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	bookHandler *BookHandler,
	borrowHandler *BorrowHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())
	r.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	r.Use(RouteGuard(codec, cfg.Routes, cfg.Auth.CookieName))

	r.GET("/", Root)
	r.GET("/ping", Ping)

	api := r.Group("/api")
	api.GET("/config", ClientConfig(cfg.Server.BaseURL))
	api.GET("/books", bookHandler.List)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)

	user := api.Group("/user")
	user.GET("/profile", userHandler.Profile)
	user.GET("/books", userHandler.Books)

	admin := api.Group("/admin", RequireRole(auth.RoleAdmin))
	admin.POST("/register-admin", authHandler.RegisterAdmin)
	admin.POST("/books", bookHandler.Create)
	admin.POST("/borrows", borrowHandler.Create)
	admin.PUT("/borrows/:id/return", borrowHandler.Return)

	return r
}
