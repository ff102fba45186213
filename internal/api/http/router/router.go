package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/sessionkeeper/internal/api/http/handler"
	"github.com/dtroode/sessionkeeper/internal/api/http/middleware"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Router wires HTTP handlers and middleware onto an echo instance.
type Router struct {
	account        handler.AccountService
	session        handler.SessionService
	authenticator  middleware.Authenticator
	pinger         handler.Pinger
	contextManager model.ContextManager
	cookies        *handler.Cookies
	logger         *logger.Logger
}

func New(
	account handler.AccountService,
	session handler.SessionService,
	authenticator middleware.Authenticator,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	cookies *handler.Cookies,
	logger *logger.Logger,
) *Router {
	return &Router{
		account:        account,
		session:        session,
		authenticator:  authenticator,
		pinger:         pinger,
		contextManager: contextManager,
		cookies:        cookies,
		logger:         logger,
	}
}

// Register builds the echo instance with every route.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(r.contextManager, r.logger)

	e.Use(echomw.Recover())
	e.Use(logging.Handle)

	health := handler.NewHealth(r.pinger, r.logger)
	e.GET("/healthz", health.Check)

	auth := handler.NewAuth(r.account, r.session, r.contextManager, r.cookies, r.logger)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", auth.Register)
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/refresh", auth.Refresh)
	authGroup.POST("/logout", auth.Logout)
	authGroup.GET("/me", auth.Me, authenticate.Handle)
	authGroup.POST("/logout-all", auth.LogoutAll, authenticate.Handle)
	authGroup.PUT("/password", auth.ChangePassword, authenticate.Handle)

	admin := handler.NewAdmin(r.session, r.contextManager, r.logger)
	adminGroup := e.Group("/admin", authenticate.Handle, authorize.RequireRole(model.RoleAdmin))
	adminGroup.POST("/users/:id/revoke-sessions", admin.RevokeSessions)

	return e
}
