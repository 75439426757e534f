package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"huddle/internal/auth"
	"huddle/internal/config"
	"huddle/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	teamHandler *handler.TeamHandler,
	channelHandler *handler.ChannelHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	messageHandler *handler.MessageHandler,
	billingHandler *handler.BillingHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Session resolution runs on every API route. The admin cookie is tried
	// first, then the employee cookie; an absent or invalid token leaves the
	// request anonymous rather than failing it, and the role guards inside
	// the handlers decide what anonymity means per route.
	api.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.AdminCookie + ",cookie:" + auth.EmployeeCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.VerifyToken(token)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get("user").(*auth.Claims); ok {
				auth.WithSession(c, auth.SessionFromClaims(claims))
			}
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	}))

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Session introspection and lookups
	api.GET("/session", authHandler.Introspect)
	api.GET("/users/:id", userHandler.GetUser)

	// Employee provisioning
	api.POST("/employees", userHandler.CreateEmployee)

	// Team routes
	api.POST("/teams", teamHandler.CreateTeam)
	api.POST("/teams/join", teamHandler.JoinTeam)
	api.GET("/teams/:teamId", teamHandler.GetTeam)
	api.POST("/teams/:teamId/invite", teamHandler.GenerateInvite)
	api.POST("/teams/:teamId/switch", teamHandler.SwitchTeam)
	api.GET("/teams/:teamId/members", teamHandler.ListMembers)
	api.DELETE("/teams/:teamId/members/:userId", teamHandler.KickMember)
	api.PUT("/teams/:teamId/theme", teamHandler.UpdateTheme)

	// Channel routes
	api.POST("/teams/:teamId/channels", channelHandler.CreateChannel)
	api.GET("/teams/:teamId/channels", channelHandler.ListChannels)
	api.DELETE("/teams/:teamId/channels/:channelId", channelHandler.DeleteChannel)

	// Project routes
	api.POST("/teams/:teamId/projects", projectHandler.CreateProject)
	api.GET("/teams/:teamId/projects", projectHandler.ListProjects)
	api.DELETE("/teams/:teamId/projects/:projectId", projectHandler.DeleteProject)

	// Task routes
	api.POST("/teams/:teamId/tasks", taskHandler.CreateTask)
	api.GET("/teams/:teamId/tasks", taskHandler.ListTasks)
	api.PUT("/teams/:teamId/tasks/:taskId/status", taskHandler.UpdateStatus)
	api.PUT("/teams/:teamId/tasks/:taskId/assign", taskHandler.AssignTask)
	api.DELETE("/teams/:teamId/tasks/:taskId", taskHandler.DeleteTask)

	// Message routes (clients poll the GET with an `after` cursor)
	api.POST("/teams/:teamId/messages", messageHandler.PostMessage)
	api.GET("/teams/:teamId/messages", messageHandler.ListMessages)

	// Billing routes
	api.GET("/teams/:teamId/billing", billingHandler.GetSubscription)
	api.PUT("/teams/:teamId/billing/plan", billingHandler.ChangePlan)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
