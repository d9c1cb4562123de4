// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/handler"
	"github.com/GenghisKhal/assignment3/internal/middleware"
	"github.com/GenghisKhal/assignment3/internal/server"
)

// NewRouter builds the echo instance. Middleware order matters: the request
// id comes first so every later log line and trace carries it, and the
// New Relic transaction must exist before EnhanceTracing reads it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api/v1")
	registerUserRoutes(api, h.Users)
	registerJobRoutes(api, h.Jobs)
	registerAppointmentRoutes(api, h.Appointments)
	registerApplicationRoutes(api, h.Applications)
	registerReportRoutes(api, h.Reports)

	return router
}

func registerUserRoutes(g *echo.Group, h *handler.UserHandler) {
	users := g.Group("/users")
	users.GET("", handler.Handle(h.Handler, h.ListUsers, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Handler, h.GetUser, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Handler, h.DeleteUser, http.StatusOK))

	g.POST("/caregivers", handler.Handle(h.Handler, h.CreateCaregiver, http.StatusCreated))
	g.PATCH("/caregivers/:id", handler.Handle(h.Handler, h.UpdateCaregiver, http.StatusOK))

	g.POST("/members", handler.Handle(h.Handler, h.CreateMember, http.StatusCreated))
	g.PATCH("/members/:id", handler.Handle(h.Handler, h.UpdateMember, http.StatusOK))
	g.GET("/members/:id/address", handler.Handle(h.Handler, h.GetAddress, http.StatusOK))
	g.PUT("/members/:id/address", handler.Handle(h.Handler, h.PutAddress, http.StatusOK))
}

func registerJobRoutes(g *echo.Group, h *handler.JobHandler) {
	jobs := g.Group("/jobs")
	jobs.GET("", handler.Handle(h.Handler, h.ListJobs, http.StatusOK))
	jobs.POST("", handler.Handle(h.Handler, h.CreateJob, http.StatusCreated))
	jobs.DELETE("/:id", handler.Handle(h.Handler, h.DeleteJob, http.StatusOK))
}

func registerAppointmentRoutes(g *echo.Group, h *handler.AppointmentHandler) {
	appointments := g.Group("/appointments")
	appointments.GET("", handler.Handle(h.Handler, h.ListAppointments, http.StatusOK))
	appointments.POST("", handler.Handle(h.Handler, h.CreateAppointment, http.StatusCreated))
	appointments.PATCH("/:id/status", handler.Handle(h.Handler, h.UpdateStatus, http.StatusOK))
	appointments.DELETE("/:id", handler.Handle(h.Handler, h.DeleteAppointment, http.StatusOK))
}

func registerApplicationRoutes(g *echo.Group, h *handler.ApplicationHandler) {
	applications := g.Group("/applications")
	applications.GET("", handler.Handle(h.Handler, h.ListApplications, http.StatusOK))
	applications.POST("", handler.Handle(h.Handler, h.CreateApplication, http.StatusCreated))
	applications.DELETE("/:caregiverId/:jobId", handler.Handle(h.Handler, h.DeleteApplication, http.StatusOK))
}

func registerReportRoutes(g *echo.Group, h *handler.ReportHandler) {
	reports := g.Group("/reports")
	reports.GET("", handler.Handle(h.Handler, h.ListReports, http.StatusOK))
	reports.GET("/:name", handler.Handle(h.Handler, h.RunReport, http.StatusOK))
	reports.POST("/:name", handler.Handle(h.Handler, h.RunReport, http.StatusOK))
}
