package handler

import (
	"github.com/GenghisKhal/assignment3/internal/repository"
	"github.com/GenghisKhal/assignment3/internal/server"
	"github.com/GenghisKhal/assignment3/internal/service"
)

// Handlers groups all HTTP handlers for the router.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Jobs         *JobHandler
	Appointments *AppointmentHandler
	Applications *ApplicationHandler
	Reports      *ReportHandler
}

func NewHandlers(s *server.Server, repos *repository.Repositories, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        &UserHandler{Handler: NewHandler(s), users: repos.Users},
		Jobs:         &JobHandler{Handler: NewHandler(s), jobs: repos.Jobs},
		Appointments: &AppointmentHandler{Handler: NewHandler(s), appointments: repos.Appointments},
		Applications: &ApplicationHandler{Handler: NewHandler(s), applications: repos.Applications},
		Reports:      &ReportHandler{Handler: NewHandler(s), reports: services.Reports},
	}
}

// EmptyRequest is the payload of endpoints without parameters.
type EmptyRequest struct{}

// DeleteResponse reports how many rows a delete removed; zero is a success.
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
