package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/repository"
)

type AppointmentHandler struct {
	Handler
	appointments *repository.AppointmentRepository
}

func (h *AppointmentHandler) ListAppointments(c echo.Context, _ *EmptyRequest) ([]model.Appointment, error) {
	return h.appointments.ListAppointments(c.Request().Context())
}

// CreateAppointment ignores any submitted status; new appointments are Pending.
func (h *AppointmentHandler) CreateAppointment(c echo.Context, req *model.Appointment) (*model.Appointment, error) {
	return h.appointments.CreateAppointment(c.Request().Context(), *req)
}

func (h *AppointmentHandler) UpdateStatus(c echo.Context, req *model.UpdateStatusRequest) (*model.Appointment, error) {
	return h.appointments.UpdateAppointmentStatus(c.Request().Context(), req.ID, req.Status)
}

func (h *AppointmentHandler) DeleteAppointment(c echo.Context, req *model.IDRequest) (DeleteResponse, error) {
	n, err := h.appointments.DeleteAppointment(c.Request().Context(), req.ID)
	return DeleteResponse{Deleted: n}, err
}
