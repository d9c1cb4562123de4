package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/repository"
)

type ApplicationHandler struct {
	Handler
	applications *repository.ApplicationRepository
}

func (h *ApplicationHandler) ListApplications(c echo.Context, _ *EmptyRequest) ([]model.JobApplication, error) {
	return h.applications.ListApplications(c.Request().Context())
}

func (h *ApplicationHandler) CreateApplication(c echo.Context, req *model.JobApplication) (*model.JobApplication, error) {
	return h.applications.CreateApplication(c.Request().Context(), *req)
}

func (h *ApplicationHandler) DeleteApplication(c echo.Context, req *model.ApplicationKeyRequest) (DeleteResponse, error) {
	n, err := h.applications.DeleteApplication(c.Request().Context(), req.CaregiverID, req.JobID)
	return DeleteResponse{Deleted: n}, err
}
