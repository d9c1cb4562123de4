package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/model"
	"github.com/GenghisKhal/assignment3/internal/repository"
)

type JobHandler struct {
	Handler
	jobs *repository.JobRepository
}

func (h *JobHandler) ListJobs(c echo.Context, _ *EmptyRequest) ([]model.Job, error) {
	return h.jobs.ListJobs(c.Request().Context())
}

func (h *JobHandler) CreateJob(c echo.Context, req *model.Job) (*model.Job, error) {
	return h.jobs.CreateJob(c.Request().Context(), *req)
}

func (h *JobHandler) DeleteJob(c echo.Context, req *model.IDRequest) (DeleteResponse, error) {
	n, err := h.jobs.DeleteJob(c.Request().Context(), req.ID)
	return DeleteResponse{Deleted: n}, err
}
