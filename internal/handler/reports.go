package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/service"
)

type ReportHandler struct {
	Handler
	reports *service.ReportService
}

// ReportRequest names the report; every other query or form value is passed
// to it as a parameter.
type ReportRequest struct {
	Name string `form:"name" validate:"required"`
}

func (h *ReportHandler) ListReports(c echo.Context, _ *EmptyRequest) ([]service.Report, error) {
	return h.reports.Reports(), nil
}

// RunReport serves GET for read-only reports and POST for the ones that
// change data.
func (h *ReportHandler) RunReport(c echo.Context, req *ReportRequest) (any, error) {
	rep, err := h.reports.Lookup(req.Name)
	if err != nil {
		return nil, err
	}

	if rep.Write != (c.Request().Method == http.MethodPost) {
		method := http.MethodGet
		if rep.Write {
			method = http.MethodPost
		}
		return nil, echo.NewHTTPError(http.StatusMethodNotAllowed, "Report "+rep.Name+" must be requested with "+method)
	}

	return h.reports.Run(c.Request().Context(), rep.Name, reportParams(c))
}

func reportParams(c echo.Context) service.Params {
	params := service.Params{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	if form, err := c.FormParams(); err == nil {
		for k, v := range form {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}
	}
	delete(params, "name")
	return params
}
