package service

import (
	"github.com/GenghisKhal/assignment3/internal/report"
	"github.com/GenghisKhal/assignment3/internal/server"
)

type Services struct {
	Reports *ReportService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Reports: NewReportService(report.New(s.DB.Pool, s.Logger)),
	}
}
