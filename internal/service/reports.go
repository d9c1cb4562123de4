package service

import (
	"context"
	"fmt"

	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/report"
	"github.com/GenghisKhal/assignment3/internal/validation"
)

// Params are the string-keyed parameters of a report run. Missing keys keep
// their defaults.
type Params map[string]string

// Report is one entry of the catalogue.
type Report struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Write reports change data and are not served over GET.
	Write bool `json:"write"`

	run func(ctx context.Context, r *report.Reporter, p Params) (any, error)
}

// RowsAffected is the result of a single-statement update.
type RowsAffected struct {
	Rows int64 `json:"rows"`
}

type nameParams struct {
	GivenName string `form:"given_name" validate:"required"`
	Surname   string `form:"surname" validate:"required"`
}

type phoneParams struct {
	GivenName string `form:"given_name" validate:"required"`
	Surname   string `form:"surname" validate:"required"`
	Phone     string `form:"phone" validate:"required"`
}

type streetParams struct {
	Street string `form:"street" validate:"required"`
}

type termParams struct {
	Term string `form:"term" validate:"required"`
}

type caregivingTypeParams struct {
	CaregivingType string `form:"caregiving_type" validate:"required"`
}

type seekingCareParams struct {
	CareType  string `form:"care_type" validate:"required"`
	City      string `form:"city" validate:"required"`
	HouseRule string `form:"house_rule" validate:"required"`
}

// decode overlays p on defaults and validates the result.
func decode[T any](p Params, defaults T) (T, error) {
	out := defaults
	if err := validation.Decode(p, &out); err != nil {
		return out, err
	}
	return out, nil
}

func plain[T any](fn func(r *report.Reporter, ctx context.Context) ([]T, error)) func(context.Context, *report.Reporter, Params) (any, error) {
	return func(ctx context.Context, r *report.Reporter, _ Params) (any, error) {
		return fn(r, ctx)
	}
}

// catalogue lists the reports in the order the batch run replays them.
var catalogue = []Report{
	{
		Name:        "update-phone",
		Description: "Set the phone number of a user by exact name",
		Write:       true,
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, phoneParams{GivenName: "Arman", Surname: "Armanov", Phone: "+77773414141"})
			if err != nil {
				return nil, err
			}
			n, err := r.UpdatePhoneByName(ctx, args.GivenName, args.Surname, args.Phone)
			return RowsAffected{Rows: n}, err
		},
	},
	{
		Name:        "commission",
		Description: "Add the commission to every caregiver's hourly rate",
		Write:       true,
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			c, err := decode(p, report.DefaultCommission)
			if err != nil {
				return nil, err
			}
			n, err := r.ApplyCommission(ctx, c)
			return RowsAffected{Rows: n}, err
		},
	},
	{
		Name:        "delete-jobs-by-poster",
		Description: "Delete the jobs posted by a member, by exact name",
		Write:       true,
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, nameParams{GivenName: "Amina", Surname: "Aminova"})
			if err != nil {
				return nil, err
			}
			return r.DeleteJobsByPoster(ctx, args.GivenName, args.Surname)
		},
	},
	{
		Name:        "delete-members-on-street",
		Description: "Delete every member living on a street",
		Write:       true,
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, streetParams{Street: "Kabanbay Batyr"})
			if err != nil {
				return nil, err
			}
			return r.DeleteMembersOnStreet(ctx, args.Street)
		},
	},
	{
		Name:        "accepted-appointments",
		Description: "Caregiver and member names of accepted appointments",
		run:         plain((*report.Reporter).AcceptedAppointments),
	},
	{
		Name:        "search-requirements",
		Description: "Jobs whose other requirements contain a term",
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, termParams{Term: "soft-spoken"})
			if err != nil {
				return nil, err
			}
			return r.SearchJobRequirements(ctx, args.Term)
		},
	},
	{
		Name:        "hours-by-type",
		Description: "Work hours of appointments with caregivers of a type",
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, caregivingTypeParams{CaregivingType: "Babysitter"})
			if err != nil {
				return nil, err
			}
			return r.AppointmentHoursByCaregivingType(ctx, args.CaregivingType)
		},
	},
	{
		Name:        "members-seeking-care",
		Description: "Members in a city looking for a type of care under a house rule",
		run: func(ctx context.Context, r *report.Reporter, p Params) (any, error) {
			args, err := decode(p, seekingCareParams{CareType: "Elderly Care", City: "Astana", HouseRule: "No pets."})
			if err != nil {
				return nil, err
			}
			return r.MembersSeekingCare(ctx, args.CareType, args.City, args.HouseRule)
		},
	},
	{
		Name:        "applicant-counts",
		Description: "Number of applicants per job",
		run:         plain((*report.Reporter).ApplicantCounts),
	},
	{
		Name:        "accepted-hours",
		Description: "Total accepted hours per caregiver",
		run:         plain((*report.Reporter).AcceptedHoursByCaregiver),
	},
	{
		Name:        "average-rate",
		Description: "Average rate and accepted appointment count per caregiver",
		run:         plain((*report.Reporter).AverageRateByCaregiver),
	},
	{
		Name:        "above-average-earners",
		Description: "Caregivers earning above the average of all caregivers",
		run:         plain((*report.Reporter).AboveAverageEarners),
	},
	{
		Name:        "appointment-costs",
		Description: "Total cost of each accepted appointment",
		run:         plain((*report.Reporter).AppointmentCosts),
	},
	{
		Name:        "applications-view",
		Description: "Every job application with job, poster and applicant",
		run:         plain((*report.Reporter).JobApplicationsView),
	},
}

// ReportService runs catalogue reports by name.
type ReportService struct {
	reporter *report.Reporter
	byName   map[string]Report
}

func NewReportService(r *report.Reporter) *ReportService {
	byName := make(map[string]Report, len(catalogue))
	for _, rep := range catalogue {
		byName[rep.Name] = rep
	}
	return &ReportService{reporter: r, byName: byName}
}

// Reports returns the catalogue in batch order.
func (s *ReportService) Reports() []Report {
	out := make([]Report, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the named report or a NotFound error.
func (s *ReportService) Lookup(name string) (Report, error) {
	rep, ok := s.byName[name]
	if !ok {
		return Report{}, errs.NewNotFoundError(fmt.Sprintf("Report %q not found", name), true, nil)
	}
	return rep, nil
}

// Run executes the named report with p over its defaults.
func (s *ReportService) Run(ctx context.Context, name string, p Params) (any, error) {
	rep, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	return rep.run(ctx, s.reporter, p)
}

// PrepareView re-creates the applications view before it is read in a
// batch run.
func (s *ReportService) PrepareView(ctx context.Context) error {
	return s.reporter.EnsureApplicationsView(ctx)
}
