package analytics

import (
	"bytes"
	"time"

	"hr-ats/lib/applicant"
	xlsexport "hr-ats/lib/export/xls"
	initchecker "hr-ats/lib/utils/init-checker"
	applicantapimodels "hr-ats/models/api/applicant"
	dbmodels "hr-ats/models/db"
)

const dashboardPeriodDays = 7

type Provider interface {
	Dashboard() (applicantapimodels.DashboardData, error)
	ExportToXls(filter dbmodels.ApplicantFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		applicantProvider: applicant.Instance,
	}
	initchecker.CheckInit(
		"applicantProvider", instance.applicantProvider,
	)
	Instance = instance
}

type impl struct {
	applicantProvider applicant.Provider
}

func (i impl) Dashboard() (applicantapimodels.DashboardData, error) {
	result := applicantapimodels.DashboardData{}
	total, err := i.applicantProvider.Count()
	if err != nil {
		return result, err
	}
	result.Total = total

	statusCounts, err := i.applicantProvider.CountByStatus()
	if err != nil {
		return result, err
	}
	result.StatusCounts = statusCounts

	now := time.Now()
	horizon := now.AddDate(0, 0, dashboardPeriodDays)
	upcoming, err := i.applicantProvider.List(dbmodels.ApplicantFilter{
		InterviewFrom:   &now,
		InterviewBefore: &horizon,
	})
	if err != nil {
		return result, err
	}
	result.Upcoming = upcoming

	weekAgo := now.AddDate(0, 0, -dashboardPeriodDays)
	recent, err := i.applicantProvider.List(dbmodels.ApplicantFilter{
		AppliedFrom: &weekAgo,
	})
	if err != nil {
		return result, err
	}
	result.Recent = recent
	return result, nil
}

func (i impl) ExportToXls(filter dbmodels.ApplicantFilter) (*bytes.Buffer, error) {
	list, err := i.applicantProvider.List(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportApplicantList(list)
}
