package initializers

import (
	"hr-ats/config"
	"hr-ats/lib/analytics"
	"hr-ats/lib/applicant"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	emailtemplate "hr-ats/lib/email-template"
	xlsexport "hr-ats/lib/export/xls"
	"hr-ats/lib/import/csvimport"
	"hr-ats/lib/settings"
)

func InitAllServices() {
	config.InitConfig()
	InitLogger()
	InitDBConnection()
	applicanthistoryhandler.NewHandler()
	applicant.NewHandler()
	emailtemplate.NewHandler()
	settings.NewHandler()
	csvimport.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
}
