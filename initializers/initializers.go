package initializers

import (
	"admission-backend/config"
	"admission-backend/fiberlog"
	applicanthandler "admission-backend/lib/applicant"
	authhandler "admission-backend/lib/auth"
	campaignhandler "admission-backend/lib/campaign"
	emailnotify "admission-backend/lib/email-notify"
	emailnotifyworker "admission-backend/lib/email-notify/worker"
	xlsexport "admission-backend/lib/export/xls"
	filestorage "admission-backend/lib/file-storage"
	interviewhandler "admission-backend/lib/interview"
	invitationhandler "admission-backend/lib/invitation"
	streamhandler "admission-backend/lib/stream"
	connectionhub "admission-backend/lib/ws/hub/connection-hub"
	"context"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	campaignhandler.NewHandler()
	streamhandler.NewHandler()
	applicanthandler.NewHandler()
	emailnotify.NewHandler()
	// interview зависит от email-notify и хаба, invitation - от interview
	interviewhandler.NewHandler()
	invitationhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача отправки отложенных писем: приглашения, напоминания, итоги
	emailnotifyworker.StartWorker(ctx)
}
