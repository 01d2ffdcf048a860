package db

import (
	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.StaffUser{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры StaffUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Campaign{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Campaign")
	}
	if err := DB.AutoMigrate(&dbmodels.Venue{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Venue")
	}
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantDoc{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicantDoc")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewComment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewComment")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewStream{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewStream")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewSlot{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewSlot")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewInvitation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewInvitation")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailJob{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailJob")
	}
	if err := createIndexes(); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// createIndexes - инварианты уникальности, которые AutoMigrate не умеет (частичные индексы)
func createIndexes() error {
	statements := []string{
		// не более одной текущей кампании на отделение
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_campaigns_current_branch ON campaigns(branch) WHERE current`,
		// не более одного слота на собеседование
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_interview_slots_interview ON interview_slots(interview_id) WHERE interview_id IS NOT NULL`,
		// один комментарий от собеседующего на собеседование
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_interview_comments_author ON interview_comments(interview_id, author_id)`,
		// одно активное собеседование на кандидата
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_interviews_active_applicant ON interviews(applicant_id) WHERE status NOT IN ('CANCELED')`,
		// не более одного письма каждого вида на собеседование
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_email_jobs_interview_kind ON email_jobs(interview_id, kind)`,
	}
	for _, stmt := range statements {
		if err := DB.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "ошибка создания индекса: %s", stmt)
		}
	}
	return nil
}
