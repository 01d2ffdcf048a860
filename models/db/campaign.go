package dbmodels

import (
	"admission-backend/models"
	"time"

	"github.com/pkg/errors"
)

type Campaign struct {
	BaseModel
	Branch                 models.CampaignBranch `gorm:"type:varchar(50);index"`
	Year                   int
	Name                   string `gorm:"type:varchar(255)"`
	ApplicationOpenAt      time.Time
	ApplicationCloseAt     time.Time
	OnlineTestPassingScore int
	ExamPassingScore       int
	// текущая кампания отделения, не более одной (частичный уникальный индекс ux_campaigns_current_branch)
	Current bool
}

func (c Campaign) Validate() error {
	if c.Branch == "" {
		return errors.New("не указано отделение")
	}
	if c.Year <= 0 {
		return errors.New("не указан год набора")
	}
	if !c.ApplicationCloseAt.After(c.ApplicationOpenAt) {
		return errors.New("окно подачи заявок задано некорректно")
	}
	return nil
}

type Venue struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Address  string
	City     string `gorm:"type:varchar(255)"`
	TimeZone string `gorm:"type:varchar(100)"` // IANA, например Europe/Moscow
}

func (v Venue) Validate() error {
	if v.Name == "" {
		return errors.New("не указано название площадки")
	}
	if v.TimeZone == "" {
		return errors.New("не указан часовой пояс площадки")
	}
	if _, err := time.LoadLocation(v.TimeZone); err != nil {
		return errors.Wrap(err, "неизвестный часовой пояс площадки")
	}
	return nil
}

// Location предполагает что запись прошла Validate
func (v Venue) Location() *time.Location {
	loc, err := time.LoadLocation(v.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
