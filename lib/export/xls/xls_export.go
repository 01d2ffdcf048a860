package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "admission-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicantList(list []dbmodels.ApplicantExportRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{"ФИО", "Контакты", "ВУЗ", "Курс", "Тест", "Экзамен", "Статус", "Собеседование", "Дата собеседования", "Средняя оценка"}

func (i impl) ExportApplicantList(list []dbmodels.ApplicantExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicantData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []dbmodels.ApplicantExportRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Контакты"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "ВУЗ"
		col++
		if err := writeColumn(f, sheet, col, row, item.University); err != nil {
			return row, err
		}

		// "Курс"
		col++
		if err := writeColumn(f, sheet, col, row, item.Course); err != nil {
			return row, err
		}

		// "Тест"
		col++
		if err := writeColumn(f, sheet, col, row, item.OnlineTestScore); err != nil {
			return row, err
		}

		// "Экзамен"
		col++
		if err := writeColumn(f, sheet, col, row, item.ExamScore); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Собеседование"
		col++
		if item.InterviewStatus != "" {
			if err := writeColumn(f, sheet, col, row, item.InterviewStatus.ToHuman()); err != nil {
				return row, err
			}
		}

		// "Дата собеседования"
		col++
		if item.InterviewDate != nil && !item.InterviewDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.InterviewDate.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}

		// "Средняя оценка"
		col++
		if item.AvgScore != nil {
			if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.2f", *item.AvgScore)); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
