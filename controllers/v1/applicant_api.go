package apiv1

import (
	"admission-backend/controllers"
	applicanthandler "admission-backend/lib/applicant"
	filestorage "admission-backend/lib/file-storage"
	"admission-backend/middleware"
	apimodels "admission-backend/models/api"
	applicantapimodels "admission-backend/models/api/applicant"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("export/:campaign_id", controller.exportXls)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("doc/list", controller.docList)
			idRoute.Use(middleware.CuratorRole())
			idRoute.Put("", controller.update)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Post("doc", controller.uploadDoc)
		})
		router.Use(middleware.CuratorRole()).Post("", controller.create)
	})
	app.Route("doc", func(router fiber.Router) {
		router.Get(":id", controller.getDoc)
	})
}

// @Summary Создание кандидата
// @Tags Кандидат
// @Description Создание кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicantapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicanthandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов кампании с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicantapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pagination := apimodels.Pagination{Page: payload.Page, Limit: payload.Limit}
	page, limit := pagination.GetPage()
	list, rowCount, err := applicanthandler.Instance.List(payload.Filter, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получить кандидата
// @Tags Кандидат
// @Description Получить кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кандидата"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicanthandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление кандидата
// @Tags Кандидат
// @Description Обновление анкетных данных кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кандидата"
// @Param	body				body		applicantapimodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [put]
func (c *applicantApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.ApplicantData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := applicanthandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса кандидата
// @Tags Кандидат
// @Description Ручная смена статуса, в тч финальное решение комиссии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кандидата"
// @Param	body				body		applicantapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/change_status [put]
func (c *applicantApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicantapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Status == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан статус"))
	}
	if err := applicanthandler.Instance.SetStatus(id, payload.Status); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузить документ кандидата
// @Tags Кандидат
// @Description Загрузить документ кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кандидата"
// @Param   file				formData	file	true	"документ"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/doc [post]
func (c *applicantApiController) uploadDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	f, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось открыть файл"))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("ошибка закрытия файла запроса")
		}
	}()
	fileBody, err := io.ReadAll(f)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	docID, err := filestorage.Instance.UploadDoc(ctx.UserContext(), id, fileBody, file.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(docID))
}

// @Summary Список документов кандидата
// @Tags Кандидат
// @Description Список документов кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кандидата"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/doc/list [get]
func (c *applicantApiController) docList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.GetDocList(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачать документ кандидата
// @Tags Кандидат
// @Description Скачать документ кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID документа"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/doc/{id} [get]
func (c *applicantApiController) getDoc(ctx *fiber.Ctx) error {
	docID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := filestorage.Instance.GetDoc(ctx.UserContext(), docID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(body)
}

// @Summary Выгрузка кандидатов в xlsx
// @Tags Кандидат
// @Description Выгрузка кандидатов кампании со статусами и оценками собеседований
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   campaign_id    		path    string  true  "ID кампании"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/export/{campaign_id} [get]
func (c *applicantApiController) exportXls(ctx *fiber.Ctx) error {
	campaignID := ctx.Params("campaign_id")
	if campaignID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор кампании"))
	}
	buf, err := applicanthandler.Instance.ExportXls(campaignID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=\"applicants.xlsx\"")
	return ctx.Send(buf.Bytes())
}
