package apiv1

import (
	"admission-backend/controllers"
	interviewhandler "admission-backend/lib/interview"
	"admission-backend/middleware"
	apimodels "admission-backend/models/api"
	interviewapimodels "admission-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Get("list/:campaign_id", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("comment", controller.addComment)
			idRoute.Delete("comment", controller.deleteComment)
			idRoute.Get("protocol", controller.protocol)
			idRoute.Use(middleware.CuratorRole())
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Put("interviewer/:user_id", controller.addInterviewer)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список собеседований кампании
// @Tags Собеседование
// @Description Список собеседований кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   campaign_id    		path    string  true  "ID кампании"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/list/{campaign_id} [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	campaignID := ctx.Params("campaign_id")
	if campaignID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор кампании"))
	}
	list, err := interviewhandler.Instance.ListByCampaign(campaignID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получить собеседование
// @Tags Собеседование
// @Description Получить собеседование с комментариями и составом собеседующих
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Смена статуса собеседования
// @Tags Собеседование
// @Description Ручная смена статуса куратором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Param	body				body		interviewapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/change_status [put]
func (c *interviewApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.SetStatus(id, payload.Status); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавить собеседующего
// @Tags Собеседование
// @Description Добавить собеседующего в состав
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Param   user_id        		path    string  true  "ID пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/interviewer/{user_id} [put]
func (c *interviewApiController) addInterviewer(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := ctx.Params("user_id")
	if userID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор пользователя"))
	}
	if err := interviewhandler.Instance.AddInterviewer(id, userID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Оставить комментарий
// @Tags Собеседование
// @Description Комментарий с оценкой от текущего пользователя, повторный вызов обновляет комментарий
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Param	body				body		interviewapimodels.CommentRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/comment [post]
func (c *interviewApiController) addComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.CommentRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	authorID := middleware.GetUserID(ctx)
	if err := interviewhandler.Instance.AddComment(id, authorID, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить свой комментарий
// @Tags Собеседование
// @Description Удалить комментарий текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/comment [delete]
func (c *interviewApiController) deleteComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	authorID := middleware.GetUserID(ctx)
	if err := interviewhandler.Instance.DeleteComment(id, authorID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Протокол собеседования
// @Tags Собеседование
// @Description Скачать протокол собеседования в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id}/protocol [get]
func (c *interviewApiController) protocol(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := interviewhandler.Instance.ExportProtocol(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Send(body)
}

// @Summary Удаление собеседования
// @Tags Собеседование
// @Description Удаление собеседования, слот освобождается
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID собеседования"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
