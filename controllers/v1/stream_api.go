package apiv1

import (
	"admission-backend/controllers"
	streamhandler "admission-backend/lib/stream"
	"admission-backend/middleware"
	apimodels "admission-backend/models/api"
	streamapimodels "admission-backend/models/api/stream"

	"github.com/gofiber/fiber/v2"
)

type streamApiController struct {
	controllers.BaseAPIController
}

func InitStreamApiRouters(app *fiber.App) {
	controller := streamApiController{}
	app.Route("stream", func(router fiber.Router) {
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("slots", controller.slots)
		})
		router.Use(middleware.CuratorRole())
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создание потока собеседований
// @Tags Поток собеседований
// @Description Создание потока, слоты нарезаются сразу по его расписанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		streamapimodels.StreamData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stream [post]
func (c *streamApiController) create(ctx *fiber.Ctx) error {
	var payload streamapimodels.StreamData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := streamhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получить поток
// @Tags Поток собеседований
// @Description Получить поток
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID потока"
// @Success 200 {object} apimodels.Response{data=streamapimodels.StreamView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stream/{id} [get]
func (c *streamApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := streamhandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Слоты потока
// @Tags Поток собеседований
// @Description Слоты потока
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID потока"
// @Success 200 {object} apimodels.Response{data=[]streamapimodels.SlotView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stream/{id}/slots [get]
func (c *streamApiController) slots(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := streamhandler.Instance.ListSlots(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление потока
// @Tags Поток собеседований
// @Description Обновление потока, расписание занятого потока не меняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID потока"
// @Param	body				body		streamapimodels.StreamData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stream/{id} [put]
func (c *streamApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload streamapimodels.StreamData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := streamhandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление потока
// @Tags Поток собеседований
// @Description Удаление потока без занятых слотов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID потока"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stream/{id} [delete]
func (c *streamApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := streamhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
