package apiv1

import (
	"admission-backend/controllers"
	campaignhandler "admission-backend/lib/campaign"
	streamhandler "admission-backend/lib/stream"
	"admission-backend/middleware"
	apimodels "admission-backend/models/api"
	campaignapimodels "admission-backend/models/api/campaign"

	"github.com/gofiber/fiber/v2"
)

type campaignApiController struct {
	controllers.BaseAPIController
}

func InitCampaignApiRouters(app *fiber.App) {
	controller := campaignApiController{}
	app.Route("campaign", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Use(middleware.CuratorRole())
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("set-current", controller.setCurrent)
			idRoute.Get("streams", controller.streams)
		})
	})
	app.Route("venue", func(router fiber.Router) {
		router.Get("list", controller.venueList)
		router.Use(middleware.CuratorRole()).Post("", controller.createVenue)
	})
}

// @Summary Создание кампании
// @Tags Приёмная кампания
// @Description Создание кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		campaignapimodels.CampaignData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign [post]
func (c *campaignApiController) create(ctx *fiber.Ctx) error {
	var payload campaignapimodels.CampaignData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := campaignhandler.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список кампаний
// @Tags Приёмная кампания
// @Description Список кампаний
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]campaignapimodels.CampaignView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/list [post]
func (c *campaignApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := campaignhandler.Instance.List(page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получить кампанию
// @Tags Приёмная кампания
// @Description Получить кампанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кампании"
// @Success 200 {object} apimodels.Response{data=campaignapimodels.CampaignView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/{id} [get]
func (c *campaignApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := campaignhandler.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление кампании
// @Tags Приёмная кампания
// @Description Обновление кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кампании"
// @Param	body				body		campaignapimodels.CampaignData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/{id} [put]
func (c *campaignApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload campaignapimodels.CampaignData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := campaignhandler.Instance.Update(id, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление кампании
// @Tags Приёмная кампания
// @Description Удаление кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кампании"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/{id} [delete]
func (c *campaignApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := campaignhandler.Instance.Delete(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Сделать кампанию текущей
// @Tags Приёмная кампания
// @Description Сделать кампанию текущей для её филиала
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кампании"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/{id}/set-current [put]
func (c *campaignApiController) setCurrent(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := campaignhandler.Instance.SetCurrent(id); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Потоки собеседований кампании
// @Tags Приёмная кампания
// @Description Потоки собеседований кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true  "ID кампании"
// @Success 200 {object} apimodels.Response{data=[]streamapimodels.StreamView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campaign/{id}/streams [get]
func (c *campaignApiController) streams(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := streamhandler.Instance.ListByCampaign(id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание площадки
// @Tags Приёмная кампания
// @Description Создание площадки проведения собеседований
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		campaignapimodels.VenueData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue [post]
func (c *campaignApiController) createVenue(ctx *fiber.Ctx) error {
	var payload campaignapimodels.VenueData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := campaignhandler.Instance.CreateVenue(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список площадок
// @Tags Приёмная кампания
// @Description Список площадок
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]campaignapimodels.VenueView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/venue/list [get]
func (c *campaignApiController) venueList(ctx *fiber.Ctx) error {
	list, err := campaignhandler.Instance.ListVenues()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
