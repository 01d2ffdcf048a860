package apiv1

import (
	"admission-backend/controllers"
	invitationhandler "admission-backend/lib/invitation"
	"admission-backend/middleware"
	apimodels "admission-backend/models/api"
	invitationapimodels "admission-backend/models/api/invitation"

	"github.com/gofiber/fiber/v2"
)

type invitationApiController struct {
	controllers.BaseAPIController
}

func InitInvitationApiRouters(app *fiber.App) {
	controller := invitationApiController{}
	app.Route("invitation", func(router fiber.Router) {
		router.Use(middleware.CuratorRole()).Post("", controller.issue)
	})
}

// публичные маршруты кандидата, доступ по токену из письма
func InitPublicInvitationApiRouters(app *fiber.App) {
	controller := invitationApiController{}
	app.Route("invitation", func(router fiber.Router) {
		router.Route(":token", func(tokenRoute fiber.Router) {
			tokenRoute.Get("", controller.get)
			tokenRoute.Post("claim", controller.claim)
		})
	})
}

// @Summary Выдать приглашение на собеседование
// @Tags Приглашение
// @Description Выдать кандидату приглашение с выбором слота по ссылке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		invitationapimodels.IssueRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invitation [post]
func (c *invitationApiController) issue(ctx *fiber.Ctx) error {
	var payload invitationapimodels.IssueRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token, err := invitationhandler.Instance.Issue(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(token))
}

// @Summary Просмотр приглашения
// @Tags Приглашение
// @Description Просмотр приглашения и свободных слотов по токену из письма
// @Param   token          		path    string  true  "токен приглашения"
// @Success 200 {object} apimodels.Response{data=invitationapimodels.InvitationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/invitation/{token} [get]
func (c *invitationApiController) get(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан токен приглашения"))
	}
	view, err := invitationhandler.Instance.GetViewByToken(token)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Запись на слот
// @Tags Приглашение
// @Description Запись кандидата на выбранный слот по токену из письма
// @Param   token          		path    string  true  "токен приглашения"
// @Param	body				body		invitationapimodels.ClaimRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/invitation/{token}/claim [post]
func (c *invitationApiController) claim(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан токен приглашения"))
	}
	var payload invitationapimodels.ClaimRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := invitationhandler.Instance.ClaimSlot(ctx.UserContext(), token, payload.SlotID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
