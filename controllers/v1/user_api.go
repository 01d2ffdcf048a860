package apiv1

import (
	"admission-backend/controllers"
	authhandler "admission-backend/lib/auth"
	"admission-backend/middleware"
	"admission-backend/models"
	apimodels "admission-backend/models/api"
	authapimodels "admission-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Get("list/:role", controller.list)
		router.Use(middleware.AdminRole()).Post("", controller.create)
	})
}

// @Summary Создание пользователя
// @Tags Пользователи
// @Description Создание сотрудника приёмной кампании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		authapimodels.UserCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload authapimodels.UserCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := authhandler.Instance.CreateUser(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список пользователей по роли
// @Tags Пользователи
// @Description Список активных сотрудников с указанной ролью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   role          		path    string  true  "роль"
// @Success 200 {object} apimodels.Response{data=[]authapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/list/{role} [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	role := models.UserRole(ctx.Params("role"))
	if role == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана роль"))
	}
	list, err := authhandler.Instance.ListUsers(role)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
