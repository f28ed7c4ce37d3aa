package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Styllo-POS/internal/application/dto"
	"github.com/jhoicas/Styllo-POS/internal/application/usecase"
)

// UserHandler gestión de usuarios (Administrador), salvo Usernames.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto en username, nombre, CPF o email"
// @Param        cargo   query  string  false  "Administrador | Funcionario"
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"), c.Query("cargo"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Usernames godoc
// @Summary      Usernames para selección de vendedor
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/users/usernames [get]
func (h *UserHandler) Usernames(c *fiber.Ctx) error {
	out, err := h.uc.Usernames(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        username  path  string                  true  "Usuario"
// @Param        body      body  dto.UpdateUserRequest   true  "Campos a cambiar"
// @Success      200       {object}  dto.UserResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/users/{username} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, err := validateStruct(c, in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("username"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  No permite eliminar al último Administrador. Cierra las sesiones del usuario.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Usuario"
// @Success      200       {object}  dto.MessageResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("username")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuário removido"})
}
