package handlers

import (
	"inventory/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UpdateUserRequest is the body of PUT /users/:id.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UserHandler handles HTTP requests for existing users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes behind the given middleware.
func (h *UserHandler) RegisterRoutes(router fiber.Router, middleware ...fiber.Handler) {
	userRoutes := router.Group("/users", middleware...)
	userRoutes.Put("/:id<int>", h.HandleUpdateUser)
}

// HandleUpdateUser changes the name and/or password of any user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "User not found")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(id, services.UserPatch{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(user)
}
