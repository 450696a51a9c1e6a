package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-api/internal/api/dto"
	"github.com/spec-kit/helpdesk-api/internal/auth"
	"github.com/spec-kit/helpdesk-api/internal/domain"
	"github.com/spec-kit/helpdesk-api/internal/service"
	apperrors "github.com/spec-kit/helpdesk-api/pkg/util"
)

// ItemsHandler manages ticket endpoints.
type ItemsHandler struct {
	service *service.ItemService
}

// NewItemsHandler constructs handler.
func NewItemsHandler(itemService *service.ItemService) *ItemsHandler {
	return &ItemsHandler{service: itemService}
}

// Create POST /items.
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	item, err := h.service.Create(c.Context(), actorEmail(c), itemInput(req))
	if err != nil {
		return err
	}
	return h.respondItem(c, item, http.StatusCreated)
}

// List GET /items.
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)

	items, err := h.service.List(c.Context(), skip, limit)
	if err != nil {
		return err
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		status, err := h.service.Status(c.Context(), &items[i])
		if err != nil {
			return err
		}
		responses = append(responses, dto.NewItemResponse(&items[i], status))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Get GET /items/:id.
func (h *ItemsHandler) Get(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return h.respondItem(c, item, http.StatusOK)
}

// Update PUT /items/:id.
func (h *ItemsHandler) Update(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	item, err := h.service.Update(c.Context(), id, itemInput(req))
	if err != nil {
		return err
	}
	return h.respondItem(c, item, http.StatusOK)
}

// UpdateStatus PATCH /items/:id/status.
func (h *ItemsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	var req dto.ItemStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.service.UpdateStatus(c.Context(), actorEmail(c), id, req.Status)
	if err != nil {
		return err
	}
	return h.respondItem(c, item, http.StatusOK)
}

// Delete DELETE /items/:id.
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), actorEmail(c), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListStatuses GET /items/statuses.
func (h *ItemsHandler) ListStatuses(c *fiber.Ctx) error {
	statuses, err := h.service.ListStatuses(c.Context())
	if err != nil {
		return err
	}
	responses := make([]dto.ItemStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, dto.ItemStatusResponse{ID: status.ID, Status: status.Status})
	}
	return c.JSON(fiber.Map{"data": responses})
}

func (h *ItemsHandler) respondItem(c *fiber.Ctx, item *domain.Item, httpStatus int) error {
	status, err := h.service.Status(c.Context(), item)
	if err != nil {
		return err
	}
	return c.Status(httpStatus).JSON(fiber.Map{"data": dto.NewItemResponse(item, status)})
}

func itemID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid item id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func itemInput(req dto.ItemRequest) service.ItemInput {
	return service.ItemInput{
		Name:           req.Name,
		Description:    req.Description,
		TicketURL:      req.TicketURL,
		PublicationURL: req.PublicationURL,
		ReportedUser:   req.ReportedUser,
	}
}

func actorEmail(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		return principal.User.Email
	}
	return ""
}
