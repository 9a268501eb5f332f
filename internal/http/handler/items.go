package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"itemapi/internal/model"
	"itemapi/internal/service"
)

var validate = validator.New()

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidBody = errors.New("invalid body")
)

// itemRequest is the body accepted by create and update. Presence of name is
// checked by the service.
type itemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// itemEnvelope wraps an item with a status message.
type itemEnvelope struct {
	Message string     `json:"message"`
	Item    model.Item `json:"item"`
}

// parseID accepts only ASCII digits for :id. A digit string too large for
// int64 cannot name a stored item and is reported as not found.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	if err := validate.Var(raw, "required,number"); err != nil {
		return 0, errInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, service.ErrNotFound
		}
		return 0, errInvalidID
	}
	return id, nil
}

// parseBody decodes the JSON body. Type mismatches and malformed JSON are
// rejected here.
func parseBody(c *fiber.Ctx) (itemRequest, error) {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// CreateItem handles POST /items/.
//
// @Summary  Create an item
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    item body itemRequest true "Item to create"
// @Success  201 {object} itemEnvelope
// @Failure  400 {object} errorPayload
// @Router   /items/ [post]
func CreateItem(svc service.ItemService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseBody(c)
		if err != nil {
			return respondError(c, log, err)
		}

		it, err := svc.Create(c.UserContext(), service.CreateItemInput{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return respondError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(itemEnvelope{Message: "Item Created", Item: *it})
	}
}

// ListItems handles GET /items/.
//
// @Summary  List all items
// @Tags     items
// @Produce  json
// @Success  200 {array} model.Item
// @Router   /items/ [get]
func ListItems(svc service.ItemService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, log, err)
		}
		if items == nil {
			items = []model.Item{}
		}
		return c.JSON(items)
	}
}

// GetItem handles GET /items/:id.
//
// @Summary  Get an item
// @Tags     items
// @Produce  json
// @Param    id path int true "Item ID"
// @Success  200 {object} model.Item
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /items/{id} [get]
func GetItem(svc service.ItemService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, log, err)
		}

		it, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(it)
	}
}

// UpdateItem handles PUT /items/:id.
//
// @Summary  Replace an item's name and description
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    id   path int         true "Item ID"
// @Param    item body itemRequest true "New item state"
// @Success  200 {object} itemEnvelope
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /items/{id} [put]
func UpdateItem(svc service.ItemService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, log, err)
		}

		req, err := parseBody(c)
		if err != nil {
			return respondError(c, log, err)
		}

		it, err := svc.Update(c.UserContext(), id, service.UpdateItemInput{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(itemEnvelope{Message: "Item updated", Item: *it})
	}
}

// DeleteItem handles DELETE /items/:id. The response carries the item as it
// was before deletion.
//
// @Summary  Delete an item
// @Tags     items
// @Produce  json
// @Param    id path int true "Item ID"
// @Success  200 {object} itemEnvelope
// @Failure  400 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /items/{id} [delete]
func DeleteItem(svc service.ItemService, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, log, err)
		}

		it, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return respondError(c, log, err)
		}
		return c.JSON(itemEnvelope{Message: "Item deleted", Item: *it})
	}
}
