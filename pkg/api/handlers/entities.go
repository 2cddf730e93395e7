package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/entity/schema"
	"github.com/urmzd/homeview/pkg/route"
)

// maxBodyBytes bounds entity payloads.
const maxBodyBytes = 1 << 20

// Publisher receives entity change events.
type Publisher interface {
	Publish(ev entity.Event)
}

// EntitiesHandler handles entity CRUD endpoints
type EntitiesHandler struct {
	store     entity.Store
	validator *schema.Validator
	publisher Publisher
	links     linker
}

// NewEntitiesHandler creates a new entities handler
func NewEntitiesHandler(store entity.Store, validator *schema.Validator, publisher Publisher, routes []route.Route, basePath string) *EntitiesHandler {
	return &EntitiesHandler{
		store:     store,
		validator: validator,
		publisher: publisher,
		links:     linker{routes: routes, basePath: basePath},
	}
}

// resolveCollection reads the :collection segment, answering 404 for unknown ones.
func resolveCollection(c *gin.Context) (collection, bool) {
	col, ok := collectionBySegment(c.Param("collection"))
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Unknown collection " + c.Param("collection"),
		})
	}
	return col, ok
}

// ListEntities handles GET /:collection
// @Summary      List entities
// @Description  Returns every entity of a collection with extracted attribute values
// @Tags         entities
// @Produce      json
// @Param        collection  path      string  true  "devices, groups or adapters"
// @Success      200  {object}  types.ListEntitiesResponse
// @Failure      404  {object}  types.ErrorResponse  "Unknown collection"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /{collection} [get]
func (h *EntitiesHandler) ListEntities(c *gin.Context) {
	col, ok := resolveCollection(c)
	if !ok {
		return
	}

	entities, err := h.store.List(c.Request.Context(), col.Kind)
	if err != nil {
		c.JSON(errorStatus(err, ""))
		return
	}

	views := h.links.entityViews(entities)
	c.JSON(http.StatusOK, types.ListEntitiesResponse{
		Entities: views,
		Count:    len(views),
	})
}

// GetEntity handles GET /:collection/:id
// @Summary      Get entity
// @Description  Returns a single entity with extracted attribute values
// @Tags         entities
// @Produce      json
// @Param        collection  path      string  true  "devices, groups or adapters"
// @Param        id          path      string  true  "Entity ID"
// @Success      200  {object}  types.EntityResponse
// @Failure      404  {object}  types.ErrorResponse  "Entity not found"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /{collection}/{id} [get]
func (h *EntitiesHandler) GetEntity(c *gin.Context) {
	col, ok := resolveCollection(c)
	if !ok {
		return
	}

	e, err := h.store.Get(c.Request.Context(), col.Kind, c.Param("id"))
	if err != nil {
		c.JSON(errorStatus(err, "Entity not found"))
		return
	}

	c.JSON(http.StatusOK, types.EntityResponse{Entity: h.links.entityView(e)})
}

// GetAttribute handles GET /:collection/:id/attributes/:name
// @Summary      Get attribute value
// @Description  Returns the current value of a named attribute, or "Unknown"
// @Tags         entities
// @Produce      json
// @Param        collection  path      string  true  "devices, groups or adapters"
// @Param        id          path      string  true  "Entity ID"
// @Param        name        path      string  true  "Attribute name"
// @Success      200  {object}  types.AttributeResponse
// @Failure      404  {object}  types.ErrorResponse  "Entity not found"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /{collection}/{id}/attributes/{name} [get]
func (h *EntitiesHandler) GetAttribute(c *gin.Context) {
	col, ok := resolveCollection(c)
	if !ok {
		return
	}

	id, name := c.Param("id"), c.Param("name")
	e, err := h.store.Get(c.Request.Context(), col.Kind, id)
	if err != nil {
		c.JSON(errorStatus(err, "Entity not found"))
		return
	}

	c.JSON(http.StatusOK, types.AttributeResponse{
		Kind:      col.Kind,
		ID:        id,
		Attribute: name,
		Value:     entity.Extract(e, name),
	})
}

// PutEntity handles PUT /:collection/:id
// @Summary      Create or replace an entity
// @Description  Stores an entity validated against the entity schema and publishes an entity_updated event
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        collection  path      string                  true  "devices, groups or adapters"
// @Param        id          path      string                  true  "Entity ID"
// @Param        request     body      types.PutEntityRequest  true  "Entity"
// @Success      200  {object}  types.EntityResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid request"
// @Failure      413  {object}  types.ErrorResponse  "Request body too large"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /{collection}/{id} [put]
func (h *EntitiesHandler) PutEntity(c *gin.Context) {
	col, ok := resolveCollection(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
				Error:   "payload_too_large",
				Message: fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to read request body",
		})
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	if err := h.validator.ValidateEntity(payload); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	var e entity.Entity
	if err := json.Unmarshal(body, &e); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return
	}
	e.Kind = col.Kind
	e.ID = c.Param("id")

	if err := h.store.Put(c.Request.Context(), &e); err != nil {
		c.JSON(errorStatus(err, ""))
		return
	}

	log.Info().Str("kind", string(e.Kind)).Str("id", e.ID).Msg("Entity stored")
	h.publish(entity.EventUpdated, e.Kind, e.ID)

	c.JSON(http.StatusOK, types.EntityResponse{Entity: h.links.entityView(&e)})
}

// DeleteEntity handles DELETE /:collection/:id
// @Summary      Remove an entity
// @Description  Deletes an entity and publishes an entity_removed event
// @Tags         entities
// @Param        collection  path  string  true  "devices, groups or adapters"
// @Param        id          path  string  true  "Entity ID"
// @Success      204  "Entity removed"
// @Failure      404  {object}  types.ErrorResponse  "Entity not found"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /{collection}/{id} [delete]
func (h *EntitiesHandler) DeleteEntity(c *gin.Context) {
	col, ok := resolveCollection(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), col.Kind, id); err != nil {
		c.JSON(errorStatus(err, "Entity not found"))
		return
	}

	log.Info().Str("kind", string(col.Kind)).Str("id", id).Msg("Entity removed")
	h.publish(entity.EventRemoved, col.Kind, id)

	c.Status(http.StatusNoContent)
}

func (h *EntitiesHandler) publish(eventType string, kind entity.Kind, id string) {
	if h.publisher == nil {
		return
	}
	h.publisher.Publish(entity.Event{
		Type:      eventType,
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now(),
	})
}
