package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-workbench-api/internal/crud"
	"portfolio-workbench-api/internal/metrics"
	"portfolio-workbench-api/internal/response"
	"portfolio-workbench-api/internal/service"
)

// CreateRequest builds a new entity from a validated request body.
type CreateRequest[P any] interface {
	Model() (P, error)
}

// UpdateRequest merge-assigns its non-nil fields onto an entity.
type UpdateRequest[P any] interface {
	Apply(P)
}

// FilterRequest splits a bound query or body into pagination and
// field predicates.
type FilterRequest interface {
	Pagination() crud.Page
	FieldFilters() map[string]interface{}
}

// MutateHook runs after a successful mutation, before the response is
// written. Used to append portfolio ledger entries.
type MutateHook[P any] func(c *gin.Context, action string, entity P)

// CRUDHandler serves the uniform create/read/update/delete/restore
// surface for one entity type. T is the entity, P its pointer type,
// C/U/F the request DTOs.
type CRUDHandler[T any, P crud.Resource[T], C CreateRequest[P], U UpdateRequest[P], F FilterRequest] struct {
	store   *crud.Store[T, P]
	audit   service.AuditService
	metrics *metrics.Metrics
	hook    MutateHook[P]
}

// NewCRUDHandler creates a CRUD handler for one entity type. The hook
// may be nil.
func NewCRUDHandler[T any, P crud.Resource[T], C CreateRequest[P], U UpdateRequest[P], F FilterRequest](
	store *crud.Store[T, P],
	audit service.AuditService,
	m *metrics.Metrics,
	hook MutateHook[P],
) *CRUDHandler[T, P, C, U, F] {
	return &CRUDHandler[T, P, C, U, F]{
		store:   store,
		audit:   audit,
		metrics: m,
		hook:    hook,
	}
}

// Register binds the CRUD routes onto the given group.
func (h *CRUDHandler[T, P, C, U, F]) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.POST("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/restore", h.Restore)
}

// Create handles POST /{entity}
func (h *CRUDHandler[T, P, C, U, F]) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	entity, err := req.Model()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := h.store.Create(c.Request.Context(), entity); err != nil {
		handleServiceError(c, err)
		return
	}

	h.metrics.IncrementEntityCreated(h.store.Name())
	h.recordWrite(c, userID, "create", entity, map[string]interface{}{"payload": req})
	h.runHook(c, "create", entity)
	response.SendSuccess(c, http.StatusCreated, entity)
}

// Get handles GET /{entity}/:id
func (h *CRUDHandler[T, P, C, U, F]) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	entity, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.audit.RecordRead(c.Request.Context(), userID, "read", h.store.Name(), &id, h.requestDetails(c, nil))
	response.SendSuccess(c, http.StatusOK, entity)
}

// List handles GET /{entity} with query-string filters.
func (h *CRUDHandler[T, P, C, U, F]) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter F
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	h.list(c, userID, "list", filter)
}

// Search handles POST /{entity}/search with a JSON filter body.
func (h *CRUDHandler[T, P, C, U, F]) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter F
	if err := c.ShouldBindJSON(&filter); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	h.list(c, userID, "search", filter)
}

func (h *CRUDHandler[T, P, C, U, F]) list(c *gin.Context, userID uuid.UUID, action string, filter F) {
	page := filter.Pagination().Normalize()
	query := crud.ListQuery{Page: page, Filters: filter.FieldFilters()}

	items, err := h.store.List(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	total, err := h.store.Count(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.audit.RecordRead(c.Request.Context(), userID, action, h.store.Name(), nil, h.requestDetails(c, map[string]interface{}{
		"page":      page.Page,
		"page_size": page.PageSize,
		"returned":  len(items),
	}))
	response.SendList(c, http.StatusOK, items, total, page.Page, page.PageSize)
}

// Update handles PUT and PATCH /{entity}/:id. Both merge: only fields
// present in the body are assigned.
func (h *CRUDHandler[T, P, C, U, F]) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	entity, err := h.store.Update(c.Request.Context(), id, func(e P) {
		req.Apply(e)
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.recordWrite(c, userID, "update", entity, map[string]interface{}{"payload": req})
	h.runHook(c, "update", entity)
	response.SendSuccess(c, http.StatusOK, entity)
}

// Delete handles DELETE /{entity}/:id. Soft-deletes by default; pass
// hard_delete=true to purge the row.
func (h *CRUDHandler[T, P, C, U, F]) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	hardDelete := false
	if raw := c.Query("hard_delete"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid hard_delete parameter")
			return
		}
		hardDelete = parsed
	}

	entity, err := h.store.Delete(c.Request.Context(), id, hardDelete)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	action := "delete"
	if hardDelete {
		action = "hard_delete"
	}
	h.recordWrite(c, userID, action, entity, map[string]interface{}{"hard_delete": hardDelete})
	h.runHook(c, action, entity)
	response.SendSuccess(c, http.StatusOK, entity)
}

// Restore handles PUT /{entity}/:id/restore, reactivating a
// soft-deleted row.
func (h *CRUDHandler[T, P, C, U, F]) Restore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	entity, err := h.store.Restore(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.recordWrite(c, userID, "restore", entity, nil)
	h.runHook(c, "restore", entity)
	response.SendSuccess(c, http.StatusOK, entity)
}

func (h *CRUDHandler[T, P, C, U, F]) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CRUDHandler[T, P, C, U, F]) recordWrite(c *gin.Context, userID uuid.UUID, action string, entity P, details map[string]interface{}) {
	id := entity.PrimaryID()
	h.audit.RecordWrite(c.Request.Context(), userID, action, h.store.Name(), &id, h.requestDetails(c, details))
}

// requestDetails folds the HTTP method and path into the audit details.
func (h *CRUDHandler[T, P, C, U, F]) requestDetails(c *gin.Context, details map[string]interface{}) map[string]interface{} {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["method"] = c.Request.Method
	details["path"] = c.Request.URL.Path
	return details
}

func (h *CRUDHandler[T, P, C, U, F]) runHook(c *gin.Context, action string, entity P) {
	if h.hook != nil {
		h.hook(c, action, entity)
	}
}
