package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-workbench-api/internal/response"
	"portfolio-workbench-api/internal/service"
)

// AuditHandler exposes read access to the audit trail.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// MyActions handles GET /audit-logs, returning the caller's recent
// actions.
func (h *AuditHandler) MyActions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.auditService.RecentByUser(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entries)
}

// TargetHistory handles GET /audit-logs/:targetType/:id, returning the
// recent actions against one entity.
func (h *AuditHandler) TargetHistory(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid ID")
		return
	}

	entries, err := h.auditService.RecentByTarget(c.Request.Context(), c.Param("targetType"), targetID, queryLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entries)
}

// queryLimit parses the optional limit query parameter.
func queryLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return 0
}
