package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-workbench-api/internal/response"
	"portfolio-workbench-api/internal/service"
)

// LedgerHandler exposes the per-portfolio change history.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// History handles GET /portfolios/:id/ledger
func (h *LedgerHandler) History(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	portfolioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid ID")
		return
	}

	entries, err := h.ledgerService.History(c.Request.Context(), portfolioID, queryLimit(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entries)
}
