package handler

import (
	"errors"
	"net/http"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/gin-gonic/gin"
)

var errHistoryDisabled = errors.New("search history is disabled")

type HistoryHandler struct {
	historyService HistoryService
}

// NewHistoryHandler creates the search history handler. historyService is nil when search
// history is disabled.
func NewHistoryHandler(historyService HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) List(c *gin.Context) {
	if h.historyService == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errHistoryDisabled.Error(), "code": errs.CodeFeatureDisabled})

		return
	}

	var params ListSearchesRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errs.CodeInvalidRequest})

		return
	}

	searches, err := h.historyService.List(c.Request.Context(), params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errs.CodeInternalServerError})

		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": toSearchesResponse(searches)})
}
