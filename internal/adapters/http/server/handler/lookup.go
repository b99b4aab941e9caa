package handler

import (
	"errors"
	"net/http"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/andrewshostak/team-lookup-service/internal/adapters/presenter"
	"github.com/gin-gonic/gin"
)

var errBlankTeamName = errs.NewUnprocessableContentError(errors.New("team name must not be blank"))

type LookupHandler struct {
	lookupService LookupService
}

func NewLookupHandler(lookupService LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// Lookup runs a lookup into a board owned by the request and responds with its final state.
func (h *LookupHandler) Lookup(c *gin.Context) {
	var params LookupRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errs.CodeInvalidRequest})

		return
	}

	board := presenter.NewBoard()

	outcome := h.lookupService.RunLookup(c.Request.Context(), params.Name, board)
	if outcome == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errBlankTeamName.Error(), "code": errs.CodeUnprocessableContent})

		return
	}

	c.JSON(http.StatusOK, toLookupResponse(*outcome, board.Snapshot()))
}
