package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/andrewshostak/team-lookup-service/errs"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	lookupService LookupService
	board         Board
	logger        Logger
}

func NewBoardHandler(lookupService LookupService, board Board, logger Logger) *BoardHandler {
	return &BoardHandler{
		lookupService: lookupService,
		board:         board,
		logger:        logger,
	}
}

// Search starts a lookup against the shared board and returns before it completes. A newer
// search supersedes the lists of any search still in flight.
func (h *BoardHandler) Search(c *gin.Context) {
	var params BoardSearchRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": errs.CodeInvalidRequest})

		return
	}

	query := strings.TrimSpace(params.Name)
	if query == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errBlankTeamName.Error(), "code": errs.CodeUnprocessableContent})

		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		outcome := h.lookupService.RunLookup(ctx, query, h.board)
		if outcome != nil {
			h.logger.Info().Str("lookup_id", outcome.ID.String()).Str("query", query).Msg("board lookup finished")
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"query": query})
}

func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toBoardResponse(h.board.Snapshot()))
}
