package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	response "capitalys/internal/adapter/http/dto/response"
	"capitalys/internal/adapter/http/middleware"
	"capitalys/internal/usecase"
	"capitalys/internal/usecase/interfaces"
)

// StreamHandler pushes decision results for one goal over a WebSocket.
//
// On connect the current result (when one exists) is sent immediately, then
// every subsequent result as the reevaluation scheduler produces them. The
// subscription is torn down when either side closes.

type StreamHandler struct {
	goals     usecase.IGoalUseCase
	decisions usecase.IDecisionUseCase
	feed      interfaces.IDecisionFeed
	log       zerolog.Logger
}

func NewStreamHandler(goals usecase.IGoalUseCase, decisions usecase.IDecisionUseCase, feed interfaces.IDecisionFeed, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{
		goals:     goals,
		decisions: decisions,
		feed:      feed,
		log:       log.With().Str("component", "decision_stream").Logger(),
	}
}

func (h *StreamHandler) Stream(c *gin.Context) {
	goalID := c.Param("id")
	if _, err := h.goals.GetByID(c.Request.Context(), goalID, middleware.UserID(c)); err != nil {
		appErr := mapGoalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("goal_id", goalID).Msg("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream aborted")

	ctx := c.Request.Context()
	events, cancel := h.feed.Subscribe(goalID)
	defer cancel()

	// Subscription first, then the read: a result landing in between is
	// delivered twice at worst, never missed.
	if current, err := h.decisions.LatestByGoalID(ctx, goalID); err == nil && current != nil {
		if err := wsjson.Write(ctx, conn, response.FromDecision(current)); err != nil {
			return
		}
	}

	h.log.Info().Str("goal_id", goalID).Msg("decision stream opened")
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case decision, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if decision == nil {
				continue
			}
			if err := wsjson.Write(ctx, conn, response.FromDecision(decision)); err != nil {
				h.log.Info().Err(err).Str("goal_id", goalID).Msg("decision stream closed by peer")
				return
			}
		}
	}
}
