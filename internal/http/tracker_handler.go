package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	trackerWriteWait = 10 * time.Second
	trackerPongWait  = 60 * time.Second
	// trackerPingPeriod must stay below trackerPongWait.
	trackerPingPeriod = (trackerPongWait * 9) / 10
)

// TrackerStreamer streams delivery frames for an order.
type TrackerStreamer interface {
	Stream(ctx context.Context, orderID string, emit func(model.TrackerFrame) error) error
}

// TrackerHandler serves the delivery tracker preview and its websocket stream.
type TrackerHandler struct {
	tracker    TrackerStreamer
	upgrader   websocket.Upgrader
	pongWait   time.Duration
	pingPeriod time.Duration
}

// NewTrackerHandler creates a tracker handler. Websocket upgrades are accepted
// from the given origins; an empty list or "*" accepts any origin.
func NewTrackerHandler(tracker TrackerStreamer, allowedOrigins []string) *TrackerHandler {
	return &TrackerHandler{
		tracker: tracker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		pongWait:   trackerPongWait,
		pingPeriod: trackerPingPeriod,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Preview handles GET /api/tracker/preview requests.
//
// @Summary      Tracker frame
// @Description  Returns the static route map and the simulation frame at the given progress (0-100, clamped).
// @Tags         Tracker
// @Produce      json
// @Param        progress query int false "Progress percentage" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.TrackerResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid progress"
// @Router       /api/tracker/preview [get]
func (h *TrackerHandler) Preview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	progress := 0
	if raw := c.Query("progress"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		progress = p
	}

	builder.SuccessOK(dto.TrackerResponse{
		Map:   service.DefaultTrackerMap(),
		Frame: service.FrameAt(progress),
	})
}

// Stream handles GET /api/tracker/ws requests.
//
// @Summary      Delivery tracker stream
// @Description  Upgrades to a websocket and pushes one JSON frame per tick from 0 to 100 percent. The first frame carries the order header when order_id names a submitted order. The server closes the socket when the delivery completes.
// @Tags         Tracker
// @Param        order_id query string false "Order ID"
// @Success      101 "Switching protocols"
// @Router       /api/tracker/ws [get]
func (h *TrackerHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Tracker websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The read loop only serves control frames; a close or read error ends the stream.
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	go h.ping(ctx, conn)

	orderID := c.Query("order_id")
	err = h.tracker.Stream(ctx, orderID, func(frame model.TrackerFrame) error {
		_ = conn.SetWriteDeadline(time.Now().Add(trackerWriteWait))
		return conn.WriteJSON(frame)
	})
	if err != nil {
		if ctx.Err() == nil {
			log.Debug().Err(err).Str("order_id", orderID).Msg("Tracker stream ended")
		}
		return
	}

	_ = conn.SetWriteDeadline(time.Now().Add(trackerWriteWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "delivered"))
}

// ping keeps the read deadline of a silent client alive until ctx is done.
// WriteControl is safe to call alongside the frame writer.
func (h *TrackerHandler) ping(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(trackerWriteWait)); err != nil {
				return
			}
		}
	}
}
