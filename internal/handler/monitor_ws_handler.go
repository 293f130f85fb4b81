package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/middleware"
	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/service"
	ws "github.com/campushq/advising-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// MonitorWSHandler streams live seat updates for an offering to the
// faculty member teaching it.
type MonitorWSHandler struct {
	rdb             *redis.Client
	offeringService *service.OfferingService
	log             zerolog.Logger
	upgrader        websocket.Upgrader
}

// NewMonitorWSHandler creates a new MonitorWSHandler.
func NewMonitorWSHandler(rdb *redis.Client, offeringService *service.OfferingService, log zerolog.Logger, allowedOrigins []string) *MonitorWSHandler {
	return &MonitorWSHandler{
		rdb:             rdb,
		offeringService: offeringService,
		log:             log.With().Str("component", "monitor_ws_handler").Logger(),
		upgrader:        buildUpgrader(allowedOrigins),
	}
}

// SeatMonitorStream godoc
// WS /ws/v1/faculty/offerings/:offeringId/monitor
// Upgrades to WebSocket and pushes a seat update for every committed
// enroll or withdraw against the offering.
func (h *MonitorWSHandler) SeatMonitorStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	offeringID, err := uuid.Parse(c.Param("offeringId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offering ID"})
		return
	}

	offering, err := h.offeringService.Get(c.Request.Context(), offeringID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}
	if offering.FacultyID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your offering"})
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	// The pump goroutine and the ping replies below share this socket;
	// the wrapper serializes their writes.
	conn := ws.NewConn(raw)
	defer conn.Close()

	wsLog := h.log.With().
		Int("faculty_id", claims.UserID).
		Str("offering_id", offeringID.String()).
		Logger()

	wsLog.Info().Msg("Monitor connected")

	// The snapshot gives the monitor its starting counter; every later
	// frame is a delta event from the pubsub channel.
	conn.WriteTyped(ws.SnapshotResponse{
		Event:          ws.EventSnapshot,
		OfferingID:     offering.ID,
		Capacity:       offering.Capacity,
		SeatsRemaining: offering.SeatsRemaining,
		Enrolled:       offering.Capacity - offering.SeatsRemaining,
	})

	sub := h.rdb.Subscribe(c.Request.Context(), config.CacheKey.SeatUpdateChannel(offeringID.String()))
	defer sub.Close()

	done := make(chan struct{})
	go h.pumpSeatUpdates(conn, sub, wsLog, done)

	for {
		var msg ws.RequestEnvelope
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionPing:
			conn.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			conn.WriteError("unknown action: " + string(msg.Action))
		}
	}

	close(done)
}

// pumpSeatUpdates forwards published enrollment events to the socket
// until the channel closes or the client goes away.
func (h *MonitorWSHandler) pumpSeatUpdates(conn *ws.Conn, sub *redis.PubSub, wsLog zerolog.Logger, done <-chan struct{}) {
	ch := sub.Channel()
	for {
		select {
		case <-done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event model.EnrollmentEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				wsLog.Warn().Err(err).Msg("Malformed seat update payload")
				continue
			}

			if err := conn.WriteTyped(ws.SeatUpdateResponse{
				Event:          ws.EventSeatUpdate,
				OfferingID:     event.OfferingID,
				Action:         string(event.Action),
				SeatsRemaining: event.SeatsRemaining,
				OccurredAt:     event.OccurredAt,
			}); err != nil {
				wsLog.Debug().Err(err).Msg("Monitor write failed, dropping subscriber")
				return
			}
		}
	}
}
