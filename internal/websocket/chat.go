// Package websocket carries the chat concierge's tool calls over a single
// socket: the client sends {id, tool, args} frames and receives the same
// payloads the HTTP tool routes produce. The conversational agent itself is
// an opaque caller on the other end of the socket.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	aptdomain "motorscout-service/internal/domain/appointment"
	"motorscout-service/internal/domain/vehicle"
	aptservice "motorscout-service/internal/service/appointment"
	searchservice "motorscout-service/internal/service/search"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 16 * 1024
	chatToolLimit  = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The UI and API are served from different origins in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ToolCall is one inbound frame.
type ToolCall struct {
	ID   string          `json:"id"`
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

// ToolResult is one outbound frame. Result carries the tool's raw payload.
type ToolResult struct {
	ID     string      `json:"id"`
	Tool   string      `json:"tool"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type ChatHandler struct {
	searchService      *searchservice.SearchService
	appointmentService *aptservice.AppointmentService
	logger             *zap.Logger
}

func NewChatHandler(searchService *searchservice.SearchService, appointmentService *aptservice.AppointmentService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		searchService:      searchService,
		appointmentService: appointmentService,
		logger:             logger,
	}
}

// HandleConnection upgrades the request and serves tool calls until the
// client goes away. Calls are handled sequentially per connection.
func (h *ChatHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	for {
		var call ToolCall
		if err := conn.ReadJSON(&call); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		result := h.dispatch(c.Request.Context(), call)

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(result); err != nil {
			h.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (h *ChatHandler) dispatch(ctx context.Context, call ToolCall) ToolResult {
	out := ToolResult{ID: call.ID, Tool: call.Tool}

	switch call.Tool {
	case "searchInventory":
		var req vehicle.SearchRequest
		if err := json.Unmarshal(call.Args, &req); err != nil {
			out.Error = "invalid searchInventory arguments"
			return out
		}
		if req.Limit <= 0 || req.Limit > chatToolLimit {
			req.Limit = chatToolLimit
		}
		result, err := h.searchService.Search(ctx, req)
		if err != nil {
			out.Error = err.Error()
			return out
		}
		out.Result = result

	case "checkAvailability":
		var req aptdomain.AvailabilityRequest
		if err := json.Unmarshal(call.Args, &req); err != nil {
			out.Error = "invalid checkAvailability arguments"
			return out
		}
		res, err := h.appointmentService.CheckAvailability(ctx, req)
		if err != nil {
			out.Error = err.Error()
			return out
		}
		out.Result = res

	case "scheduleAppointment":
		var req aptdomain.ScheduleRequest
		if err := json.Unmarshal(call.Args, &req); err != nil {
			out.Error = "invalid scheduleAppointment arguments"
			return out
		}
		out.Result = h.appointmentService.Schedule(ctx, req)

	default:
		out.Error = "unknown tool: " + call.Tool
	}

	return out
}
