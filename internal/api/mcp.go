package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/mcp"
)

// sessionHeader carries the MCP session id assigned on initialize.
const sessionHeader = "Mcp-Session-Id"

// handleMCP accepts one JSON-RPC request per POST. Notifications are
// acknowledged with 202 and no body.
func (s *Server) handleMCP(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, mcp.NewErrorResponse(0, mcp.InvalidRequest, "Request body too large"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, mcp.NewErrorResponse(0, mcp.ParseError, "Failed to read request"))
		return
	}

	var req mcp.Request
	if unmarshalErr := json.Unmarshal(body, &req); unmarshalErr != nil {
		logger.FromContext(c.Request.Context()).Debug("Failed to parse request", logger.Error(unmarshalErr))
		c.JSON(http.StatusOK, mcp.NewErrorResponse(0, mcp.ParseError, "Failed to parse request"))
		return
	}

	resp := s.mcp.HandleRequest(c.Request.Context(), &req)
	if resp == nil {
		c.Status(http.StatusAccepted)
		return
	}

	if req.Method == "initialize" && resp.Error == nil {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header(sessionHeader, sessionID)
	}
	c.JSON(http.StatusOK, resp)
}
