// README: Base handler utilities (JSON helpers, error envelope).
package handlers

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeErrorDetails(c *gin.Context, status int, msg, details string) {
	writeJSON(c, status, errorResponse{Error: msg, Details: details})
}
