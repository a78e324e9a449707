package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	log           = zap.NewNop()
	verboseErrors bool
)

// SetLogger installs the process logger for the controllers. verbose
// adds stack traces to unexpected-failure logs.
func SetLogger(l *zap.Logger, verbose bool) {
	log = l
	verboseErrors = verbose
}

// RespondError writes a json error payload with the given status.
func RespondError(c *gin.Context, message string, status int) {
	c.JSON(status, gin.H{"error": message})
	c.Abort()
}

// RespondSuccess writes a 200 json payload.
func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated writes a 201 json payload.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondServerError logs the internal error and answers with a
// generic message so internals never leak to the client.
func RespondServerError(c *gin.Context, what string, err error) {
	if verboseErrors {
		log.Error(what, zap.Error(err), zap.Stack("stack"))
	} else {
		log.Error(what, zap.Error(err))
	}
	RespondError(c, "error processing request", http.StatusInternalServerError)
}
