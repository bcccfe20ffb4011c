package adaptor

import (
	"net/http"
	"strings"

	"awami-saholat/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError memetakan error usecase ke HTTP response.
// Substring matching, gaya yang sama di semua handler.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "login required"):
		// Gating condition, bukan fault: user diarahkan ke login
		log.Debug(operation+" gated - login required",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "no workers available"),
		strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "no longer available"),
		strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" blocked - invalid transition",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
