package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	agentRepo "fundihub/database/repository/agent"
	bookingRepo "fundihub/database/repository/booking"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/services/agent"
	"fundihub/services/booking"
	"fundihub/services/worker"
	"fundihub/utils"
)

// statusForCode maps the core's machine-readable rejection codes to HTTP
// statuses. Unknown codes fall through to 500.
var statusForCode = map[string]int{
	booking.CodeValidation:        http.StatusBadRequest,
	booking.CodeWorkerUnavailable: http.StatusUnprocessableEntity,
	booking.CodeSlotNotOffered:    http.StatusUnprocessableEntity,
	booking.CodeSlotTaken:         http.StatusConflict,
	booking.CodeIllegalTransition: http.StatusConflict,
	booking.CodeBookingNotReady:   http.StatusUnprocessableEntity,
	booking.CodeNotFound:          http.StatusNotFound,
	booking.CodeForbidden:         http.StatusForbidden,
}

// respondError translates a service error into a JSON error response.
// Typed rejections keep their code and message; everything else is a 500
// with the detail logged, not leaked.
func respondError(c *gin.Context, err error) {
	if be, ok := booking.AsError(err); ok {
		status, known := statusForCode[be.Code]
		if !known {
			status = http.StatusInternalServerError
		}
		c.JSON(status, utils.ErrorResponse{Code: be.Code, Message: be.Message})
		return
	}
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, workerRepo.ErrNotFound),
		errors.Is(err, agentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Code: booking.CodeNotFound, Message: err.Error()})
	case errors.Is(err, worker.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Code: booking.CodeValidation, Message: err.Error()})
	case errors.Is(err, agent.ErrWorkerNotManaged):
		c.JSON(http.StatusForbidden, utils.ErrorResponse{Code: booking.CodeForbidden, Message: err.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
