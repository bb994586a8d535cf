package handling

import (
	"activofijo_server/lib"
	"activofijo_server/services"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleServiceError maps a service-layer error onto the right HTTP response.
// Business-rule violations carry their own status; anything unrecognized is
// logged and reported as a 500.
func HandleServiceError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrPrefixCollision):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrDuplicateInvoiceNumber):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, services.ErrSiteNameShape), errors.Is(err, services.ErrInvalidInvoiceNumber):
		gecho.BadRequest(w, gecho.WithMessage(msg), gecho.Send())
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
		gecho.InternalServerError(w, gecho.Send())
	}
}
