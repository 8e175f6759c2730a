package guest

import (
	"net/http"

	pkgErrors "planora-api/pkg/errors"
)

var (
	ErrGuestNotFound     = pkgErrors.NewHTTPError(10401, "Guest not found", http.StatusNotFound)
	ErrInvalidRSVPStatus = pkgErrors.NewHTTPError(10402, "Invalid RSVP status", http.StatusBadRequest)
)
