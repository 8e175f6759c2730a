package user

import (
	"net/http"

	pkgErrors "planora-api/pkg/errors"
)

var (
	ErrUserNotFound       = pkgErrors.NewHTTPError(10201, "User not found", http.StatusNotFound)
	ErrAvatarTooLarge     = pkgErrors.NewHTTPError(10202, "Avatar exceeds the size limit", http.StatusBadRequest)
	ErrUnsupportedAvatar  = pkgErrors.NewHTTPError(10203, "Avatar must be a JPEG or PNG image", http.StatusBadRequest)
	ErrNothingToUpdate    = pkgErrors.NewHTTPError(10204, "No profile fields to update", http.StatusBadRequest)
	ErrAccountDeactivated = pkgErrors.NewHTTPError(10205, "Account is deactivated", http.StatusForbidden)
)
