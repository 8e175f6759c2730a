package auth

import (
	"net/http"

	pkgErrors "planora-api/pkg/errors"
)

var (
	ErrEmailExisted = pkgErrors.NewHTTPError(10101, "Email already registered", http.StatusConflict)
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike, the response must not tell them apart.
	ErrInvalidCredentials = pkgErrors.NewHTTPError(10102, "Invalid email or password", http.StatusUnauthorized)
	ErrInvalidEmail       = pkgErrors.NewHTTPError(10103, "Invalid email address", http.StatusBadRequest)
	ErrWeakPassword       = pkgErrors.NewHTTPError(10104, "Password must be at least 8 characters", http.StatusBadRequest)
)
