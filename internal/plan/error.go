package plan

import (
	"net/http"

	pkgErrors "planora-api/pkg/errors"
)

var (
	ErrPlanNotFound     = pkgErrors.NewHTTPError(10301, "Plan not found", http.StatusNotFound)
	ErrInvalidStatus    = pkgErrors.NewHTTPError(10302, "Invalid plan status", http.StatusBadRequest)
	ErrCategoryNotFound = pkgErrors.NewHTTPError(10303, "Category not found", http.StatusBadRequest)
	ErrInvalidEventDate = pkgErrors.NewHTTPError(10304, "Event date must be a valid date", http.StatusBadRequest)
)
