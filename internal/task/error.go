package task

import (
	"net/http"

	pkgErrors "planora-api/pkg/errors"
)

var (
	ErrTaskNotFound    = pkgErrors.NewHTTPError(10501, "Task not found", http.StatusNotFound)
	ErrInvalidPriority = pkgErrors.NewHTTPError(10502, "Invalid task priority", http.StatusBadRequest)
	ErrInvalidStatus   = pkgErrors.NewHTTPError(10503, "Invalid task status", http.StatusBadRequest)
)
