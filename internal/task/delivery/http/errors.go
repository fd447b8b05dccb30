package http

import (
	"errors"
	"net/http"

	"task-prioritizer/internal/task"
	"task-prioritizer/pkg/response"
)

var errUnknown = errors.New("unknown error")

// mapError translates use-case errors into HTTP errors. It returns
// errUnknown for anything that should be answered with a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyName),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrUnknownDependency):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrDuplicateName):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrNothingToExport):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return errUnknown
	}
}
