package http

import (
	"github.com/gin-gonic/gin"

	"task-prioritizer/pkg/response"
)

// Create queues a task from free-text fields.
// POST /api/v1/tasks
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Create", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List returns the queue in work order.
// GET /api/v1/tasks
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Export writes the ordered queue to CSV and optionally the calendar.
// POST /api/v1/tasks/export
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Export", err)
		return
	}

	response.OK(c, h.newExportResp(output))
}

// respondError logs client errors at warn level and everything else at error.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if mapped == errUnknown {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(ctx, "%s: %v", op, err)
	response.Error(c, mapped, nil)
}
