package handler

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	appbilling "github.com/orderdesk/backend/internal/application/billing"
)

// ExportHandler serializes the visible dashboard set for download
type ExportHandler struct {
	BaseHandler
	service *appbilling.DashboardService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(service *appbilling.DashboardService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CSV streams the visible set as a CSV download.
// GET /api/v1/export/csv?from=&to=&tab=&query=
func (h *ExportHandler) CSV(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	table, err := h.service.ExportTable(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("orders-%s-%s.csv", req.Tab, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(table.Header); err != nil {
		return
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}

var tableTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Order Export</title></head>
<body>
<table border="1" cellspacing="0" cellpadding="4">
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

// Table renders the visible set as an HTML table.
// GET /api/v1/export/table?from=&to=&tab=&query=
func (h *ExportHandler) Table(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	table, err := h.service.ExportTable(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tableTemplate.Execute(c.Writer, table); err != nil {
		_ = c.Error(err)
	}
}
