package http

import (
	"time"

	"github.com/cjaradhye/quirkventory/internal/adapter/notification"
	"github.com/cjaradhye/quirkventory/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	Handler
	service port.Service
	feed    *notification.Feed
}

func NewReportHandler(service port.Service, feed *notification.Feed, logger *zap.Logger) (*ReportHandler, error) {
	return &ReportHandler{
		Handler: *NewHandler(logger),
		service: service,
		feed:    feed,
	}, nil
}

func (rh *ReportHandler) InventoryReport(ctx *gin.Context) {
	ctx.String(200, rh.service.InventoryReport(ctx))
}

func (rh *ReportHandler) OrderStatistics(ctx *gin.Context) {
	ctx.String(200, rh.service.OrderStatistics(ctx))
}

type alertResp struct {
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

func (rh *ReportHandler) Alerts(ctx *gin.Context) {
	var alerts []port.Alert
	if ctx.Query("high_priority") == "true" {
		alerts = rh.feed.HighPriority()
	} else {
		alerts = rh.feed.Recent(parseIntQuery(ctx, "limit", 0))
	}

	result := make([]alertResp, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, alertResp{
			Message:   a.Message,
			Priority:  string(a.Priority),
			Source:    a.Source,
			CreatedAt: a.CreatedAt,
		})
	}

	rh.handleSuccess(ctx, result)
}
