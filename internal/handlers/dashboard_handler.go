package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
	ucdashboard "github.com/PerfectPlumbing/plumbing-ops/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *ucdashboard.GetStats
}

func NewDashboardHandler(stats *ucdashboard.GetStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
