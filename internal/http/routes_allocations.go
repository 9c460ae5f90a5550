package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/allocation-service/internal/service"
)

// AllocationRoutes handles allocation and analysis route registration.
type AllocationRoutes struct {
	handler *Handler
}

// NewAllocationRoutes creates a new AllocationRoutes instance.
func NewAllocationRoutes(analysisService service.AnalysisService, opts ...HandlerOption) *AllocationRoutes {
	return &AllocationRoutes{
		handler: NewHandler(analysisService, opts...),
	}
}

// RegisterRoutes registers the allocation and analysis endpoints.
func (r *AllocationRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/allocate", r.handler.Allocate)

	analyses := rg.Group("/analyses")
	analyses.POST("", r.handler.StartAnalysis)
	analyses.GET("", r.handler.ListAnalyses)
	analyses.GET("/:id", r.handler.GetAnalysis)
	analyses.GET("/:id/progress", r.handler.GetAnalysisProgress)
	analyses.DELETE("/:id", r.handler.CancelAnalysis)
}

// GetHandler returns the underlying allocation handler.
func (r *AllocationRoutes) GetHandler() *Handler {
	return r.handler
}
