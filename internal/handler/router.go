package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-records-api/internal/dto"
	"github.com/noah-isme/hr-records-api/internal/middleware"
	"github.com/noah-isme/hr-records-api/internal/service"
	"github.com/noah-isme/hr-records-api/internal/validation"
	"github.com/noah-isme/hr-records-api/pkg/config"
	"github.com/noah-isme/hr-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/hr-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hr-records-api/pkg/middleware/requestid"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Executor  *validation.Executor
	Employees *service.EmployeeService
	Benefits  *service.BenefitService
	Exports   *service.ExportService
	Metrics   *service.MetricsService
	Checks    map[string]ReadinessCheck
}

// NewRouter builds the gin engine. Mutating and query-bound routes go
// through the validation middleware before their handler runs.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	cfg := deps.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.WithResponseMeta())

	ops := NewMetricsHandler(deps.Metrics, deps.Checks)
	r.GET("/health", ops.Health)
	r.GET("/ready", ops.Ready)
	r.GET("/metrics", ops.Prometheus)
	r.GET("/metrics/summary", ops.Summary)
	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	validate := func(binders ...middleware.Binder) gin.HandlerFunc {
		return middleware.Validate(deps.Executor, binders...)
	}

	employees := NewEmployeeHandler(deps.Employees, deps.Exports)
	benefits := NewBenefitHandler(deps.Benefits)

	api := r.Group(cfg.APIPrefix)
	api.GET("/employees", validate(middleware.Query[dto.GetAllEmployeesRequest](argQuery)), employees.List)
	api.POST("/employees", validate(middleware.Body[dto.CreateEmployeeRequest](argEmployeeRequest)), employees.Create)
	if cfg.Exports.Enabled {
		api.GET("/employees/export", validate(middleware.Query[dto.ExportEmployeesRequest](argQuery)), employees.Export)
	}
	api.GET("/employees/:id", employees.Get)
	api.PUT("/employees/:id", validate(middleware.Body[dto.UpdateEmployeeRequest](argEmployeeRequest)), employees.Update)
	api.DELETE("/employees/:id", employees.Delete)

	api.GET("/benefits", benefits.Catalogue)
	api.GET("/employees/:id/benefits", benefits.ListForEmployee)
	api.POST("/employees/:id/benefits", validate(middleware.Body[dto.EnrollBenefitRequest](argBenefitRequest)), benefits.Enroll)
	api.DELETE("/employees/:id/benefits/:benefitId", benefits.Unenroll)

	return r
}
