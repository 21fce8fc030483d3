package router

import (
	"time"

	"cantina/api"
	"cantina/config"
	_ "cantina/docs"
	"cantina/ledger"
	"cantina/logger"
	"cantina/middleware"
	"cantina/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps 路由依赖
type Deps struct {
	Store  *ledger.Store
	Mailer api.ReportMailer
	Log    logrus.FieldLogger
	Now    func() time.Time
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	if deps.Log == nil {
		deps.Log = logger.Discard()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// 写接口限流
	limit := middleware.RateLimit(cfg.Server.RateLimit.MaxRequests, cfg.Server.RateLimit.Window)

	dashboardHandler := api.NewDashboardHandler(deps.Store, deps.Now)
	incomeHandler := api.NewTransactionHandler(deps.Store, models.KindIncome, deps.Log)
	expenseHandler := api.NewTransactionHandler(deps.Store, models.KindExpense, deps.Log)
	categoryHandler := api.NewCategoryHandler(deps.Store, deps.Log)
	reportHandler := api.NewReportHandler(deps.Store, deps.Mailer, deps.Now, deps.Log)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/snapshot", dashboardHandler.Snapshot)
		v1.GET("/dashboard", dashboardHandler.Dashboard)

		// 收入
		incomes := v1.Group("/incomes")
		{
			incomes.GET("", incomeHandler.List)
			incomes.POST("", limit, incomeHandler.Create)
			incomes.DELETE("/:id", limit, incomeHandler.Delete)
		}

		// 支出
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", limit, expenseHandler.Create)
			expenses.DELETE("/:id", limit, expenseHandler.Delete)
		}

		// 类别
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", limit, categoryHandler.Create)
			categories.PUT("/:id", limit, categoryHandler.Update)
			categories.DELETE("/:id", limit, categoryHandler.Delete)
		}

		// 报表
		reports := v1.Group("/reports")
		{
			reports.GET("/years", reportHandler.Years)
			reports.GET("/:year/:month", reportHandler.Get)
			reports.GET("/:year/:month/export/csv", reportHandler.ExportCSV)
			reports.GET("/:year/:month/export/excel", reportHandler.ExportExcel)
			reports.POST("/:year/:month/email", limit, reportHandler.Email)
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
