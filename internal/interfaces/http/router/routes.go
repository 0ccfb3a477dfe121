package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, h Handlers, preflight gin.HandlerFunc) {
	// relay 接口，浏览器直接调用
	v1.POST("/prd-feedback", h.Feedback.Generate)
	v1.OPTIONS("/prd-feedback", preflight)
	v1.POST("/parse-outline", h.Outline.Parse)
	v1.OPTIONS("/parse-outline", preflight)

	v1.GET("/sections", h.Sections.List)

	prd := v1.Group("/prd")
	{
		prd.POST("/export", h.Export.Export)
		prd.OPTIONS("/export", preflight)
	}
}
