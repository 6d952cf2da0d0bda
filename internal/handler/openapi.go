package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-reporter/docs"
)

// OpenAPIDoc godoc
// @Summary OpenAPI document
// @Tags docs
// @Produce json
// @Success 200
// @Router /openapi.json [get]
func OpenAPIDoc(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
