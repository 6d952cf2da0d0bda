package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/kube-rca/incident-reporter/internal/service"
)

type ReportHandler struct {
	catalog *service.ReportCatalog
}

func NewReportHandler(catalog *service.ReportCatalog) *ReportHandler {
	return &ReportHandler{catalog: catalog}
}

// ListReports godoc
// @Summary List generated reports
// @Tags reports
// @Produce json
// @Success 200 {array} model.ReportFileInfo
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	res, err := h.catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetReport godoc
// @Summary Get report file
// @Tags reports
// @Produce html
// @Param name path string true "Report file name"
// @Success 200 {file} file
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /reports/{name} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	path, err := h.catalog.Path(c.Param("name"))
	switch {
	case errors.Is(err, service.ErrInvalidReportName):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	c.File(path)
}

// 라우터 구성
func NewRouter(reports *ReportHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ping", Ping)
	router.GET("/", Root)
	router.GET("/api/v1/reports", reports.ListReports)
	router.GET("/reports/:name", reports.GetReport)
	router.GET("/openapi.json", OpenAPIDoc)
	return router
}
