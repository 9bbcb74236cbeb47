package schedule

import (
	"net/http"

	"go-shiftdesk/internal/shared/apperror"
	"go-shiftdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func storeIDFrom(c *gin.Context) string {
	return c.GetString("store_id")
}

func (h *Handler) GetMonth(c *gin.Context) {
	res, err := h.service.GetMonth(c.Request.Context(), storeIDFrom(c), c.Query("month"))
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) SaveManual(c *gin.Context) {
	var req SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	res, err := h.service.SaveManual(c.Request.Context(), storeIDFrom(c), req)
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	res, err := h.service.Generate(c.Request.Context(), storeIDFrom(c), req.Month)
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ResetEmployee(c *gin.Context) {
	err := h.service.ResetEmployee(c.Request.Context(), storeIDFrom(c), c.Param("employeeId"), c.Query("month"))
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reset": true}, nil)
}

func (h *Handler) ResetAll(c *gin.Context) {
	err := h.service.ResetAll(c.Request.Context(), storeIDFrom(c), c.Query("month"))
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reset": true}, nil)
}

func (h *Handler) ShiftSummary(c *gin.Context) {
	res, err := h.service.ShiftSummary(c.Request.Context(), storeIDFrom(c), c.Query("month"))
	if err != nil {
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
