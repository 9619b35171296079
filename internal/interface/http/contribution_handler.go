package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/internal/application"
	"github.com/suugaanle/qaamuus/internal/domain/entity"
	"github.com/suugaanle/qaamuus/pkg/response"
	"github.com/suugaanle/qaamuus/pkg/validation"
)

const (
	msgContributionOK     = "Wixii aad soo dirtay waa la kaydiyay"
	msgContributionFailed = "Khalad ayaa dhacay kaydinta"
)

type ContributionHandler struct {
	Svc    *application.ContributionService
	Logger *logrus.Logger
}

func NewContributionHandler(svc *application.ContributionService, logger *logrus.Logger) *ContributionHandler {
	return &ContributionHandler{Svc: svc, Logger: logger}
}

type submitContributionRequest struct {
	Type        string   `json:"type" binding:"required,oneof=opinion word"`
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Categories  []string `json:"categories"`
	ContactInfo string   `json:"contactInfo"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// Submit POST /api/contributions (auth)
func (h *ContributionHandler) Submit(c *gin.Context) {
	var req submitContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	contribution, err := h.Svc.Submit(c.Request.Context(), application.NewContribution{
		Type:        entity.ContributionType(req.Type),
		Title:       req.Title,
		Content:     req.Content,
		Categories:  req.Categories,
		ContactInfo: req.ContactInfo,
		SubmittedBy: c.GetString("userName"),
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, msgContributionFailed, nil)
		return
	}
	response.Success(c, http.StatusCreated, contribution, msgContributionOK, nil)
}

// List GET /api/contributions (admin)
func (h *ContributionHandler) List(c *gin.Context) {
	contributions := h.Svc.ListAll(c.Request.Context())
	response.Success(c, http.StatusOK, contributions, "contributions", map[string]any{"count": len(contributions)})
}

// ListByStatus GET /api/contributions/status/:status (admin)
func (h *ContributionHandler) ListByStatus(c *gin.Context) {
	status := entity.ContributionStatus(c.Param("status"))
	if !status.Valid() {
		response.Error[any](c, http.StatusBadRequest, "unknown status", nil)
		return
	}
	contributions := h.Svc.ListByStatus(c.Request.Context(), status)
	response.Success(c, http.StatusOK, contributions, "contributions", map[string]any{"count": len(contributions)})
}

// Stats GET /api/contributions/stats (admin)
func (h *ContributionHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Svc.Stats(c.Request.Context()), "contribution stats", nil)
}

// UpdateStatus PATCH /api/contributions/:id/status (admin)
func (h *ContributionHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), entity.ContributionStatus(req.Status))
	if errors.Is(err, application.ErrContributionNotFound) {
		response.Error[any](c, http.StatusNotFound, "contribution not found", nil)
		return
	}
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, msgContributionFailed, nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"updated": true}, "status updated", nil)
}

// Delete DELETE /api/contributions/:id (admin)
func (h *ContributionHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, application.ErrContributionNotFound) {
		response.Error[any](c, http.StatusNotFound, "contribution not found", nil)
		return
	}
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, msgContributionFailed, nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "contribution deleted", nil)
}
