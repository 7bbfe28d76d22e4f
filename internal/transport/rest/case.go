package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legalease/internal/domain"
)

const caseFileField = "file"

// createCase godoc
// @Summary Open a case
// @Description Opens a case with a lawyer and books the chosen availability slot. The document
// @Description is either a base64 caseFile in a JSON body or a multipart "file" field.
// @Tags Cases
// @Accept json,mpfd
// @Produce json
// @Param input body domain.CreateCaseDTO true "Case"
// @Success 201 {object} domain.Case
// @Failure 400 {object} errorResponseBody "Validation failed or slot already booked"
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody "Lawyer profile not found"
// @Security ApiKeyAuth
// @Router /cases [post]
func (h *Handler) createCase(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	var (
		req domain.CreateCaseDTO
		doc *domain.CaseDocument
	)

	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warn("invalid case form", zap.Error(err))
			badRequestResponse(c, msgInvalidBody)
			return
		}

		data, filename, err := readFormFile(c, caseFileField)
		if err != nil {
			h.logger.Warn("failed to read case file", zap.Error(err))
			badRequestResponse(c, msgInvalidBody)
			return
		}
		if data != nil {
			doc = &domain.CaseDocument{Data: data, Filename: filename}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid case payload", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}

	created, err := h.services.Case.Create(c.Request.Context(), principal.UserID, req, doc)
	if err != nil {
		h.handleError(c, err)
		return
	}

	createdResponse(c, created)
}

// getClientCases godoc
// @Summary Own cases (client)
// @Tags Cases
// @Produce json
// @Success 200 {array} domain.Case
// @Security ApiKeyAuth
// @Router /cases/client [get]
func (h *Handler) getClientCases(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	cases, err := h.services.Case.ListForClient(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, cases)
}

// getLawyerCases godoc
// @Summary Cases opened with the calling lawyer
// @Tags Cases
// @Produce json
// @Success 200 {array} domain.Case
// @Security ApiKeyAuth
// @Router /cases/lawyer [get]
func (h *Handler) getLawyerCases(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	cases, err := h.services.Case.ListForLawyer(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, cases)
}

// getLawyerStats godoc
// @Summary Case statistics for the calling lawyer
// @Tags Cases
// @Produce json
// @Success 200 {object} domain.LawyerStats
// @Security ApiKeyAuth
// @Router /cases/lawyer/stats [get]
func (h *Handler) getLawyerStats(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	stats, err := h.services.Case.StatsForLawyer(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, stats)
}

type documentURLResponse struct {
	URL string `json:"url"`
}

// getCaseDocument godoc
// @Summary Case document download link
// @Description Short-lived link for the client who opened the case or the lawyer it was opened with.
// @Tags Cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} documentURLResponse
// @Failure 403 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /cases/{id}/document [get]
func (h *Handler) getCaseDocument(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	url, err := h.services.Case.DocumentURL(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, documentURLResponse{URL: url})
}
