package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legalease/internal/domain"
)

// createSlot godoc
// @Summary Propose an availability slot
// @Description Adds a slot to the calling lawyer's calendar. Times are HH:MM, the date is
// @Description YYYY-MM-DD or RFC 3339. Overlapping an existing slot on the same date is rejected.
// @Tags Availability
// @Accept json
// @Produce json
// @Param input body domain.CreateSlotDTO true "Slot"
// @Success 201 {object} domain.AvailabilitySlot
// @Failure 400 {object} errorResponseBody "Validation failure or overlap"
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody
// @Failure 500 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /availability [post]
func (h *Handler) createSlot(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateSlotDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid slot payload", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}

	slot, err := h.services.Availability.ProposeSlot(c.Request.Context(), principal.UserID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	createdResponse(c, slot)
}

// getSlots godoc
// @Summary List own slots
// @Description Returns the calling lawyer's slots ordered by date and start time.
// @Tags Availability
// @Produce json
// @Success 200 {array} domain.AvailabilitySlot
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /availability [get]
func (h *Handler) getSlots(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	slots, err := h.services.Availability.ListSlots(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// getPublicSlots godoc
// @Summary List a lawyer's slots
// @Description Public calendar of the lawyer behind a profile.
// @Tags Availability
// @Produce json
// @Param lawyerId query string true "Lawyer profile ID"
// @Success 200 {array} domain.AvailabilitySlot
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody "Profile not found"
// @Router /availability/public [get]
func (h *Handler) getPublicSlots(c *gin.Context) {
	profileID := c.Query("lawyerId")
	if profileID == "" {
		badRequestResponse(c, "lawyerId is required")
		return
	}

	slots, err := h.services.Availability.ListSlotsForPublicLawyerProfile(c.Request.Context(), profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// deleteSlot godoc
// @Summary Delete a slot
// @Description Removes one of the calling lawyer's slots. Booked slots cannot be removed.
// @Tags Availability
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Slot is booked"
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /availability/{id} [delete]
func (h *Handler) deleteSlot(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Availability.DeleteSlot(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "availability slot deleted")
}
