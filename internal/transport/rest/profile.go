package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legalease/internal/domain"
)

const profileImageField = "profileImage"

// createProfile godoc
// @Summary Create own lawyer profile
// @Description Accepts JSON, or multipart form data with an optional profileImage file.
// @Tags Lawyer profiles
// @Accept json,mpfd
// @Produce json
// @Param input body domain.CreateLawyerProfileDTO true "Profile"
// @Success 201 {object} domain.LawyerProfile
// @Failure 400 {object} errorResponseBody "Validation failed or profile exists"
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /lawyer-profiles [post]
func (h *Handler) createProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	var req domain.CreateLawyerProfileDTO
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("invalid profile payload", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}

	image, filename, err := readFormFile(c, profileImageField)
	if err != nil {
		h.logger.Warn("failed to read profile image", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}

	profile, err := h.services.Profile.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if image != nil {
		profile, err = h.services.Profile.UploadImage(c.Request.Context(), principal.UserID, image, filename)
		if err != nil {
			h.handleError(c, err)
			return
		}
	}

	createdResponse(c, profile)
}

// getMyProfile godoc
// @Summary Own lawyer profile
// @Tags Lawyer profiles
// @Produce json
// @Success 200 {object} domain.LawyerProfile
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /lawyer-profiles/me [get]
func (h *Handler) getMyProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	profile, err := h.services.Profile.GetByLawyerID(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// updateMyProfile godoc
// @Summary Update own lawyer profile
// @Description Only the fields present in the body are changed.
// @Tags Lawyer profiles
// @Accept json
// @Produce json
// @Param input body domain.UpdateLawyerProfileDTO true "Changed fields"
// @Success 200 {object} domain.LawyerProfile
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /lawyer-profiles/me [put]
func (h *Handler) updateMyProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	var req domain.UpdateLawyerProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile update payload", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}

	profile, err := h.services.Profile.Update(c.Request.Context(), principal.UserID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// uploadProfileImage godoc
// @Summary Upload own profile image
// @Tags Lawyer profiles
// @Accept mpfd
// @Produce json
// @Param profileImage formData file true "JPEG, PNG, GIF or WebP image"
// @Success 200 {object} domain.LawyerProfile
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /lawyer-profiles/me/image [post]
func (h *Handler) uploadProfileImage(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	image, filename, err := readFormFile(c, profileImageField)
	if err != nil {
		h.logger.Warn("failed to read profile image", zap.Error(err))
		badRequestResponse(c, msgInvalidBody)
		return
	}
	if image == nil {
		badRequestResponse(c, "profileImage file is required")
		return
	}

	profile, err := h.services.Profile.UploadImage(c.Request.Context(), principal.UserID, image, filename)
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// getProfiles godoc
// @Summary List lawyer profiles
// @Description Newest first.
// @Tags Lawyer profiles
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} paginatedResponse
// @Router /lawyer-profiles [get]
func (h *Handler) getProfiles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	profiles, total, err := h.services.Profile.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	paginatedSuccessResponse(c, profiles, total, offset/limit+1, limit)
}

// getProfileByID godoc
// @Summary Lawyer profile by ID
// @Tags Lawyer profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.LawyerProfile
// @Failure 404 {object} errorResponseBody
// @Router /lawyer-profiles/{id} [get]
func (h *Handler) getProfileByID(c *gin.Context) {
	profile, err := h.services.Profile.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// readFormFile returns the contents of an optional multipart file field. A
// request that is not multipart, or has no such field, yields nil data.
func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}
