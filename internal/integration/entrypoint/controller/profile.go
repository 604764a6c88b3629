package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles portfolio and user-profile endpoints.
type ProfileController struct {
	profileRepo adapter.ProfileRepository
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(profileRepo adapter.ProfileRepository) *ProfileController {
	return &ProfileController{profileRepo: profileRepo}
}

// GetPortfolio handles GET /portfolio requests.
func (c *ProfileController) GetPortfolio(ctx *gin.Context) {
	portfolio, err := c.profileRepo.GetPortfolio(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPortfolioResponse(portfolio))
}

// UpdatePortfolio handles PUT /portfolio requests.
func (c *ProfileController) UpdatePortfolio(ctx *gin.Context) {
	var req dto.UpdatePortfolioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	portfolio, err := req.ToPortfolioEntity()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid total_value: " + err.Error(),
		})
		return
	}

	if err := c.profileRepo.UpdatePortfolio(ctx.Request.Context(), portfolio); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPortfolioResponse(portfolio))
}

// GetProfile handles GET /profile requests.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileRepo.GetUserProfile(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}

// UpdateProfile handles PUT /profile requests.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateUserProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	profile, err := req.ToUserProfileEntity()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal target: " + err.Error(),
		})
		return
	}

	if err := c.profileRepo.UpdateUserProfile(ctx.Request.Context(), profile); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}
