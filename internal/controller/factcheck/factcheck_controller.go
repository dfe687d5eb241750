package factcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/controller"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/service"
)

type FactCheckController struct {
	factCheckService service.FactCheckService
}

func NewFactCheckController(factCheckService service.FactCheckService) *FactCheckController {
	return &FactCheckController{factCheckService: factCheckService}
}

// RegisterRoutes mounts the fact check endpoints, normally under /api/fact-checks.
func (c *FactCheckController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/leaderboards/:factCheckId", c.Leaderboard)
	rg.POST("/verify/:factCheckId", c.Verify)
	rg.POST("/create/challenge", c.Create)
	rg.POST("/join/:factCheckId", c.Join)
	rg.POST("/submit", c.Submit)
	rg.PUT("/update/:factCheckId", c.Update)
}

// Create godoc
// @Summary Create a persisted fact check game
// @Tags Fact Check
// @Accept json
// @Produce json
// @Param body body dto.CreateFactCheckRequest true "Topic, difficulty and game settings"
// @Success 201 {object} dto.FactCheckResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Fact generation failed"
// @Router /fact-checks/create/challenge [post]
func (c *FactCheckController) Create(ctx *gin.Context) {
	var req dto.CreateFactCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.factCheckService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Verify godoc
// @Summary Check whether a wallet may play a fact check
// @Tags Fact Check
// @Accept json
// @Produce json
// @Param factCheckId path string true "Fact check ID"
// @Param body body dto.VerifyRequest true "Wallet address"
// @Success 200 {object} dto.FactCheckResponse
// @Failure 403 {object} dto.ErrorResponse "Private, already played or full"
// @Failure 404 {object} dto.ErrorResponse "Fact Check not found"
// @Router /fact-checks/verify/{factCheckId} [post]
func (c *FactCheckController) Verify(ctx *gin.Context) {
	var req dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.factCheckService.Verify(ctx.Request.Context(), ctx.Param("factCheckId"), req.WalletAddress)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Join godoc
// @Summary Join a fact check
// @Tags Fact Check
// @Accept json
// @Produce json
// @Param factCheckId path string true "Fact check ID"
// @Param body body dto.JoinRequest true "Wallet and display name"
// @Success 200 {object} dto.ParticipantFactResponse
// @Failure 403 {object} dto.ErrorResponse "Private, already played or full"
// @Failure 404 {object} dto.ErrorResponse "Fact Check not found"
// @Router /fact-checks/join/{factCheckId} [post]
func (c *FactCheckController) Join(ctx *gin.Context) {
	var req dto.JoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.factCheckService.Join(ctx.Request.Context(), ctx.Param("factCheckId"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Leaderboard godoc
// @Summary Fact check with its participants
// @Tags Fact Check
// @Produce json
// @Param factCheckId path string true "Fact check ID"
// @Success 200 {object} dto.FactCheckLeaderboardResponse
// @Failure 404 {object} dto.ErrorResponse "Fact Check not found"
// @Router /fact-checks/leaderboards/{factCheckId} [get]
func (c *FactCheckController) Leaderboard(ctx *gin.Context) {
	resp, err := c.factCheckService.Leaderboard(ctx.Request.Context(), ctx.Param("factCheckId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit fact check verdicts
// @Description Answers map fact id to true or false. The reward is score times rewardPerScore.
// @Tags Fact Check
// @Accept json
// @Produce json
// @Param body body dto.SubmitFactCheckRequest true "Verdicts"
// @Success 200 {object} dto.ParticipantFactResponse
// @Failure 403 {object} dto.ErrorResponse "Wallet has not joined"
// @Failure 404 {object} dto.ErrorResponse "Fact Check not found"
// @Router /fact-checks/submit [post]
func (c *FactCheckController) Submit(ctx *gin.Context) {
	var req dto.SubmitFactCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.factCheckService.Submit(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Partially update a fact check
// @Description gameId may be a number, a numeric string or {"hex": "0x.."}.
// @Tags Fact Check
// @Accept json
// @Produce json
// @Param factCheckId path string true "Fact check ID"
// @Param body body dto.UpdateFactCheckRequest true "Fields to change"
// @Success 200 {object} dto.UpdateFactCheckResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid gameId"
// @Failure 404 {object} dto.ErrorResponse "Fact Check not found"
// @Router /fact-checks/update/{factCheckId} [put]
func (c *FactCheckController) Update(ctx *gin.Context) {
	var req dto.UpdateFactCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.factCheckService.Update(ctx.Request.Context(), ctx.Param("factCheckId"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
