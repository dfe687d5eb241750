package game

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/controller"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/service"
)

// GameController serves the stateless mini-games. Generation failures are
// absorbed by the service, so every bound request gets a 200.
type GameController struct {
	gameService service.GameService
}

func NewGameController(gameService service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (c *GameController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/typing/words", c.TypingWords)
	api.POST("/memory-challenge/challenge", c.MemoryChallenge)
	api.POST("/fact-check/challenge", c.FactChallenge)
}

// FactChallenge godoc
// @Summary Generate a true/false fact round
// @Tags Games
// @Accept json
// @Produce json
// @Param body body dto.FactChallengeRequest true "Topic and difficulty (easy, medium, hard)"
// @Success 200 {object} dto.FactChallengeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing topic"
// @Router /fact-check/challenge [post]
func (c *GameController) FactChallenge(ctx *gin.Context) {
	var req dto.FactChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	facts := c.gameService.FactChallenge(ctx.Request.Context(), req.Topic, req.Difficulty)
	ctx.JSON(http.StatusOK, dto.FactChallengeResponse{Facts: facts, Message: "Facts Generated Successfully"})
}

// MemoryChallenge godoc
// @Summary Generate an image sequence to memorise
// @Tags Games
// @Accept json
// @Produce json
// @Param body body dto.MemoryChallengeRequest false "Difficulty (easy, medium, hard)"
// @Success 200 {object} dto.MemoryChallengeResponse
// @Router /memory-challenge/challenge [post]
func (c *GameController) MemoryChallenge(ctx *gin.Context) {
	var req dto.MemoryChallengeRequest
	if err := bindOptional(ctx, &req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	challenge := c.gameService.MemoryChallenge(ctx.Request.Context(), req.Difficulty)
	ctx.JSON(http.StatusOK, dto.MemoryChallengeResponse{Challenge: challenge, Message: "Memory Challenge Generated Successfully"})
}

// TypingWords godoc
// @Summary Generate a word list for a typing race
// @Tags Games
// @Accept json
// @Produce json
// @Param body body dto.TypingWordsRequest false "Difficulty and category (common, technical, academic, random)"
// @Success 200 {object} dto.TypingWordsResponse
// @Router /typing/words [post]
func (c *GameController) TypingWords(ctx *gin.Context) {
	var req dto.TypingWordsRequest
	if err := bindOptional(ctx, &req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c.gameService.TypingWords(ctx.Request.Context(), req.Difficulty, req.Category))
}

// bindOptional accepts an empty body and leaves the defaults to the service.
func bindOptional(ctx *gin.Context, obj any) error {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
