package quiz

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizforge/internal/controller"
	"github.com/lshigami/quizforge/internal/dto"
	"github.com/lshigami/quizforge/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	maxPDFSize         = 20 << 20
	pdfTooLargeMessage = "PDF file exceeds the 20MB limit."
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// RegisterRoutes mounts the quiz endpoints on rg, normally /api/quiz.
func (c *QuizController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/leaderboards/:quizId", c.Leaderboard)
	rg.POST("/verify/:quizId", c.Verify)
	rg.POST("/create/prompt", c.CreateFromPrompt)
	rg.POST("/create/url", c.CreateFromURL)
	rg.POST("/create/video", c.CreateFromVideo)
	rg.POST("/create/pdf", c.CreateFromPDF)
	rg.POST("/join/:quizId", c.Join)
	rg.POST("/submit", c.Submit)
	rg.PUT("/update/:quizId", c.Update)
	rg.PUT("/update-nft-token-id", c.UpdateNFTTokenID)
}

// CreateFromPrompt godoc
// @Summary Create a quiz from a free text prompt
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreatePromptQuizRequest true "Quiz settings and prompt"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or no usable questions"
// @Failure 502 {object} dto.ErrorResponse "No generation backend answered"
// @Router /quiz/create/prompt [post]
func (c *QuizController) CreateFromPrompt(ctx *gin.Context) {
	var req dto.CreatePromptQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.CreateFromPrompt(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateFromURL godoc
// @Summary Create a quiz from a web page
// @Description The page is fetched, stripped to visible text and must yield at least 100 characters.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateURLQuizRequest true "Quiz settings and websiteUrl"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid URL, unreachable page or too little content"
// @Failure 502 {object} dto.ErrorResponse "No generation backend answered"
// @Router /quiz/create/url [post]
func (c *QuizController) CreateFromURL(ctx *gin.Context) {
	var req dto.CreateURLQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.CreateFromURL(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateFromVideo godoc
// @Summary Create a quiz from a YouTube video
// @Description Content comes from the transcript, one of two summarizers, or the title and description.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quiz body dto.CreateVideoQuizRequest true "Quiz settings and ytVideoUrl"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid video URL or unknown video"
// @Failure 502 {object} dto.ErrorResponse "No generation backend answered"
// @Router /quiz/create/video [post]
func (c *QuizController) CreateFromVideo(ctx *gin.Context) {
	var req dto.CreateVideoQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.CreateFromVideo(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateFromPDF godoc
// @Summary Create a quiz from an uploaded PDF
// @Tags Quiz
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Param creatorName formData string true "Creator name"
// @Param creatorWallet formData string true "Creator wallet"
// @Param numParticipants formData int true "Maximum participants"
// @Param totalCost formData number false "Total cost"
// @Param questionCount formData int true "Number of questions"
// @Param rewardPerScore formData number false "Reward per correct answer"
// @Param isPublic formData bool false "Whether the quiz is public"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file, unreadable PDF or no usable questions"
// @Failure 413 {object} dto.ErrorResponse "PDF larger than 20MB"
// @Failure 502 {object} dto.ErrorResponse "No generation backend answered"
// @Router /quiz/create/pdf [post]
func (c *QuizController) CreateFromPDF(ctx *gin.Context) {
	var form dto.CreatePDFQuizForm
	if err := ctx.ShouldBind(&form); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	header, err := ctx.FormFile("pdf")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No PDF file uploaded."})
		return
	}
	if header.Size > maxPDFSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: pdfTooLargeMessage})
		return
	}
	file, err := header.Open()
	if err != nil {
		log.Warn().Err(err).Str("filename", header.Filename).Msg("Failed to open uploaded PDF")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No PDF file uploaded."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPDFSize+1))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if len(data) > maxPDFSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: pdfTooLargeMessage})
		return
	}
	resp, err := c.quizService.CreateFromPDF(ctx.Request.Context(), form, data)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Verify godoc
// @Summary Check whether a wallet may play a quiz
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param body body dto.VerifyRequest true "Wallet address"
// @Success 200 {object} dto.QuizResponse
// @Failure 403 {object} dto.ErrorResponse "Private, already played or full"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/verify/{quizId} [post]
func (c *QuizController) Verify(ctx *gin.Context) {
	var req dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.Verify(ctx.Request.Context(), ctx.Param("quizId"), req.WalletAddress)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Join godoc
// @Summary Join a quiz
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param body body dto.JoinRequest true "Wallet and display name"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 403 {object} dto.ErrorResponse "Private, already played or full"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/join/{quizId} [post]
func (c *QuizController) Join(ctx *gin.Context) {
	var req dto.JoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.Join(ctx.Request.Context(), ctx.Param("quizId"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Leaderboard godoc
// @Summary Quiz with its participants
// @Tags Quiz
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} dto.QuizLeaderboardResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/leaderboards/{quizId} [get]
func (c *QuizController) Leaderboard(ctx *gin.Context) {
	resp, err := c.quizService.Leaderboard(ctx.Request.Context(), ctx.Param("quizId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Answers map question id to the chosen option index (0-3) or "no_answer".
// @Tags Quiz
// @Accept json
// @Produce json
// @Param body body dto.SubmitQuizRequest true "Answers"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 403 {object} dto.ErrorResponse "Wallet has not joined"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.Submit(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Partially update a quiz
// @Tags Quiz
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param body body dto.UpdateQuizRequest true "Fields to change"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quiz/update/{quizId} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	var req dto.UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.Update(ctx.Request.Context(), ctx.Param("quizId"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateNFTTokenID godoc
// @Summary Record the NFT minted for a participant
// @Tags Quiz
// @Accept json
// @Produce json
// @Param body body dto.UpdateNFTTokenRequest true "Quiz, wallet and token id"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /quiz/update-nft-token-id [put]
func (c *QuizController) UpdateNFTTokenID(ctx *gin.Context) {
	var req dto.UpdateNFTTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	resp, err := c.quizService.UpdateNFTTokenID(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
