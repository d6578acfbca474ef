package feedback

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vox/internal/application/feedback/usecases"
	"vox/internal/shared/logger"
	"vox/internal/shared/utils"
)

// Handler exposes the feedback lifecycle over HTTP. All routes run
// behind the auth middleware, which stores the caller's identity on the
// gin context.
type Handler struct {
	submitUC   *usecases.SubmitFeedbackUseCase
	getUC      *usecases.GetFeedbackUseCase
	listUC     *usecases.ListFeedbackUseCase
	editUC     *usecases.EditFeedbackUseCase
	assignUC   *usecases.AssignFeedbackUseCase
	statusUC   *usecases.UpdateStatusUseCase
	noteUC     *usecases.AddNoteUseCase
	escalateUC *usecases.EscalateFeedbackUseCase
	sweepUC    *usecases.OverdueSweepUseCase
	logger     logger.Interface
}

func NewHandler(
	submitUC *usecases.SubmitFeedbackUseCase,
	getUC *usecases.GetFeedbackUseCase,
	listUC *usecases.ListFeedbackUseCase,
	editUC *usecases.EditFeedbackUseCase,
	assignUC *usecases.AssignFeedbackUseCase,
	statusUC *usecases.UpdateStatusUseCase,
	noteUC *usecases.AddNoteUseCase,
	escalateUC *usecases.EscalateFeedbackUseCase,
	sweepUC *usecases.OverdueSweepUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:   submitUC,
		getUC:      getUC,
		listUC:     listUC,
		editUC:     editUC,
		assignUC:   assignUC,
		statusUC:   statusUC,
		noteUC:     noteUC,
		escalateUC: escalateUC,
		sweepUC:    sweepUC,
		logger:     logger,
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit feedback", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitFeedbackCommand{
		Type:        req.Type,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		IsAnonymous: req.IsAnonymous,
		Department:  req.Department,
		SubmitterID: utils.ContextUserID(c),
		Role:        c.GetString("user_role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, SubmitFeedbackResponse{
		ID:              result.FeedbackID,
		Status:          result.Status,
		Priority:        result.Priority,
		SimilarityGroup: result.SimilarityGroup,
		CreatedAt:       result.CreatedAt,
	}, "Feedback submitted successfully")
}

func (h *Handler) Get(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetFeedbackQuery{
		FeedbackID: feedbackID,
		ViewerID:   utils.ContextUserID(c),
		Role:       c.GetString("user_role"),
		Department: c.GetString("user_department"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *Handler) List(c *gin.Context) {
	limit, offset := paginationParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFeedbackQuery{
		ViewerID:   utils.ContextUserID(c),
		Role:       c.GetString("user_role"),
		Department: c.GetString("user_department"),
		Type:       c.Query("type"),
		Status:     c.Query("status"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

func (h *Handler) Edit(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for edit feedback", "feedback_id", feedbackID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editUC.Execute(c.Request.Context(), usecases.EditFeedbackCommand{
		FeedbackID:  feedbackID,
		ActorID:     utils.ContextUserID(c),
		Role:        c.GetString("user_role"),
		Type:        req.Type,
		Category:    req.Category,
		Subject:     req.Subject,
		Description: req.Description,
		IsAnonymous: req.IsAnonymous,
		Department:  req.Department,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Feedback updated successfully", result)
}

func (h *Handler) Assign(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign feedback", "feedback_id", feedbackID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignFeedbackCommand{
		FeedbackID: feedbackID,
		AssignerID: utils.ContextUserID(c),
		Role:       c.GetString("user_role"),
		Department: c.GetString("user_department"),
		AssigneeID: req.AssigneeID,
		DueAt:      req.DueAt,
		Note:       req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Feedback assigned successfully", result)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "feedback_id", feedbackID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.statusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		FeedbackID:        feedbackID,
		ActorID:           utils.ContextUserID(c),
		Role:              c.GetString("user_role"),
		Department:        c.GetString("user_department"),
		Status:            req.Status,
		Note:              req.Note,
		ResolutionSummary: req.ResolutionSummary,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Status updated successfully", result)
}

func (h *Handler) AddNote(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "feedback_id", feedbackID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.noteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		FeedbackID: feedbackID,
		AuthorID:   utils.ContextUserID(c),
		Role:       c.GetString("user_role"),
		Department: c.GetString("user_department"),
		Text:       req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}

func (h *Handler) Escalate(c *gin.Context) {
	feedbackID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.escalateUC.Execute(c.Request.Context(), usecases.EscalateFeedbackCommand{
		FeedbackID: feedbackID,
		ActorID:    utils.ContextUserID(c),
		Role:       c.GetString("user_role"),
		Department: c.GetString("user_department"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Feedback escalated", nil)
}

// SweepOverdue triggers an immediate overdue pass, in addition to the
// scheduled one. Restricted to administrators by route middleware.
func (h *Handler) SweepOverdue(c *gin.Context) {
	alerted, err := h.sweepUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Overdue sweep completed", SweepResponse{Alerted: alerted})
}

func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
