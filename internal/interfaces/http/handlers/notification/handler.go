package notification

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vox/internal/application/notification/usecases"
	"vox/internal/shared/logger"
	"vox/internal/shared/utils"
)

// Handler exposes the per-user inbox and notification preferences.
type Handler struct {
	listUC        *usecases.ListNotificationsUseCase
	markReadUC    *usecases.MarkAsReadUseCase
	markAllReadUC *usecases.MarkAllAsReadUseCase
	getPrefsUC    *usecases.GetPreferencesUseCase
	updatePrefsUC *usecases.UpdatePreferencesUseCase
	logger        logger.Interface
}

func NewHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkAsReadUseCase,
	markAllReadUC *usecases.MarkAllAsReadUseCase,
	getPrefsUC *usecases.GetPreferencesUseCase,
	updatePrefsUC *usecases.UpdatePreferencesUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		getPrefsUC:    getPrefsUC,
		updatePrefsUC: updatePrefsUC,
		logger:        logger,
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     utils.ContextUserID(c),
		UnreadOnly: c.Query("unread") == "true",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", ListResponse{
		Items:       result.Items,
		Total:       result.Total,
		UnreadCount: result.UnreadCount,
	})
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	notificationID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		NotificationID: notificationID,
		UserID:         utils.ContextUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Notification marked as read", nil)
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	updated, err := h.markAllReadUC.Execute(c.Request.Context(), utils.ContextUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "All notifications marked as read", MarkAllResponse{Updated: updated})
}

func (h *Handler) GetPreferences(c *gin.Context) {
	result, err := h.getPrefsUC.Execute(c.Request.Context(), utils.ContextUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update preferences", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePrefsUC.Execute(c.Request.Context(), usecases.UpdatePreferencesCommand{
		UserID:                    utils.ContextUserID(c),
		EmailEnabled:              req.EmailEnabled,
		PushEnabled:               req.PushEnabled,
		HighPriorityAlertsEnabled: req.HighPriorityAlertsEnabled,
		WeeklyDigestEnabled:       req.WeeklyDigestEnabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Preferences updated successfully", result)
}
