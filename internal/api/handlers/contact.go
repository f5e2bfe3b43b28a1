package handlers

import (
	"errors"
	"net/http"
	"time"

	"contactrelay/internal/api/constants"
	"contactrelay/internal/api/dto/common"
	"contactrelay/internal/api/dto/v1/contact"
	"contactrelay/internal/service"
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	notifier service.Notifier
}

func NewContactHandler(notifier service.Notifier) *ContactHandler {
	return &ContactHandler{
		notifier: notifier,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgInternalError)
		return
	}

	contactPtr, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.MsgInternalError)
		return
	}

	err := h.notifier.SendContactMessage(c.Request.Context(), service.ContactMessage{
		Name:        contactPtr.Name,
		Email:       contactPtr.Email,
		Message:     contactPtr.Message,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgConfigError)
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgInternalError)
		return
	}

	utils.HandleSuccess(c, common.MsgContactSubmitted)
}
