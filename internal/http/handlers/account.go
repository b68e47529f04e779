package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/swiftparcel/swiftparcel-backend/internal/http/response"
	"github.com/swiftparcel/swiftparcel-backend/internal/services"
)

type AccountHandler struct {
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) GetMe(c *gin.Context) {
	acct, err := h.accountService.GetMe(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"account": acct})
}
