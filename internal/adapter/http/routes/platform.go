package routes

import (
	"nexupay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDebtors  = "/debtors"
	PathDebts    = "/debts"
	PathWebhooks = "/webhooks"
)

func addPlatformRoutes(rg *gin.RouterGroup, debtorHandler *handlers.DebtorHandler, webhookHandler *handlers.WebhookHandler) {
	debtors := rg.Group(PathDebtors)
	{
		debtors.POST("", debtorHandler.RegisterDebtor)
		debtors.GET("", debtorHandler.ListDebtors)
		debtors.GET("/:id", debtorHandler.GetDebtor)
		debtors.GET("/:id/debts", debtorHandler.ListDebtorDebts)
	}

	debts := rg.Group(PathDebts)
	{
		debts.POST("", debtorHandler.CreateDebt)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", webhookHandler.PaymentNotification)
	}
}
