package routes

import (
	"nexupay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCRM = "/crm"

func addCRMRoutes(rg *gin.RouterGroup, crmHandler *handlers.CRMHandler) {
	crm := rg.Group(PathCRM)
	{
		crm.GET("/status", crmHandler.GetStatus)
		crm.PUT("/active", crmHandler.SetActive)

		crm.POST("/sync/full", crmHandler.FullSync)
		crm.POST("/sync/incremental", crmHandler.IncrementalSync)

		crm.POST("/contacts/sync", crmHandler.SyncContacts)
		crm.GET("/contacts", crmHandler.GetContacts)
		crm.GET("/contacts/:id/history", crmHandler.GetContactHistory)

		crm.GET("/debts", crmHandler.GetDebts)

		crm.POST("/agreements", crmHandler.CreateAgreement)
		crm.PUT("/agreements/:id", crmHandler.UpdateAgreement)

		crm.POST("/activities", crmHandler.LogActivity)
	}
}
