package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "nexupay/internal/adapter/http/dto/request"
	response "nexupay/internal/adapter/http/dto/response"
	"nexupay/internal/domain/entities"
	"nexupay/internal/usecase"
	"nexupay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCRMPayload = pkg.NewDomainErrorSimple("INVALID_CRM_INPUT", "Invalid CRM payload", http.StatusBadRequest)

// CRMHandler exposes the unified CRM operations over HTTP. Every endpoint
// talks to the facade; no vendor names appear in the paths.

type CRMHandler struct {
	facade usecase.ICRMFacade
}

func NewCRMHandler(facade usecase.ICRMFacade) *CRMHandler {
	return &CRMHandler{facade: facade}
}

// GetStatus reports configuration state for every registered vendor.
func (h *CRMHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.GetAvailableCRMs())
}

// SetActive overrides the detected vendor.
func (h *CRMHandler) SetActive(c *gin.Context) {
	var payload request.SetActiveCRMRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}

	if err := h.facade.SetActiveCRM(payload.CRM); err != nil {
		appErr := mapCRMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[crm][handler] active crm set crm=%s", payload.CRM)

	c.JSON(http.StatusOK, h.facade.GetAvailableCRMs())
}

// FullSync pulls contacts, debts and optionally activities from the active
// vendor in one shot.
func (h *CRMHandler) FullSync(c *gin.Context) {
	var payload request.FullSyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
			return
		}
	}

	res := h.facade.FullSync(c.Request.Context(), entities.FullSyncOptions{IncludeHistory: payload.IncludeHistory})
	if !res.Success {
		c.JSON(syncFailureStatus(res.Error), res)
		return
	}

	c.JSON(http.StatusOK, res)
}

// IncrementalSync pulls vendor changes after the caller-supplied timestamp.
func (h *CRMHandler) IncrementalSync(c *gin.Context) {
	var payload request.IncrementalSyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}
	since, err := payload.ResolveSince()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SINCE", "since must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := h.facade.IncrementalSync(c.Request.Context(), since)
	if !res.Success {
		c.JSON(syncFailureStatus(res.Error), res)
		return
	}

	c.JSON(http.StatusOK, res)
}

// SyncContacts pushes a batch of contacts to the active vendor. Partial
// failure is normal; the per-contact results tell the story.
func (h *CRMHandler) SyncContacts(c *gin.Context) {
	var payload request.ContactBatchSyncRequest
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Contacts) == 0 {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}

	res := h.facade.SyncContacts(c.Request.Context(), payload.ToEntities())
	log.Printf("[crm][handler] batch sync done total=%d successful=%d failed=%d", res.Total, res.Successful, res.Failed)

	c.JSON(http.StatusOK, res)
}

// GetContacts lists vendor contacts, optionally filtered by email or RUT.
func (h *CRMHandler) GetContacts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filters := entities.ContactFilters{
		Email: c.Query("email"),
		RUT:   c.Query("rut"),
		Limit: limit,
	}

	contacts, err := h.facade.GetContacts(c.Request.Context(), filters)
	if err != nil {
		appErr := mapCRMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebtors(contacts))
}

// GetDebts imports debt records from the active vendor.
func (h *CRMHandler) GetDebts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filters := entities.DebtFilters{
		Status:    entities.DebtStatus(c.Query("status")),
		ContactID: c.Query("contact_id"),
		Limit:     limit,
	}

	debts, err := h.facade.ImportDebts(c.Request.Context(), filters)
	if err != nil {
		appErr := mapCRMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebts(debts))
}

// CreateAgreement opens a payment agreement (deal) in the active vendor.
func (h *CRMHandler) CreateAgreement(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}
	agreement, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := h.facade.CreatePaymentAgreement(c.Request.Context(), agreement)
	if !res.Success {
		c.JSON(syncFailureStatus(res.Error), res)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// UpdateAgreement updates an existing agreement by its vendor id.
func (h *CRMHandler) UpdateAgreement(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}
	agreement, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := h.facade.UpdatePaymentAgreement(c.Request.Context(), c.Param("id"), agreement)
	if !res.Success {
		c.JSON(syncFailureStatus(res.Error), res)
		return
	}

	c.JSON(http.StatusOK, res)
}

// LogActivity records a collection activity against a vendor contact.
func (h *CRMHandler) LogActivity(c *gin.Context) {
	var payload request.ActivityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCRMPayload.HTTPStatus, errInvalidCRMPayload.ToHTTPError())
		return
	}
	activity, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := h.facade.LogActivity(c.Request.Context(), activity)
	if !res.Success {
		c.JSON(syncFailureStatus(res.Error), res)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetContactHistory returns a vendor contact's full activity history.
func (h *CRMHandler) GetContactHistory(c *gin.Context) {
	activities, err := h.facade.GetContactHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCRMError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivities(activities))
}

func mapCRMError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownCRM):
		return pkg.NewDomainErrorSimple("UNKNOWN_CRM", "Unknown CRM vendor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoCRMConfigured):
		return pkg.NewDomainErrorSimple("NO_CRM_CONFIGURED", "No CRM is configured", http.StatusConflict)
	default:
		return pkg.NewDomainError("CRM_UNAVAILABLE", "The CRM request failed", err, http.StatusBadGateway)
	}
}

// syncFailureStatus picks the HTTP status for a failed result struct. The
// facade reports "no crm configured" inside the result, not as a Go error.
func syncFailureStatus(errMsg string) int {
	if errMsg == usecase.ErrNoCRMConfigured.Error() {
		return http.StatusConflict
	}
	return http.StatusBadGateway
}
