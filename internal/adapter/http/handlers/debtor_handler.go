package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "nexupay/internal/adapter/http/dto/request"
	response "nexupay/internal/adapter/http/dto/response"
	"nexupay/internal/usecase"
	"nexupay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDebtorPayload = pkg.NewDomainErrorSimple("INVALID_DEBTOR_INPUT", "Invalid debtor payload", http.StatusBadRequest)

// DebtorHandler handles HTTP requests for the platform's canonical debtor and
// debt records.

type DebtorHandler struct {
	usecase usecase.IDebtorUseCase
}

func NewDebtorHandler(uc usecase.IDebtorUseCase) *DebtorHandler {
	return &DebtorHandler{usecase: uc}
}

// RegisterDebtor creates a debtor and mirrors it into the active CRM.
func (h *DebtorHandler) RegisterDebtor(c *gin.Context) {
	var payload request.DebtorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebtorPayload.HTTPStatus, errInvalidDebtorPayload.ToHTTPError())
		return
	}

	debtor, err := h.usecase.RegisterDebtor(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDebtorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[debtor][handler] register success debtor_id=%s", debtor.ID)

	c.JSON(http.StatusCreated, response.FromDebtor(debtor))
}

func (h *DebtorHandler) GetDebtor(c *gin.Context) {
	debtor, err := h.usecase.GetDebtor(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDebtorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebtor(debtor))
}

func (h *DebtorHandler) ListDebtors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	debtors, err := h.usecase.ListDebtors(c.Request.Context(), limit)
	if err != nil {
		appErr := mapDebtorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebtors(debtors))
}

// CreateDebt registers a debt against an existing debtor.
func (h *DebtorHandler) CreateDebt(c *gin.Context) {
	var payload request.DebtRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebtorPayload.HTTPStatus, errInvalidDebtorPayload.ToHTTPError())
		return
	}

	debt, err := payload.ToEntity()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDebt(c.Request.Context(), debt)
	if err != nil {
		appErr := mapDebtorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[debtor][handler] debt create success debt_id=%s debtor_id=%s", created.ID, created.DebtorID)

	c.JSON(http.StatusCreated, response.FromDebt(created))
}

func (h *DebtorHandler) ListDebtorDebts(c *gin.Context) {
	debts, err := h.usecase.ListDebtorDebts(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDebtorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebts(debts))
}

func mapDebtorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDebtorID),
		errors.Is(err, usecase.ErrInvalidDebtorEmail),
		errors.Is(err, usecase.ErrInvalidDebtorName),
		errors.Is(err, usecase.ErrInvalidDebtID),
		errors.Is(err, usecase.ErrInvalidDebtAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDebtorAlreadyExists):
		return pkg.NewDomainErrorSimple("DEBTOR_ALREADY_EXISTS", "Debtor already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrDebtorNotFound):
		return pkg.NewDomainErrorSimple("DEBTOR_NOT_FOUND", "Debtor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDebtNotFound):
		return pkg.NewDomainErrorSimple("DEBT_NOT_FOUND", "Debt not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
