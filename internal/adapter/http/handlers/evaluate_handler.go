package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "lotwise/internal/adapter/http/dto/request"
	response "lotwise/internal/adapter/http/dto/response"
	"lotwise/internal/usecase"
	"lotwise/pkg"
)

var (
	errInvalidEvaluatePayload = pkg.NewDomainErrorSimple("INVALID_EVALUATE_INPUT", "Invalid evaluation payload", http.StatusBadRequest)
)

// EvaluateHandler handles subdivision feasibility evaluation requests.

type EvaluateHandler struct {
	usecase usecase.IEvaluateUseCase
}

func NewEvaluateHandler(uc usecase.IEvaluateUseCase) *EvaluateHandler {
	return &EvaluateHandler{usecase: uc}
}

// Evaluate computes subdivision scenarios for a property.
//
// @Summary      Evaluate subdivision feasibility
// @Description  Enriches the request against the zoning catalog, estimates lot yield and returns ranked profitability scenarios with advice and sensitivity bands.
// @Tags         evaluate
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EvaluateRequest  true  "Property, assumptions, market benchmarks and optional scenario settings"
// @Success      200      {object}  response.EvaluationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /evaluate [post]
func (h *EvaluateHandler) Evaluate(c *gin.Context) {
	var payload request.EvaluateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvaluatePayload.HTTPStatus, errInvalidEvaluatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Evaluate(c.Request.Context(), payload.ToEvaluation())
	if err != nil {
		appErr := mapEvaluateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvaluation(result))
}

func mapEvaluateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLandArea):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
