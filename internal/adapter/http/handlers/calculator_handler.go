package handlers

import (
	"log"
	"net/http"

	request "drywall_estimator/internal/adapter/http/dto/request"
	response "drywall_estimator/internal/adapter/http/dto/response"
	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler runs a single calculator without touching any session.

type CalculatorHandler struct {
	usecase usecase.IEstimationUseCase
}

func NewCalculatorHandler(uc usecase.IEstimationUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Run a calculator
// @Description  Derives material quantities for one assembly. Invalid dimensions yield an empty list.
// @Tags         calculators
// @Accept       json
// @Produce      json
// @Param        kind     path      string                    true  "grid_ceiling | box_ceiling | flat_ceiling | drywall"
// @Param        payload  body      request.CalculateRequest  true  "Dimensions in meters"
// @Success      200      {object}  response.CalculationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /calculators/{kind} [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	kind := calculator.Kind(c.Param("kind"))

	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[calculator][handler] invalid payload kind=%s err=%v", kind, err)
		abortWithAppError(c, errInvalidCalculatorPayload)
		return
	}

	in := payload.ToInput()
	results, err := h.usecase.Calculate(c.Request.Context(), kind, in)
	if err != nil {
		log.Printf("[calculator][handler] calculate failed kind=%s err=%v", kind, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(kind, in, results))
}

// ListKinds godoc
// @Summary  List calculator kinds
// @Tags     calculators
// @Produce  json
// @Success  200  {array}  string
// @Router   /calculators [get]
func (h *CalculatorHandler) ListKinds(c *gin.Context) {
	kinds := calculator.Kinds()
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	c.JSON(http.StatusOK, out)
}
