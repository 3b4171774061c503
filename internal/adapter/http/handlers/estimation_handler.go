package handlers

import (
	"log"
	"net/http"

	request "drywall_estimator/internal/adapter/http/dto/request"
	response "drywall_estimator/internal/adapter/http/dto/response"
	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimationHandler handles the estimating session of one salesperson:
// adding estimations, aggregating them and turning them into a draft invoice.

type EstimationHandler struct {
	usecase usecase.IEstimationUseCase
}

func NewEstimationHandler(uc usecase.IEstimationUseCase) *EstimationHandler {
	return &EstimationHandler{usecase: uc}
}

// AddEstimation godoc
// @Summary      Add an estimation to a session
// @Description  Send either a calculator kind with its dimensions, or precomputed results.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                        true  "Session ID"
// @Param        payload     body      request.AddEstimationRequest  true  "Estimation"
// @Success      201         {object}  response.EstimationResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/estimations [post]
func (h *EstimationHandler) AddEstimation(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[estimation][handler] add start session_id=%s", sessionID)

	var payload request.AddEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[estimation][handler] invalid payload session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, errInvalidEstimationPayload)
		return
	}

	kind, err := payload.ResolveKind()
	if err != nil {
		log.Printf("[estimation][handler] invalid payload session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, errInvalidEstimationPayload)
		return
	}

	var created entities.Estimation
	if kind != "" {
		created, err = h.usecase.AddCalculated(c.Request.Context(), sessionID, kind, payload.ToInput(), payload.Description)
	} else {
		created, err = h.usecase.AddEstimation(c.Request.Context(), sessionID, payload.Description, payload.ToResults())
	}
	if err != nil {
		log.Printf("[estimation][handler] add failed session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimation(created))
}

// ListEstimations godoc
// @Summary  List a session's estimations
// @Tags     sessions
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.EstimationListResponse
// @Failure  400         {object}  pkg.HTTPError
// @Router   /sessions/{session_id}/estimations [get]
func (h *EstimationHandler) ListEstimations(c *gin.Context) {
	sessionID := c.Param("session_id")

	list, err := h.usecase.ListEstimations(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[estimation][handler] list failed session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimations(sessionID, list))
}

// RemoveEstimation godoc
// @Summary  Remove one estimation
// @Tags     sessions
// @Param    session_id     path  string  true  "Session ID"
// @Param    estimation_id  path  string  true  "Estimation ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /sessions/{session_id}/estimations/{estimation_id} [delete]
func (h *EstimationHandler) RemoveEstimation(c *gin.Context) {
	sessionID := c.Param("session_id")
	estimationID := c.Param("estimation_id")

	if err := h.usecase.RemoveEstimation(c.Request.Context(), sessionID, estimationID); err != nil {
		log.Printf("[estimation][handler] remove failed session_id=%s estimation_id=%s err=%v", sessionID, estimationID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearEstimations godoc
// @Summary  Remove every estimation of a session
// @Tags     sessions
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.ClearResponse
// @Router   /sessions/{session_id}/estimations [delete]
func (h *EstimationHandler) ClearEstimations(c *gin.Context) {
	sessionID := c.Param("session_id")

	n, err := h.usecase.ClearEstimations(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[estimation][handler] clear failed session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusOK, response.ClearResponse{SessionID: sessionID, Removed: n})
}

// Aggregate godoc
// @Summary  Total material quantities across a session
// @Tags     sessions
// @Produce  json
// @Param    session_id  path      string  true  "Session ID"
// @Success  200         {object}  response.AggregateResponse
// @Router   /sessions/{session_id}/aggregate [get]
func (h *EstimationHandler) Aggregate(c *gin.Context) {
	sessionID := c.Param("session_id")

	aggregated, err := h.usecase.Aggregate(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[estimation][handler] aggregate failed session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAggregate(sessionID, aggregated))
}

// BuildDraftInvoice godoc
// @Summary      Build a draft invoice from a session
// @Description  Aggregates the session, resolves materials against the catalog and stores the draft.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      201         {object}  response.DraftInvoiceResponse
// @Failure      422         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/draft-invoice [post]
func (h *EstimationHandler) BuildDraftInvoice(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[estimation][handler] draft start session_id=%s", sessionID)

	draft, err := h.usecase.BuildDraftInvoice(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[estimation][handler] draft failed session_id=%s err=%v", sessionID, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}
	log.Printf("[estimation][handler] draft success session_id=%s draft_id=%s", sessionID, draft.ID)

	c.JSON(http.StatusCreated, response.FromDraftInvoice(draft))
}

// GetDraftInvoice godoc
// @Summary  Fetch a stored draft invoice
// @Tags     draft-invoices
// @Produce  json
// @Param    id   path      string  true  "Draft invoice ID"
// @Success  200  {object}  response.DraftInvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /draft-invoices/{id} [get]
func (h *EstimationHandler) GetDraftInvoice(c *gin.Context) {
	id := c.Param("id")

	draft, err := h.usecase.GetDraftInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[estimation][handler] get draft failed id=%s err=%v", id, err)
		abortWithAppError(c, mapEstimationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDraftInvoice(draft))
}
