package handler

import (
	"net/http"

	"nurture_backend/internal/leads/management"
	"nurture_backend/internal/leads/nurture"
	"nurture_backend/internal/leads/scheduling"
	"nurture_backend/internal/leads/transport"
	"nurture_backend/platform/httpkit"
	"nurture_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	mgmtSvc       *management.Service
	schedulingSvc *scheduling.Service
	nurtureSvc    *nurture.Service
	val           *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new leads handler.
func New(mgmtSvc *management.Service, schedulingSvc *scheduling.Service, nurtureSvc *nurture.Service, val *validator.Validator) *Handler {
	return &Handler{
		mgmtSvc:       mgmtSvc,
		schedulingSvc: schedulingSvc,
		nurtureSvc:    nurtureSvc,
		val:           val,
	}
}

// RegisterRoutes mounts lead routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/follow-ups", h.ListNeedingFollowUp)
	rg.GET("/:id", h.GetDetails)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/interactions", h.LogInteraction)
	rg.GET("/:id/follow-up-context", h.GetFollowUpContext)
	rg.GET("/:id/nurture-suggestion", h.GetNurtureSuggestion)
	rg.POST("/:id/follow-ups", h.ScheduleFollowUp)
	rg.POST("/:id/follow-ups/suggestions", h.SuggestFollowUpMessages)
}

func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req transport.CreateContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contact, err := h.mgmtSvc.Create(c.Request.Context(), identity.AgentID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, contact)
}

func (h *Handler) GetDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	details, err := h.mgmtSvc.GetDetails(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, details)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateContactRequest
	if !h.bindJSON(c, &req) {
		return
	}

	contact, err := h.mgmtSvc.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, contact)
}

func (h *Handler) LogInteraction(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.LogInteractionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.mgmtSvc.LogInteraction(c.Request.Context(), id, identity.AgentID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, result)
}

func (h *Handler) ListNeedingFollowUp(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var query transport.ListFollowUpsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	days := h.mgmtSvc.FollowUpDays()
	if query.Days != nil {
		days = *query.Days
	}

	var agentFilter *uuid.UUID
	if query.Scope != "all" {
		agentID := identity.AgentID()
		agentFilter = &agentID
	}

	result, err := h.mgmtSvc.FindLeadsNeedingFollowUp(c.Request.Context(), agentFilter, days)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) GetFollowUpContext(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.nurtureSvc.GetFollowUpContext(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) GetNurtureSuggestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.nurtureSvc.CreateNurtureSuggestion(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) ScheduleFollowUp(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.ScheduleFollowUpRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.schedulingSvc.ScheduleFollowUp(c.Request.Context(), id, identity.AgentID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, result)
}

func (h *Handler) SuggestFollowUpMessages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.FollowUpSuggestionsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.nurtureSvc.SuggestFollowUpMessages(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return uuid.UUID{}, false
	}
	return id, true
}
