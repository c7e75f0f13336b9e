package handler

import (
	"time"

	"cryptopay-gateway/internal/adapter/http/dto"
	"cryptopay-gateway/internal/adapter/http/middleware"
	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the operator endpoints under /api/v1/admin.
type AdminHandler struct {
	feeSvc       ports.FeeService
	reportingSvc ports.ReportingService
	adminSvc     ports.AdminService
	monitor      ports.TransactionMonitor
	auditSvc     ports.AuditService
}

// NewAdminHandler creates a new AdminHandler. auditSvc may be nil.
func NewAdminHandler(
	feeSvc ports.FeeService,
	reportingSvc ports.ReportingService,
	adminSvc ports.AdminService,
	monitor ports.TransactionMonitor,
	auditSvc ports.AuditService,
) *AdminHandler {
	return &AdminHandler{
		feeSvc:       feeSvc,
		reportingSvc: reportingSvc,
		adminSvc:     adminSvc,
		monitor:      monitor,
		auditSvc:     auditSvc,
	}
}

// CreateFee handles POST /api/v1/admin/fees.
func (h *AdminHandler) CreateFee(c *gin.Context) {
	var req dto.FeeSettingRequest
	if !bindJSON(c, &req) {
		return
	}

	fee, err := h.feeSvc.CreateFeeSetting(c.Request.Context(), req.Name, domain.FeeType(req.FeeType), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, fee.ID.String())
	response.Created(c, fee)
}

// ListFees handles GET /api/v1/admin/fees.
func (h *AdminHandler) ListFees(c *gin.Context) {
	fees, err := h.feeSvc.ListFeeSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if fees == nil {
		fees = []domain.FeeSetting{}
	}
	response.OK(c, fees)
}

// ListNotifications handles GET /api/v1/admin/notifications.
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	page, pageSize := pagination(c)
	params := ports.NotificationListParams{
		UnreadOnly: c.Query("unread") == "true",
		Page:       page,
		PageSize:   pageSize,
	}
	if t := c.Query("type"); t != "" {
		nt := domain.NotificationType(t)
		params.Type = &nt
	}

	items, total, err := h.reportingSvc.ListNotifications(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	response.Page(c, items, page, pageSize, total)
}

// NotificationSummary handles GET /api/v1/admin/notifications/summary.
func (h *AdminHandler) NotificationSummary(c *gin.Context) {
	sum, err := h.adminSvc.NotificationSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sum)
}

// MarkNotificationRead handles PATCH /api/v1/admin/notifications/:id/read.
func (h *AdminHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := uuidParam(c, "notification id")
	if !ok {
		return
	}
	if err := h.adminSvc.MarkNotificationRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxAuditResource, id.String())
	response.OK(c, gin.H{"id": id.String(), "is_read": true})
}

// ListMerchants handles GET /api/v1/admin/merchants?status=.
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	page, pageSize := pagination(c)
	params := ports.MerchantListParams{Page: page, PageSize: pageSize}
	if s := c.Query("status"); s != "" {
		status := domain.MerchantStatus(s)
		params.Status = &status
	}

	ms, total, err := h.adminSvc.ListMerchants(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]dto.MerchantProfileResponse, 0, len(ms))
	for i := range ms {
		items = append(items, dto.NewMerchantResponse(&ms[i]))
	}
	response.Page(c, items, page, pageSize, total)
}

// GetMerchant handles GET /api/v1/admin/merchants/:id.
func (h *AdminHandler) GetMerchant(c *gin.Context) {
	id, ok := uuidParam(c, "merchant id")
	if !ok {
		return
	}
	m, err := h.adminSvc.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewMerchantResponse(m))
}

// ListMerchantTransactions handles GET /api/v1/admin/merchants/:id/transactions.
func (h *AdminHandler) ListMerchantTransactions(c *gin.Context) {
	id, ok := uuidParam(c, "merchant id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	txns, total, err := h.adminSvc.ListMerchantTransactions(c.Request.Context(), id, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now()
	items := make([]dto.DepositResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.NewDepositResponse(&txns[i], txns[i].EffectiveStatus(now)))
	}
	response.Page(c, items, page, pageSize, total)
}

// SetMerchantStatus returns the handler for PATCH
// /api/v1/admin/merchants/:id/approve and /block.
func (h *AdminHandler) SetMerchantStatus(action domain.MerchantAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := uuidParam(c, "merchant id")
		if !ok {
			return
		}
		m, err := h.adminSvc.SetMerchantStatus(c.Request.Context(), id, action)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(middleware.CtxAuditResource, m.ID.String())
		response.OK(c, dto.NewMerchantResponse(m))
	}
}

// MerchantStats handles GET /api/v1/admin/stats/merchants/:id.
func (h *AdminHandler) MerchantStats(c *gin.Context) {
	id, ok := uuidParam(c, "merchant id")
	if !ok {
		return
	}
	st, err := h.adminSvc.MerchantStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, st)
}

// AllMerchantStats handles GET /api/v1/admin/stats/merchants.
func (h *AdminHandler) AllMerchantStats(c *gin.Context) {
	page, pageSize := pagination(c)
	items, total, err := h.adminSvc.AllMerchantStats(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []domain.MerchantStats{}
	}
	response.Page(c, items, page, pageSize, total)
}

// PlatformStats handles GET /api/v1/admin/stats/platform.
func (h *AdminHandler) PlatformStats(c *gin.Context) {
	st, err := h.adminSvc.PlatformStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, st)
}

// MonitorStatus handles GET /api/v1/admin/monitor.
func (h *AdminHandler) MonitorStatus(c *gin.Context) {
	active := h.monitor.Active()
	if active == nil {
		active = []string{}
	}
	response.OK(c, dto.MonitorListResponse{Active: active, Count: len(active)})
}

// ListAuditLogs handles GET /api/v1/admin/audit-logs.
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	if h.auditSvc == nil {
		response.Error(c, apperror.ErrNotFound("audit log"))
		return
	}

	page, pageSize := pagination(c)
	params := ports.AuditListParams{Page: page, PageSize: pageSize}
	if raw := c.Query("merchant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("merchant_id must be a UUID"))
			return
		}
		params.MerchantID = &id
	}
	if a := c.Query("action"); a != "" {
		action := domain.AuditAction(a)
		params.Action = &action
	}

	logs, total, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	response.Page(c, logs, page, pageSize, total)
}

func uuidParam(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation(what+" must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
