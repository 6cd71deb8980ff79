package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/metrics"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// AdminHandler provides HTTP handlers for the admin panel.
type AdminHandler struct {
	adminService service.AdminService
	catalog      service.CatalogService
}

// NewAdminHandler creates a new admin panel handler.
func NewAdminHandler(adminService service.AdminService, catalog service.CatalogService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		catalog:      catalog,
	}
}

// Login handles POST /api/admin/login requests.
//
// @Summary      Admin login
// @Description  Checks the admin credentials and returns a bearer token for the admin routes.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.AdminLoginRequest true "Admin credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.AdminToken}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Invalid credentials"
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.AdminLoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		auditError(c, model.ActionAdminLogin, "Failed admin login attempt", err, map[string]interface{}{
			"username": req.Username,
		})
		builder.DomainError(err)
		return
	}

	audit(c, model.ActionAdminLogin, "Admin logged in", map[string]interface{}{
		"username": token.Username,
	})
	builder.SuccessOK(token)
}

// Dashboard handles GET /api/admin/dashboard requests.
//
// @Summary      Admin dashboard
// @Description  Counts total and available entries per menu category.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=[]service.CategoryStats}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.Dashboard())
}

// ListCategory handles GET /api/admin/menu/:category requests.
//
// @Summary      List a menu category
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category"
// @Success      200 {object} dto.SuccessResponse{data=[]model.CatalogEntry}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown category"
// @Security     BearerAuth
// @Router       /api/admin/menu/{category} [get]
func (h *AdminHandler) ListCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	entries, err := h.catalog.List(category)
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessOK(entries)
}

// AddEntry handles POST /api/admin/menu/:category requests.
//
// @Summary      Add a menu entry
// @Description  Stores an entry under its key, replacing an existing entry with the same key. Returns 201 for a new key and 200 for a replacement.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category"
// @Param        request body model.CatalogEntry true "Menu entry"
// @Success      200 {object} dto.SuccessResponse{data=model.CatalogEntry}
// @Success      201 {object} dto.SuccessResponse{data=model.CatalogEntry}
// @Failure      400 {object} dto.ErrorResponse "Invalid entry"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown category"
// @Security     BearerAuth
// @Router       /api/admin/menu/{category} [post]
func (h *AdminHandler) AddEntry(c *gin.Context) {
	builder := NewResponseBuilder(c)
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	entry, err := BuildRequest[model.CatalogEntry](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	stored, created, err := h.catalog.Add(category, *entry)
	if err != nil {
		builder.DomainError(err)
		return
	}

	h.recordMutation(c, model.ActionCatalogAdd, service.CatalogOpAdd, category, stored.Key, map[string]interface{}{
		"created": created,
	})
	if created {
		builder.SuccessCreated(stored)
		return
	}
	builder.SuccessOK(stored)
}

// UpdateEntry handles PATCH /api/admin/menu/:category/:key requests.
//
// @Summary      Update a menu entry
// @Description  Merges the given fields into an existing entry.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category"
// @Param        key path string true "Entry key"
// @Param        request body model.CatalogEntryPatch true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.CatalogEntry}
// @Failure      400 {object} dto.ErrorResponse "Invalid entry"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown category or entry"
// @Security     BearerAuth
// @Router       /api/admin/menu/{category}/{key} [patch]
func (h *AdminHandler) UpdateEntry(c *gin.Context) {
	builder := NewResponseBuilder(c)
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	patch, err := BuildRequest[model.CatalogEntryPatch](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	key := c.Param("key")
	entry, err := h.catalog.Update(category, key, *patch)
	if err != nil {
		builder.DomainError(err)
		return
	}

	h.recordMutation(c, model.ActionCatalogUpdate, service.CatalogOpUpdate, category, key, nil)
	builder.SuccessOK(entry)
}

// RemoveEntry handles DELETE /api/admin/menu/:category/:key requests.
//
// @Summary      Remove a menu entry
// @Tags         Admin
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category"
// @Param        key path string true "Entry key"
// @Success      204 "Removed"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown category or entry"
// @Security     BearerAuth
// @Router       /api/admin/menu/{category}/{key} [delete]
func (h *AdminHandler) RemoveEntry(c *gin.Context) {
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	key := c.Param("key")
	if err := h.catalog.Remove(category, key); err != nil {
		NewResponseBuilder(c).DomainError(err)
		return
	}

	h.recordMutation(c, model.ActionCatalogRemove, service.CatalogOpRemove, category, key, nil)
	c.Status(http.StatusNoContent)
}

// ToggleEntry handles POST /api/admin/menu/:category/:key/toggle requests.
//
// @Summary      Toggle availability
// @Description  Flips the available flag of an entry. Unavailable entries stay on the menu but cannot be ordered.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category"
// @Param        key path string true "Entry key"
// @Success      200 {object} dto.SuccessResponse{data=model.CatalogEntry}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Unknown category or entry"
// @Security     BearerAuth
// @Router       /api/admin/menu/{category}/{key}/toggle [post]
func (h *AdminHandler) ToggleEntry(c *gin.Context) {
	builder := NewResponseBuilder(c)
	category, ok := parseCategory(c)
	if !ok {
		return
	}

	key := c.Param("key")
	entry, err := h.catalog.ToggleAvailability(category, key)
	if err != nil {
		builder.DomainError(err)
		return
	}

	h.recordMutation(c, model.ActionCatalogToggle, service.CatalogOpToggle, category, key, map[string]interface{}{
		"available": entry.Available,
	})
	builder.SuccessOK(entry)
}

// GetInfo handles GET /api/admin/info requests.
//
// @Summary      Read pizzeria info
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=model.PizzeriaInfo}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/admin/info [get]
func (h *AdminHandler) GetInfo(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.Info())
}

// UpdateInfo handles PATCH /api/admin/info requests.
//
// @Summary      Update pizzeria info
// @Description  Merges the given fields into the pizzeria contact and delivery data. The delivery fee applies to orders submitted afterwards.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body model.PizzeriaInfoPatch true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.PizzeriaInfo}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/admin/info [patch]
func (h *AdminHandler) UpdateInfo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	patch, err := BuildRequest[model.PizzeriaInfoPatch](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if patch.DeliveryFee != nil && *patch.DeliveryFee < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	info := h.catalog.UpdateInfo(*patch)

	metrics.RecordCatalogMutation(service.CatalogOpInfo, "")
	audit(c, model.ActionInfoUpdate, "Pizzeria info updated", nil)
	builder.SuccessOK(info)
}

// Activity handles GET /api/admin/activity requests.
//
// @Summary      Admin activity feed
// @Description  Lists audit entries (logins, menu changes, submitted and dispatched orders), newest first. Needs the MongoDB audit store.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        action query string false "Action type" Enums(admin_login, catalog_add, catalog_update, catalog_remove, catalog_toggle, info_update, checkout_submit, order_dispatched)
// @Param        actor query string false "Admin username or customer name"
// @Param        session_id query string false "Customer session"
// @Param        level query string false "Level" Enums(debug, info, warn, error)
// @Param        since query string false "RFC 3339 lower bound"
// @Param        limit query int false "Page size (default 50, max 200)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=model.ActivityPage}
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      503 {object} dto.ErrorResponse "Audit store disabled or unreachable"
// @Security     BearerAuth
// @Router       /api/admin/activity [get]
func (h *AdminHandler) Activity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	ls := loggingService(c)
	if ls == nil {
		builder.DomainError(service.ErrAuditUnavailable)
		return
	}

	page, err := ls.Activity(c.Request.Context(), query.Options())
	if err != nil {
		builder.DomainError(err)
		return
	}
	builder.SuccessOK(page)
}

func (h *AdminHandler) recordMutation(c *gin.Context, action, op string, category model.Category, key string, extra map[string]interface{}) {
	metrics.RecordCatalogMutation(op, string(category))

	fields := map[string]interface{}{
		"category": string(category),
		"key":      key,
	}
	for k, v := range extra {
		fields[k] = v
	}
	audit(c, action, "Menu entry changed", fields)
}

// parseCategory reads the :category path parameter, writing a 404 for
// unknown categories.
func parseCategory(c *gin.Context) (model.Category, bool) {
	category, ok := model.ParseCategory(c.Param("category"))
	if !ok {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyUnknownCategory, nil)
	}
	return category, ok
}
