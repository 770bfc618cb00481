package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SageMyrloc/FinalProject/internal/middleware"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	authService    *service.AuthService
	catalogService *service.CatalogService
	historyService *service.HistoryService
}

func NewPageHandler(authService *service.AuthService, catalogService *service.CatalogService, historyService *service.HistoryService) *PageHandler {
	if authService == nil || catalogService == nil || historyService == nil {
		panic("services cannot be nil for PageHandler")
	}
	return &PageHandler{authService: authService, catalogService: catalogService, historyService: historyService}
}

// Static returns a handler rendering a template that needs no data.
func (h *PageHandler) Static(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}

func (h *PageHandler) Menu(c *gin.Context) {
	c.HTML(http.StatusOK, "menu.html", gin.H{"Username": middleware.Username(c)})
}

func (h *PageHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	tax, err := h.catalogService.Taxonomies(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "additem.html", gin.H{
		"UserID":         userID,
		"Categories":     tax.Categories,
		"ApplianceTypes": tax.ApplianceTypes,
		"FoodTypes":      tax.FoodTypes,
		"TransportTypes": tax.TransportTypes,
	})
}

func (h *PageHandler) ViewData(c *gin.Context) {
	c.HTML(http.StatusOK, "viewdata.html", gin.H{"Username": middleware.Username(c)})
}

// UserLog renders /userlog/:page. Pages outside the valid range redirect to
// the nearest valid one.
func (h *PageHandler) UserLog(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		c.Redirect(http.StatusFound, "/userlog/1")
		return
	}
	userID, _ := middleware.UserID(c)

	result, err := h.historyService.ListUserLogs(c.Request.Context(), userID, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	if page > result.TotalPages {
		c.Redirect(http.StatusFound, "/userlog/"+strconv.Itoa(result.TotalPages))
		return
	}

	c.HTML(http.StatusOK, "userlog.html", gin.H{
		"Username":   middleware.Username(c),
		"Flashes":    h.authService.Flashes(c.Request.Context(), middleware.SessionID(c)),
		"Entries":    result.Entries,
		"Page":       result.Page,
		"TotalPages": result.TotalPages,
		"Total":      result.Total,
		"HasPrev":    result.HasPrev(),
		"HasNext":    result.HasNext(),
	})
}

// DeleteLog handles POST /delete_log/:log_id and always lands on the first
// history page with a flash describing the outcome.
func (h *PageHandler) DeleteLog(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	sessionID := middleware.SessionID(c)
	ctx := c.Request.Context()

	category, message := "success", "Log deleted successfully"
	logID, err := strconv.ParseUint(c.Param("log_id"), 10, 64)
	if err != nil || logID == 0 {
		category, message = "danger", "Error deleting log: invalid log id."
	} else if err := h.historyService.DeleteLog(ctx, userID, uint(logID)); err != nil {
		category = "danger"
		if errors.Is(err, service.ErrLogNotFound) {
			message = "Error deleting log: log not found."
		} else {
			message = "Error deleting log. Please try again."
		}
	}

	if err := h.authService.AddFlash(ctx, sessionID, category, message); err != nil {
		logrus.WithError(err).Warn("Handler.DeleteLog: Could not store flash message")
	}
	c.Redirect(http.StatusFound, "/userlog/1")
}

func (h *PageHandler) fail(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Failed to render page")
	}
	c.String(status, http.StatusText(status))
}
