package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/middleware"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

// ActivityHandler records activities and serves chart data.
type ActivityHandler struct {
	activityService *service.ActivityService
	historyService  *service.HistoryService
}

func NewActivityHandler(activityService *service.ActivityService, historyService *service.HistoryService) *ActivityHandler {
	if activityService == nil || historyService == nil {
		panic("ActivityService and HistoryService cannot be nil for ActivityHandler")
	}
	return &ActivityHandler{activityService: activityService, historyService: historyService}
}

// UserID in the log requests is optional and only cross-checked against the
// session; records always belong to the session user.

type LogApplianceRequest struct {
	UserID        *uint    `json:"userID"`
	ApplianceName string   `json:"applianceName"`
	UsageTime     float64  `json:"usageTime"`
	Wattage       *float64 `json:"wattage"`
	LogTime       string   `json:"logTime"`
}

type LogTransportRequest struct {
	UserID        *uint   `json:"userID"`
	TransportName string  `json:"transportName"`
	Distance      float64 `json:"distance"`
	LogTime       string  `json:"logTime"`
}

type LogFoodRequest struct {
	UserID   *uint   `json:"userID"`
	FoodName string  `json:"foodName"`
	Quantity float64 `json:"quantity"`
	LogTime  string  `json:"logTime"`
}

var missingLogFields = WithMessage(service.ErrMissingFields, "Missing required fields.")

// LogAppliance handles POST /api/log-appliance.
func (h *ActivityHandler) LogAppliance(c *gin.Context) {
	var req LogApplianceRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := h.sessionUser(c, req.UserID)
	if !ok {
		return
	}

	_, err := h.activityService.LogAppliance(c.Request.Context(), userID, service.ApplianceUsage{
		ApplianceName: req.ApplianceName,
		UsageHours:    req.UsageTime,
		Wattage:       req.Wattage,
		LogTime:       req.LogTime,
	})
	if err != nil {
		HandleServiceError(c, err, missingLogFields, WithMessage(service.ErrItemNotFound, "Appliance not found."))
		return
	}
	SuccessResponse(c, http.StatusOK, "Appliance logged successfully.")
}

// LogTransport handles POST /api/log-transport.
func (h *ActivityHandler) LogTransport(c *gin.Context) {
	var req LogTransportRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := h.sessionUser(c, req.UserID)
	if !ok {
		return
	}

	_, err := h.activityService.LogTransport(c.Request.Context(), userID, service.Journey{
		TransportName: req.TransportName,
		DistanceMiles: req.Distance,
		LogTime:       req.LogTime,
	})
	if err != nil {
		HandleServiceError(c, err, missingLogFields, WithMessage(service.ErrItemNotFound, "Transport type not found."))
		return
	}
	SuccessResponse(c, http.StatusOK, "Transport logged successfully!")
}

// LogFood handles POST /api/log-food.
func (h *ActivityHandler) LogFood(c *gin.Context) {
	var req LogFoodRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := h.sessionUser(c, req.UserID)
	if !ok {
		return
	}

	_, err := h.activityService.LogFood(c.Request.Context(), userID, service.FoodPortion{
		FoodName:   req.FoodName,
		QuantityKg: req.Quantity,
		LogTime:    req.LogTime,
	})
	if err != nil {
		HandleServiceError(c, err, missingLogFields, WithMessage(service.ErrItemNotFound, "Food item not found."))
		return
	}
	SuccessResponse(c, http.StatusOK, "Food logged successfully!")
}

// ActivityData handles GET /api/activity-data?start=&end=.
func (h *ActivityHandler) ActivityData(c *gin.Context) {
	userID, ok := h.sessionUser(c, nil)
	if !ok {
		return
	}

	series, err := h.historyService.GetActivityData(c.Request.Context(), userID, c.Query("start"), c.Query("end"))
	if err != nil {
		HandleServiceError(c, err,
			WithMessage(service.ErrMissingFields, "Start and end dates are required."),
			WithMessage(service.ErrInvalidInput, "Dates must be YYYY-MM-DD and start must not be after end."))
		return
	}

	resp := gin.H{"dates": series.Dates}
	for _, kind := range domain.Kinds {
		resp[kind.String()] = series.Values[kind]
	}
	c.JSON(http.StatusOK, resp)
}

// sessionUser returns the authenticated user. A claimed id that differs from
// the session is rejected with 403.
func (h *ActivityHandler) sessionUser(c *gin.Context, claimed *uint) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		HandleServiceError(c, service.ErrSessionInvalid)
		return 0, false
	}
	if claimed != nil && *claimed != userID {
		logrus.WithFields(logrus.Fields{"user_id": userID, "claimed_user_id": *claimed}).
			Warn("Handler: request body names a different user")
		HandleServiceError(c, service.ErrForbidden)
		return 0, false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Warn("Handler: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
