package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

// CatalogHandler serves the item listings used by the add-item page.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	if catalogService == nil {
		panic("CatalogService cannot be nil for CatalogHandler")
	}
	return &CatalogHandler{catalogService: catalogService}
}

type applianceItemResponse struct {
	Name    string  `json:"name"`
	Wattage float64 `json:"wattage"`
}

type transportItemResponse struct {
	Name        string  `json:"name"`
	CO2ePerMile float64 `json:"co2e_per_mile"`
	FuelType    string  `json:"fuel_type"`
}

type foodItemResponse struct {
	Name      string  `json:"name"`
	CO2ePerKg float64 `json:"co2e_per_kg"`
}

// Items handles GET /api/items/:activity/:category.
func (h *CatalogHandler) Items(c *gin.Context) {
	kind, items, err := h.catalogService.Items(c.Request.Context(), c.Param("activity"), c.Param("category"))
	if err != nil {
		HandleServiceError(c, err, WithMessage(service.ErrInvalidCategory, "Invalid transport category"))
		return
	}
	c.JSON(http.StatusOK, itemsResponse(kind, items))
}

func itemsResponse(kind domain.ActivityKind, items []domain.CatalogItem) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		switch kind {
		case domain.KindAppliance:
			out = append(out, applianceItemResponse{Name: it.Name, Wattage: it.Factor})
		case domain.KindTransport:
			out = append(out, transportItemResponse{Name: it.Name, CO2ePerMile: it.Factor, FuelType: it.FuelType})
		case domain.KindFood:
			out = append(out, foodItemResponse{Name: it.Name, CO2ePerKg: it.Factor})
		}
	}
	return out
}
