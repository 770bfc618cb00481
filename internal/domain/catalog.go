package domain

import "strings"

// ActivityKind discriminates what an ActivityLog's item id points at.
// The values are the primary keys of the seeded activity_types rows.
type ActivityKind uint

const (
	KindAppliance ActivityKind = 1
	KindTransport ActivityKind = 2
	KindFood      ActivityKind = 3
)

// CO2PerKWh is the UK grid emission factor in kg CO2e per kWh.
const CO2PerKWh = 0.207074

// Kinds lists every activity kind in chart order.
var Kinds = []ActivityKind{KindAppliance, KindFood, KindTransport}

func (k ActivityKind) String() string {
	switch k {
	case KindAppliance:
		return "Appliance"
	case KindTransport:
		return "Transport"
	case KindFood:
		return "Food"
	default:
		return ""
	}
}

// Valid reports whether k is one of the known kinds.
func (k ActivityKind) Valid() bool {
	return k.String() != ""
}

// ParseActivityKind maps a route segment such as "appliance" to its kind.
func ParseActivityKind(s string) (ActivityKind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(k.String(), s) {
			return k, true
		}
	}
	return 0, false
}

// ActivityType is the taxonomy row behind an ActivityKind.
type ActivityType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

type ApplianceType struct {
	ID       uint   `gorm:"primaryKey"`
	Category string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type Appliance struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	AverageKWH      float64 `gorm:"not null"` // kWh per hour of use
	ApplianceTypeID uint    `gorm:"index;not null"`
}

type TransportType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type Transport struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	CO2ePerMile     float64 `gorm:"column:co2e_per_mile;not null"`
	FuelType        string  `gorm:"type:varchar(50)"`
	TransportTypeID uint    `gorm:"index;not null"`
}

type FoodType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

type Food struct {
	ID         uint    `gorm:"primaryKey"`
	Product    string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	CO2ePerKg  float64 `gorm:"column:co2e_per_kg;not null"`
	FoodTypeID uint    `gorm:"index;not null"`
}

// CatalogItem is a catalog row resolved for one kind. Factor is the per-unit
// emission factor: kWh per hour for appliances, kg CO2e per mile for
// transport and kg CO2e per kg for food.
type CatalogItem struct {
	ID       uint
	Kind     ActivityKind
	Name     string
	Factor   float64
	FuelType string
}
