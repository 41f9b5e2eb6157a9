package domain

// VehicleCategory is the kind of vehicle a courier drives.
type VehicleCategory string

// List of vehicle categories.
const (
	VehicleFoot  VehicleCategory = "on_foot"
	VehicleBike  VehicleCategory = "bike"
	VehicleCar   VehicleCategory = "car"
	VehicleTruck VehicleCategory = "truck"
)

// Courier represents a delivery courier. Read-only for the order flow.
type Courier struct {
	ID      string
	Name    string
	Phone   string
	Vehicle VehicleCategory
	Active  bool
}
