package vehicle

type BodyType string
type Condition string
type Transmission string
type Drivetrain string

const (
	BodySUV      BodyType = "SUV"
	BodySedan    BodyType = "Sedan"
	BodyTruck    BodyType = "Truck"
	BodyElectric BodyType = "Electric"
	BodyHybrid   BodyType = "Hybrid"
	BodyCoupe    BodyType = "Coupe"
	BodyMinivan  BodyType = "Minivan"

	ConditionNew       Condition = "New"
	ConditionUsed      Condition = "Used"
	ConditionCertified Condition = "Certified Pre-Owned"

	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
	TransmissionCVT       Transmission = "CVT"

	DrivetrainFWD Drivetrain = "FWD"
	DrivetrainRWD Drivetrain = "RWD"
	DrivetrainAWD Drivetrain = "AWD"
	Drivetrain4WD Drivetrain = "4WD"
)

// MPG is a city/highway fuel-economy pair. Electric vehicles carry a range
// figure instead and leave this nil.
type MPG struct {
	City    int `json:"city"`
	Highway int `json:"highway"`
}

// Vehicle is the canonical inventory record. Every provider payload,
// whatever its vendor shape, is normalized into this. Vehicles are read
// projections constructed fresh per search call and never persisted.
type Vehicle struct {
	ID           string       `json:"id"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Type         BodyType     `json:"type"`
	Image        string       `json:"image"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	DealerID     string       `json:"dealerId,omitempty"`
	DealerName   string       `json:"dealerName,omitempty"`
	City         string       `json:"city,omitempty"`
	State        string       `json:"state,omitempty"`
	Zip          string       `json:"zip,omitempty"`
	MPG          *MPG         `json:"mpg,omitempty"`
	Range        int          `json:"range,omitempty"` // electric range in miles
	Features     []string     `json:"features"`
	Available    bool         `json:"available"`
	Stock        int          `json:"stock"`
	Color        string       `json:"color,omitempty"`
	VIN          string       `json:"vin,omitempty"`
	Mileage      *int         `json:"mileage,omitempty"`
	Transmission Transmission `json:"transmission,omitempty"`
	Drivetrain   Drivetrain   `json:"drivetrain,omitempty"`
	Engine       string       `json:"engine,omitempty"`
	Condition    Condition    `json:"condition,omitempty"`
}

// HasCoordinates reports whether the record carries its own location.
// Vehicles without coordinates pass radius filters rather than being hidden.
func (v *Vehicle) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// AverageMPG returns (city + highway) / 2 and false when no MPG pair is
// recorded. Range-only electric vehicles report false.
func (v *Vehicle) AverageMPG() (float64, bool) {
	if v.MPG == nil {
		return 0, false
	}
	return float64(v.MPG.City+v.MPG.Highway) / 2, true
}
