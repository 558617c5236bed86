// Package catalog holds the static offline inventory: the vehicle list and
// dealership directory the service falls back to when no upstream listings
// provider is configured. Read-only at runtime.
package catalog

import (
	"motorscout-service/internal/domain/appointment"
	"motorscout-service/internal/domain/vehicle"
)

func mpg(city, highway int) *vehicle.MPG {
	return &vehicle.MPG{City: city, Highway: highway}
}

func miles(m int) *int { return &m }

var vehicles = []vehicle.Vehicle{
	{
		ID: "v1", Make: "Toyota", Model: "RAV4 Hybrid", Year: 2024, Price: 35990,
		Type: vehicle.BodySUV, Image: "https://images.unsplash.com/photo-1581540222194-0def2dda95b8?w=800&h=600&fit=crop",
		MPG:      mpg(41, 38),
		Features: []string{"AWD", "Toyota Safety Sense 2.5+", "Blind Spot Monitor", "Apple CarPlay"},
		Available: true, Stock: 5, Color: "Magnetic Gray Metallic",
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "2.5L 4-Cylinder Hybrid", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v2", Make: "Honda", Model: "CR-V", Year: 2024, Price: 33450,
		Type: vehicle.BodySUV, Image: "https://images.unsplash.com/photo-1568844293986-8d0400bd4745?w=800&h=600&fit=crop",
		MPG:      mpg(28, 34),
		Features: []string{"Honda Sensing", "Real Time AWD", "Wireless Apple CarPlay", "Remote Start"},
		Available: true, Stock: 3, Color: "Platinum White Pearl",
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "1.5L Turbo 4-Cylinder", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v3", Make: "Ford", Model: "Explorer", Year: 2024, Price: 42870,
		Type: vehicle.BodySUV, Image: "https://images.unsplash.com/photo-1619767886558-efdc259cde1a?w=800&h=600&fit=crop",
		MPG:      mpg(21, 28),
		Features: []string{"4WD", "Ford Co-Pilot360", "3rd Row Seating", "SYNC 4"},
		Available: true, Stock: 2, Color: "Atlas Blue Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.Drivetrain4WD,
		Engine: "2.3L EcoBoost I-4", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v4", Make: "Mazda", Model: "CX-5", Year: 2024, Price: 29900,
		Type: vehicle.BodySUV, Image: "https://images.unsplash.com/photo-1609521263047-f8f205293f24?w=800&h=600&fit=crop",
		MPG:      mpg(25, 31),
		Features: []string{"i-Activsense Safety", "Mazda Connect", "AWD", "Adaptive Cruise Control"},
		Available: true, Stock: 4, Color: "Soul Red Crystal Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "2.5L 4-Cylinder", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v5", Make: "Toyota", Model: "Camry Hybrid", Year: 2024, Price: 28545,
		Type: vehicle.BodyHybrid, Image: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800&h=600&fit=crop",
		MPG:      mpg(51, 53),
		Features: []string{"Toyota Safety Sense 2.5+", "Hybrid Drivetrain", "JBL Audio", "Panoramic Roof"},
		Available: true, Stock: 6, Color: "Celestial Silver Metallic",
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainFWD,
		Engine: "2.5L 4-Cylinder Hybrid", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v6", Make: "Honda", Model: "Accord Hybrid", Year: 2024, Price: 32995,
		Type: vehicle.BodyHybrid, Image: "https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?w=800&h=600&fit=crop",
		MPG:      mpg(48, 47),
		Features: []string{"Honda Sensing", "Bose Audio", "Wireless Charging", "Head-Up Display"},
		Available: true, Stock: 3, Color: "Radiant Red Metallic",
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainFWD,
		Engine: "2.0L 4-Cylinder Hybrid", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v7", Make: "BMW", Model: "330i", Year: 2024, Price: 44295,
		Type: vehicle.BodySedan, Image: "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=600&fit=crop",
		MPG:      mpg(26, 36),
		Features: []string{"xDrive AWD", "BMW Live Cockpit", "Driving Assistance", "Harman Kardon Audio"},
		Available: true, Stock: 2, Color: "Alpine White",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "2.0L TwinPower Turbo", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v8", Make: "Tesla", Model: "Model 3", Year: 2024, Price: 42990,
		Type: vehicle.BodyElectric, Image: "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800&h=600&fit=crop",
		Range:    272,
		Features: []string{"Autopilot", "Full Self-Driving Capability", "Premium Audio", "Glass Roof"},
		Available: true, Stock: 4, Color: "Pearl White",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainRWD,
		Engine: "Electric Motor", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v9", Make: "Tesla", Model: "Model Y", Year: 2024, Price: 52990,
		Type: vehicle.BodyElectric, Image: "https://images.unsplash.com/photo-1619317083226-9f668d05094e?w=800&h=600&fit=crop",
		Range:    310,
		Features: []string{"Autopilot", "AWD Dual Motor", "7 Seats", "Premium Interior"},
		Available: true, Stock: 3, Color: "Midnight Silver Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "Dual Motor Electric", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v10", Make: "Ford", Model: "Mustang Mach-E", Year: 2024, Price: 45995,
		Type: vehicle.BodyElectric, Image: "https://images.unsplash.com/photo-1603386329225-868f9b1ee6c9?w=800&h=600&fit=crop",
		Range:    250,
		Features: []string{"BlueCruise", "B&O Sound System", "Panoramic Roof", "Phone As Key"},
		Available: true, Stock: 2, Color: "Grabber Blue Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "Electric Motor", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v11", Make: "Hyundai", Model: "Ioniq 5", Year: 2024, Price: 41450,
		Type: vehicle.BodyElectric, Image: "https://images.unsplash.com/photo-1629897048514-3dd7414fe72a?w=800&h=600&fit=crop",
		Range:    266,
		Features: []string{"Highway Driving Assist 2", "V2L Capability", "Ultra-Fast Charging", "Augmented Reality HUD"},
		Available: true, Stock: 3, Color: "Digital Teal",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "Dual Motor Electric", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v12", Make: "Ford", Model: "F-150 Lightning", Year: 2024, Price: 62995,
		Type: vehicle.BodyTruck, Image: "https://images.unsplash.com/photo-1581541234269-03d5d8576c0e?w=800&h=600&fit=crop",
		Range:    240,
		Features: []string{"Electric", "Pro Power Onboard", "BlueCruise", "Towing Technology"},
		Available: true, Stock: 2, Color: "Antimatter Blue",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.Drivetrain4WD,
		Engine: "Dual Motor Electric", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v13", Make: "Chevrolet", Model: "Silverado 1500", Year: 2024, Price: 38395,
		Type: vehicle.BodyTruck, Image: "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800&h=600&fit=crop",
		MPG:      mpg(18, 24),
		Features: []string{"4WD", "Multi-Flex Tailgate", "Tow Package", "13.4\" Touchscreen"},
		Available: true, Stock: 4, Color: "Black",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.Drivetrain4WD,
		Engine: "5.3L V8", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v14", Make: "Mercedes-Benz", Model: "E-Class", Year: 2024, Price: 63050,
		Type: vehicle.BodySedan, Image: "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&h=600&fit=crop",
		MPG:      mpg(22, 31),
		Features: []string{"4MATIC AWD", "MBUX", "Driver Assistance Package", "Burmester Audio"},
		Available: true, Stock: 1, Color: "Obsidian Black Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "2.0L Turbo 4-Cylinder", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v15", Make: "Audi", Model: "Q5", Year: 2024, Price: 45900,
		Type: vehicle.BodySUV, Image: "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
		MPG:      mpg(23, 29),
		Features: []string{"Quattro AWD", "Virtual Cockpit", "MMI Touch", "Bang & Olufsen Audio"},
		Available: true, Stock: 2, Color: "Glacier White Metallic",
		Transmission: vehicle.TransmissionAutomatic, Drivetrain: vehicle.DrivetrainAWD,
		Engine: "2.0L TFSI 4-Cylinder", Condition: vehicle.ConditionNew,
	},
	{
		ID: "v16", Make: "Toyota", Model: "Corolla", Year: 2022, Price: 21990,
		Type: vehicle.BodySedan, Image: "https://images.unsplash.com/photo-1623869675781-80aa31012a5a?w=800&h=600&fit=crop",
		MPG:      mpg(31, 40),
		Features: []string{"Toyota Safety Sense 2.0", "Apple CarPlay", "Adaptive Cruise Control"},
		Available: true, Stock: 3, Color: "Blueprint", Mileage: miles(28500),
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainFWD,
		Engine: "1.8L 4-Cylinder", Condition: vehicle.ConditionUsed,
	},
	{
		ID: "v17", Make: "Honda", Model: "Civic", Year: 2022, Price: 23450,
		Type: vehicle.BodySedan, Image: "https://images.unsplash.com/photo-1590362891991-f776e747a588?w=800&h=600&fit=crop",
		MPG:      mpg(31, 40),
		Features: []string{"Honda Sensing", "Sport Mode", "Bose Audio"},
		Available: true, Stock: 2, Color: "Sonic Gray Pearl", Mileage: miles(22000),
		Transmission: vehicle.TransmissionCVT, Drivetrain: vehicle.DrivetrainFWD,
		Engine: "2.0L 4-Cylinder", Condition: vehicle.ConditionCertified,
	},
}

var dealerships = []appointment.Dealership{
	{
		ID: "d1", Name: "Downtown Toyota", Address: "123 Main Street",
		City: "Los Angeles", State: "CA", Zip: "90210",
		Phone: "(555) 123-4567", Email: "info@downtowntoyota.com",
		Latitude: 34.0522, Longitude: -118.2437, Rating: 4.8,
		Services: []string{"Sales", "Service", "Parts", "Test Drives"},
		Hours: map[string]string{
			"monday": "9:00 AM - 8:00 PM", "tuesday": "9:00 AM - 8:00 PM",
			"wednesday": "9:00 AM - 8:00 PM", "thursday": "9:00 AM - 8:00 PM",
			"friday": "9:00 AM - 8:00 PM", "saturday": "9:00 AM - 7:00 PM",
			"sunday": "10:00 AM - 6:00 PM",
		},
	},
	{
		ID: "d2", Name: "Metro Honda", Address: "456 Oak Avenue",
		City: "Los Angeles", State: "CA", Zip: "90211",
		Phone: "(555) 234-5678", Email: "sales@metrohonda.com",
		Latitude: 34.0622, Longitude: -118.2537, Rating: 4.6,
		Services: []string{"Sales", "Service", "Parts", "Test Drives"},
		Hours: map[string]string{
			"monday": "9:00 AM - 7:00 PM", "tuesday": "9:00 AM - 7:00 PM",
			"wednesday": "9:00 AM - 7:00 PM", "thursday": "9:00 AM - 7:00 PM",
			"friday": "9:00 AM - 7:00 PM", "saturday": "9:00 AM - 6:00 PM",
			"sunday": "11:00 AM - 5:00 PM",
		},
	},
	{
		ID: "d3", Name: "Luxury Motors BMW", Address: "789 Pine Boulevard",
		City: "Beverly Hills", State: "CA", Zip: "90210",
		Phone: "(555) 345-6789", Email: "contact@luxurymotorsbmw.com",
		Latitude: 34.0722, Longitude: -118.4037, Rating: 4.9,
		Services: []string{"Sales", "Service", "Parts", "Test Drives", "Financing"},
		Hours: map[string]string{
			"monday": "8:30 AM - 8:00 PM", "tuesday": "8:30 AM - 8:00 PM",
			"wednesday": "8:30 AM - 8:00 PM", "thursday": "8:30 AM - 8:00 PM",
			"friday": "8:30 AM - 8:00 PM", "saturday": "9:00 AM - 7:00 PM",
			"sunday": "10:00 AM - 6:00 PM",
		},
	},
	{
		ID: "d4", Name: "Valley Ford", Address: "321 Valley Drive",
		City: "Van Nuys", State: "CA", Zip: "91401",
		Phone: "(555) 456-7890", Email: "info@valleyford.com",
		Latitude: 34.1865, Longitude: -118.4490, Rating: 4.5,
		Services: []string{"Sales", "Service", "Parts", "Test Drives", "Commercial"},
		Hours: map[string]string{
			"monday": "9:00 AM - 9:00 PM", "tuesday": "9:00 AM - 9:00 PM",
			"wednesday": "9:00 AM - 9:00 PM", "thursday": "9:00 AM - 9:00 PM",
			"friday": "9:00 AM - 9:00 PM", "saturday": "9:00 AM - 8:00 PM",
			"sunday": "10:00 AM - 7:00 PM",
		},
	},
	{
		ID: "d5", Name: "Electric Avenue Tesla", Address: "555 Future Way",
		City: "Santa Monica", State: "CA", Zip: "90401",
		Phone: "(555) 567-8901", Email: "hello@electricavenue.com",
		Latitude: 34.0195, Longitude: -118.4912, Rating: 4.7,
		Services: []string{"Sales", "Service", "Test Drives", "Charging Stations"},
		Hours: map[string]string{
			"monday": "10:00 AM - 7:00 PM", "tuesday": "10:00 AM - 7:00 PM",
			"wednesday": "10:00 AM - 7:00 PM", "thursday": "10:00 AM - 7:00 PM",
			"friday": "10:00 AM - 7:00 PM", "saturday": "10:00 AM - 7:00 PM",
			"sunday": "10:00 AM - 6:00 PM",
		},
	},
}

// Vehicles returns a copy of the offline inventory.
func Vehicles() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

// VehicleByID looks up one offline vehicle.
func VehicleByID(id string) (vehicle.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return vehicle.Vehicle{}, false
}

// Dealerships returns a copy of the dealership directory.
func Dealerships() []appointment.Dealership {
	out := make([]appointment.Dealership, len(dealerships))
	copy(out, dealerships)
	return out
}

// DealershipByID looks up one dealership.
func DealershipByID(id string) (appointment.Dealership, bool) {
	for _, d := range dealerships {
		if d.ID == id {
			return d, true
		}
	}
	return appointment.Dealership{}, false
}
