package catalog

import "swiftdrive/internal/domain"

// Fleet returns the rental fleet. Records are seeded once at startup and
// never mutated afterwards.
func Fleet() []domain.Car {
	return []domain.Car{
		{
			ID:          "1",
			Name:        "Model S",
			Brand:       "Tesla",
			Type:        domain.CarLuxury,
			PricePerDay: 149,
			Image:       "https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1561580119-29931327179b?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1554744512-d6c603f27c54?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelElectric,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.9,
			Reviews:      128,
			Description:  "The Tesla Model S is built for speed and endurance, with ludicrous acceleration and a sleek design.",
			Features:     []string{"Autopilot", "Glass Roof", "Premium Audio", "Long Range"},
			Condition:    domain.ConditionMint,
			Specs:        domain.CarSpecs{Engine: "Dual Motor AWD", Acceleration: "1.99s 0-60", TopSpeed: "200mph"},
		},
		{
			ID:          "2",
			Name:        "X5",
			Brand:       "BMW",
			Type:        domain.CarSUV,
			PricePerDay: 120,
			Image:       "https://images.unsplash.com/photo-1555215695-3004980ad54e?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1556189250-72ba954cfc2b?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1580273916550-e323be2ae537?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1617814076668-8dfc6fe157c7?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1555215695-3004980ad54e?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelHybrid,
			Transmission: domain.TransmissionAutomatic,
			Seats:        7,
			Rating:       4.7,
			Reviews:      85,
			Description:  "A powerful SUV that combines luxury with off-road capabilities and cutting-edge technology.",
			Features:     []string{"Panoramic Sunroof", "All-Wheel Drive", "Leather Seats", "Adaptive Suspension"},
			Condition:    domain.ConditionExcellent,
			Specs:        domain.CarSpecs{Engine: "3.0L Inline-6", Acceleration: "5.3s 0-60", TopSpeed: "155mph"},
		},
		{
			ID:          "3",
			Name:        "Civic",
			Brand:       "Honda",
			Type:        domain.CarSedan,
			PricePerDay: 45,
			Image:       "https://images.unsplash.com/photo-1594070319944-7c0c63146b7a?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1605810230434-7631ac76ec81?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1592198084033-aade902d1aae?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1534093607318-f025413f49cb?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1594070319944-7c0c63146b7a?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelGasoline,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.5,
			Reviews:      210,
			Description:  "Reliable, fuel-efficient, and surprisingly spacious. The Honda Civic is the perfect daily driver.",
			Features:     []string{"Backup Camera", "Apple CarPlay", "Lane Assist", "Eco Mode"},
			Condition:    domain.ConditionExcellent,
			Specs:        domain.CarSpecs{Engine: "2.0L 4-Cyl", Acceleration: "8.2s 0-60", TopSpeed: "125mph"},
		},
		{
			ID:          "4",
			Name:        "911 Carrera",
			Brand:       "Porsche",
			Type:        domain.CarConvertible,
			PricePerDay: 299,
			Image:       "https://images.unsplash.com/photo-1503376780353-7e6692767b70?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1580273916550-e323be2ae537?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1614162692292-7ac56d7f7f1e?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1611016186353-9af58c69a533?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1503376780353-7e6692767b70?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelGasoline,
			Transmission: domain.TransmissionAutomatic,
			Seats:        2,
			Rating:       5.0,
			Reviews:      42,
			Description:  "Experience the ultimate thrill of driving with the timeless Porsche 911 Carrera.",
			Features:     []string{"Sport Exhaust", "Bose Sound", "Heated Seats", "Launch Control"},
			Condition:    domain.ConditionMint,
			Specs:        domain.CarSpecs{Engine: "3.0L Twin-Turbo Flat-6", Acceleration: "4.0s 0-60", TopSpeed: "182mph"},
		},
		{
			ID:          "5",
			Name:        "RAV4",
			Brand:       "Toyota",
			Type:        domain.CarSUV,
			PricePerDay: 65,
			Image:       "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1619682817481-e994891cd1f5?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelHybrid,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.6,
			Reviews:      156,
			Description:  "Versatile and ready for adventure. The RAV4 is perfect for families and road trips.",
			Features:     []string{"Safety Sense", "Touchscreen", "Dual Zone AC", "Roof Rails"},
			Condition:    domain.ConditionExcellent,
			Specs:        domain.CarSpecs{Engine: "2.5L 4-Cyl Hybrid", Acceleration: "7.1s 0-60", TopSpeed: "115mph"},
		},
		{
			ID:          "6",
			Name:        "A-Class",
			Brand:       "Mercedes",
			Type:        domain.CarCompact,
			PricePerDay: 89,
			Image:       "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1598911543663-37d77962e143?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelGasoline,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.8,
			Reviews:      74,
			Description:  "Compact luxury at its finest. The A-Class offers a premium interior and a smooth ride.",
			Features:     []string{"MBUX system", "Ambient Lighting", "Wireless Charging", "Active Brake Assist"},
			Condition:    domain.ConditionMint,
			Specs:        domain.CarSpecs{Engine: "2.0L Turbo 4-Cyl", Acceleration: "6.2s 0-60", TopSpeed: "130mph"},
		},
		{
			ID:          "7",
			Name:        "F-150",
			Brand:       "Ford",
			Type:        domain.CarTruck,
			PricePerDay: 95,
			Image:       "https://images.unsplash.com/photo-1605891676495-a75e6b41bd13?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1583121274602-3e2820c69888?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1605891676495-a75e6b41bd13?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1605891676495-a75e6b41bd13?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelGasoline,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.4,
			Reviews:      98,
			Description:  "The best-selling truck in America. Rugged, powerful, and ready for any job.",
			Features:     []string{"Tow Package", "Off-road Tires", "Bed Liner", "Sync 4"},
			Condition:    domain.ConditionGood,
			Specs:        domain.CarSpecs{Engine: "3.5L EcoBoost V6", Acceleration: "5.9s 0-60", TopSpeed: "110mph"},
		},
		{
			ID:          "8",
			Name:        "Ioniq 5",
			Brand:       "Hyundai",
			Type:        domain.CarSUV,
			PricePerDay: 110,
			Image:       "https://images.unsplash.com/photo-1661102831642-956559b956ca?auto=format&fit=crop&q=80&w=800",
			Gallery: domain.Gallery{
				Front:    "https://images.unsplash.com/photo-1661102831642-956559b956ca?auto=format&fit=crop&q=80&w=800",
				Back:     "https://images.unsplash.com/photo-1661102831667-0c7f1a30c5e7?auto=format&fit=crop&q=80&w=800",
				Interior: "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
				Exterior: "https://images.unsplash.com/photo-1661102831642-956559b956ca?auto=format&fit=crop&q=80&w=800",
			},
			FuelType:     domain.FuelElectric,
			Transmission: domain.TransmissionAutomatic,
			Seats:        5,
			Rating:       4.9,
			Reviews:      63,
			Description:  "A retro-futuristic EV that charges fast and drives incredibly well.",
			Features:     []string{"Ultra-fast charging", "V2L support", "Head-up Display", "Relaxation Seats"},
			Condition:    domain.ConditionMint,
			Specs:        domain.CarSpecs{Engine: "Dual Motor AWD", Acceleration: "5.1s 0-60", TopSpeed: "115mph"},
		},
	}
}
