package repository

import (
	"time"

	"github.com/tair/storefront/internal/catalog/domain"
)

func price(v float64) *float64 { return &v }

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// sampleProducts returns the bundled demo catalog. Order matters: it is the
// "featured" display order.
func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Description: "Experience unparalleled sound quality with our premium wireless headphones. Featuring active noise cancellation, 30-hour battery life, and ultra-comfortable ear cushions for extended listening sessions.",
			Price:       299.99,
			Category:    "Electronics",
			Subcategory: "Audio",
			Tags:        []string{"wireless", "headphones", "premium", "noise-cancellation"},
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=1000",
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=1000",
				"https://images.unsplash.com/photo-1577174881658-0f30ed549adc?q=80&w=1000",
				"https://images.unsplash.com/photo-1524678606370-a47ad25cb82a?q=80&w=1000",
			},
			Rating:     4.8,
			Reviews:    253,
			Stock:      45,
			Featured:   true,
			New:        true,
			BestSeller: true,
			Specs: map[string]string{
				"Bluetooth Version":  "5.2",
				"Battery Life":       "30 hours",
				"Noise Cancellation": "Active",
				"Weight":             "250g",
				"Charging":           "USB-C",
			},
			Options: []domain.ProductOption{
				{Name: "Color", Values: []string{"Black", "White", "Rose Gold"}},
			},
			RelatedIDs: []uint{2, 3, 8},
			CreatedAt:  ts("2023-07-15T10:30:00Z"),
		},
		{
			ID:            2,
			Name:          "Smart Watch Series 5",
			Description:   "Monitor your health and stay connected with this sleek smart watch. Features heart rate monitoring, sleep tracking, and notifications from your smartphone.",
			Price:         249.99,
			OriginalPrice: price(299.99),
			Category:      "Electronics",
			Subcategory:   "Wearables",
			Tags:          []string{"smart watch", "fitness", "wearable"},
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=989",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=989",
				"https://images.unsplash.com/photo-1546868871-7041f2a55e12?q=80&w=1064",
				"https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?q=80&w=1027",
			},
			Rating:     4.6,
			Reviews:    189,
			Stock:      32,
			Featured:   true,
			New:        false,
			BestSeller: true,
			Specs: map[string]string{
				"Display":          "AMOLED",
				"Battery Life":     "48 hours",
				"Water Resistance": "50m",
				"Connectivity":     "Bluetooth 5.0, WiFi",
				"Sensors":          "Heart rate, Accelerometer, Gyroscope",
			},
			Options: []domain.ProductOption{
				{Name: "Size", Values: []string{"40mm", "44mm"}},
				{Name: "Band Color", Values: []string{"Black", "Blue", "Red", "Green"}},
			},
			RelatedIDs: []uint{1, 3, 5},
			CreatedAt:  ts("2023-09-20T08:15:00Z"),
		},
		{
			ID:          3,
			Name:        "Ultra-Slim Laptop Pro",
			Description: "Powerful performance in an incredibly thin and light design. Features the latest processors, stunning display, and all-day battery life.",
			Price:       1299.99,
			Category:    "Electronics",
			Subcategory: "Computers",
			Tags:        []string{"laptop", "ultrabook", "premium"},
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?q=80&w=1171",
			Images: []string{
				"https://images.unsplash.com/photo-1496181133206-80ce9b88a853?q=80&w=1171",
				"https://images.unsplash.com/photo-1531297484001-80022131f5a1?q=80&w=1120",
				"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?q=80&w=1171",
			},
			Rating:     4.9,
			Reviews:    321,
			Stock:      18,
			Featured:   true,
			New:        true,
			BestSeller: true,
			Specs: map[string]string{
				"Processor": "Intel Core i7, 12th Gen",
				"RAM":       "16GB",
				"Storage":   "512GB SSD",
				"Display":   "14-inch Retina",
				"Graphics":  "Intel Iris Xe",
				"Battery":   "Up to 12 hours",
			},
			Options: []domain.ProductOption{
				{Name: "Storage", Values: []string{"256GB", "512GB", "1TB"}},
				{Name: "RAM", Values: []string{"8GB", "16GB", "32GB"}},
				{Name: "Color", Values: []string{"Space Gray", "Silver"}},
			},
			RelatedIDs: []uint{5, 8, 9},
			CreatedAt:  ts("2023-06-10T14:20:00Z"),
		},
		{
			ID:          4,
			Name:        "Designer Leather Bag",
			Description: "Handcrafted from premium Italian leather, this designer bag combines timeless elegance with practical functionality. Features multiple compartments and adjustable straps.",
			Price:       349.99,
			Category:    "Fashion",
			Subcategory: "Bags",
			Tags:        []string{"leather", "designer", "bag", "accessory"},
			Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?q=80&w=1169",
			Images: []string{
				"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?q=80&w=1169",
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?q=80&w=1035",
				"https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?q=80&w=1171",
			},
			Rating:     4.7,
			Reviews:    156,
			Stock:      25,
			Featured:   true,
			New:        false,
			BestSeller: false,
			Specs: map[string]string{
				"Material":   "Full grain Italian leather",
				"Dimensions": "30cm x 25cm x 10cm",
				"Strap":      "Adjustable, detachable",
				"Lining":     "Premium cotton",
				"Hardware":   "Gold-toned",
			},
			Options: []domain.ProductOption{
				{Name: "Color", Values: []string{"Black", "Brown", "Tan", "Navy"}},
			},
			RelatedIDs: []uint{10, 11, 12},
			CreatedAt:  ts("2023-08-05T09:45:00Z"),
		},
		{
			ID:            5,
			Name:          "Professional DSLR Camera",
			Description:   "Capture stunning photos and videos with this professional-grade DSLR camera. Features a high-resolution sensor, advanced autofocus, and 4K video recording.",
			Price:         1499.99,
			OriginalPrice: price(1699.99),
			Category:      "Electronics",
			Subcategory:   "Cameras",
			Tags:          []string{"camera", "photography", "DSLR", "professional"},
			Image:         "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=1164",
			Images: []string{
				"https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=1164",
				"https://images.unsplash.com/photo-1502982720700-bfff97f2ecac?q=80&w=1170",
				"https://images.unsplash.com/photo-1563006769-4dc21647d9a4?q=80&w=1167",
			},
			Rating:     4.9,
			Reviews:    287,
			Stock:      15,
			Featured:   true,
			New:        false,
			BestSeller: true,
			Specs: map[string]string{
				"Sensor":       "Full-frame 45MP",
				"ISO Range":    "100-51,200 (expandable)",
				"Video":        "4K/60fps",
				"Autofocus":    "Dual Pixel CMOS AF",
				"Connectivity": "WiFi, Bluetooth, USB-C",
				"Weight":       "850g (body only)",
			},
			Options: []domain.ProductOption{
				{Name: "Kit", Values: []string{"Body Only", "With 24-70mm Lens", "With 24-105mm Lens"}},
			},
			RelatedIDs: []uint{8, 9, 3},
			CreatedAt:  ts("2023-05-12T11:30:00Z"),
		},
		{
			ID:          6,
			Name:        "Premium Yoga Mat",
			Description: "Enhance your yoga practice with this premium non-slip mat. Made from eco-friendly materials with extra cushioning for joint protection.",
			Price:       79.99,
			Category:    "Sports",
			Subcategory: "Yoga",
			Tags:        []string{"yoga", "fitness", "mat", "eco-friendly"},
			Image:       "https://images.unsplash.com/photo-1592432678016-e910b452f9a2?q=80&w=1287",
			Images: []string{
				"https://images.unsplash.com/photo-1592432678016-e910b452f9a2?q=80&w=1287",
				"https://images.unsplash.com/photo-1562088287-bde35a1ea917?q=80&w=1364",
				"https://images.unsplash.com/photo-1605296867304-46d5465a13f1?q=80&w=1170",
			},
			Rating:     4.6,
			Reviews:    204,
			Stock:      65,
			Featured:   false,
			New:        true,
			BestSeller: false,
			Specs: map[string]string{
				"Material":   "Eco-friendly TPE",
				"Thickness":  "6mm",
				"Dimensions": "183cm x 61cm",
				"Weight":     "1.1kg",
				"Features":   "Non-slip, Moisture-resistant",
			},
			Options: []domain.ProductOption{
				{Name: "Color", Values: []string{"Blue", "Purple", "Green", "Black", "Pink"}},
			},
			RelatedIDs: []uint{14, 15, 16},
			CreatedAt:  ts("2023-10-30T15:20:00Z"),
		},
		{
			ID:          7,
			Name:        "Minimalist Concrete Watch",
			Description: "A striking timepiece that blends industrial materials with minimalist design. The concrete dial creates a unique texture that makes each watch one-of-a-kind.",
			Price:       129.99,
			Category:    "Fashion",
			Subcategory: "Watches",
			Tags:        []string{"watch", "concrete", "minimalist", "unique"},
			Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?q=80&w=1289",
			Images: []string{
				"https://images.unsplash.com/photo-1524592094714-0f0654e20314?q=80&w=1289",
				"https://images.unsplash.com/photo-1508057198894-247b23fe5ade?q=80&w=1170",
				"https://images.unsplash.com/photo-1533139502658-0198f920d8e8?q=80&w=1142",
			},
			Rating:     4.5,
			Reviews:    128,
			Stock:      38,
			Featured:   false,
			New:        true,
			BestSeller: false,
			Specs: map[string]string{
				"Case Material":    "Stainless steel",
				"Dial":             "Concrete",
				"Movement":         "Japanese Quartz",
				"Water Resistance": "5 ATM",
				"Band":             "Genuine leather",
				"Glass":            "Hardened mineral",
			},
			Options: []domain.ProductOption{
				{Name: "Band Color", Values: []string{"Black", "Brown", "Navy", "Gray"}},
				{Name: "Case Size", Values: []string{"38mm", "42mm"}},
			},
			RelatedIDs: []uint{2, 11, 12},
			CreatedAt:  ts("2023-11-05T10:15:00Z"),
		},
		{
			ID:            8,
			Name:          "Wireless Earbuds Pro",
			Description:   "True wireless earbuds with premium sound quality, active noise cancellation, and sweat resistance. Perfect for workouts and everyday use.",
			Price:         149.99,
			OriginalPrice: price(179.99),
			Category:      "Electronics",
			Subcategory:   "Audio",
			Tags:          []string{"earbuds", "wireless", "audio"},
			Image:         "https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?q=80&w=1170",
			Images: []string{
				"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?q=80&w=1170",
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=1229",
				"https://images.unsplash.com/photo-1631177389816-1b6650f8d219?q=80&w=1125",
			},
			Rating:     4.7,
			Reviews:    312,
			Stock:      42,
			Featured:   false,
			New:        false,
			BestSeller: true,
			Specs: map[string]string{
				"Driver Size":        "10mm",
				"Battery Life":       "8 hours (30 with case)",
				"Water Resistance":   "IPX5",
				"Connectivity":       "Bluetooth 5.2",
				"Noise Cancellation": "Active",
			},
			Options: []domain.ProductOption{
				{Name: "Color", Values: []string{"Black", "White", "Blue"}},
			},
			RelatedIDs: []uint{1, 3, 9},
			CreatedAt:  ts("2023-07-28T13:40:00Z"),
		},
		{
			ID:            9,
			Name:          "Ultra HD Smart TV 55\"",
			Description:   "Experience stunning 4K visuals and smart features on this premium TV. Includes voice control, streaming apps, and game mode.",
			Price:         799.99,
			OriginalPrice: price(899.99),
			Category:      "Electronics",
			Subcategory:   "TVs",
			Tags:          []string{"smart tv", "4K", "ultra hd"},
			Image:         "https://images.unsplash.com/photo-1593305841991-05c297ba4575?q=80&w=1057",
			Images: []string{
				"https://images.unsplash.com/photo-1593305841991-05c297ba4575?q=80&w=1057",
				"https://images.unsplash.com/photo-1601944177325-f8867652837f?q=80&w=1287",
				"https://images.unsplash.com/photo-1461151304267-38535e780c79?q=80&w=1033",
			},
			Rating:     4.5,
			Reviews:    268,
			Stock:      20,
			Featured:   true,
			New:        false,
			BestSeller: false,
			Specs: map[string]string{
				"Resolution":         "4K Ultra HD",
				"Display Technology": "LED",
				"Smart Features":     "Voice control, Apps",
				"HDR":                "Yes",
				"Refresh Rate":       "120Hz",
				"Ports":              "4x HDMI, 2x USB",
			},
			Options: []domain.ProductOption{
				{Name: "Size", Values: []string{"55\"", "65\"", "75\""}},
			},
			RelatedIDs: []uint{3, 5, 8},
			CreatedAt:  ts("2023-09-02T16:30:00Z"),
		},
		{
			ID:          10,
			Name:        "Cashmere Sweater",
			Description: "Luxuriously soft cashmere sweater with a classic design. Perfect for layering in colder weather while maintaining a sophisticated look.",
			Price:       189.99,
			Category:    "Fashion",
			Subcategory: "Clothing",
			Tags:        []string{"cashmere", "sweater", "winter", "luxury"},
			Image:       "https://images.unsplash.com/photo-1624824216985-5639f42ef14b?q=80&w=1229",
			Images: []string{
				"https://images.unsplash.com/photo-1624824216985-5639f42ef14b?q=80&w=1229",
				"https://images.unsplash.com/photo-1626497764746-6dc36546b388?q=80&w=1026",
				"https://images.unsplash.com/photo-1544022613-e87ca75a784a?q=80&w=1074",
			},
			Rating:     4.8,
			Reviews:    176,
			Stock:      30,
			Featured:   false,
			New:        false,
			BestSeller: true,
			Specs: map[string]string{
				"Material": "100% Cashmere",
				"Care":     "Dry clean only",
				"Style":    "Crewneck",
				"Weight":   "Light to Medium",
				"Origin":   "Scotland",
			},
			Options: []domain.ProductOption{
				{Name: "Size", Values: []string{"XS", "S", "M", "L", "XL"}},
				{Name: "Color", Values: []string{"Camel", "Gray", "Navy", "Burgundy", "Black"}},
			},
			RelatedIDs: []uint{4, 11, 12},
			CreatedAt:  ts("2023-08-22T12:15:00Z"),
		},
		{
			ID:          11,
			Name:        "Premium Sunglasses",
			Description: "Handcrafted designer sunglasses with polarized lenses for maximum UV protection and crystal-clear vision. Lightweight frame for all-day comfort.",
			Price:       159.99,
			Category:    "Fashion",
			Subcategory: "Accessories",
			Tags:        []string{"sunglasses", "designer", "polarized", "UV protection"},
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?q=80&w=1160",
			Images: []string{
				"https://images.unsplash.com/photo-1572635196237-14b3f281503f?q=80&w=1160",
				"https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=1160",
				"https://images.unsplash.com/photo-1473496169904-658ba7c44d8a?q=80&w=1170",
			},
			Rating:     4.6,
			Reviews:    203,
			Stock:      45,
			Featured:   false,
			New:        true,
			BestSeller: false,
			Specs: map[string]string{
				"Frame Material": "Acetate",
				"Lens":           "Polarized",
				"UV Protection":  "100%",
				"Weight":         "28g",
				"Case":           "Included",
			},
			Options: []domain.ProductOption{
				{Name: "Frame Color", Values: []string{"Black", "Tortoise", "Clear", "Havana"}},
				{Name: "Lens Color", Values: []string{"Gray", "Green", "Blue"}},
			},
			RelatedIDs: []uint{4, 7, 10},
			CreatedAt:  ts("2023-10-15T09:20:00Z"),
		},
		{
			ID:          12,
			Name:        "Leather Minimalist Wallet",
			Description: "Slim and functional wallet crafted from full-grain leather. Features RFID blocking technology and smart organization for cards and cash.",
			Price:       49.99,
			Category:    "Fashion",
			Subcategory: "Accessories",
			Tags:        []string{"wallet", "leather", "minimalist", "RFID"},
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?q=80&w=1287",
			Images: []string{
				"https://images.unsplash.com/photo-1627123424574-724758594e93?q=80&w=1287",
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?q=80&w=1287",
				"https://images.unsplash.com/photo-1618520408846-fff18a378ddb?q=80&w=1064",
			},
			Rating:     4.7,
			Reviews:    312,
			Stock:      75,
			Featured:   false,
			New:        false,
			BestSeller: true,
			Specs: map[string]string{
				"Material":      "Full-grain leather",
				"Capacity":      "8 cards, bills",
				"RFID Blocking": "Yes",
				"Dimensions":    "10cm x 7.5cm x 1cm",
				"Finish":        "Hand-stitched edges",
			},
			Options: []domain.ProductOption{
				{Name: "Color", Values: []string{"Black", "Brown", "Tan", "Navy"}},
			},
			RelatedIDs: []uint{4, 7, 11},
			CreatedAt:  ts("2023-09-10T14:50:00Z"),
		},
	}
}

func sampleCategories() []domain.Category {
	return []domain.Category{
		{
			ID:          1,
			Name:        "Electronics",
			Slug:        "electronics",
			Description: "The latest gadgets and technology",
			Image:       "https://images.unsplash.com/photo-1498049794561-7780e7231661?q=80&w=1170",
			Subcategories: []domain.Subcategory{
				{ID: 101, Name: "Audio", Slug: "audio"},
				{ID: 102, Name: "Wearables", Slug: "wearables"},
				{ID: 103, Name: "Computers", Slug: "computers"},
				{ID: 104, Name: "Cameras", Slug: "cameras"},
				{ID: 105, Name: "TVs", Slug: "tvs"},
			},
		},
		{
			ID:          2,
			Name:        "Fashion",
			Slug:        "fashion",
			Description: "Stylish clothing and accessories",
			Image:       "https://images.unsplash.com/photo-1445205170230-053b83016050?q=80&w=1171",
			Subcategories: []domain.Subcategory{
				{ID: 201, Name: "Clothing", Slug: "clothing"},
				{ID: 202, Name: "Bags", Slug: "bags"},
				{ID: 203, Name: "Watches", Slug: "watches"},
				{ID: 204, Name: "Accessories", Slug: "accessories"},
			},
		},
		{
			ID:          3,
			Name:        "Sports",
			Slug:        "sports",
			Description: "Equipment and gear for active lifestyles",
			Image:       "https://images.unsplash.com/photo-1517649763962-0c623066013b?q=80&w=1170",
			Subcategories: []domain.Subcategory{
				{ID: 301, Name: "Yoga", Slug: "yoga"},
				{ID: 302, Name: "Fitness", Slug: "fitness"},
				{ID: 303, Name: "Outdoor", Slug: "outdoor"},
			},
		},
		{
			ID:          4,
			Name:        "Home & Kitchen",
			Slug:        "home-kitchen",
			Description: "Beautiful and functional items for your home",
			Image:       "https://images.unsplash.com/photo-1556911261-6bd341186b2f?q=80&w=1170",
			Subcategories: []domain.Subcategory{
				{ID: 401, Name: "Furniture", Slug: "furniture"},
				{ID: 402, Name: "Kitchenware", Slug: "kitchenware"},
				{ID: 403, Name: "Decor", Slug: "decor"},
			},
		},
		{
			ID:          5,
			Name:        "Beauty",
			Slug:        "beauty",
			Description: "Premium skincare and beauty products",
			Image:       "https://images.unsplash.com/photo-1522338242992-e1a54906a8da?q=80&w=1288",
			Subcategories: []domain.Subcategory{
				{ID: 501, Name: "Skincare", Slug: "skincare"},
				{ID: 502, Name: "Makeup", Slug: "makeup"},
				{ID: 503, Name: "Fragrance", Slug: "fragrance"},
			},
		},
		{
			ID:          6,
			Name:        "Books",
			Slug:        "books",
			Description: "Bestsellers and literary treasures",
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?q=80&w=1228",
			Subcategories: []domain.Subcategory{
				{ID: 601, Name: "Fiction", Slug: "fiction"},
				{ID: 602, Name: "Non-fiction", Slug: "non-fiction"},
				{ID: 603, Name: "Art & Design", Slug: "art-design"},
			},
		},
	}
}
