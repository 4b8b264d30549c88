package catalog

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

// seedProducts returns the fixed product table. This mirrors a small slice of
// the upstream catalog so the service runs without a live data source.
func seedProducts() map[string]Product {
	return map[string]Product{
		"B08N5WRWNW": {
			ASIN:  "B08N5WRWNW",
			Title: "Echo Dot (4th Gen) | Smart speaker with Alexa | Charcoal",
			Images: []string{
				"https://images.unsplash.com/photo-1589492477829-5e65395b66cc?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500&h=500&fit=crop",
			},
			BasePrice:    49.99,
			Rating:       floatPtr(4.7),
			ReviewCount:  intPtr(45230),
			Seller:       strPtr("Amazon.com"),
			Availability: "In Stock",
			Description:  strPtr("Meet the all-new Echo Dot - Our most compact smart speaker that fits perfectly into small spaces."),
		},
		"B0C1SLD1PZ": {
			ASIN:  "B0C1SLD1PZ",
			Title: "Apple AirPods Pro (2nd Generation) Wireless Earbuds",
			Images: []string{
				"https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=500&h=500&fit=crop",
			},
			BasePrice:    249.99,
			Rating:       floatPtr(4.4),
			ReviewCount:  intPtr(12890),
			Seller:       strPtr("Apple"),
			Availability: "In Stock",
			Description:  strPtr("Active Noise Cancellation reduces unwanted background noise."),
		},
		"B0BDJ6M6JZ": {
			ASIN:  "B0BDJ6M6JZ",
			Title: "Kindle Paperwhite (11th Generation) - 6.8\" display, 8GB",
			Images: []string{
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1481277542470-605612bd2d61?w=500&h=500&fit=crop",
			},
			BasePrice:    139.99,
			Rating:       floatPtr(4.6),
			ReviewCount:  intPtr(8920),
			Seller:       strPtr("Amazon.com"),
			Availability: "In Stock",
			Description:  strPtr("The thinnest, lightest Kindle Paperwhite yet, with a 6.8\" display and adjustable warm light."),
		},
		"B0B2XZSTZ8": {
			ASIN:  "B0B2XZSTZ8",
			Title: "SAMSUNG 32\" Odyssey G7 Gaming Monitor, 4K UHD",
			Images: []string{
				"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1585792180666-f7347c490ee2?w=500&h=500&fit=crop",
			},
			BasePrice:    799.99,
			Rating:       floatPtr(4.3),
			ReviewCount:  intPtr(2340),
			Seller:       strPtr("Samsung"),
			Availability: "In Stock",
			Description:  strPtr("32\" 4K UHD gaming monitor with 144Hz refresh rate and HDR600."),
		},
		"B09G9FPHY6": {
			ASIN:  "B09G9FPHY6",
			Title: "Fire TV Stick 4K Max streaming device, Wi-Fi 6",
			Images: []string{
				"https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=500&h=500&fit=crop",
			},
			BasePrice:    54.99,
			Rating:       floatPtr(4.5),
			ReviewCount:  intPtr(15670),
			Seller:       strPtr("Amazon.com"),
			Availability: "In Stock",
			Description:  strPtr("Streaming stick with 40% more power, Wi-Fi 6 support, and Dolby Vision."),
		},
	}
}
