// Package mandi serves wholesale market (mandi) prices for major crops.
// The table is a fixed snapshot until a live eNAM feed is wired in.
package mandi

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Price is one crop's modal price at one market.
type Price struct {
	ID     int     `json:"id"`
	Crop   string  `json:"crop"`
	Market string  `json:"market"`
	State  string  `json:"state"`
	Price  float64 `json:"price"` // rupees per Unit
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
	Label  string  `json:"label"`
}

const snapshotDate = "2026-02-21"

var prices = []Price{
	{ID: 1, Crop: "Wheat", Market: "Azadpur, Delhi", State: "delhi", Price: 2150},
	{ID: 2, Crop: "Wheat", Market: "Kanpur Mandi", State: "up", Price: 2080},
	{ID: 3, Crop: "Wheat", Market: "Ludhiana Mandi", State: "punjab", Price: 2200},
	{ID: 4, Crop: "Wheat", Market: "Jaipur Mandi", State: "rajasthan", Price: 2100},
	{ID: 5, Crop: "Rice", Market: "Patna Mandi", State: "bihar", Price: 3200},
	{ID: 6, Crop: "Rice", Market: "Cuttack Mandi", State: "odisha", Price: 3100},
	{ID: 7, Crop: "Rice", Market: "Karimnagar Mandi", State: "telangana", Price: 2950},
	{ID: 8, Crop: "Rice", Market: "Thanjavur Mandi", State: "tamilnadu", Price: 3050},
	{ID: 9, Crop: "Maize", Market: "Gulbarga Mandi", State: "karnataka", Price: 1850},
	{ID: 10, Crop: "Maize", Market: "Davangere Mandi", State: "karnataka", Price: 1780},
	{ID: 11, Crop: "Maize", Market: "Nizamabad Mandi", State: "telangana", Price: 1820},
	{ID: 12, Crop: "Maize", Market: "Indore Mandi", State: "mp", Price: 1760},
	{ID: 13, Crop: "Cotton", Market: "Akola Mandi", State: "maharashtra", Price: 6800},
	{ID: 14, Crop: "Cotton", Market: "Rajkot Mandi", State: "gujarat", Price: 7100},
	{ID: 15, Crop: "Cotton", Market: "Adilabad Mandi", State: "telangana", Price: 6500},
	{ID: 16, Crop: "Cotton", Market: "Sirsa Mandi", State: "haryana", Price: 6950},
	{ID: 17, Crop: "Potato", Market: "Agra Mandi", State: "up", Price: 1200},
	{ID: 18, Crop: "Potato", Market: "Indore Mandi", State: "mp", Price: 1150},
	{ID: 19, Crop: "Potato", Market: "Jalandhar Mandi", State: "punjab", Price: 1400},
	{ID: 20, Crop: "Potato", Market: "Kolkata Mandi", State: "wb", Price: 1300},
}

func init() {
	for i := range prices {
		p := &prices[i]
		p.Unit = "Quintal"
		p.Date = snapshotDate
		p.Label = Rupees(p.Price) + "/" + p.Unit
	}
}

// Filter returns prices matching crop and state, compared
// case-insensitively. Empty filters match everything; state "all" too.
// The result is never nil.
func Filter(crop, state string) []Price {
	crop = strings.TrimSpace(crop)
	state = strings.TrimSpace(state)
	if strings.EqualFold(state, "all") {
		state = ""
	}

	out := []Price{}
	for _, p := range prices {
		if crop != "" && !strings.EqualFold(p.Crop, crop) {
			continue
		}
		if state != "" && !strings.EqualFold(p.State, state) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Crops lists the distinct crops in first-seen order.
func Crops() []string {
	return distinct(func(p Price) string { return p.Crop })
}

// States lists the distinct state codes in first-seen order.
func States() []string {
	return distinct(func(p Price) string { return p.State })
}

func distinct(key func(Price) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range prices {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Rupees formats an amount with thousands separators, e.g. ₹12,500.
func Rupees(amount float64) string {
	return "₹" + humanize.Commaf(amount)
}
