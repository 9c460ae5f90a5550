package model

// PackageOption represents one candidate packaging SKU from the uploaded catalog.
//
// Package options are constructed once per batch and shared read-only across
// all order evaluations; nothing in the engine mutates them. PackageName is
// the display and grouping key; name collisions refer to the same logical
// package.
//
// @Description Candidate packaging SKU with dimensions, cost, and optional limits
// @Example {"package_id": "PKG-S", "package_name": "Small", "length": 5, "width": 5, "height": 4, "cost_per_unit": 1.0}
type PackageOption struct {
	PackageID   string `json:"package_id" bson:"package_id" example:"PKG-S"`
	PackageName string `json:"package_name" bson:"package_name" example:"Small"`
	// Length, Width, Height define the package envelope; volume is their product.
	Length float64 `json:"length" bson:"length" example:"5"`
	Width  float64 `json:"width" bson:"width" example:"5"`
	Height float64 `json:"height" bson:"height" example:"4"`
	// CostPerUnit of zero is a valid "unknown cost" state, not a free package.
	CostPerUnit float64 `json:"cost_per_unit" bson:"cost_per_unit" example:"1.0"`
	// WeightPerUnit is the package material weight, used for material savings.
	WeightPerUnit float64 `json:"weight_per_unit" bson:"weight_per_unit" example:"0.2"`
	// MaxWeight is the weight ceiling; zero means no ceiling is enforced.
	MaxWeight float64 `json:"max_weight,omitempty" bson:"max_weight,omitempty" example:"20"`
	// BaselineUsageShare is the historical usage proportion in [0,1].
	// Nil means no declared share; see baseline comparison fallback.
	BaselineUsageShare *float64 `json:"baseline_usage_share,omitempty" bson:"baseline_usage_share,omitempty" example:"0.4"`
} // @name PackageOption

// Volume returns the package volume (length x width x height).
func (p PackageOption) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// SortedDimensions returns the package's dimensions in descending order.
func (p PackageOption) SortedDimensions() [3]float64 {
	return sortDims(p.Length, p.Width, p.Height)
}

// HasCost reports whether the package declares a known per-unit cost.
func (p PackageOption) HasCost() bool {
	return p.CostPerUnit > 0
}
