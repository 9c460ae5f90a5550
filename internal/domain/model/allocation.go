package model

// Allocation is the result of matching one order to one package.
//
// An Allocation exists only for an order that found at least one fitting
// package; orders with no fit are counted as unallocated and produce no
// Allocation. Allocations are append-only during batch processing and never
// mutated afterwards.
//
// @Description Recommended package assignment for a single order
// @Example {"order_id": "ORD-1042", "recommended_package": "Small", "fill_rate": 50, "efficiency": 0.5, "cost": 1.0}
type Allocation struct {
	OrderID            string `json:"order_id" bson:"order_id" example:"ORD-1042"`
	RecommendedPackage string `json:"recommended_package" bson:"recommended_package" example:"Small"`
	// FillRate is orderVolume / packageVolume expressed as a percentage.
	FillRate float64 `json:"fill_rate" bson:"fill_rate" example:"50"`
	// Efficiency is the selector's composite score (fill fraction / unit cost).
	Efficiency    float64 `json:"efficiency" bson:"efficiency" example:"0.5"`
	Cost          float64 `json:"cost" bson:"cost" example:"1.0"`
	OrderVolume   float64 `json:"order_volume" bson:"order_volume" example:"50"`
	PackageVolume float64 `json:"package_volume" bson:"package_volume" example:"100"`
} // @name Allocation
