// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry validation
// for API communication. Input normalization that belongs to the ingestion
// boundary (e.g. the missing-weight placeholder) happens here, so the engine
// always sees well-typed data.
package dto

import (
	"github.com/guttosm/allocation-service/internal/domain/model"
)

// defaultOrderWeight is the placeholder applied when an order row carries
// no weight at all. An explicit weight of 0 means "unknown" and is kept.
const defaultOrderWeight = 1

// OrderInput is one order row of an allocation request.
//
// @Description Order to be matched against the package catalog
type OrderInput struct {
	// OrderID must be unique within the batch.
	OrderID string `json:"order_id" binding:"required" example:"ORD-1042"`
	// Volume in cubic units; may be omitted when all three dimensions are given.
	Volume float64 `json:"volume,omitempty" example:"150" minimum:"0"`
	// Weight; omit when unknown. Nil defaults to 1.
	Weight *float64 `json:"weight,omitempty" example:"2.5" minimum:"0"`
	Length float64  `json:"length,omitempty" example:"10" minimum:"0"`
	Width  float64  `json:"width,omitempty" example:"5" minimum:"0"`
	Height float64  `json:"height,omitempty" example:"3" minimum:"0"`
} // @name OrderInput

// ToModel converts the input row into the immutable domain order.
func (o OrderInput) ToModel() model.Order {
	weight := float64(defaultOrderWeight)
	if o.Weight != nil {
		weight = *o.Weight
	}
	return model.Order{
		OrderID: o.OrderID,
		Volume:  o.Volume,
		Weight:  weight,
		Length:  o.Length,
		Width:   o.Width,
		Height:  o.Height,
	}
}

// PackageInput is one package catalog row of an allocation request.
//
// @Description Candidate packaging SKU
type PackageInput struct {
	PackageID   string  `json:"package_id,omitempty" example:"PKG-S"`
	PackageName string  `json:"package_name" binding:"required" example:"Small"`
	Length      float64 `json:"length" binding:"required,gt=0" example:"5"`
	Width       float64 `json:"width" binding:"required,gt=0" example:"5"`
	Height      float64 `json:"height" binding:"required,gt=0" example:"4"`
	// CostPerUnit of zero is treated as unknown cost, not free.
	CostPerUnit   float64 `json:"cost_per_unit,omitempty" example:"1.0" minimum:"0"`
	WeightPerUnit float64 `json:"weight_per_unit,omitempty" example:"0.2" minimum:"0"`
	MaxWeight     float64 `json:"max_weight,omitempty" example:"20" minimum:"0"`
	// BaselineUsageShare in [0,1]; omit when no historical usage is known.
	BaselineUsageShare *float64 `json:"baseline_usage_share,omitempty" example:"0.4" minimum:"0" maximum:"1"`
} // @name PackageInput

// ToModel converts the input row into the immutable domain package option.
func (p PackageInput) ToModel() model.PackageOption {
	return model.PackageOption{
		PackageID:          p.PackageID,
		PackageName:        p.PackageName,
		Length:             p.Length,
		Width:              p.Width,
		Height:             p.Height,
		CostPerUnit:        p.CostPerUnit,
		WeightPerUnit:      p.WeightPerUnit,
		MaxWeight:          p.MaxWeight,
		BaselineUsageShare: p.BaselineUsageShare,
	}
}

// AllocateRequest is the JSON body for both the synchronous allocate
// endpoint and asynchronous analysis creation.
//
// @Description Orders and package catalog for one allocation batch
type AllocateRequest struct {
	Orders   []OrderInput   `json:"orders" binding:"required,min=1,dive"`
	Packages []PackageInput `json:"packages" binding:"required,min=1,dive"`
} // @name AllocateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoOrders is returned when the request carries no orders.
	ErrNoOrders = &ValidationError{Field: "orders", Message: "at least one order is required"}
	// ErrNoPackages is returned when the request carries no packages.
	ErrNoPackages = &ValidationError{Field: "packages", Message: "at least one package is required"}
	// ErrInvalidBaselineShare is returned when a usage share is outside [0,1].
	ErrInvalidBaselineShare = &ValidationError{Field: "baseline_usage_share", Message: "must be between 0 and 1"}
)

// Validate performs custom validation beyond the binding tags.
func (r *AllocateRequest) Validate() error {
	if len(r.Orders) == 0 {
		return ErrNoOrders
	}
	if len(r.Packages) == 0 {
		return ErrNoPackages
	}
	for _, pkg := range r.Packages {
		if pkg.BaselineUsageShare != nil && (*pkg.BaselineUsageShare < 0 || *pkg.BaselineUsageShare > 1) {
			return ErrInvalidBaselineShare
		}
	}
	return nil
}

// ToModels converts the request into domain orders and package options.
func (r *AllocateRequest) ToModels() ([]model.Order, []model.PackageOption) {
	orders := make([]model.Order, 0, len(r.Orders))
	for _, o := range r.Orders {
		orders = append(orders, o.ToModel())
	}
	packages := make([]model.PackageOption, 0, len(r.Packages))
	for _, p := range r.Packages {
		packages = append(packages, p.ToModel())
	}
	return orders, packages
}
