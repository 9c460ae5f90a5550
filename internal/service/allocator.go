// Package service contains the business logic for the allocation service.
package service

import (
	"github.com/guttosm/allocation-service/internal/domain/model"
)

// DefaultCostEpsilon is the floor applied to per-unit cost when scoring
// candidates, so zero-cost ("unknown cost") packages stay finite.
const DefaultCostEpsilon = 0.01

// Allocator matches a single order against the package catalog.
// It is stateless apart from its configuration and safe for shared use.
type Allocator struct {
	costEpsilon float64
}

// NewAllocator creates an Allocator with the given cost epsilon.
// A non-positive epsilon falls back to DefaultCostEpsilon.
func NewAllocator(costEpsilon float64) *Allocator {
	if costEpsilon <= 0 {
		costEpsilon = DefaultCostEpsilon
	}
	return &Allocator{costEpsilon: costEpsilon}
}

// FitPackages returns the packages that can physically and legally contain
// the order, preserving catalog order. An order without usable volume fits
// nothing.
//
// Dimensional fitting is used when the order carries all three dimensions:
// both dimension triples are sorted descending and compared element-wise.
// This approximates axis-aligned fit with free rotation; it is not an exact
// 3D packing proof. Orders without dimensions fall back to volume-only
// fitting, which ignores shape.
func (a *Allocator) FitPackages(order model.Order, packages []model.PackageOption) []model.PackageOption {
	orderVolume := order.EffectiveVolume()
	if orderVolume <= 0 {
		return nil
	}

	useDims := order.HasDimensions()
	var orderDims [3]float64
	if useDims {
		orderDims = order.SortedDimensions()
	}

	var candidates []model.PackageOption
	for _, pkg := range packages {
		if pkg.Volume() <= 0 {
			continue
		}
		if useDims {
			if !dimsFit(orderDims, pkg.SortedDimensions()) {
				continue
			}
		} else if pkg.Volume() < orderVolume {
			continue
		}
		// Weight ceiling applies only when both sides declare a value.
		if pkg.MaxWeight > 0 && order.Weight > 0 && order.Weight > pkg.MaxWeight {
			continue
		}
		candidates = append(candidates, pkg)
	}
	return candidates
}

// dimsFit reports whether each sorted order dimension fits within the
// corresponding sorted package dimension.
func dimsFit(order, pkg [3]float64) bool {
	return order[0] <= pkg[0] && order[1] <= pkg[1] && order[2] <= pkg[2]
}

// Efficiency scores a candidate: fill fraction divided by epsilon-floored
// unit cost. Tighter fill and lower cost both raise the score.
func (a *Allocator) Efficiency(orderVolume float64, pkg model.PackageOption) float64 {
	cost := pkg.CostPerUnit
	if cost < a.costEpsilon {
		cost = a.costEpsilon
	}
	return (orderVolume / pkg.Volume()) / cost
}

// SelectPackage picks the highest-efficiency candidate. Ties are broken by
// the first-encountered candidate, so results are deterministic for a fixed
// catalog ordering. Returns false when there are no candidates.
func (a *Allocator) SelectPackage(order model.Order, candidates []model.PackageOption) (model.PackageOption, bool) {
	if len(candidates) == 0 {
		return model.PackageOption{}, false
	}

	orderVolume := order.EffectiveVolume()
	best := candidates[0]
	bestScore := a.Efficiency(orderVolume, best)
	for _, pkg := range candidates[1:] {
		if score := a.Efficiency(orderVolume, pkg); score > bestScore {
			best = pkg
			bestScore = score
		}
	}
	return best, true
}

// Allocate runs fit filtering and selection for one order and builds the
// Allocation record. Returns false when the order is unallocated.
func (a *Allocator) Allocate(order model.Order, packages []model.PackageOption) (model.Allocation, bool) {
	candidates := a.FitPackages(order, packages)
	best, ok := a.SelectPackage(order, candidates)
	if !ok {
		return model.Allocation{}, false
	}

	orderVolume := order.EffectiveVolume()
	pkgVolume := best.Volume()
	return model.Allocation{
		OrderID:            order.OrderID,
		RecommendedPackage: best.PackageName,
		FillRate:           orderVolume / pkgVolume * 100,
		Efficiency:         a.Efficiency(orderVolume, best),
		Cost:               best.CostPerUnit,
		OrderVolume:        orderVolume,
		PackageVolume:      pkgVolume,
	}, true
}
