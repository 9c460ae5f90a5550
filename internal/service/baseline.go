package service

import (
	"math"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// CompareBaseline contrasts the baseline package-usage mix against the
// optimized allocation and computes cost and material savings.
//
// The baseline distribution uses each package's declared usage share. When
// no package declares one, an even split across the catalog is assumed so a
// cost comparison is still possible. When only some packages declare shares,
// the undeclared packages split the remaining share evenly.
//
// Duplicate package names refer to the same logical package; the first
// catalog entry for a name supplies its unit cost and weight.
func CompareBaseline(allocations []model.Allocation, packages []model.PackageOption, totalOrders int) model.BaselineComparison {
	catalog := dedupeByName(packages)
	shares := baselineShares(catalog)

	optimized := make(map[string]int, len(catalog))
	for _, alloc := range allocations {
		optimized[alloc.RecommendedPackage]++
	}

	distribution := make([]model.PackageUsage, 0, len(catalog))
	for i, pkg := range catalog {
		distribution = append(distribution, model.PackageUsage{
			PackageName: pkg.PackageName,
			Count:       baselineCount(totalOrders, shares[i]),
			Percentage:  shares[i] * 100,
		})
	}

	cost := savingsSummary(catalog, shares, optimized, totalOrders, func(p model.PackageOption) float64 {
		return p.CostPerUnit
	})
	material := savingsSummary(catalog, shares, optimized, totalOrders, func(p model.PackageOption) float64 {
		return p.WeightPerUnit
	})

	return model.BaselineComparison{
		BaselineDistribution: distribution,
		Cost:                 cost,
		Material:             material,
	}
}

// dedupeByName collapses catalog entries with the same package name,
// keeping the first occurrence.
func dedupeByName(packages []model.PackageOption) []model.PackageOption {
	seen := make(map[string]bool, len(packages))
	out := make([]model.PackageOption, 0, len(packages))
	for _, pkg := range packages {
		if seen[pkg.PackageName] {
			continue
		}
		seen[pkg.PackageName] = true
		out = append(out, pkg)
	}
	return out
}

// baselineShares returns the baseline usage share per catalog entry,
// aligned by index with the deduplicated catalog.
func baselineShares(catalog []model.PackageOption) []float64 {
	shares := make([]float64, len(catalog))
	declaredSum := 0.0
	undeclared := 0
	for i, pkg := range catalog {
		if pkg.BaselineUsageShare != nil && *pkg.BaselineUsageShare > 0 {
			shares[i] = *pkg.BaselineUsageShare
			declaredSum += shares[i]
		} else {
			shares[i] = -1
			undeclared++
		}
	}

	if undeclared == len(catalog) {
		// No historical data at all: assume an even split.
		even := 1.0 / float64(len(catalog))
		for i := range shares {
			shares[i] = even
		}
		return shares
	}

	// Packages without a declared share split the remainder evenly.
	remainder := 1.0 - declaredSum
	if remainder < 0 {
		remainder = 0
	}
	for i := range shares {
		if shares[i] < 0 {
			shares[i] = remainder / float64(undeclared)
		}
	}
	return shares
}

// baselineCount converts a share into a whole order count.
func baselineCount(totalOrders int, share float64) int {
	return int(math.Round(float64(totalOrders) * share))
}

// savingsSummary builds the per-package and aggregate baseline-vs-optimized
// comparison for one unit kind (cost or weight), selected by unitValue.
func savingsSummary(catalog []model.PackageOption, shares []float64, optimized map[string]int, totalOrders int, unitValue func(model.PackageOption) float64) model.SavingsSummary {
	rows := make([]model.SavingsRow, 0, len(catalog))
	baselineTotal := 0.0
	optimizedTotal := 0.0

	for i, pkg := range catalog {
		unit := unitValue(pkg)
		baseOrders := baselineCount(totalOrders, shares[i])
		optOrders := optimized[pkg.PackageName]

		base := float64(baseOrders) * unit
		opt := float64(optOrders) * unit
		baselineTotal += base
		optimizedTotal += opt

		rows = append(rows, model.SavingsRow{
			PackageName:     pkg.PackageName,
			BaselineShare:   shares[i],
			BaselineOrders:  baseOrders,
			OptimizedOrders: optOrders,
			BaselineTotal:   base,
			OptimizedTotal:  opt,
			Savings:         base - opt,
			UnknownUnit:     unit <= 0,
		})
	}

	savings := baselineTotal - optimizedTotal
	percent := 0.0
	if baselineTotal > 0 {
		percent = savings / baselineTotal * 100
	}

	return model.SavingsSummary{
		BaselineTotal:  baselineTotal,
		OptimizedTotal: optimizedTotal,
		Savings:        savings,
		SavingsPercent: percent,
		PerPackage:     rows,
	}
}
