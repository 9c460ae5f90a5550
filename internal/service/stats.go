package service

import (
	"fmt"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// fillRateBucketLabels are the fixed fill-rate histogram buckets.
// The last bucket is closed at 100 because every allocation's package
// volume is at least the order volume.
var fillRateBucketLabels = [4]string{"0-25%", "25-50%", "50-75%", "75-100%"}

// Statistics bundles the aggregated distributions for a batch run.
type Statistics struct {
	PackageDistribution  []model.PackageUsage
	FillRateDistribution []model.FillRateBucket
	VolumeDistribution   []model.VolumeBucket
	Efficiency           model.EfficiencyCounts
}

// AggregateStatistics builds histograms and efficiency counts from the
// allocation results. All output slices have deterministic ordering:
// package rows appear in first-allocation order, volume buckets ascending.
func AggregateStatistics(allocations []model.Allocation, totalOrders int) Statistics {
	return Statistics{
		PackageDistribution:  packageDistribution(allocations),
		FillRateDistribution: fillRateDistribution(allocations),
		VolumeDistribution:   volumeDistribution(allocations, totalOrders),
		Efficiency:           efficiencyCounts(allocations, totalOrders),
	}
}

// packageDistribution counts allocations per recommended package name.
func packageDistribution(allocations []model.Allocation) []model.PackageUsage {
	counts := make(map[string]int)
	var names []string
	for _, alloc := range allocations {
		if _, seen := counts[alloc.RecommendedPackage]; !seen {
			names = append(names, alloc.RecommendedPackage)
		}
		counts[alloc.RecommendedPackage]++
	}

	usage := make([]model.PackageUsage, 0, len(names))
	for _, name := range names {
		usage = append(usage, model.PackageUsage{
			PackageName: name,
			Count:       counts[name],
			Percentage:  float64(counts[name]) / float64(len(allocations)) * 100,
		})
	}
	return usage
}

// fillRateDistribution buckets allocations into the four fixed ranges.
func fillRateDistribution(allocations []model.Allocation) []model.FillRateBucket {
	var counts [4]int
	for _, alloc := range allocations {
		counts[fillRateBucketIndex(alloc.FillRate)]++
	}

	buckets := make([]model.FillRateBucket, 0, 4)
	for i, label := range fillRateBucketLabels {
		buckets = append(buckets, model.FillRateBucket{Label: label, Count: counts[i]})
	}
	return buckets
}

func fillRateBucketIndex(fillRate float64) int {
	switch {
	case fillRate < 25:
		return 0
	case fillRate < 50:
		return 1
	case fillRate < 75:
		return 2
	default:
		return 3
	}
}

// volumeBinCount scales the histogram resolution with dataset size.
func volumeBinCount(totalOrders int) int {
	switch {
	case totalOrders < 1000:
		return 50
	case totalOrders < 10000:
		return 75
	default:
		return 100
	}
}

// volumeDistribution builds an adaptive histogram over the allocated order
// volumes. Empty buckets are omitted. When every volume is identical the
// histogram collapses to a single bucket labeled by that volume.
func volumeDistribution(allocations []model.Allocation, totalOrders int) []model.VolumeBucket {
	if len(allocations) == 0 {
		return nil
	}

	minVol := allocations[0].OrderVolume
	maxVol := minVol
	for _, alloc := range allocations[1:] {
		if alloc.OrderVolume < minVol {
			minVol = alloc.OrderVolume
		}
		if alloc.OrderVolume > maxVol {
			maxVol = alloc.OrderVolume
		}
	}

	if minVol == maxVol {
		return []model.VolumeBucket{{
			RangeStart: minVol,
			RangeEnd:   maxVol,
			Label:      fmt.Sprintf("%.1f", minVol),
			Count:      len(allocations),
		}}
	}

	binCount := volumeBinCount(totalOrders)
	width := (maxVol - minVol) / float64(binCount)
	counts := make([]int, binCount)
	for _, alloc := range allocations {
		idx := int((alloc.OrderVolume - minVol) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}

	buckets := make([]model.VolumeBucket, 0, binCount)
	for i, count := range counts {
		if count == 0 {
			continue
		}
		lo := minVol + float64(i)*width
		hi := lo + width
		buckets = append(buckets, model.VolumeBucket{
			RangeStart: lo,
			RangeEnd:   hi,
			Label:      fmt.Sprintf("%.1f-%.1f", lo, hi),
			Count:      count,
		})
	}
	return buckets
}

// efficiencyCounts classifies allocations by fill-rate quality.
func efficiencyCounts(allocations []model.Allocation, totalOrders int) model.EfficiencyCounts {
	counts := model.EfficiencyCounts{
		UnallocatedOrders: totalOrders - len(allocations),
	}
	for _, alloc := range allocations {
		if alloc.FillRate >= 75 {
			counts.OptimalAllocations++
		} else if alloc.FillRate >= 25 {
			counts.SubOptimalAllocations++
		}
	}
	return counts
}
