package model

// Progress is a checkpoint emitted between chunks of a batch run.
//
// @Description Batch progress checkpoint
type Progress struct {
	ProcessedCount  int     `json:"processed_count" bson:"processed_count" example:"20000"`
	TotalCount      int     `json:"total_count" bson:"total_count" example:"1000000"`
	PercentComplete float64 `json:"percent_complete" bson:"percent_complete" example:"2"`
	ChunkIndex      int     `json:"chunk_index" bson:"chunk_index" example:"2"`
	TotalChunks     int     `json:"total_chunks" bson:"total_chunks" example:"100"`
} // @name Progress

// Summary holds aggregate metrics for a completed (or cancelled) batch run.
//
// ProcessingSeconds and Throughput are wall-clock derived and excluded from
// determinism guarantees; everything else is reproducible for a fixed input.
type Summary struct {
	TotalOrders       int     `json:"total_orders" bson:"total_orders" example:"3"`
	AllocatedOrders   int     `json:"allocated_orders" bson:"allocated_orders" example:"3"`
	UnallocatedOrders int     `json:"unallocated_orders" bson:"unallocated_orders" example:"0"`
	AverageFillRate   float64 `json:"average_fill_rate" bson:"average_fill_rate" example:"53.33"`
	ProcessingSeconds float64 `json:"processing_seconds" bson:"processing_seconds" example:"0.012"`
	// Throughput is orders processed per second.
	Throughput float64 `json:"throughput" bson:"throughput" example:"250000"`
} // @name Summary

// PackageUsage is one row of the optimized package distribution.
type PackageUsage struct {
	PackageName string  `json:"package_name" bson:"package_name" example:"Small"`
	Count       int     `json:"count" bson:"count" example:"1"`
	Percentage  float64 `json:"percentage" bson:"percentage" example:"33.33"`
} // @name PackageUsage

// FillRateBucket is one fixed fill-rate histogram bucket.
type FillRateBucket struct {
	// Label is the bucket range, e.g. "50-75%".
	Label string `json:"label" bson:"label" example:"50-75%"`
	Count int    `json:"count" bson:"count" example:"1"`
} // @name FillRateBucket

// VolumeBucket is one adaptive order-volume histogram bucket.
// Empty buckets are omitted from the report.
type VolumeBucket struct {
	RangeStart float64 `json:"range_start" bson:"range_start" example:"50"`
	RangeEnd   float64 `json:"range_end" bson:"range_end" example:"57"`
	Label      string  `json:"label" bson:"label" example:"50.0-57.0"`
	Count      int     `json:"count" bson:"count" example:"1"`
} // @name VolumeBucket

// EfficiencyCounts classifies allocations by fill-rate quality.
type EfficiencyCounts struct {
	// OptimalAllocations have a fill rate of 75% or better.
	OptimalAllocations int `json:"optimal_allocations" bson:"optimal_allocations" example:"1"`
	// SubOptimalAllocations have a fill rate in [25%, 75%).
	SubOptimalAllocations int `json:"sub_optimal_allocations" bson:"sub_optimal_allocations" example:"2"`
	UnallocatedOrders     int `json:"unallocated_orders" bson:"unallocated_orders" example:"0"`
} // @name EfficiencyCounts

// SavingsRow compares baseline and optimized usage for one package.
// Savings can be negative when the optimizer leans on a package more than
// the baseline did; that is a legitimate output, not an error.
type SavingsRow struct {
	PackageName     string  `json:"package_name" bson:"package_name" example:"Small"`
	BaselineShare   float64 `json:"baseline_share" bson:"baseline_share" example:"0.5"`
	BaselineOrders  int     `json:"baseline_orders" bson:"baseline_orders" example:"2"`
	OptimizedOrders int     `json:"optimized_orders" bson:"optimized_orders" example:"1"`
	BaselineTotal   float64 `json:"baseline_total" bson:"baseline_total" example:"2.0"`
	OptimizedTotal  float64 `json:"optimized_total" bson:"optimized_total" example:"1.0"`
	Savings         float64 `json:"savings" bson:"savings" example:"1.0"`
	// UnknownUnit flags a package with no declared per-unit value (cost or weight),
	// so its totals understate reality rather than meaning "free".
	UnknownUnit bool `json:"unknown_unit,omitempty" bson:"unknown_unit,omitempty"`
} // @name SavingsRow

// SavingsSummary aggregates baseline-vs-optimized totals for one unit kind
// (cost or material weight).
type SavingsSummary struct {
	BaselineTotal  float64 `json:"baseline_total" bson:"baseline_total" example:"6.0"`
	OptimizedTotal float64 `json:"optimized_total" bson:"optimized_total" example:"7.0"`
	// Savings is exactly BaselineTotal - OptimizedTotal.
	Savings float64 `json:"savings" bson:"savings" example:"-1.0"`
	// SavingsPercent is Savings / BaselineTotal x 100, or 0 when the baseline is 0.
	SavingsPercent float64      `json:"savings_percent" bson:"savings_percent" example:"-16.67"`
	PerPackage     []SavingsRow `json:"per_package" bson:"per_package"`
} // @name SavingsSummary

// BaselineComparison contrasts the baseline package-usage mix against the
// optimized allocation, for both cost and material weight.
type BaselineComparison struct {
	// BaselineDistribution maps catalog order to baseline usage share; shares
	// sum to 1 when any package declares one, or fall back to an even split.
	BaselineDistribution []PackageUsage `json:"baseline_distribution" bson:"baseline_distribution"`
	Cost                 SavingsSummary `json:"cost" bson:"cost"`
	Material             SavingsSummary `json:"material" bson:"material"`
} // @name BaselineComparison

// AnalysisReport is the aggregate output of one batch run. Created once,
// immutable, and persisted by the analysis repository.
//
// @Description Full allocation analysis report
type AnalysisReport struct {
	Allocations          []Allocation       `json:"allocations" bson:"allocations"`
	Summary              Summary            `json:"summary" bson:"summary"`
	PackageDistribution  []PackageUsage     `json:"package_distribution" bson:"package_distribution"`
	FillRateDistribution []FillRateBucket   `json:"fill_rate_distribution" bson:"fill_rate_distribution"`
	VolumeDistribution   []VolumeBucket     `json:"volume_distribution" bson:"volume_distribution"`
	Efficiency           EfficiencyCounts   `json:"efficiency" bson:"efficiency"`
	Baseline             BaselineComparison `json:"baseline" bson:"baseline"`
	// Partial is set when a run was cancelled between chunks; the report then
	// covers only the completed chunks.
	Partial bool `json:"partial,omitempty" bson:"partial,omitempty"`
} // @name AnalysisReport
