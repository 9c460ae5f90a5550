// Package model defines the core domain entities for the allocation service.
package model

// Order represents one customer order to be matched against the package catalog.
//
// Volume may be supplied directly or derived from Length x Width x Height.
// A zero Weight means the weight is unknown; unknown weights are never used
// to reject a package. Orders are built once per batch and never mutated.
//
// @Description Customer order with volume and optional dimensions
// @Example {"order_id": "ORD-1042", "volume": 150, "weight": 2.5}
type Order struct {
	// OrderID is unique within a batch (duplicates across batches are allowed).
	OrderID string `json:"order_id" bson:"order_id" example:"ORD-1042"`
	// Volume is the order volume in cubic units. Derived from dimensions when zero.
	Volume float64 `json:"volume" bson:"volume" example:"150"`
	// Weight in weight units. Zero means unknown, not weightless.
	Weight float64 `json:"weight" bson:"weight" example:"2.5"`
	// Length, Width, Height are optional; all three present enables dimensional fitting.
	Length float64 `json:"length,omitempty" bson:"length,omitempty" example:"10"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty" example:"5"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty" example:"3"`
} // @name Order

// EffectiveVolume returns the direct volume when present, otherwise the
// volume derived from the three dimensions. Returns 0 when neither is usable.
func (o Order) EffectiveVolume() float64 {
	if o.Volume > 0 {
		return o.Volume
	}
	if o.HasDimensions() {
		return o.Length * o.Width * o.Height
	}
	return 0
}

// HasDimensions reports whether all three dimensions are present and positive.
func (o Order) HasDimensions() bool {
	return o.Length > 0 && o.Width > 0 && o.Height > 0
}

// SortedDimensions returns the order's dimensions in descending order.
// Only meaningful when HasDimensions is true.
func (o Order) SortedDimensions() [3]float64 {
	return sortDims(o.Length, o.Width, o.Height)
}

// sortDims sorts three values in descending order without allocating.
func sortDims(a, b, c float64) [3]float64 {
	if a < b {
		a, b = b, a
	}
	if b < c {
		b, c = c, b
	}
	if a < b {
		a, b = b, a
	}
	return [3]float64{a, b, c}
}
