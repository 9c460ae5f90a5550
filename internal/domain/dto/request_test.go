package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestOrderInput_ToModel(t *testing.T) {
	tests := []struct {
		name           string
		input          OrderInput
		expectedWeight float64
	}{
		{
			name:           "missing weight defaults to placeholder",
			input:          OrderInput{OrderID: "o1", Volume: 100},
			expectedWeight: 1,
		},
		{
			name:           "explicit zero weight means unknown and is kept",
			input:          OrderInput{OrderID: "o2", Volume: 100, Weight: floatPtr(0)},
			expectedWeight: 0,
		},
		{
			name:           "declared weight passes through",
			input:          OrderInput{OrderID: "o3", Volume: 100, Weight: floatPtr(2.5)},
			expectedWeight: 2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := tt.input.ToModel()
			assert.Equal(t, tt.input.OrderID, order.OrderID)
			assert.Equal(t, tt.expectedWeight, order.Weight)
		})
	}
}

func TestAllocateRequest_Validate(t *testing.T) {
	validOrder := OrderInput{OrderID: "o1", Volume: 50}
	validPackage := PackageInput{PackageName: "Small", Length: 5, Width: 5, Height: 4}

	tests := []struct {
		name        string
		request     AllocateRequest
		expectedErr error
	}{
		{
			name:        "valid request",
			request:     AllocateRequest{Orders: []OrderInput{validOrder}, Packages: []PackageInput{validPackage}},
			expectedErr: nil,
		},
		{
			name:        "missing orders",
			request:     AllocateRequest{Packages: []PackageInput{validPackage}},
			expectedErr: ErrNoOrders,
		},
		{
			name:        "missing packages",
			request:     AllocateRequest{Orders: []OrderInput{validOrder}},
			expectedErr: ErrNoPackages,
		},
		{
			name: "baseline share above one",
			request: AllocateRequest{
				Orders: []OrderInput{validOrder},
				Packages: []PackageInput{{
					PackageName: "Small", Length: 5, Width: 5, Height: 4,
					BaselineUsageShare: floatPtr(1.5),
				}},
			},
			expectedErr: ErrInvalidBaselineShare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}
}

func TestAllocateRequest_ToModels(t *testing.T) {
	request := AllocateRequest{
		Orders: []OrderInput{
			{OrderID: "o1", Volume: 50},
			{OrderID: "o2", Length: 10, Width: 5, Height: 3},
		},
		Packages: []PackageInput{
			{PackageName: "Small", Length: 5, Width: 5, Height: 4, CostPerUnit: 1},
		},
	}

	orders, packages := request.ToModels()
	require.Len(t, orders, 2)
	require.Len(t, packages, 1)

	assert.Equal(t, "o1", orders[0].OrderID)
	assert.InDelta(t, 150.0, orders[1].EffectiveVolume(), 1e-9)
	assert.Equal(t, "Small", packages[0].PackageName)
	assert.InDelta(t, 100.0, packages[0].Volume(), 1e-9)
}
