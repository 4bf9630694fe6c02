package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []BookingItem
		want  float64
	}{
		{
			name: "discounted and plain items",
			items: []BookingItem{
				{Price: 100, Discount: 10, Quantity: 2},
				{Price: 50, Discount: 0, Quantity: 1},
			},
			want: 230.00,
		},
		{
			name: "rounding to two places",
			items: []BookingItem{
				{Price: 9.99, Discount: 33, Quantity: 3},
			},
			// 9.99 * 0.67 * 3 = 20.0799
			want: 20.08,
		},
		{
			name: "full discount",
			items: []BookingItem{
				{Price: 250, Discount: 100, Quantity: 4},
			},
			want: 0,
		},
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingTotal(tt.items))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusBooked, StatusPaid, StatusPacked, StatusDispatched, StatusDelivered} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("BOOKED"))
}
