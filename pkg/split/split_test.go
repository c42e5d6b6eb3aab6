package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEven(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		participants int
		policy       RemainderPolicy
		want         []int64
		wantErr      error
	}{
		{
			name:         "Exact division",
			total:        10000,
			participants: 3,
			policy:       CreatorAbsorbs,
			want:         []int64{2500, 2500, 2500, 2500},
		},
		{
			name:         "Creator absorbs the remainder",
			total:        10001,
			participants: 2,
			policy:       CreatorAbsorbs,
			want:         []int64{3335, 3333, 3333},
		},
		{
			name:         "Remainder distributed in participant order",
			total:        10001,
			participants: 2,
			policy:       DistributeInOrder,
			want:         []int64{3333, 3334, 3334},
		},
		{
			name:         "Single participant",
			total:        101,
			participants: 1,
			policy:       CreatorAbsorbs,
			want:         []int64{51, 50},
		},
		{
			name:         "Total smaller than the group",
			total:        2,
			participants: 3,
			policy:       DistributeInOrder,
			want:         []int64{0, 1, 1, 0},
		},
		{
			name:         "Zero total",
			total:        0,
			participants: 2,
			wantErr:      ErrNonPositiveTotal,
		},
		{
			name:         "Negative total",
			total:        -100,
			participants: 2,
			wantErr:      ErrNonPositiveTotal,
		},
		{
			name:         "No participants",
			total:        100,
			participants: 0,
			wantErr:      ErrNoParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Even(tt.total, tt.participants, tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var sum int64
			for _, share := range got {
				sum += share
			}
			assert.Equal(t, tt.total, sum, "shares must sum to the total")
		})
	}
}

func TestRoundUpTo100(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		wantRounded int64
		wantTiggle  int64
	}{
		{"Already a multiple", 3300, 3300, 0},
		{"One over a multiple", 3301, 3400, 99},
		{"One under a multiple", 3399, 3400, 1},
		{"Small amount", 1, 100, 99},
		{"Zero", 0, 0, 0},
		{"Negative", -50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounded, tiggle := RoundUpTo100(tt.amount)
			assert.Equal(t, tt.wantRounded, rounded)
			assert.Equal(t, tt.wantTiggle, tiggle)
		})
	}
}
