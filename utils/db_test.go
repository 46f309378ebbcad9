// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestDBToLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{
			name: "full scale",
			db:   0,
			want: 1.0,
		},
		{
			name: "minus six close to half",
			db:   -6.0206,
			want: 0.5,
		},
		{
			name: "minus twenty",
			db:   -20,
			want: 0.1,
		},
		{
			name: "minus sixty",
			db:   -60,
			want: 0.001,
		},
		{
			name: "plus six close to double",
			db:   6.0206,
			want: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DBToLinear(tt.db)
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestLinearToDB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{
			name: "full scale",
			v:    1.0,
			want: 0,
		},
		{
			name: "tenth",
			v:    0.1,
			want: -20,
		},
		{
			name: "thousandth",
			v:    0.001,
			want: -60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := LinearToDB(tt.v)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LinearToDB(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

// TestLinearToDBSilence checks the zero and negative amplitude edge.
func TestLinearToDBSilence(t *testing.T) {
	t.Parallel()

	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Errorf("LinearToDB(0) = %v, want -Inf", got)
	}

	if got := LinearToDB(-0.5); !math.IsInf(got, -1) {
		t.Errorf("LinearToDB(-0.5) = %v, want -Inf", got)
	}
}

// TestDBRoundTrip verifies the two conversions invert each other.
func TestDBRoundTrip(t *testing.T) {
	t.Parallel()

	for db := -90.0; db <= 0.0; db += 1.5 {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 1e-9 {
			t.Errorf("round trip %v dB came back as %v dB", db, back)
		}
	}
}
