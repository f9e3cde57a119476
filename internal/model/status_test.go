package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vento/internal/dateutil"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusNormal, StatusPending, StatusCompleted, StatusDeactivated} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("archived").Valid())
}

func TestResolveStatus(t *testing.T) {
	today := dateutil.New(2025, time.January, 15)

	tests := []struct {
		name        string
		date        dateutil.Day
		deactivated bool
		want        Status
	}{
		{"future date", today.AddDays(3), false, StatusNormal},
		{"today", today, false, StatusNormal},
		{"past date", today.AddDays(-1), false, StatusPending},
		{"deactivated wins over past date", today.AddDays(-30), true, StatusDeactivated},
		{"deactivated wins over future date", today.AddDays(30), true, StatusDeactivated},
		{"deactivated wins over today", today, true, StatusDeactivated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveStatus(tc.date, tc.deactivated, today))
		})
	}
}
