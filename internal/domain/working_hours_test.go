package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestWorkingHours_Validate(t *testing.T) {
	at := types.MustTimeString

	tests := []struct {
		name    string
		wh      WorkingHours
		wantErr bool
	}{
		{
			name: "closed day is always valid",
			wh:   WorkingHours{IsOpen: false, OpenTime: at("18:00"), CloseTime: at("09:00")},
		},
		{
			name: "open without break",
			wh:   WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00")},
		},
		{
			name: "break inside hours",
			wh: WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"),
				HasBreak: true, BreakStart: ptr.Ptr(at("12:00")), BreakEnd: ptr.Ptr(at("13:00"))},
		},
		{
			name: "break touching bounds",
			wh: WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"),
				HasBreak: true, BreakStart: ptr.Ptr(at("09:00")), BreakEnd: ptr.Ptr(at("17:00"))},
		},
		{
			name:    "open after close",
			wh:      WorkingHours{IsOpen: true, OpenTime: at("18:00"), CloseTime: at("09:00")},
			wantErr: true,
		},
		{
			name:    "zero length day",
			wh:      WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("09:00")},
			wantErr: true,
		},
		{
			name:    "break without bounds",
			wh:      WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"), HasBreak: true},
			wantErr: true,
		},
		{
			name: "inverted break",
			wh: WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"),
				HasBreak: true, BreakStart: ptr.Ptr(at("13:00")), BreakEnd: ptr.Ptr(at("12:00"))},
			wantErr: true,
		},
		{
			name: "break past close",
			wh: WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"),
				HasBreak: true, BreakStart: ptr.Ptr(at("16:30")), BreakEnd: ptr.Ptr(at("17:30"))},
			wantErr: true,
		},
		{
			name: "break before open",
			wh: WorkingHours{IsOpen: true, OpenTime: at("09:00"), CloseTime: at("17:00"),
				HasBreak: true, BreakStart: ptr.Ptr(at("08:30")), BreakEnd: ptr.Ptr(at("09:30"))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wh.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
