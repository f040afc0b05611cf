package metrics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelbdn/autolog/internal/maintenance"
	"github.com/rafaelbdn/autolog/internal/metrics"
)

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func completedWithNextMileage(typ string, nextMileage int) *maintenance.Record {
	return &maintenance.Record{
		ID:          uuid.New(),
		Type:        typ,
		Status:      maintenance.StatusCompleted,
		NextMileage: intPtr(nextMileage),
	}
}

func TestMileageAlerts(t *testing.T) {
	type testCase struct {
		name           string
		recs           []*maintenance.Record
		currentMileage int
		wantStatus     []metrics.AlertStatus
		wantValue      []int
	}

	tests := []testCase{
		{
			name:           "UnknownCurrentMileageProducesNothing",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 500)},
			currentMileage: 0,
			wantStatus:     nil,
			wantValue:      nil,
		},
		{
			name:           "Upcoming",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 10050)},
			currentMileage: 10000,
			wantStatus:     []metrics.AlertStatus{metrics.AlertUpcoming},
			wantValue:      []int{50},
		},
		{
			name:           "Overdue",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 9800)},
			currentMileage: 10000,
			wantStatus:     []metrics.AlertStatus{metrics.AlertOverdue},
			wantValue:      []int{200},
		},
		{
			name:           "TargetEqualsCurrentIsOverdue",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 10000)},
			currentMileage: 10000,
			wantStatus:     []metrics.AlertStatus{metrics.AlertOverdue},
			wantValue:      []int{0},
		},
		{
			name:           "ExactlyAtThresholdIsUpcoming",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 11000)},
			currentMileage: 10000,
			wantStatus:     []metrics.AlertStatus{metrics.AlertUpcoming},
			wantValue:      []int{1000},
		},
		{
			name:           "BeyondThresholdProducesNothing",
			recs:           []*maintenance.Record{completedWithNextMileage("Troca de óleo", 11001)},
			currentMileage: 10000,
			wantStatus:     nil,
			wantValue:      nil,
		},
		{
			name: "PendingRecordIsIgnored",
			recs: []*maintenance.Record{{
				ID:          uuid.New(),
				Type:        "Troca de óleo",
				Status:      maintenance.StatusPending,
				NextMileage: intPtr(9800),
			}},
			currentMileage: 10000,
			wantStatus:     nil,
			wantValue:      nil,
		},
		{
			name: "MissingTargetIsIgnored",
			recs: []*maintenance.Record{{
				ID:     uuid.New(),
				Type:   "Troca de óleo",
				Status: maintenance.StatusCompleted,
			}},
			currentMileage: 10000,
			wantStatus:     nil,
			wantValue:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := metrics.MileageAlerts(tt.recs, tt.currentMileage)

			require.Len(t, got, len(tt.wantStatus))

			for i := range got {
				assert.Equal(t, tt.wantStatus[i], got[i].Status)
				assert.Equal(t, tt.wantValue[i], got[i].Value)
				assert.Equal(t, metrics.UnitKM, got[i].Unit)
			}
		})
	}
}

func TestMileageAlerts_IdentityAndTarget(t *testing.T) {
	rec := completedWithNextMileage(maintenance.TypeOther, 10050)
	rec.CustomType = "Polimento"

	got := metrics.MileageAlerts([]*maintenance.Record{rec}, 10000)

	require.Len(t, got, 1)
	assert.Equal(t, rec.ID.String()+"-km", got[0].ID)
	assert.Equal(t, "Polimento", got[0].Type)
	assert.Equal(t, "10050 km", got[0].NextTarget)
}

func TestDateAlerts(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	type testCase struct {
		name       string
		nextDate   *time.Time
		status     maintenance.Status
		wantStatus []metrics.AlertStatus
		wantValue  []int
	}

	tests := []testCase{
		{
			name:       "UpcomingInFiveDays",
			nextDate:   timePtr(now.AddDate(0, 0, 5)),
			status:     maintenance.StatusCompleted,
			wantStatus: []metrics.AlertStatus{metrics.AlertUpcoming},
			wantValue:  []int{5},
		},
		{
			name:       "OverdueByThreeDays",
			nextDate:   timePtr(now.AddDate(0, 0, -3)),
			status:     maintenance.StatusCompleted,
			wantStatus: []metrics.AlertStatus{metrics.AlertOverdue},
			wantValue:  []int{3},
		},
		{
			name:       "DueTodayIsUpcomingZero",
			nextDate:   timePtr(now),
			status:     maintenance.StatusCompleted,
			wantStatus: []metrics.AlertStatus{metrics.AlertUpcoming},
			wantValue:  []int{0},
		},
		{
			name:       "ExactlyAtThresholdIsUpcoming",
			nextDate:   timePtr(now.AddDate(0, 0, 30)),
			status:     maintenance.StatusCompleted,
			wantStatus: []metrics.AlertStatus{metrics.AlertUpcoming},
			wantValue:  []int{30},
		},
		{
			name:       "BeyondThresholdProducesNothing",
			nextDate:   timePtr(now.AddDate(0, 0, 31)),
			status:     maintenance.StatusCompleted,
			wantStatus: nil,
			wantValue:  nil,
		},
		{
			name:       "ScheduledRecordIsIgnored",
			nextDate:   timePtr(now.AddDate(0, 0, -3)),
			status:     maintenance.StatusScheduled,
			wantStatus: nil,
			wantValue:  nil,
		},
		{
			name:       "MissingTargetIsIgnored",
			nextDate:   nil,
			status:     maintenance.StatusCompleted,
			wantStatus: nil,
			wantValue:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &maintenance.Record{
				ID:       uuid.New(),
				Type:     "Revisão",
				Status:   tt.status,
				NextDate: tt.nextDate,
			}

			got := metrics.DateAlerts([]*maintenance.Record{rec}, now)

			require.Len(t, got, len(tt.wantStatus))

			for i := range got {
				assert.Equal(t, tt.wantStatus[i], got[i].Status)
				assert.Equal(t, tt.wantValue[i], got[i].Value)
				assert.Equal(t, metrics.UnitDays, got[i].Unit)
			}
		})
	}
}

func TestDateAlerts_IdentityAndTarget(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	next := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	rec := &maintenance.Record{
		ID:       uuid.New(),
		Type:     "Revisão",
		Status:   maintenance.StatusCompleted,
		NextDate: &next,
	}

	got := metrics.DateAlerts([]*maintenance.Record{rec}, now)

	require.Len(t, got, 1)
	assert.Equal(t, rec.ID.String()+"-date", got[0].ID)
	assert.Equal(t, "2024-06-20", got[0].NextTarget)
}

func TestSortByUrgency(t *testing.T) {
	alerts := []metrics.Alert{
		{ID: "up-km-300", Status: metrics.AlertUpcoming, Unit: metrics.UnitKM, Value: 300},
		{ID: "over-days-2", Status: metrics.AlertOverdue, Unit: metrics.UnitDays, Value: 2},
		{ID: "up-days-5", Status: metrics.AlertUpcoming, Unit: metrics.UnitDays, Value: 5},
		{ID: "over-km-200", Status: metrics.AlertOverdue, Unit: metrics.UnitKM, Value: 200},
		{ID: "up-km-50", Status: metrics.AlertUpcoming, Unit: metrics.UnitKM, Value: 50},
	}

	metrics.SortByUrgency(alerts)

	got := make([]string, len(alerts))
	for i, a := range alerts {
		got[i] = a.ID
	}

	// Overdue first, most overdue on top; upcoming by nearest regardless of unit.
	assert.Equal(t, []string{"over-km-200", "over-days-2", "up-days-5", "up-km-50", "up-km-300"}, got)
}

func TestSortByUrgencyKMFirst(t *testing.T) {
	alerts := []metrics.Alert{
		{ID: "up-km-300", Status: metrics.AlertUpcoming, Unit: metrics.UnitKM, Value: 300},
		{ID: "over-days-2", Status: metrics.AlertOverdue, Unit: metrics.UnitDays, Value: 2},
		{ID: "up-days-5", Status: metrics.AlertUpcoming, Unit: metrics.UnitDays, Value: 5},
		{ID: "over-km-200", Status: metrics.AlertOverdue, Unit: metrics.UnitKM, Value: 200},
		{ID: "up-km-50", Status: metrics.AlertUpcoming, Unit: metrics.UnitKM, Value: 50},
	}

	metrics.SortByUrgencyKMFirst(alerts)

	got := make([]string, len(alerts))
	for i, a := range alerts {
		got[i] = a.ID
	}

	// Same statuses, but km alerts outrank dias alerts within a status.
	assert.Equal(t, []string{"over-km-200", "over-days-2", "up-km-50", "up-km-300", "up-days-5"}, got)
}
