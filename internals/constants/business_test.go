package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionAmount(t *testing.T) {
	tests := []struct {
		name             string
		subscriptionType string
		want             float64
	}{
		{"mensuel", SubscriptionMonthly, 300},
		{"annuel", SubscriptionYearly, 3000},
		{"inconnu retombe sur le mensuel", "autre", 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubscriptionAmount(tt.subscriptionType))
		})
	}
}

func TestFamilyDiscountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		children int64
		want     int
	}{
		{"aucun enfant", 0, 0},
		{"un enfant", 1, 0},
		{"deux enfants", 2, 10},
		{"trois enfants", 3, 30},
		{"cinq enfants", 5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FamilyDiscountPercentage(tt.children))
		})
	}
}

func TestGroupScheduleText(t *testing.T) {
	assert.Equal(t, GroupAScheduleText, GroupScheduleText(BusGroupA))
	assert.Equal(t, GroupBScheduleText, GroupScheduleText(BusGroupB))
	assert.Equal(t, GroupAScheduleText, GroupScheduleText("Z"))
}
