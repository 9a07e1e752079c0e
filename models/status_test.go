package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusCycle(t *testing.T) {
	assert.Equal(t, StatusLow, NextStatus(StatusEnough))
	assert.Equal(t, StatusEmpty, NextStatus(StatusLow))
	assert.Equal(t, StatusEnough, NextStatus(StatusEmpty))
}

func TestNextStatusPeriodThree(t *testing.T) {
	for _, s := range []Status{StatusEnough, StatusLow, StatusEmpty} {
		assert.Equal(t, s, NextStatus(NextStatus(NextStatus(s))), "status %s", s)
	}
}

func TestNextStatusUnknownFallsBackToEnough(t *testing.T) {
	assert.Equal(t, StatusEnough, NextStatus(Status("")))
	assert.Equal(t, StatusEnough, NextStatus(Status("plenty")))
}

func TestStatusRankAndShopping(t *testing.T) {
	assert.Less(t, StatusEmpty.Rank(), StatusLow.Rank())
	assert.Less(t, StatusLow.Rank(), StatusEnough.Rank())

	assert.True(t, StatusLow.NeedsShopping())
	assert.True(t, StatusEmpty.NeedsShopping())
	assert.False(t, StatusEnough.NeedsShopping())
	assert.False(t, Status("bogus").NeedsShopping())
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus(" low ")
	assert.True(t, ok)
	assert.Equal(t, StatusLow, s)

	_, ok = ParseStatus("half")
	assert.False(t, ok)
}

func TestItemTouchNeverGoesBack(t *testing.T) {
	item := Item{UpdatedAt: 5000}

	item.Touch(time.UnixMilli(1000))
	assert.Equal(t, int64(5000), item.UpdatedAt)

	item.Touch(time.UnixMilli(7000))
	assert.Equal(t, int64(7000), item.UpdatedAt)
}
