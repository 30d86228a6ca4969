package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEveryFirstFiresOnePeriodAfterStart(t *testing.T) {
	clock := NewManual(epoch)
	var at []time.Duration
	repeater := Every(clock, 10*time.Second, func() {
		at = append(at, clock.Now().Sub(epoch))
	})

	clock.Advance(9999 * time.Millisecond)
	assert.Empty(t, at)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Second}, at)

	clock.Advance(25 * time.Second)
	assert.Equal(t, []time.Duration{10 * time.Second, 20 * time.Second, 30 * time.Second}, at)
	assert.Equal(t, 3, repeater.Fired())
}

func TestEveryCancelStopsImmediately(t *testing.T) {
	clock := NewManual(epoch)
	count := 0
	repeater := Every(clock, time.Second, func() { count++ })

	clock.Advance(2 * time.Second)
	repeater.Cancel()
	repeater.Cancel()
	clock.Advance(10 * time.Second)

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, clock.Pending())
}

func TestEveryCancelFromCallback(t *testing.T) {
	clock := NewManual(epoch)
	count := 0
	var repeater *Repeater
	repeater = Every(clock, time.Second, func() {
		count++
		repeater.Cancel()
	})

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, clock.Pending())
}
