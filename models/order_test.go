package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIndex(t *testing.T) {
	assert.Equal(t, 0, OrderStatusPending.StepIndex())
	assert.Equal(t, 4, OrderStatusDelivered.StepIndex())
	assert.Equal(t, -1, OrderStatus("cancelled").StepIndex())

	assert.True(t, OrderStatusProcessing.Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestTimeline(t *testing.T) {
	order := Order{Status: OrderStatusProcessing}

	steps := order.Timeline()
	require.Len(t, steps, 5)

	assert.Equal(t, OrderStatusPending, steps[0].Status)
	assert.True(t, steps[0].Completed)
	assert.False(t, steps[0].Current)

	assert.True(t, steps[2].Completed)
	assert.True(t, steps[2].Current)

	assert.False(t, steps[3].Completed)
	assert.False(t, steps[4].Completed)
}

func TestTimelineDelivered(t *testing.T) {
	steps := Order{Status: OrderStatusDelivered}.Timeline()
	for _, step := range steps {
		assert.True(t, step.Completed)
	}
	assert.True(t, steps[4].Current)
}
