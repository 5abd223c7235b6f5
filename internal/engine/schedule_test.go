package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

func TestSchedule(t *testing.T) {
	t.Parallel()

	stages, err := Schedule(agridata.Default(), "maize")
	require.NoError(t, err)

	require.Len(t, stages, 6)
	assert.Equal(t, "Land Preparation", stages[0].Stage)
	assert.Equal(t, "Maturity & Harvest", stages[5].Stage)
	assert.Contains(t, stages[5].Timing, "120")

	for _, st := range stages {
		assert.NotEmpty(t, st.Activities, "stage %s", st.Stage)
	}
}

func TestScheduleScalesToGrowingPeriod(t *testing.T) {
	t.Parallel()

	fast, err := Schedule(agridata.Default(), "tomato") // 90 days
	require.NoError(t, err)
	slow, err := Schedule(agridata.Default(), "cassava") // 365 days
	require.NoError(t, err)

	assert.Contains(t, fast[5].Timing, "90")
	assert.Contains(t, slow[5].Timing, "365")
}

func TestScheduleUnknownCrop(t *testing.T) {
	t.Parallel()

	_, err := Schedule(agridata.Default(), "durian")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCrop)
}
