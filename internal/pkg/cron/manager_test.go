package cron

import (
	"Lighthouse/internal/job"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RegistersHourlyCleanup(t *testing.T) {
	mgr := NewCronManager(job.NewMediaCleanupJob(nil, nil, time.Hour))
	require.NoError(t, mgr.RegisterJobs())

	entries := mgr.engine.Entries()
	require.Len(t, entries, 1)

	from := time.Date(2024, 1, 1, 10, 15, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), entries[0].Schedule.Next(from))
}
