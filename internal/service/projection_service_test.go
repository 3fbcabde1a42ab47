package service

import (
	"context"
	"testing"

	"github.com/dancinggoatstudios/shopcal/internal/domain"
	"github.com/dancinggoatstudios/shopcal/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionService_EventsReflectStoredJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projection := NewProjectionService(f.repo)

	params := weekJob()
	params.TotalHours = 16
	ship := date(2025, 7, 9)
	params.ShippingDate = &ship
	params.CalendarGroup = "print"
	f.createJob(t, params)

	events, err := projection.Events(ctx, scheduler.AllVisible)
	require.NoError(t, err)
	require.Len(t, events, 3) // two work days + shipping pseudo-event
	assert.Equal(t, "Banners : 8 / 16", events[0].Title)
	assert.Equal(t, domain.EventShipping, events[2].Kind)

	filtered, err := projection.Events(ctx, scheduler.ViewFilter{
		ActiveGroups: map[string]bool{"install": true},
	})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
