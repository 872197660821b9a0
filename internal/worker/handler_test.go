package worker

import (
	"testing"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBuildEffectRegions(t *testing.T) {
	t.Parallel()

	job := &models.EditJob{
		Regions: models.RegionList{
			{Type: models.EffectProtect, Rect: models.Rect{X1: 0.1, Y1: 0.1, X2: 0.3, Y2: 0.3}, StartTime: 0, EndTime: 4},
		},
		Segments: models.SegmentList{
			{StartTime: 1, EndTime: 2},
			{StartTime: 5, EndTime: 7.5},
		},
	}

	regions := buildEffectRegions(job)
	require.Len(t, regions, 3)

	// Explicit regions come first, untouched.
	require.Equal(t, models.EffectProtect, regions[0].Type)

	// Each segment becomes a full-frame erasure.
	require.Equal(t, models.EffectErase, regions[1].Type)
	require.Equal(t, models.Rect{X1: 0, Y1: 0, X2: 1, Y2: 1}, regions[1].Rect)
	require.Equal(t, 1.0, regions[1].StartTime)
	require.Equal(t, 2.0, regions[1].EndTime)
	require.Equal(t, 5.0, regions[2].StartTime)
	require.Equal(t, 7.5, regions[2].EndTime)
}

func TestBuildEffectRegions_Empty(t *testing.T) {
	t.Parallel()

	regions := buildEffectRegions(&models.EditJob{})
	require.Empty(t, regions)
}
