package editjobs

import (
	"testing"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"

	"github.com/stretchr/testify/require"
)

func TestValidateSegments_Valid(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{
		{StartTime: 0, EndTime: 2},
		{StartTime: 3, EndTime: 5.5},
	}
	errs := ValidateSegments(segments, 10, 3)
	require.Nil(t, errs)
}

func TestValidateSegments_EndExceedsDuration(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{{StartTime: 0, EndTime: 10}}
	errs := ValidateSegments(segments, 5, 3)
	require.Len(t, errs, 1)
	require.Equal(t, models.ErrInvalidEndTime, errs[0].Type)
	require.Equal(t, 0, errs[0].SegmentIndex)
}

func TestValidateSegments_NegativeStart(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{{StartTime: -1, EndTime: 2}}
	errs := ValidateSegments(segments, 10, 3)
	require.Len(t, errs, 1)
	require.Equal(t, models.ErrInvalidStartTime, errs[0].Type)
}

func TestValidateSegments_StartNotBeforeEnd(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{{StartTime: 2, EndTime: 1}}
	errs := ValidateSegments(segments, 10, 3)
	require.Len(t, errs, 2)
	require.Equal(t, models.ErrInvalidTimeRange, errs[0].Type)
	require.Equal(t, models.ErrDurationTooShort, errs[1].Type)
}

func TestValidateSegments_DurationTooShort(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{{StartTime: 0, EndTime: 0.3}}
	errs := ValidateSegments(segments, 10, 3)
	require.Len(t, errs, 1)
	require.Equal(t, models.ErrDurationTooShort, errs[0].Type)
}

func TestValidateSegments_OverlapReportedForBothSegments(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{
		{StartTime: 0, EndTime: 1},
		{StartTime: 0.5, EndTime: 2},
	}
	errs := ValidateSegments(segments, 10, 3)
	require.Len(t, errs, 2)
	require.Equal(t, models.ErrSegmentOverlap, errs[0].Type)
	require.Equal(t, 0, errs[0].SegmentIndex)
	require.Equal(t, models.ErrSegmentOverlap, errs[1].Type)
	require.Equal(t, 1, errs[1].SegmentIndex)
}

func TestValidateSegments_TouchingSegmentsDoNotOverlap(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{
		{StartTime: 0, EndTime: 1},
		{StartTime: 1, EndTime: 2},
	}
	errs := ValidateSegments(segments, 10, 3)
	require.Nil(t, errs)
}

func TestValidateSegments_CountExceededComesFirst(t *testing.T) {
	t.Parallel()

	segments := []models.Segment{
		{StartTime: 0, EndTime: 1},
		{StartTime: 2, EndTime: 3},
		{StartTime: 4, EndTime: 5},
		{StartTime: 6, EndTime: 20},
	}
	errs := ValidateSegments(segments, 10, 3)
	require.NotEmpty(t, errs)
	require.Equal(t, models.ErrCountExceeded, errs[0].Type)
	require.Equal(t, -1, errs[0].SegmentIndex)

	// Per-segment checks still run after the count failure.
	require.Equal(t, models.ErrInvalidEndTime, errs[1].Type)
	require.Equal(t, 3, errs[1].SegmentIndex)
}

func TestNormalizeRegions(t *testing.T) {
	t.Parallel()

	regions := []models.PixelRegionInput{
		{Type: models.EffectErase, X1: 192, Y1: 108, X2: 960, Y2: 540, StartTime: 0, EndTime: 5},
	}
	normalized, err := NormalizeRegions(regions, 1920, 1080, 10)
	require.NoError(t, err)
	require.Len(t, normalized, 1)
	require.InDelta(t, 0.1, normalized[0].Rect.X1, 1e-9)
	require.InDelta(t, 0.1, normalized[0].Rect.Y1, 1e-9)
	require.InDelta(t, 0.5, normalized[0].Rect.X2, 1e-9)
	require.InDelta(t, 0.5, normalized[0].Rect.Y2, 1e-9)
	require.Equal(t, models.EffectErase, normalized[0].Type)
}

func TestNormalizeRegions_ClampsToFrame(t *testing.T) {
	t.Parallel()

	regions := []models.PixelRegionInput{
		{Type: models.EffectText, X1: -50, Y1: 0, X2: 5000, Y2: 1080, StartTime: 0, EndTime: 2},
	}
	normalized, err := NormalizeRegions(regions, 1920, 1080, 10)
	require.NoError(t, err)
	require.Equal(t, 0.0, normalized[0].Rect.X1)
	require.Equal(t, 1.0, normalized[0].Rect.X2)
	require.Equal(t, 1.0, normalized[0].Rect.Y2)
}

func TestNormalizeRegions_RejectsZeroArea(t *testing.T) {
	t.Parallel()

	regions := []models.PixelRegionInput{
		{Type: models.EffectErase, X1: 2000, Y1: 0, X2: 3000, Y2: 100, StartTime: 0, EndTime: 2},
	}
	_, err := NormalizeRegions(regions, 1920, 1080, 10)
	require.Error(t, err)
}

func TestNormalizeRegions_RejectsInvalidTimeWindow(t *testing.T) {
	t.Parallel()

	regions := []models.PixelRegionInput{
		{Type: models.EffectErase, X1: 0, Y1: 0, X2: 100, Y2: 100, StartTime: 5, EndTime: 20},
	}
	_, err := NormalizeRegions(regions, 1920, 1080, 10)
	require.Error(t, err)
}

func TestNormalizeRegions_RejectsInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := NormalizeRegions(nil, 0, 1080, 10)
	require.Error(t, err)
}
