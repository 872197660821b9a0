package editjobs

import (
	"fmt"

	"github.com/tusharverma21/cloud-video-eraser/internal/models"
)

// MinSegmentDuration is the shortest time window the remote service
// accepts, in seconds.
const MinSegmentDuration = 0.5

// ValidateSegments checks a list of time segments against the video
// duration, the tier segment limit and pairwise overlap. It returns nil
// when the list is valid, otherwise the full ordered error list: the
// count check first (index -1), then for each segment its time-range
// checks followed by its overlap checks. All checks run for all
// segments, nothing short-circuits.
//
// Overlapping pairs are reported twice, once attributed to each side.
// Known quirk kept for API compatibility with existing clients.
func ValidateSegments(segments []models.Segment, videoDuration float64, maxSegments int) []models.SegmentValidationError {
	var errs []models.SegmentValidationError

	if len(segments) > maxSegments {
		errs = append(errs, models.SegmentValidationError{
			SegmentIndex: -1,
			Type:         models.ErrCountExceeded,
			Message:      fmt.Sprintf("segment count %d exceeds the limit of %d", len(segments), maxSegments),
		})
	}

	for i, seg := range segments {
		if seg.StartTime < 0 {
			errs = append(errs, models.SegmentValidationError{
				SegmentIndex: i,
				Type:         models.ErrInvalidStartTime,
				Message:      fmt.Sprintf("segment %d: start time %.3f is negative", i, seg.StartTime),
			})
		}
		if seg.EndTime > videoDuration {
			errs = append(errs, models.SegmentValidationError{
				SegmentIndex: i,
				Type:         models.ErrInvalidEndTime,
				Message:      fmt.Sprintf("segment %d: end time %.3f exceeds video duration %.3f", i, seg.EndTime, videoDuration),
			})
		}
		if seg.StartTime >= seg.EndTime {
			errs = append(errs, models.SegmentValidationError{
				SegmentIndex: i,
				Type:         models.ErrInvalidTimeRange,
				Message:      fmt.Sprintf("segment %d: start time %.3f is not before end time %.3f", i, seg.StartTime, seg.EndTime),
			})
		}
		if seg.EndTime-seg.StartTime < MinSegmentDuration {
			errs = append(errs, models.SegmentValidationError{
				SegmentIndex: i,
				Type:         models.ErrDurationTooShort,
				Message:      fmt.Sprintf("segment %d: duration %.3fs is shorter than the %.1fs minimum", i, seg.EndTime-seg.StartTime, MinSegmentDuration),
			})
		}

		for j, other := range segments {
			if i == j {
				continue
			}
			if seg.EndTime > other.StartTime && seg.StartTime < other.EndTime {
				errs = append(errs, models.SegmentValidationError{
					SegmentIndex: i,
					Type:         models.ErrSegmentOverlap,
					Message:      fmt.Sprintf("segment %d overlaps segment %d", i, j),
				})
			}
		}
	}

	return errs
}

// NormalizeRegions converts pixel-coordinate effect regions into
// normalized 0-1 rectangles against the source video dimensions,
// clamping out-of-frame coordinates to the frame edge. A region whose
// rectangle collapses to zero area after clamping, or whose time window
// falls outside the video, is rejected.
func NormalizeRegions(regions []models.PixelRegionInput, width, height int, videoDuration float64) ([]models.EffectRegion, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid video dimensions %dx%d", width, height)
	}

	normalized := make([]models.EffectRegion, 0, len(regions))
	for i, r := range regions {
		rect := models.Rect{
			X1: clamp01(r.X1 / float64(width)),
			Y1: clamp01(r.Y1 / float64(height)),
			X2: clamp01(r.X2 / float64(width)),
			Y2: clamp01(r.Y2 / float64(height)),
		}
		if rect.X1 >= rect.X2 || rect.Y1 >= rect.Y2 {
			return nil, fmt.Errorf("region %d: rectangle has no area after normalization", i)
		}
		if r.StartTime < 0 || r.EndTime > videoDuration || r.StartTime >= r.EndTime {
			return nil, fmt.Errorf("region %d: time window [%.3f, %.3f] is invalid for duration %.3f", i, r.StartTime, r.EndTime, videoDuration)
		}
		normalized = append(normalized, models.EffectRegion{
			Type:      r.Type,
			Rect:      rect,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return normalized, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
