package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Segment is a time window inside the video, in seconds.
type Segment struct {
	StartTime float64 `json:"start_time" db:"start_time"`
	EndTime   float64 `json:"end_time" db:"end_time"`
}

type EffectType string

const (
	EffectErase   EffectType = "erase"
	EffectProtect EffectType = "protect"
	EffectText    EffectType = "text"
)

// Rect is a rectangle in normalized 0-1 coordinates.
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// EffectRegion describes where and when an effect applies.
type EffectRegion struct {
	Type      EffectType `json:"type" validate:"required,oneof=erase protect text"`
	Rect      Rect       `json:"rect"`
	StartTime float64    `json:"start_time"`
	EndTime   float64    `json:"end_time"`
}

type ValidationErrorType string

const (
	ErrCountExceeded    ValidationErrorType = "COUNT_EXCEEDED"
	ErrInvalidStartTime ValidationErrorType = "INVALID_START_TIME"
	ErrInvalidEndTime   ValidationErrorType = "INVALID_END_TIME"
	ErrInvalidTimeRange ValidationErrorType = "INVALID_TIME_RANGE"
	ErrDurationTooShort ValidationErrorType = "DURATION_TOO_SHORT"
	ErrSegmentOverlap   ValidationErrorType = "SEGMENT_OVERLAP"
)

// SegmentValidationError is returned as data, never raised. SegmentIndex
// is -1 for request-level errors.
type SegmentValidationError struct {
	SegmentIndex int                 `json:"segment_index"`
	Type         ValidationErrorType `json:"error_type"`
	Message      string              `json:"message"`
}

// SegmentList stores segments as a jsonb column.
type SegmentList []Segment

func (s SegmentList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SegmentList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported segment list type %T", src)
	}
}

// RegionList stores effect regions as a jsonb column.
type RegionList []EffectRegion

func (r RegionList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RegionList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported region list type %T", src)
	}
}
