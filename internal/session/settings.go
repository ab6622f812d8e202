package session

import (
	"errors"
	"fmt"
)

// Settings are the user-editable knobs applied on reset.
type Settings struct {
	Rows    int
	Columns int
	Speed   int
	Width   int // canvas pixels
	Height  int
}

func DefaultSettings() Settings {
	return Settings{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
		Speed:   DefaultSpeed,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// MovesPerTick is the number of frames between two moves.
func (s Settings) MovesPerTick() int {
	return MaxSpeed - s.Speed + MinSpeed
}

// Ratio is the grid's width to height ratio.
func (s Settings) Ratio() float32 {
	return float32(s.Columns) / float32(s.Rows)
}

// RangeError reports a setting outside its inclusive range.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("the %s (%d) must be in range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &RangeError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}

// Resolve returns s with every invalid group replaced by fallback's values,
// together with the joined RangeErrors. Rows and columns revert together,
// speed alone, and width and height together.
func (s Settings) Resolve(fallback Settings) (Settings, error) {
	var errs []error

	if err := errors.Join(
		checkRange("rows", s.Rows, MinRows, MaxRows),
		checkRange("columns", s.Columns, MinColumns, MaxColumns),
	); err != nil {
		errs = append(errs, err)
		s.Rows, s.Columns = fallback.Rows, fallback.Columns
	}

	if err := checkRange("speed", s.Speed, MinSpeed, MaxSpeed); err != nil {
		errs = append(errs, err)
		s.Speed = fallback.Speed
	}

	if err := errors.Join(
		checkRange("width", s.Width, MinWidth, MaxWidth),
		checkRange("height", s.Height, MinHeight, MaxHeight),
	); err != nil {
		errs = append(errs, err)
		s.Width, s.Height = fallback.Width, fallback.Height
	}

	return s, errors.Join(errs...)
}

// Validate reports every out-of-range field.
func (s Settings) Validate() error {
	_, err := s.Resolve(s)
	return err
}
