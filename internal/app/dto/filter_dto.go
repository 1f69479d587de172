package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultPriceMax is the ceiling applied to each direction when the rendering
// layer has not moved the price slider yet.
const DefaultPriceMax = 5000.0

type TimeBucket string

const (
	TimeBucketEarlyMorning TimeBucket = "early_morning"
	TimeBucketMorning      TimeBucket = "morning"
	TimeBucketAfternoon    TimeBucket = "afternoon"
	TimeBucketNight        TimeBucket = "night"
	TimeBucketUnknown      TimeBucket = "unknown"
)

// FilterSpec holds the time-of-day toggles and price ceilings for both
// directions. No active toggle for a direction means no time restriction.
// A nil ceiling means no price restriction.
type FilterSpec struct {
	OutboundEarlyMorning bool `json:"outbound_early_morning"`
	OutboundMorning      bool `json:"outbound_morning"`
	OutboundAfternoon    bool `json:"outbound_afternoon"`
	OutboundNight        bool `json:"outbound_night"`

	ReturnEarlyMorning bool `json:"return_early_morning"`
	ReturnMorning      bool `json:"return_morning"`
	ReturnAfternoon    bool `json:"return_afternoon"`
	ReturnNight        bool `json:"return_night"`

	DepartPriceMax *float64 `json:"depart_price_max,omitempty" validate:"omitempty,gte=0"`
	ReturnPriceMax *float64 `json:"return_price_max,omitempty" validate:"omitempty,gte=0"`
}

// DefaultFilterSpec returns a spec with every toggle off and both ceilings at DefaultPriceMax.
func DefaultFilterSpec() FilterSpec {
	depart, ret := DefaultPriceMax, DefaultPriceMax

	return FilterSpec{
		DepartPriceMax: &depart,
		ReturnPriceMax: &ret,
	}
}

// TimeBuckets returns the toggles of one direction keyed by bucket.
func (f FilterSpec) TimeBuckets(direction Direction) map[TimeBucket]bool {
	if direction == DirectionReturn {
		return map[TimeBucket]bool{
			TimeBucketEarlyMorning: f.ReturnEarlyMorning,
			TimeBucketMorning:      f.ReturnMorning,
			TimeBucketAfternoon:    f.ReturnAfternoon,
			TimeBucketNight:        f.ReturnNight,
		}
	}

	return map[TimeBucket]bool{
		TimeBucketEarlyMorning: f.OutboundEarlyMorning,
		TimeBucketMorning:      f.OutboundMorning,
		TimeBucketAfternoon:    f.OutboundAfternoon,
		TimeBucketNight:        f.OutboundNight,
	}
}

// PriceMax returns the ceiling of one direction.
func (f FilterSpec) PriceMax(direction Direction) *float64 {
	if direction == DirectionReturn {
		return f.ReturnPriceMax
	}

	return f.DepartPriceMax
}

// withDefaults fills a missing ceiling with DefaultPriceMax.
func (f FilterSpec) withDefaults() FilterSpec {
	if f.DepartPriceMax == nil {
		depart := DefaultPriceMax
		f.DepartPriceMax = &depart
	}

	if f.ReturnPriceMax == nil {
		ret := DefaultPriceMax
		f.ReturnPriceMax = &ret
	}

	return f
}

// FilteredFlights is the filter result per direction, in normalized order.
type FilteredFlights struct {
	Outbound []FlightRecord `json:"outbound"`
	Return   []FlightRecord `json:"return"`
}

type FilterRequest struct {
	SessionID  string      `json:"-"`
	Filter     FilterSpec  `json:"filter"`
	SortOption *SortOption `json:"sort_option,omitempty"`
}

func (f *FilterRequest) Bind(r *http.Request) error {
	if r != nil && f.SessionID == "" {
		f.SessionID = r.Header.Get(HeaderSessionID)
	}

	if err := ValidateSingleError(f); err != nil {
		return fmt.Errorf("error validate request: %w", badRequest(err.Error()))
	}

	if err := f.SortOption.validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	f.Filter = f.Filter.withDefaults()

	return nil
}

// PipelineRequest runs the whole pipeline on a raw provider payload without
// touching session state.
type PipelineRequest struct {
	Raw        json.RawMessage `json:"raw" validate:"required"`
	TripType   TripType        `json:"trip_type" validate:"required,oneof=one_way round_trip"`
	Filter     *FilterSpec     `json:"filter,omitempty"`
	Selection  SelectionState  `json:"selection"`
	SortOption *SortOption     `json:"sort_option,omitempty"`
}

func (p *PipelineRequest) Bind(_ *http.Request) error {
	if err := ValidateSingleError(p); err != nil {
		return fmt.Errorf("error validate request: %w", badRequest(err.Error()))
	}

	if err := p.SortOption.validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	if p.Filter == nil {
		spec := DefaultFilterSpec()
		p.Filter = &spec
	}

	return nil
}

// PipelineResponse is the outcome of one pipeline run.
type PipelineResponse struct {
	SearchResults FlightSearchResponse `json:"search_results"`
	Flights       FilteredFlights      `json:"flights"`
	Selection     SelectionState       `json:"selection"`
	ReadyToBook   bool                 `json:"ready_to_book"`
}
