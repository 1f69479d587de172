package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-selection-service/internal/pkg/utils"
)

const (
	DefaultAirline     = "Unknown"
	DefaultTravelClass = "Economy"
	MissingValue       = "N/A"
)

// DefaultAmenities is used when a leg lists no extensions.
var DefaultAmenities = []string{"Checked baggage for a fee"}

// DecodeRawResponse decodes a provider body. A body that is not a JSON object
// of the expected shape is an invalid payload.
func DecodeRawResponse(data []byte) (dto.RawSearchResponse, error) {
	var raw dto.RawSearchResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return dto.RawSearchResponse{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err.Error())
	}

	return raw, nil
}

// NormalizeResponse flattens raw into the shape handed to the rendering layer.
func NormalizeResponse(ctx context.Context, raw dto.RawSearchResponse) (dto.FlightSearchResponse, error) {
	records, err := Normalize(ctx, raw)
	if err != nil {
		return dto.FlightSearchResponse{}, err
	}

	cities := raw.Cities
	if cities == nil {
		cities = []dto.City{}
	}

	return dto.FlightSearchResponse{
		SearchMetadata:   raw.SearchMetadata,
		SearchParameters: raw.SearchParameters,
		BestFlights:      records,
		Cities:           cities,
	}, nil
}

// Normalize converts every leg of every itinerary block into one FlightRecord.
// The block price is carried onto each of its legs. Direction comes from the
// block tag when the provider adapter set one, otherwise from the block
// position: the first block is outbound, any later block is the return.
func Normalize(ctx context.Context, raw dto.RawSearchResponse) ([]dto.FlightRecord, error) {
	blocks, err := itineraryBlocks(raw)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, block := range blocks {
		total += len(block.Flights)
	}

	var (
		records = make([]dto.FlightRecord, 0, total)
		seenIDs = make(map[string]struct{}, total)
	)

	for blockIndex, block := range blocks {
		direction := blockDirection(block, blockIndex)
		price := float64(block.Price)
		if price < 0 {
			price = 0
		}

		for _, leg := range block.Flights {
			index := len(records)
			record := legToRecord(leg, index)
			record.ID = uniqueID(leg.ID, index, seenIDs)
			record.Price = price
			record.Direction = direction

			records = append(records, record)
		}
	}

	slog.DebugContext(ctx, "search response normalized",
		slog.Int("blocks", len(blocks)),
		slog.Int("flights", len(records)))

	return records, nil
}

// itineraryBlocks checks the block structure before anything is flattened.
func itineraryBlocks(raw dto.RawSearchResponse) ([]dto.RawItinerary, error) {
	if raw.BestFlights == nil && raw.OtherFlights == nil {
		return nil, fmt.Errorf("%w: best_flights is missing", ErrInvalidPayload)
	}

	blocks := raw.BestFlights
	if len(blocks) == 0 {
		blocks = raw.OtherFlights
	}

	for i, block := range blocks {
		if block.Flights == nil {
			return nil, fmt.Errorf("%w: itinerary block %d has no flights", ErrInvalidPayload, i)
		}
	}

	return blocks, nil
}

func blockDirection(block dto.RawItinerary, index int) dto.Direction {
	switch block.Direction {
	case dto.DirectionOutbound, dto.DirectionReturn:
		return block.Direction
	}

	if index == 0 {
		return dto.DirectionOutbound
	}

	return dto.DirectionReturn
}

func legToRecord(leg dto.RawLeg, index int) dto.FlightRecord {
	record := dto.FlightRecord{
		Airline:       firstNonEmpty(leg.Airline, DefaultAirline),
		FlightNumber:  firstNonEmpty(leg.FlightNumber, fmt.Sprintf("FL-%d", index+1)),
		DepartureTime: firstNonEmpty(leg.DepartureTime, airportTime(leg.DepartureAirport), MissingValue),
		ArrivalTime:   firstNonEmpty(leg.ArrivalTime, airportTime(leg.ArrivalAirport), MissingValue),
		Duration:      formatDuration(leg.Duration),
		Stops:         len(leg.Stops),
		TravelClass:   firstNonEmpty(leg.TravelClass, DefaultTravelClass),
		Amenities:     leg.Extensions,
	}

	if leg.DepartureAirport != nil {
		record.DepartureAirport = leg.DepartureAirport.ID
	}

	if leg.ArrivalAirport != nil {
		record.ArrivalAirport = leg.ArrivalAirport.ID
	}

	if leg.AirlineLogo != "" {
		logo := leg.AirlineLogo
		record.AirlineLogo = &logo
	}

	if len(record.Amenities) == 0 {
		record.Amenities = append([]string(nil), DefaultAmenities...)
	}

	return record
}

// uniqueID keeps a provider identifier when it is unique within the response
// and otherwise derives one from the record position.
func uniqueID(providerID string, index int, seen map[string]struct{}) string {
	id := strings.TrimSpace(providerID)
	if id == "" {
		id = fmt.Sprintf("flight-%d", index)
	}

	for attempt := 0; ; attempt++ {
		if _, ok := seen[id]; !ok {
			break
		}

		id = fmt.Sprintf("%s-%d", id, index+attempt)
	}

	seen[id] = struct{}{}

	return id
}

func airportTime(airport *dto.RawAirport) string {
	if airport == nil {
		return ""
	}

	return airport.Time
}

func formatDuration(d dto.RawDuration) string {
	if d.Minutes != nil {
		return utils.ConvertMinutesToDuration(int64(*d.Minutes))
	}

	return firstNonEmpty(d.Text, MissingValue)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
