package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/liip/sheriff"
	"github.com/nihn/eurostartrainfinder/pkg/journeys"
)

const ResultDateTimeFormat = "2006-01-02 15:04"

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

func ParseFormat(text string) (Format, error) {
	switch Format(strings.ToLower(text)) {
	case FormatTable:
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("invalid output format %q, choose from: %s, %s, %s", text, FormatTable, FormatCSV, FormatJSON)
}

// Journey is the presentation of a journey shared by every output format
type Journey struct {
	Outbound         string  `csv:"outbound" json:"outbound" groups:"basic"`
	OutboundDuration string  `csv:"outbound_duration" json:"outbound_duration" groups:"basic"`
	Inbound          string  `csv:"inbound" json:"inbound" groups:"basic"`
	InboundDuration  string  `csv:"inbound_duration" json:"inbound_duration" groups:"basic"`
	Price            float64 `csv:"price" json:"price" groups:"basic"`

	OutboundDeparture time.Time `csv:"-" json:"outbound_departure" groups:"detailed"`
	InboundDeparture  time.Time `csv:"-" json:"inbound_departure" groups:"detailed"`
	OutboundMinutes   int       `csv:"-" json:"outbound_minutes" groups:"detailed"`
	InboundMinutes    int       `csv:"-" json:"inbound_minutes" groups:"detailed"`
}

func NewJourney(journey *journeys.TrainJourney) *Journey {
	return &Journey{
		Outbound:          journey.Outbound.Format(ResultDateTimeFormat),
		OutboundDuration:  FormatDuration(journey.OutboundDuration),
		Inbound:           journey.Inbound.Format(ResultDateTimeFormat),
		InboundDuration:   FormatDuration(journey.InboundDuration),
		Price:             journey.Price,
		OutboundDeparture: journey.Outbound,
		InboundDeparture:  journey.Inbound,
		OutboundMinutes:   int(journey.OutboundDuration.Minutes()),
		InboundMinutes:    int(journey.InboundDuration.Minutes()),
	}
}

func NewJourneys(trainJourneys []*journeys.TrainJourney) []*Journey {
	presented := make([]*Journey, 0, len(trainJourneys))
	for _, journey := range trainJourneys {
		presented = append(presented, NewJourney(journey))
	}

	return presented
}

// FormatDuration renders a duration as 2h37m
func FormatDuration(d time.Duration) string {
	minutes := int(d.Round(time.Minute).Minutes())
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}

// FormatPrice drops trailing zeros so 78.50 prints as 78.5
func FormatPrice(price float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", price), "0"), ".")
}

func Write(w io.Writer, format Format, trainJourneys []*journeys.TrainJourney) error {
	presented := NewJourneys(trainJourneys)

	switch format {
	case FormatCSV:
		return gocsv.Marshal(presented, w)
	case FormatJSON:
		reduced, err := Reduce(presented, "basic", "detailed")
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reduced)
	default:
		return WriteTable(w, presented)
	}
}

// Reduce keeps only the fields in the given groups, ready for JSON encoding
func Reduce(data interface{}, groups ...string) (interface{}, error) {
	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, data)
}

func WriteTable(w io.Writer, presented []*Journey) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(table, "Outbound (duration)\tInbound (duration)\tPrice")
	for _, journey := range presented {
		fmt.Fprintf(table, "%s (%s)\t%s (%s)\t%s\n",
			journey.Outbound, journey.OutboundDuration,
			journey.Inbound, journey.InboundDuration,
			FormatPrice(journey.Price),
		)
	}

	return table.Flush()
}
