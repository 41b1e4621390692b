package notify

import (
	"encoding/json"
	"time"
)

const (
	KindDatasetLoaded = "dataset.loaded"
	KindExported      = "comparison.exported"
)

// Event is the wire form of a dashboard lifecycle event.
type Event struct {
	Kind      string    `json:"kind"`
	Origin    string    `json:"origin,omitempty"`
	Years     int       `json:"years,omitempty"`
	Fallback  bool      `json:"fallback,omitempty"`
	LeftYear  int       `json:"left_year,omitempty"`
	RightYear int       `json:"right_year,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewDatasetLoadedEvent(origin string, years int, fallback bool) *Event {
	return &Event{
		Kind:      KindDatasetLoaded,
		Origin:    origin,
		Years:     years,
		Fallback:  fallback,
		Timestamp: time.Now(),
	}
}

func NewExportedEvent(leftYear, rightYear int) *Event {
	return &Event{
		Kind:      KindExported,
		LeftYear:  leftYear,
		RightYear: rightYear,
		Timestamp: time.Now(),
	}
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func EventFromJSON(data []byte) (*Event, error) {
	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}
