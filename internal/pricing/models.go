// internal/pricing/models.go
package pricing

import "encoding/json"

// CostBreakdown is the per-day cost split. Total is always the sum of the
// five components; guide cost, when present, is folded into Miscellaneous.
type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Tickets       float64 `json:"tickets"`
	TransportFuel float64 `json:"transportFuel"`
	Food          float64 `json:"food"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
}

// HotelOption is one candidate stay for a day. Exactly one option per day is
// recommended: the cheapest one with a usable price, whose price also becomes
// the day's accommodation cost.
type HotelOption struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	Link          string  `json:"link"`
	IsRecommended bool    `json:"isRecommended"`
}

// Activity is a day's activity, which arrives either as a bare string or as
// an object with a name field. The original JSON is kept and re-emitted
// unchanged on marshal.
type Activity struct {
	Name string `json:"-"`

	raw json.RawMessage
}

func (a *Activity) UnmarshalJSON(b []byte) error {
	a.raw = append(a.raw[:0], b...)

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		a.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	a.Name = obj.Name
	return nil
}

func (a Activity) MarshalJSON() ([]byte, error) {
	if len(a.raw) > 0 {
		return a.raw, nil
	}
	return json.Marshal(a.Name)
}

// Day is one itinerary day. HotelOptions is fully replaced on every refresh
// and is empty on the last day.
type Day struct {
	Day           int           `json:"day"`
	Location      string        `json:"location"`
	Date          string        `json:"date"`
	Activities    []Activity    `json:"activities"`
	EstimatedCost CostBreakdown `json:"estimatedCost"`
	HotelOptions  []HotelOption `json:"hotelOptions"`
}

// Itinerary is the trip-level document. Fields other than days and
// estimatedTotalBudget are produced by the AI generator and passed through
// refresh unchanged.
type Itinerary struct {
	Days                 []Day
	EstimatedTotalBudget float64

	extra map[string]json.RawMessage
}

func (it *Itinerary) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	if raw, ok := fields["days"]; ok {
		if err := json.Unmarshal(raw, &it.Days); err != nil {
			return err
		}
		delete(fields, "days")
	}
	if raw, ok := fields["estimatedTotalBudget"]; ok {
		if err := json.Unmarshal(raw, &it.EstimatedTotalBudget); err != nil {
			return err
		}
		delete(fields, "estimatedTotalBudget")
	}

	it.extra = fields
	return nil
}

func (it Itinerary) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(it.extra)+2)
	for k, v := range it.extra {
		fields[k] = v
	}

	days, err := json.Marshal(it.Days)
	if err != nil {
		return nil, err
	}
	fields["days"] = days

	budget, err := json.Marshal(it.EstimatedTotalBudget)
	if err != nil {
		return nil, err
	}
	fields["estimatedTotalBudget"] = budget

	return json.Marshal(fields)
}

// PlannerInput is the trip configuration the planner collected from the user.
type PlannerInput struct {
	StartPoint      string `json:"startPoint"`
	VehicleType     string `json:"vehicleType"`
	HotelRating     int    `json:"hotelRating"`
	Travelers       int    `json:"travelers"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	IsGuideIncluded bool   `json:"isGuideIncluded"`
}

// TravelerCount derives the party size: the explicit travelers field wins,
// otherwise adults plus children, floored at one.
func (in *PlannerInput) TravelerCount() int {
	count := in.Travelers
	if count == 0 {
		count = in.Adults + in.Children
	}
	if count < 1 {
		count = 1
	}
	return count
}
