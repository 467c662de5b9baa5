// Package invoice shapes calculator output for document generation and for
// the persistence layer. The calculator works in decimal dollars; storage
// keeps integer cents.
package invoice

import (
	"fmt"
	"math"

	"github.com/samsoftwaredev/inriservices-sub002/internal/estimate"
)

// LineItem is one billable row on an invoice or receipt.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// NewLineItem builds a line with Amount = Quantity * Rate.
func NewLineItem(description string, quantity, rate float64) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity * rate,
	}
}

// Summary is the flat numeric roll-up handed to invoice/receipt generation.
type Summary struct {
	TotalLaborCost    float64 `json:"total_labor_cost"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalCost         float64 `json:"total_cost"`
	TotalGallons      float64 `json:"total_gallons"`
	TotalHours        float64 `json:"total_hours"`
	TotalDays         int     `json:"total_days"`
}

// Build computes the summary and per-task line items for a set of room
// features. One labor line per task, one material line per task that carries
// materials.
func Build(calc estimate.Calculator, features []estimate.RoomFeature, includeMaterials bool) (Summary, []LineItem, error) {
	gallons, err := estimate.TotalGallons(calc, features)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("total gallons: %w", err)
	}

	var tasks []estimate.LaborTask
	var hours float64
	items := make([]LineItem, 0, len(features))
	for _, f := range features {
		for _, t := range f.Tasks {
			tasks = append(tasks, t)
			hours += estimate.Sanitize(t.Hours)

			items = append(items, NewLineItem(f.Name+": "+t.Name, estimate.Sanitize(t.Hours), estimate.Sanitize(t.Rate)))
			if cost := t.Cost(); cost.MaterialCost > 0 && includeMaterials {
				items = append(items, LineItem{
					Description: f.Name + ": " + t.Name + " (materiales)",
					Quantity:    1,
					Rate:        cost.MaterialCost,
					Amount:      cost.MaterialCost,
				})
			}
		}
	}

	totals := estimate.SumTasks(tasks, includeMaterials)

	return Summary{
		TotalLaborCost:    totals.TotalLaborCost,
		TotalMaterialCost: totals.TotalMaterialCost,
		TotalCost:         totals.TotalCost,
		TotalGallons:      gallons,
		TotalHours:        hours,
		TotalDays:         estimate.HoursToDays(hours, calc.HoursPerDay),
	}, items, nil
}

// Cents converts decimal dollars to the integer cents stored at rest.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// Dollars converts stored cents back into decimal dollars.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}
