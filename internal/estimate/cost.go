package estimate

// LaborMaterial is a material line attached to a labor task. Its cost
// contribution is quantity times unit price; there is no stock tracking.
type LaborMaterial struct {
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// LaborTask is a named unit of billable work, e.g. "Roll walls". The name is
// the natural key within a feature's task list: attaching a task under an
// existing name replaces it.
type LaborTask struct {
	Name      string          `json:"name"`
	Hours     float64         `json:"hours"`
	Rate      float64         `json:"rate"`
	Materials []LaborMaterial `json:"materials,omitempty"`
}

// TaskCost breaks one task into its labor and material components.
type TaskCost struct {
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// Cost computes the task's cost breakdown. A task with no materials has a
// material cost of zero.
func (t LaborTask) Cost() TaskCost {
	labor := Sanitize(t.Hours) * Sanitize(t.Rate)

	var materials float64
	for _, m := range t.Materials {
		materials += Sanitize(m.Quantity) * Sanitize(m.UnitPrice)
	}

	return TaskCost{
		LaborCost:    labor,
		MaterialCost: materials,
		TotalCost:    labor + materials,
	}
}

// ProjectTotals contains the roll-up across every selected task. Labor and
// materials stay separate so the include-materials toggle can be applied
// without re-summing.
type ProjectTotals struct {
	TotalLaborCost    float64 `json:"total_labor_cost"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalCost         float64 `json:"total_cost"`
}

// SumTasks totals labor and material cost across tasks. Material cost is
// always reported but only counts toward TotalCost when includeMaterials is
// set. An empty task list totals to zero.
func SumTasks(tasks []LaborTask, includeMaterials bool) ProjectTotals {
	var totals ProjectTotals
	for _, t := range tasks {
		c := t.Cost()
		totals.TotalLaborCost += c.LaborCost
		totals.TotalMaterialCost += c.MaterialCost
	}

	totals.TotalCost = totals.TotalLaborCost
	if includeMaterials {
		totals.TotalCost += totals.TotalMaterialCost
	}
	return totals
}
