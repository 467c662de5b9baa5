package estimate

import "testing"

func TestTaskCost_WithMaterials(t *testing.T) {
	task := LaborTask{
		Name:  "Roll walls",
		Hours: 3,
		Rate:  35,
		Materials: []LaborMaterial{
			{Quantity: 2, UnitPrice: 45},
		},
	}

	cost := task.Cost()
	nearlyEqual(t, "laborCost", cost.LaborCost, 105)
	nearlyEqual(t, "materialCost", cost.MaterialCost, 90)
	nearlyEqual(t, "totalCost", cost.TotalCost, 195)
}

func TestTaskCost_NoMaterials(t *testing.T) {
	cost := LaborTask{Name: "Cut in", Hours: 1.5, Rate: 40}.Cost()
	nearlyEqual(t, "laborCost", cost.LaborCost, 60)
	nearlyEqual(t, "materialCost", cost.MaterialCost, 0)
	nearlyEqual(t, "totalCost", cost.TotalCost, 60)
}

func TestTaskCost_NegativeValuesCoerceToZero(t *testing.T) {
	cost := LaborTask{
		Name:      "Sand",
		Hours:     -2,
		Rate:      40,
		Materials: []LaborMaterial{{Quantity: 3, UnitPrice: -10}},
	}.Cost()
	nearlyEqual(t, "laborCost", cost.LaborCost, 0)
	nearlyEqual(t, "materialCost", cost.MaterialCost, 0)
}

func TestSumTasks_MaterialsToggleSeparation(t *testing.T) {
	tasks := []LaborTask{
		{Name: "Roll walls", Hours: 3, Rate: 35, Materials: []LaborMaterial{{Quantity: 2, UnitPrice: 45}}},
		{Name: "Paint trim", Hours: 2, Rate: 40, Materials: []LaborMaterial{{Quantity: 1, UnitPrice: 30}}},
	}

	withMaterials := SumTasks(tasks, true)
	nearlyEqual(t, "totalLaborCost", withMaterials.TotalLaborCost, 185)
	nearlyEqual(t, "totalMaterialCost", withMaterials.TotalMaterialCost, 120)
	nearlyEqual(t, "totalCost with materials", withMaterials.TotalCost, 305)

	laborOnly := SumTasks(tasks, false)
	nearlyEqual(t, "totalLaborCost unchanged", laborOnly.TotalLaborCost, 185)
	nearlyEqual(t, "totalMaterialCost still reported", laborOnly.TotalMaterialCost, 120)
	nearlyEqual(t, "totalCost labor only", laborOnly.TotalCost, 185)
}

func TestSumTasks_EmptySelection(t *testing.T) {
	totals := SumTasks(nil, true)
	if totals.TotalLaborCost != 0 || totals.TotalMaterialCost != 0 || totals.TotalCost != 0 {
		t.Fatalf("expected zero totals for empty selection, got %+v", totals)
	}
}

func TestProjectScenario_WallAndCeiling(t *testing.T) {
	wallPerimeter := 40.0
	ceilingArea := 150.0

	wall := RoomFeature{
		Name:      "Wall",
		Magnitude: &wallPerimeter,
		Unit:      UnitFeet,
		Coats:     2,
		Tasks: []LaborTask{
			{Name: "Roll walls", Hours: 3, Rate: 35, Materials: []LaborMaterial{{Quantity: 2, UnitPrice: 45}}},
		},
	}
	ceiling := RoomFeature{
		Name:      "Ceiling",
		Magnitude: &ceilingArea,
		Unit:      UnitFeet,
		Coats:     1,
		Area:      true,
	}

	nearlyEqual(t, "wall feature cost", wall.Cost(), 195)
	nearlyEqual(t, "ceiling feature cost", ceiling.Cost(), 0)

	var tasks []LaborTask
	for _, f := range []RoomFeature{wall, ceiling} {
		tasks = append(tasks, f.Tasks...)
	}

	totals := SumTasks(tasks, true)
	nearlyEqual(t, "totalLaborCost", totals.TotalLaborCost, 105)
	nearlyEqual(t, "totalMaterialCost", totals.TotalMaterialCost, 90)
	nearlyEqual(t, "totalCost", totals.TotalCost, 195)
}
