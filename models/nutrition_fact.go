package models

// NutritionFact holds energy and macro values per 100 g of an item.
// Owned by the catalog; the engine treats these as immutable inputs.
type NutritionFact struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
	FiberG   float64 `json:"fiber_g"`
}
