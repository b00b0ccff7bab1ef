package model

// Category is a grocery-aisle label assigned to an item from its name.
type Category string

const (
	SpicesHerbs   Category = "Spices & Herbs"
	OilsFats      Category = "Oils & Fats"
	Baking        Category = "Baking"
	DairyEggs     Category = "Dairy & Eggs"
	PlantMilks    Category = "Plant-Based Milks/Creams"
	MeatSeafood   Category = "Meat & Seafood"
	PlantProtein  Category = "Plant-Based Protein"
	Vegetables    Category = "Vegetables"
	Fruits        Category = "Fruits"
	GrainsPasta   Category = "Grains & Pasta"
	Legumes       Category = "Legumes"
	Pantry        Category = "Pantry/Canned Goods"
	Beverages     Category = "Beverages"
	NutsSeeds     Category = "Nuts & Seeds"
	Miscellaneous Category = "Miscellaneous"
)

// Item is one shopping-list entry.
// Category is derived from Name when the item is created and is not recomputed.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Checked  bool     `json:"checked"`
}
