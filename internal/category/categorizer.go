// Package category assigns shopping-list items to grocery aisles.
package category

import (
	"regexp"
	"strings"

	"github.com/idilsaglam/basket/internal/model"
)

type rule struct {
	label   model.Category
	match   *regexp.Regexp
	exclude *regexp.Regexp
}

func words(alts ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

// notDairy marks names that only look like dairy.
var notDairy = words(
	"almond", "soy", "soya", "oat", "coconut", "rice", "cashew", "hemp", "macadamia",
	"plant[- ]based", "non[- ]dairy", "dairy[- ]free", "vegan",
	"peanut butter", "nut butter", "apple butter", "cocoa butter", "butternut", "butter beans?",
)

// Evaluated top to bottom; the first match wins, so order is part of the contract.
var rules = []rule{
	{label: model.SpicesHerbs, match: words(
		"salt", "black pepper", "white pepper", "peppercorns?", "cayenne", "paprika", "cumin",
		"turmeric", "coriander", "cinnamon", "nutmeg", "ground cloves", "ground ginger", "allspice",
		"cardamom", "garlic powder", "onion powder", "chili powder", "chilli powder", "curry powder",
		"garam masala", "red pepper flakes", "chili flakes", "oregano", "basil", "thyme", "rosemary",
		"parsley", "cilantro", "dill", "mint", "sage", "bay leaf", "bay leaves", "tarragon", "chives",
		"spices?", "herbs?", "seasoning", "saffron", "vanilla bean",
	)},
	{label: model.OilsFats, match: words(
		"oils?", "olive oil", "lard", "shortening", "ghee", "margarine", "cooking spray", "tallow",
	)},
	{label: model.Baking, match: words(
		"flour", "sugar", "brown sugar", "icing sugar", "baking soda", "baking powder", "yeast",
		"vanilla", "vanilla extract", "cocoa", "cornstarch", "corn starch", "chocolate chips",
		"gelatin", "molasses", "sprinkles", "cream of tartar",
	)},
	{label: model.DairyEggs, match: words(
		"milk", "cheese", "cheddar", "mozzarella", "parmesan", "feta", "ricotta", "butter",
		"cream", "sour cream", "yogh?urt", "eggs?", "egg yolks?", "egg whites?", "buttermilk",
	), exclude: notDairy},
	{label: model.PlantMilks, match: regexp.MustCompile(
		`(?i)\b(?:(?:almond|soy|soya|oat|coconut|rice|cashew|hemp|macadamia)\s+(?:milk|cream|yogh?urt|creamer)|` +
			`(?:plant[- ]based|non[- ]dairy|dairy[- ]free|vegan)\s+(?:milk|cream|creamer|yogh?urt|cheese|butter))\b`,
	)},
	{label: model.MeatSeafood, match: words(
		"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausages?", "ham", "veal", "duck",
		"steak", "mince", "ground meat", "fish", "salmon", "tuna", "cod", "tilapia", "shrimp",
		"prawns?", "crab", "lobster", "scallops?", "mussels?", "clams?", "anchovy", "anchovies",
		"chorizo", "prosciutto", "pancetta",
	), exclude: words("broth", "stock", "bouillon", "fish sauce", "oyster sauce")},
	{label: model.PlantProtein, match: words(
		"tofu", "tempeh", "seitan", "textured vegetable protein", "tvp", "plant[- ]based (?:meat|protein|burger)",
		"veggie burger", "beyond meat", "impossible meat",
	)},
	{label: model.Vegetables, match: words(
		"onions?", "garlic", "shallots?", "leeks?", "tomato(?:es)?", "potato(?:es)?", "sweet potato(?:es)?",
		"carrots?", "celery", "bell peppers?", "peppers?", "jalape[nñ]os?", "chil(?:l)?i(?:es)?",
		"spinach", "lettuce", "kale", "arugula", "broccoli", "cauliflower", "zucchini", "courgettes?",
		"eggplants?", "aubergines?", "mushrooms?", "cucumbers?", "cabbage", "corn", "snap peas", "snow peas",
		"green beans", "asparagus", "beets?", "radish(?:es)?", "squash", "pumpkin", "ginger",
		"scallions?", "spring onions?", "vegetables?", "veggies",
	)},
	{label: model.Fruits, match: words(
		"apples?", "bananas?", "lemons?", "limes?", "oranges?", "berries", "strawberr(?:y|ies)",
		"blueberr(?:y|ies)", "raspberr(?:y|ies)", "grapes?", "mangos?", "mangoes", "pineapples?",
		"peach(?:es)?", "pears?", "plums?", "cherr(?:y|ies)", "avocados?", "kiwis?", "melons?",
		"watermelon", "raisins", "dates", "figs?", "fruits?", "lemon juice", "lime juice",
	)},
	{label: model.GrainsPasta, match: words(
		"rice", "pasta", "spaghetti", "penne", "macaroni", "fusilli", "linguine", "lasagna", "noodles?",
		"bread", "breadcrumbs", "bread crumbs", "tortillas?", "quinoa", "oats", "oatmeal", "barley",
		"couscous", "bulgur", "cereal", "buns?", "bagels?", "pita", "farro", "polenta", "cornmeal",
	), exclude: words("vinegar")},
	{label: model.Legumes, match: words(
		"beans?", "black beans", "kidney beans", "lentils?", "chickpeas?", "garbanzo", "peas",
		"split peas", "edamame", "hummus",
	)},
	{label: model.Pantry, match: words(
		"broth", "stock", "bouillon", "vinegar", "soy sauce", "sauce", "ketchup", "mustard",
		"mayonnaise", "mayo", "honey", "maple syrup", "syrup", "canned", "can of", "tinned",
		"tomato paste", "paste", "jam", "jelly", "peanut butter", "salsa", "pickles?", "olives",
	)},
	{label: model.Beverages, match: words(
		"water", "sparkling water", "coffee", "tea", "juice", "wine", "beer", "soda", "kombucha",
		"lemonade", "sake",
	)},
	{label: model.NutsSeeds, match: words(
		"nuts?", "almonds?", "walnuts?", "pecans?", "cashews?", "peanuts?", "pistachios?",
		"hazelnuts?", "macadamias?", "pine nuts", "seeds?", "sesame", "chia", "flax(?:seed)?",
		"sunflower seeds", "pumpkin seeds", "tahini",
	)},
}

// Categorize maps an item name to its category. Empty or unmatched names
// fall back to Miscellaneous.
func Categorize(name string) model.Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Miscellaneous
	}
	for _, r := range rules {
		if !r.match.MatchString(name) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(name) {
			continue
		}
		return r.label
	}
	return model.Miscellaneous
}

// All returns every category label in evaluation order, fallback last.
func All() []model.Category {
	out := make([]model.Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.label)
	}
	return append(out, model.Miscellaneous)
}

// Valid reports whether c is one of the known labels.
func Valid(c model.Category) bool {
	for _, known := range All() {
		if c == known {
			return true
		}
	}
	return false
}
