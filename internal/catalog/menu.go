package catalog

// Category names, grouped top-level as Food / Drinks / Shisha on the site.
const (
	CategoryAppetizers = "Appetizers"
	CategoryMainDishes = "Main Dishes"
	CategoryBreakfast  = "Breakfast"
	CategorySalads     = "Salads"
	CategoryShisha     = "Shisha"
	CategoryMocktails  = "Mocktails"
	CategoryFreshJuice = "Fresh Juice"
	CategoryMilkshakes = "Milkshakes"
	CategorySmoothies  = "Smoothies"
	CategoryHotDrinks  = "Hot Drinks"
	CategoryDesserts   = "Desserts"
	CategoryColdDrinks = "Cold Drinks"
	CategoryMojitos    = "Mojitos"
)

var categories = []string{
	CategoryAppetizers,
	CategoryMainDishes,
	CategoryBreakfast,
	CategorySalads,
	CategoryShisha,
	CategoryMocktails,
	CategoryFreshJuice,
	CategoryMilkshakes,
	CategorySmoothies,
	CategoryHotDrinks,
	CategoryDesserts,
	CategoryColdDrinks,
	CategoryMojitos,
}

// TopLevel groups categories the way the storefront tabs do.
var TopLevel = map[string][]string{
	"Food":   {CategoryAppetizers, CategoryMainDishes, CategoryBreakfast, CategorySalads, CategoryDesserts},
	"Drinks": {CategoryHotDrinks, CategoryMocktails, CategoryFreshJuice, CategoryMilkshakes, CategorySmoothies, CategoryColdDrinks, CategoryMojitos},
	"Shisha": {CategoryShisha},
}

var menu = []Item{
	// Appetizers
	item("The Bloom Mix", CategoryAppetizers, "19.99"),
	item("Spring Rolls", CategoryAppetizers, "10.00"),
	item("Hummus", CategoryAppetizers, "8.00"),
	item("Baba Ganoush", CategoryAppetizers, "8.00"),
	item("Labaneh", CategoryAppetizers, "8.00"),
	item("Makdous", CategoryAppetizers, "8.00"),
	item("Green Olive", CategoryAppetizers, "6.00"),
	item("Falafel", CategoryAppetizers, "8.00"),
	item("Beef Sausages", CategoryAppetizers, "10.99"),
	item("Fried Cauliflower", CategoryAppetizers, "10.99"),
	item("The Bloom Eggplant with Cheese", CategoryAppetizers, "12.99"),
	item("French Fries", CategoryAppetizers, "7.00"),
	item("Cheese Rolls", CategoryAppetizers, "10.00"),
	item("Beef Kibbeh", CategoryAppetizers, "11.50"),
	item("The Bloom Shrimp", CategoryAppetizers, "15.99"),
	item("Hummus with Beef", CategoryAppetizers, "12.99"),

	// Main Dishes
	item("Sharhat - Mutafya Steak Slices", CategoryMainDishes, "22.50"),
	item("Chicken Nuggets", CategoryMainDishes, "12.00"),
	item("The Bloom Burger", CategoryMainDishes, "14.99"),
	item("The Bloom Chicken Burger", CategoryMainDishes, "14.99"),
	item("Steak Pita Wrap", CategoryMainDishes, "16.99"),
	item("Fajita Pita Wrap", CategoryMainDishes, "15.99"),

	// Breakfast
	item("Fattet Hummus", CategoryBreakfast, "9.99"),
	item("Omelette with Veggies", CategoryBreakfast, "13.99"),
	item("Omelette with Beef Sausage", CategoryBreakfast, "15.99"),
	item("Omelette with Mushroom", CategoryBreakfast, "13.99"),
	item("Sunny Side Up Eggs", CategoryBreakfast, "12.99"),
	item("Foul", CategoryBreakfast, "8.99"),

	// Salads
	item("Tabbouleh", CategorySalads, "9.99"),
	item("Fattoush", CategorySalads, "9.99"),
	item("Caesar Salad", CategorySalads, "9.99"),

	// Shisha
	item("The Bloom (VIP) Love 66", CategoryShisha, "44.99"),
	item("The Bloom (VIP) Ladykiller", CategoryShisha, "44.99"),
	item("The Bloom (VIP) Sky Fall", CategoryShisha, "44.99"),
	item("Blueberry", CategoryShisha, "22.50"),
	item("Gum Mint", CategoryShisha, "22.50"),
	item("Grape Mint", CategoryShisha, "22.50"),
	item("Orange Mint", CategoryShisha, "22.50"),
	item("Blueberry Mint", CategoryShisha, "22.50"),
	item("Lemon Mint", CategoryShisha, "22.50"),
	item("Mint", CategoryShisha, "22.50"),
	item("Double Apple", CategoryShisha, "22.50"),
	item("Gum Mint Mazaya", CategoryShisha, "22.50"),
	item("Gum with Cinnamon", CategoryShisha, "22.50"),
	item("Paan", CategoryShisha, "22.50"),
	item("Paan with Mint", CategoryShisha, "22.50"),
	item("Peach", CategoryShisha, "22.50"),

	// Mocktails
	item("Purple Death", CategoryMocktails, "11.00"),
	item("California", CategoryMocktails, "11.00"),
	item("Mango Snow", CategoryMocktails, "11.00"),

	// Fresh Juice
	item("Fresh Carrots with Orange", CategoryFreshJuice, "8.99"),
	item("Fresh Orange Juice", CategoryFreshJuice, "7.99"),
	item("Fresh Lemonade", CategoryFreshJuice, "8.99"),
	item("Fresh Strawberry", CategoryFreshJuice, "8.99"),
	item("Fresh Mango Juice", CategoryFreshJuice, "8.99"),
	item("Fresh Carrot Juice", CategoryFreshJuice, "8.50"),
	item("Cranberry Juice", CategoryFreshJuice, "8.99"),
	item("Pomegranate Juice", CategoryFreshJuice, "8.99"),
	item("Fresh Kiwi Juice", CategoryFreshJuice, "8.99"),

	// Milkshakes
	item("Chocolate", CategoryMilkshakes, "9.99"),
	item("Vanilla", CategoryMilkshakes, "9.99"),
	item("Strawberry", CategoryMilkshakes, "9.99"),
	item("Mango", CategoryMilkshakes, "9.99"),
	item("Nutella", CategoryMilkshakes, "9.99"),
	item("Oreo", CategoryMilkshakes, "9.99"),
	item("Ferrero Rocher", CategoryMilkshakes, "11.99"),
	item("Mango Snow", CategoryMilkshakes, "11.00"),
	item("Frappuccino (Caramel/Chocolate/Vanilla)", CategoryMilkshakes, "11.00"),

	// Smoothies
	item("Mixed Berries", CategorySmoothies, "8.99"),
	item("Lemon Mints", CategorySmoothies, "8.99"),
	item("Passion Fruit Mango", CategorySmoothies, "9.99"),
	item("Mango", CategorySmoothies, "8.99"),
	item("Strawberry", CategorySmoothies, "8.99"),

	// Hot Drinks
	item("Latte", CategoryHotDrinks, "6.99"),
	item("French Coffee", CategoryHotDrinks, "7.50"),
	item("Karak Tea Pot", CategoryHotDrinks, "15.99"),
	item("Tea Pot", CategoryHotDrinks, "13.99"),
	item("Arabic Coffee S", CategoryHotDrinks, "7.99"),
	item("Arabic Coffee M", CategoryHotDrinks, "10.99"),
	item("Arabic Coffee L", CategoryHotDrinks, "15.99"),
	item("Americano", CategoryHotDrinks, "6.50"),
	item("Double Espresso", CategoryHotDrinks, "5.99"),
	item("Karak Tea Cups", CategoryHotDrinks, "5.99"),
	item("Sahlab", CategoryHotDrinks, "7.50"),
	item("Anise", CategoryHotDrinks, "4.50"),
	item("Tea", CategoryHotDrinks, "4.50"),
	item("Turkish Coffee", CategoryHotDrinks, "5.99"),
	item("Lemon & Ginger", CategoryHotDrinks, "6.50"),
	item("Macchiato", CategoryHotDrinks, "7.50"),
	item("Cappuccino", CategoryHotDrinks, "6.99"),
	item("Hot Chocolate", CategoryHotDrinks, "6.99"),
	item("Mocha", CategoryHotDrinks, "6.99"),
	item("Espresso", CategoryHotDrinks, "3.00"),
	item("Herbal Tea (Bengal Spice)", CategoryHotDrinks, "4.99"),
	item("Indian Tea", CategoryHotDrinks, "4.99"),

	// Desserts
	item("Chocolate Crepe", CategoryDesserts, "13.99"),
	item("Fruit Crepe", CategoryDesserts, "15.99"),
	item("Kinder Bueno Crepe", CategoryDesserts, "14.99"),
	item("Ferrero Rocher Crepe", CategoryDesserts, "14.99"),
	item("Oreo Crepe", CategoryDesserts, "14.99"),
	item("Rice Krispy Crepe", CategoryDesserts, "14.99"),
	item("Warpat", CategoryDesserts, "5.99"),
	item("Mini Pancakes", CategoryDesserts, "10.99"),

	// Cold Drinks
	item("Water", CategoryColdDrinks, "2.50"),
	item("Redbull", CategoryColdDrinks, "5.99"),
	item("The Bloom Redbull", CategoryColdDrinks, "8.99"),
	item("Pop", CategoryColdDrinks, "3.50"),

	// Mojitos
	item("Strawberry", CategoryMojitos, "10.99"),
	item("Mango", CategoryMojitos, "10.99"),
	item("Passion Fruit", CategoryMojitos, "10.99"),
	item("Lemon", CategoryMojitos, "10.99"),
}
