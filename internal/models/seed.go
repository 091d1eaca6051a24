package models

import "time"

// DefaultCategories is the fixed category set written on first run.
// Categories are static for the session; no CRUD is exposed for them.
var DefaultCategories = []Category{
	{ID: "breakfast", Name: "Breakfast", Color: "#FDA4AF"},
	{ID: "lunch", Name: "Lunch", Color: "#FCD34D"},
	{ID: "dinner", Name: "Dinner", Color: "#60A5FA"},
	{ID: "dessert", Name: "Dessert", Color: "#F9A8D4"},
	{ID: "snack", Name: "Snack", Color: "#A3E635"},
	{ID: "beverage", Name: "Beverage", Color: "#C4B5FD"},
	{ID: "vegetarian", Name: "Vegetarian", Color: "#34D399"},
	{ID: "vegan", Name: "Vegan", Color: "#6EE7B7"},
	{ID: "gluten-free", Name: "Gluten Free", Color: "#FB923C"},
	{ID: "dairy-free", Name: "Dairy Free", Color: "#A78BFA"},
}

const dayMillis = 24 * 60 * 60 * 1000

// SampleRecipes returns the starter recipe set persisted on the very first
// launch. Timestamps are relative to the moment of seeding; the Avocado
// Toast entry ships pre-favorited.
func SampleRecipes() []Recipe {
	now := time.Now().UnixMilli()
	return []Recipe{
		{
			ID:          "1",
			Title:       "Classic Pancakes",
			Description: "Fluffy, golden pancakes perfect for breakfast.",
			ImageURL:    "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
			PrepTime:    10,
			CookTime:    15,
			Servings:    4,
			Difficulty:  DifficultyEasy,
			Categories:  []string{"breakfast"},
			Ingredients: []Ingredient{
				{ID: "1-1", Name: "All-purpose flour", Quantity: 1.5, Unit: "cups"},
				{ID: "1-2", Name: "Sugar", Quantity: 3, Unit: "tbsp"},
				{ID: "1-3", Name: "Baking powder", Quantity: 1, Unit: "tbsp"},
				{ID: "1-4", Name: "Salt", Quantity: 0.5, Unit: "tsp"},
				{ID: "1-5", Name: "Milk", Quantity: 1.25, Unit: "cups"},
				{ID: "1-6", Name: "Egg", Quantity: 1, Unit: ""},
				{ID: "1-7", Name: "Butter, melted", Quantity: 3, Unit: "tbsp"},
			},
			Steps: []string{
				"In a large bowl, whisk together flour, sugar, baking powder, and salt.",
				"In a separate bowl, whisk milk, egg, and melted butter until combined.",
				"Pour wet ingredients into dry ingredients and stir just until combined (batter will be lumpy).",
				"Heat a griddle or frying pan over medium heat. Pour 1/4 cup batter for each pancake.",
				"Cook until bubbles form on the surface, then flip and cook until golden brown on both sides.",
				"Serve warm with maple syrup, fresh fruit, or your favorite toppings.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "2",
			Title:       "Avocado Toast",
			Description: "Simple, nutritious avocado toast with a twist.",
			ImageURL:    "https://images.pexels.com/photos/1351238/pexels-photo-1351238.jpeg",
			PrepTime:    5,
			CookTime:    5,
			Servings:    1,
			Difficulty:  DifficultyEasy,
			Categories:  []string{"breakfast", "vegetarian"},
			Ingredients: []Ingredient{
				{ID: "2-1", Name: "Bread slice", Quantity: 1, Unit: ""},
				{ID: "2-2", Name: "Ripe avocado", Quantity: 0.5, Unit: ""},
				{ID: "2-3", Name: "Cherry tomatoes", Quantity: 5, Unit: ""},
				{ID: "2-4", Name: "Feta cheese", Quantity: 2, Unit: "tbsp"},
				{ID: "2-5", Name: "Red pepper flakes", Quantity: 0.25, Unit: "tsp"},
				{ID: "2-6", Name: "Lemon juice", Quantity: 1, Unit: "tsp"},
				{ID: "2-7", Name: "Salt and pepper", Quantity: 1, Unit: "pinch"},
			},
			Steps: []string{
				"Toast bread until golden and crisp.",
				"In a small bowl, mash the avocado with lemon juice, salt, and pepper.",
				"Spread the avocado mixture on the toast.",
				"Slice cherry tomatoes in half and arrange on top of the avocado.",
				"Sprinkle with crumbled feta cheese and red pepper flakes.",
				"Add additional toppings like microgreens or a drizzle of olive oil if desired.",
			},
			IsFavorite: true,
			CreatedAt:  now - dayMillis,
			UpdatedAt:  now - dayMillis,
		},
		{
			ID:          "3",
			Title:       "Pasta Primavera",
			Description: "Light and fresh pasta loaded with spring vegetables.",
			ImageURL:    "https://images.pexels.com/photos/1527603/pexels-photo-1527603.jpeg",
			PrepTime:    15,
			CookTime:    20,
			Servings:    4,
			Difficulty:  DifficultyMedium,
			Categories:  []string{"dinner", "vegetarian"},
			Ingredients: []Ingredient{
				{ID: "3-1", Name: "Fettuccine pasta", Quantity: 8, Unit: "oz"},
				{ID: "3-2", Name: "Asparagus, trimmed and cut", Quantity: 1, Unit: "cup"},
				{ID: "3-3", Name: "Broccoli florets", Quantity: 1, Unit: "cup"},
				{ID: "3-4", Name: "Cherry tomatoes, halved", Quantity: 1, Unit: "cup"},
				{ID: "3-5", Name: "Yellow squash, sliced", Quantity: 1, Unit: "medium"},
				{ID: "3-6", Name: "Garlic, minced", Quantity: 2, Unit: "cloves"},
				{ID: "3-7", Name: "Olive oil", Quantity: 3, Unit: "tbsp"},
				{ID: "3-8", Name: "Parmesan cheese, grated", Quantity: 0.5, Unit: "cup"},
				{ID: "3-9", Name: "Fresh basil, chopped", Quantity: 0.25, Unit: "cup"},
				{ID: "3-10", Name: "Salt and pepper", Quantity: 1, Unit: "to taste"},
			},
			Steps: []string{
				"Cook pasta according to package directions. Reserve 1/2 cup pasta water before draining.",
				"In a large skillet, heat olive oil over medium heat. Add garlic and sauté for 30 seconds.",
				"Add broccoli and asparagus, cook for 3-4 minutes until bright green.",
				"Add squash and tomatoes, cook for another 2-3 minutes until vegetables are tender-crisp.",
				"Add drained pasta to the skillet with vegetables. Toss to combine.",
				"Add a splash of reserved pasta water if needed to loosen the sauce.",
				"Remove from heat and stir in Parmesan cheese and fresh basil.",
				"Season with salt and pepper to taste. Serve immediately with additional cheese if desired.",
			},
			CreatedAt: now - 2*dayMillis,
			UpdatedAt: now - 2*dayMillis,
		},
		{
			ID:          "4",
			Title:       "Beef Wellington",
			Description: "A luxurious and challenging dish featuring beef tenderloin wrapped in mushroom duxelles and puff pastry.",
			ImageURL:    "https://images.pexels.com/photos/675951/pexels-photo-675951.jpeg",
			PrepTime:    60,
			CookTime:    45,
			Servings:    6,
			Difficulty:  DifficultyHard,
			Categories:  []string{"dinner"},
			Ingredients: []Ingredient{
				{ID: "4-1", Name: "Beef tenderloin", Quantity: 2, Unit: "lbs"},
				{ID: "4-2", Name: "Mushrooms, finely chopped", Quantity: 1, Unit: "lb"},
				{ID: "4-3", Name: "Prosciutto slices", Quantity: 8, Unit: "slices"},
				{ID: "4-4", Name: "Puff pastry", Quantity: 1, Unit: "sheet"},
				{ID: "4-5", Name: "Egg wash", Quantity: 1, Unit: "large egg"},
				{ID: "4-6", Name: "Dijon mustard", Quantity: 2, Unit: "tbsp"},
				{ID: "4-7", Name: "Shallots, minced", Quantity: 2, Unit: "medium"},
				{ID: "4-8", Name: "Garlic, minced", Quantity: 3, Unit: "cloves"},
				{ID: "4-9", Name: "Fresh thyme", Quantity: 2, Unit: "sprigs"},
			},
			Steps: []string{
				"Sear the beef tenderloin on all sides until browned. Let it cool completely.",
				"Make mushroom duxelles: Cook mushrooms, shallots, and garlic until moisture evaporates.",
				"Lay out plastic wrap, arrange prosciutto in a rectangle, spread mushroom mixture.",
				"Brush cooled beef with mustard, place on prosciutto, and wrap tightly. Chill for 30 minutes.",
				"Roll out puff pastry, unwrap beef, and place on pastry. Wrap pastry around beef.",
				"Brush with egg wash, score the top in a decorative pattern.",
				"Bake at 400°F (200°C) for 40-45 minutes until pastry is golden and beef reaches desired temperature.",
				"Rest for 10 minutes before slicing and serving.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "5",
			Title:       "Quinoa Buddha Bowl",
			Description: "A nourishing gluten-free and dairy-free bowl packed with protein and vegetables.",
			ImageURL:    "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			PrepTime:    20,
			CookTime:    25,
			Servings:    2,
			Difficulty:  DifficultyMedium,
			Categories:  []string{"lunch", "dinner", "gluten-free", "dairy-free", "vegetarian"},
			Ingredients: []Ingredient{
				{ID: "5-1", Name: "Quinoa", Quantity: 1, Unit: "cup"},
				{ID: "5-2", Name: "Sweet potato, cubed", Quantity: 1, Unit: "medium"},
				{ID: "5-3", Name: "Chickpeas", Quantity: 1, Unit: "can"},
				{ID: "5-4", Name: "Kale, chopped", Quantity: 2, Unit: "cups"},
				{ID: "5-5", Name: "Avocado", Quantity: 1, Unit: "medium"},
				{ID: "5-6", Name: "Tahini", Quantity: 2, Unit: "tbsp"},
				{ID: "5-7", Name: "Lemon juice", Quantity: 1, Unit: "tbsp"},
				{ID: "5-8", Name: "Maple syrup", Quantity: 1, Unit: "tsp"},
				{ID: "5-9", Name: "Cumin", Quantity: 1, Unit: "tsp"},
				{ID: "5-10", Name: "Paprika", Quantity: 1, Unit: "tsp"},
			},
			Steps: []string{
				"Cook quinoa according to package instructions.",
				"Toss sweet potato cubes with olive oil, cumin, and paprika. Roast at 400°F for 20-25 minutes.",
				"Drain and rinse chickpeas, toss with olive oil and same spices. Roast for 15-20 minutes until crispy.",
				"Massage kale with olive oil and lemon juice until softened.",
				"Make dressing: Whisk together tahini, lemon juice, maple syrup, and water until smooth.",
				"Assemble bowls: Layer quinoa, roasted vegetables, chickpeas, and kale.",
				"Top with sliced avocado and drizzle with tahini dressing.",
				"Garnish with seeds or microgreens if desired.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "6",
			Title:       "Almond Flour Chocolate Chip Cookies",
			Description: "Delicious gluten-free and dairy-free cookies that everyone will love.",
			ImageURL:    "https://images.pexels.com/photos/230325/pexels-photo-230325.jpeg",
			PrepTime:    15,
			CookTime:    12,
			Servings:    24,
			Difficulty:  DifficultyEasy,
			Categories:  []string{"dessert", "gluten-free", "dairy-free"},
			Ingredients: []Ingredient{
				{ID: "6-1", Name: "Almond flour", Quantity: 2.5, Unit: "cups"},
				{ID: "6-2", Name: "Coconut sugar", Quantity: 0.5, Unit: "cup"},
				{ID: "6-3", Name: "Baking soda", Quantity: 0.5, Unit: "tsp"},
				{ID: "6-4", Name: "Salt", Quantity: 0.25, Unit: "tsp"},
				{ID: "6-5", Name: "Coconut oil, melted", Quantity: 0.5, Unit: "cup"},
				{ID: "6-6", Name: "Vanilla extract", Quantity: 1, Unit: "tsp"},
				{ID: "6-7", Name: "Egg", Quantity: 1, Unit: "large"},
				{ID: "6-8", Name: "Dairy-free chocolate chips", Quantity: 1, Unit: "cup"},
			},
			Steps: []string{
				"Preheat oven to 350°F (175°C). Line baking sheets with parchment paper.",
				"In a large bowl, whisk together almond flour, coconut sugar, baking soda, and salt.",
				"In another bowl, mix melted coconut oil, vanilla extract, and egg until well combined.",
				"Add wet ingredients to dry ingredients and mix until dough forms.",
				"Fold in dairy-free chocolate chips.",
				"Drop rounded tablespoons of dough onto prepared baking sheets.",
				"Bake for 10-12 minutes until edges are lightly golden.",
				"Let cool on baking sheets for 5 minutes before transferring to wire rack.",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
