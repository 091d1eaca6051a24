package mcpserver

// RecipeFormatContract describes the canonical recipe JSON that LLM
// consumers must submit to the add_recipe tool.
const RecipeFormatContract = `# Mise Recipe Format Contract

The add_recipe tool accepts one JSON object with the fields below. The
server assigns the id and timestamps; do not include them.

## Structure

` + "```" + `json
{
  "title": "Shakshuka",
  "description": "Eggs poached in spiced tomato sauce.",
  "imageUrl": "https://example.com/shakshuka.jpg",
  "prepTime": 10,
  "cookTime": 20,
  "servings": 2,
  "difficulty": "medium",
  "categories": ["breakfast"],
  "ingredients": [
    {"name": "Eggs", "quantity": 4, "unit": ""},
    {"name": "Crushed tomatoes", "quantity": 1, "unit": "can"}
  ],
  "steps": [
    "Simmer the tomatoes with spices.",
    "Crack in the eggs and cover until just set."
  ]
}
` + "```" + `

## Rules

1. **title** and **imageUrl** are required, non-empty strings.
2. **prepTime** and **cookTime** are non-negative integers (minutes).
3. **servings** is a positive integer.
4. **difficulty** is one of: easy, medium, hard.
5. **categories** is a non-empty list of category ids. Use the
   list_categories tool for the available ids (e.g. breakfast, dinner,
   vegan, gluten-free).
6. **ingredients** is a non-empty list; at least one entry must have a
   non-empty name. quantity is a non-negative number; 0 means "to taste".
   unit is free text and may be empty.
7. **steps** is a non-empty ordered list of non-empty instruction strings;
   order is the execution sequence.
8. **description** is optional; a placeholder is used when omitted.
`
