// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column identifiers for the cookbook schema.
package schema

// RefRecipeTable represents the 'cookbook.recipe' table
type RefRecipeTable struct {
	Table        string
	ID           string
	Title        string
	Description  string
	Instructions string
	ImageURL     string
	Ingredients  string
	Favourite    string
	CreatedAt    string
	UpdatedAt    string
}

// RefRecipe is the schema definition for cookbook.recipe
var RefRecipe = RefRecipeTable{
	Table:        "cookbook.recipe",
	ID:           "id",
	Title:        "title",
	Description:  "description",
	Instructions: "instructions",
	ImageURL:     "imageurl",
	Ingredients:  "ingredients",
	Favourite:    "favourite",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns lists the columns read back into a recipe, in scan order.
func (t RefRecipeTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Instructions, t.ImageURL, t.Ingredients, t.Favourite}
}
