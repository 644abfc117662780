package models

import "encoding/base64"

// ImageDataURIPrefix is prepended to base64 encoded recipe images.
const ImageDataURIPrefix = "data:image/png;base64,"

// Recipe is a row of the externally loaded recipe table.
type Recipe struct {
	ID    int64
	Name  string
	Image []byte
}

// ImageDataURI returns the image as a data URI, or "" when there is none.
func (r *Recipe) ImageDataURI() string {
	if len(r.Image) == 0 {
		return ""
	}
	return ImageDataURIPrefix + base64.StdEncoding.EncodeToString(r.Image)
}

// Summary converts the row to its API representation.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{ID: r.ID, Name: r.Name, Image: r.ImageDataURI()}
}

// RecipeSummary is a recipe as returned by search and get_recipe.
type RecipeSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"naziv"`
	Image string `json:"image"`
}
