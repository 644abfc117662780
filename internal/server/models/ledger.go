package models

// FavouriteRecipe is an entry of a user's favourites list.
type FavouriteRecipe struct {
	ID   int64  `json:"id"`
	Name string `json:"naziv"`
}

// ReceivedRecipe is a recipe another user shared with the current user.
type ReceivedRecipe struct {
	ID     int64  `json:"id"`
	Name   string `json:"naziv"`
	Sender string `json:"sender"`
}
