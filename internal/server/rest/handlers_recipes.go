package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/server/services"
)

type searchRequest struct {
	Query string `json:"query"`
}

type recipeIDRequest struct {
	RecipeID *int64 `json:"recipe_id" binding:"required"`
}

type shareRequest struct {
	RecipeID *int64 `json:"recipe_id" binding:"required"`
	Receiver string `json:"receiver" binding:"required"`
}

func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return badRequest("invalid request body")
	}
	return nil
}

func (s *HTTPServer) search(c *gin.Context) error {
	var req searchRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	recipes := s.svc.Recipes.Search(c.Request.Context(), services.ParseKeywords(req.Query))
	c.JSON(http.StatusOK, recipes)
	return nil
}

func (s *HTTPServer) getRecipe(c *gin.Context) error {
	var req recipeIDRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	recipe, err := s.svc.Recipes.Get(c.Request.Context(), *req.RecipeID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgRecipeNotFound})
			return nil
		}
		return err
	}

	c.JSON(http.StatusOK, recipe)
	return nil
}

func (s *HTTPServer) addFavourite(c *gin.Context) error {
	var req recipeIDRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ok, err := s.svc.Favourites.Add(c.Request.Context(), currentSession(c).UserName, *req.RecipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, gin.H{"success": ok})
	return nil
}

func (s *HTTPServer) removeFavourite(c *gin.Context) error {
	var req recipeIDRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ok, err := s.svc.Favourites.Remove(c.Request.Context(), currentSession(c).UserName, *req.RecipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, gin.H{"success": ok})
	return nil
}

func (s *HTTPServer) shareRecipe(c *gin.Context) error {
	var req shareRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	err := s.svc.Shares.Share(c.Request.Context(), currentSession(c).UserName, req.Receiver, *req.RecipeID)
	if err != nil {
		if errors.Is(err, common.ErrReceiverNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "error": msgReceiverNotFound})
			return nil
		}
		return err
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
	return nil
}
