package rest

import (
	"context"
	"time"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/server/models"
)

type fakeCredentials struct {
	registerErr error
	authUser    *models.User
	authErr     error
}

func (f *fakeCredentials) Register(_ context.Context, username, _ string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: 1, UserName: username}, nil
}

func (f *fakeCredentials) Authenticate(context.Context, string, string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authUser, nil
}

// fakeSessions accepts exactly one token, "good", belonging to alice.
type fakeSessions struct {
	openErr    error
	resolveErr error
	closed     []string
}

func (f *fakeSessions) Open(context.Context, *models.User) (string, time.Time, error) {
	if f.openErr != nil {
		return "", time.Time{}, f.openErr
	}
	return "good", time.Now().Add(time.Hour), nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (*models.Session, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	if token != "good" {
		return nil, common.ErrorUnauthorized
	}
	return &models.Session{ID: "sid", UserID: 1, UserName: "alice"}, nil
}

func (f *fakeSessions) Close(_ context.Context, token string) error {
	f.closed = append(f.closed, token)
	return nil
}

type fakeRecipes struct {
	gotKeywords []string
	result      []models.RecipeSummary
	getErr      error
}

func (f *fakeRecipes) Search(_ context.Context, keywords []string) []models.RecipeSummary {
	f.gotKeywords = keywords
	if f.result == nil {
		return []models.RecipeSummary{}
	}
	return f.result
}

func (f *fakeRecipes) Get(_ context.Context, id int64) (*models.RecipeSummary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.RecipeSummary{ID: id, Name: "Torta"}, nil
}

type fakeFavourites struct {
	addResult bool
	err       error
	gotUser   string
	gotID     int64
}

func (f *fakeFavourites) Add(_ context.Context, username string, id int64) (bool, error) {
	f.gotUser, f.gotID = username, id
	return f.addResult, f.err
}

func (f *fakeFavourites) Remove(_ context.Context, username string, id int64) (bool, error) {
	f.gotUser, f.gotID = username, id
	return f.addResult, f.err
}

func (f *fakeFavourites) List(context.Context, string) ([]models.FavouriteRecipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.FavouriteRecipe{{ID: 7, Name: "Torta"}}, nil
}

type fakeShares struct {
	err         error
	gotSender   string
	gotReceiver string
}

func (f *fakeShares) Share(_ context.Context, sender, receiver string, _ int64) error {
	f.gotSender, f.gotReceiver = sender, receiver
	return f.err
}

func (f *fakeShares) Received(context.Context, string) ([]models.ReceivedRecipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.ReceivedRecipe{}, nil
}
