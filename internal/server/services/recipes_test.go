package services

import (
	"context"
	"testing"

	"github.com/recipesearch/recipesearch/internal/common"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/models"
	"github.com/recipesearch/recipesearch/internal/server/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{}},
		{"blank", "   \t ", []string{}},
		{"single", "Torta", []string{"torta"}},
		{"trim and split", "  Čokoladna   TORTA ", []string{"čokoladna", "torta"}},
		{"dedupe keeps order", "torta sir torta", []string{"torta", "sir"}},
		{"case dedupe", "Sir SIR sir", []string{"sir"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.query))
		})
	}
}

func newRecipeFixture(t *testing.T) *RecipeService {
	t.Helper()
	db, m := testutil.NewSQLiteDB(t)
	testutil.SeedRecipe(t, db, 3, "Sirova torta", "sirova torta s sadjem", "sir torta sadje", nil)
	testutil.SeedRecipe(t, db, 7, "Čokoladna torta", "čokoladna torta", "čokolada torta", []byte{0x89, 'P', 'N', 'G'})
	testutil.SeedRecipe(t, db, 9, "Goveja juha", "goveja juha z rezanci", "govedo juha rezanec", nil)
	testutil.SeedRecipe(t, db, 11, "100% sadni sok", "100% sadni sok", "sadje sok", nil)
	return NewRecipeService(db, m, logging.NewNop())
}

func ids(list []models.RecipeSummary) []int64 {
	out := []int64{}
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestRecipeService_Search(t *testing.T) {
	s := newRecipeFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"single keyword", "torta", []int64{3, 7}},
		{"and semantics", "torta čokolada", []int64{7}},
		{"matches lemma column", "sadje", []int64{3, 11}},
		{"substring match", "juh", []int64{9}},
		{"no match", "pizza", []int64{}},
		{"empty query", "   ", []int64{}},
		{"duplicate keyword", "torta torta", []int64{3, 7}},
		{"percent is literal", "%", []int64{11}},
		{"underscore is literal", "_", []int64{}},
		{"quote is data", "torta' OR '1'='1", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(ctx, ParseKeywords(tt.query))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRecipeService_SearchImage(t *testing.T) {
	s := newRecipeFixture(t)

	got := s.Search(context.Background(), []string{"čokoladna"})
	require.Len(t, got, 1)
	assert.Equal(t, "Čokoladna torta", got[0].Name)
	assert.Equal(t, "data:image/png;base64,iVBORw==", got[0].Image)
}

func TestRecipeService_SearchDegradesOnStoreError(t *testing.T) {
	s := NewRecipeService(nil, brokenRepoManager{}, logging.NewNop())

	got := s.Search(context.Background(), []string{"torta"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecipeService_SearchMissingTable(t *testing.T) {
	db, m := testutil.NewSQLiteDB(t)
	_, err := db.Exec(`DROP TABLE recepti`)
	require.NoError(t, err)

	s := NewRecipeService(db, m, logging.NewNop())
	assert.Empty(t, s.Search(context.Background(), []string{"torta"}))
}

func TestRecipeService_Get(t *testing.T) {
	s := newRecipeFixture(t)
	ctx := context.Background()

	got, err := s.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &models.RecipeSummary{ID: 7, Name: "Čokoladna torta", Image: "data:image/png;base64,iVBORw=="}, got)

	got, err = s.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "", got.Image)

	_, err = s.Get(ctx, 99999)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRecipeService_GetStoreError(t *testing.T) {
	s := NewRecipeService(nil, brokenRepoManager{}, logging.NewNop())

	_, err := s.Get(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}
