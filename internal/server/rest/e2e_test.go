package rest

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/config"
	"github.com/recipesearch/recipesearch/internal/server/services"
	"github.com/recipesearch/recipesearch/internal/server/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newAPI(t *testing.T) (*apiClient, func() *apiClient) {
	t.Helper()
	db, m := testutil.NewSQLiteDB(t)
	testutil.SeedRecipe(t, db, 3, "Sirova torta", "sirova torta", "sir torta", nil)
	testutil.SeedRecipe(t, db, 7, "Čokoladna torta", "čokoladna torta", "čokolada torta", []byte("png"))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewNop()

	srv := NewHTTPServer(cfg, log, Services{
		Credentials: services.NewCredentialService(db, m, testutil.FastArgon2Params, log),
		Sessions:    services.NewSessionService(m.Sessions(db), []byte("e2e-secret"), time.Hour, log),
		Recipes:     services.NewRecipeService(db, m, log),
		Favourites:  services.NewFavouriteService(db, m),
		Shares:      services.NewShareService(db, m),
	}, prometheus.NewRegistry())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	newClient := func() *apiClient {
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		return &apiClient{t: t, base: ts.URL, http: &http.Client{Jar: jar}}
	}
	return newClient(), newClient
}

func (a *apiClient) form(path string, v url.Values) (int, map[string]any) {
	a.t.Helper()
	resp, err := a.http.PostForm(a.base+path, v)
	require.NoError(a.t, err)
	return readJSON(a.t, resp)
}

func (a *apiClient) post(path, body string) (int, any) {
	a.t.Helper()
	resp, err := a.http.Post(a.base+path, "application/json", strings.NewReader(body))
	require.NoError(a.t, err)
	defer resp.Body.Close()
	var out any
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (a *apiClient) get(path string) (int, map[string]any) {
	a.t.Helper()
	resp, err := a.http.Get(a.base + path)
	require.NoError(a.t, err)
	return readJSON(a.t, resp)
}

func readJSON(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestEndToEnd_UserJourney(t *testing.T) {
	alice, _ := newAPI(t)

	code, body := alice.form("/api/register", url.Values{"username": {"alice"}, "password": {"pw1"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, body = alice.form("/api/login", url.Values{"username": {"alice"}, "password": {"pw1"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, res := alice.post("/api/search", `{"query":"torta"}`)
	require.Equal(t, http.StatusOK, code)
	list := res.([]any)
	require.Len(t, list, 2)
	assert.Equal(t, "data:image/png;base64,cG5n", list[1].(map[string]any)["image"])

	code, res = alice.post("/api/add_favourite", `{"recipe_id":7}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true}, res)

	code, res = alice.post("/api/add_favourite", `{"recipe_id":7}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": false}, res)

	code, body = alice.get("/api/me")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, []any{map[string]any{"id": float64(7), "naziv": "Čokoladna torta"}}, body["favourites"])
	assert.Equal(t, []any{}, body["received"])

	code, _ = alice.form("/api/logout", nil)
	require.Equal(t, http.StatusOK, code)

	code, body = alice.get("/api/me")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, map[string]any{"error": "Ni prijave"}, body)
}

func TestEndToEnd_RegisterTwice(t *testing.T) {
	api, _ := newAPI(t)

	api.form("/api/register", url.Values{"username": {"alice"}, "password": {"pw1"}})
	code, body := api.form("/api/register", url.Values{"username": {"alice"}, "password": {"x"}})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgUsernameTaken, body["message"])

	code, _ = api.form("/api/login", url.Values{"username": {"alice"}, "password": {"x"}})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestEndToEnd_SharingBetweenUsers(t *testing.T) {
	alice, newClient := newAPI(t)
	bob := newClient()

	alice.form("/api/register", url.Values{"username": {"alice"}, "password": {"a"}})
	bob.form("/api/register", url.Values{"username": {"bob"}, "password": {"b"}})
	alice.form("/api/login", url.Values{"username": {"alice"}, "password": {"a"}})
	bob.form("/api/login", url.Values{"username": {"bob"}, "password": {"b"}})

	code, res := alice.post("/api/share_recipe", `{"recipe_id":3,"receiver":"bob"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true}, res)

	code, res = alice.post("/api/share_recipe", `{"recipe_id":3,"receiver":"nobody"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": false, "error": msgReceiverNotFound}, res)

	code, body := bob.get("/api/me")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{map[string]any{"id": float64(3), "naziv": "Sirova torta", "sender": "alice"}}, body["received"])

	code, res = bob.post("/api/get_recipe", `{"recipe_id":99999}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"error": msgRecipeNotFound}, res)
}

func TestEndToEnd_ForgedUsernameCookie(t *testing.T) {
	api, _ := newAPI(t)
	api.form("/api/register", url.Values{"username": {"alice"}, "password": {"pw1"}})

	u, err := url.Parse(api.base)
	require.NoError(t, err)
	api.http.Jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "alice", Path: "/"}})

	code, _ := api.get("/api/me")
	assert.Equal(t, http.StatusUnauthorized, code)
}
