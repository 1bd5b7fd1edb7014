package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/guttosm/recipe-service/internal/mocks"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/guttosm/recipe-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret-key-with-enough-length"

type testEnv struct {
	router *gin.Engine
	source *mocks.MockRecipeSource
	kv     store.KV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithKV(t, store.NewMemoryStore())
}

func newTestEnvWithKV(t *testing.T, kv store.KV) *testEnv {
	t.Helper()

	source := new(mocks.MockRecipeSource)
	likes := service.NewLikesService(kv)
	sessions := session.NewStore(100, time.Hour, 4)
	t.Cleanup(sessions.Stop)
	tokens := service.NewTokenService(testSecret, time.Hour)

	handler := NewHandler(Services{
		Tokens:  tokens,
		Recipes: service.NewRecipeService(source, nil),
		Search:  service.NewSearchService(source, 10),
		List:    service.NewShoppingListService(),
		Likes:   likes,
	})

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Tokens = tokens
	cfg.Sessions = session.NewManager(sessions, likes)

	return &testEnv{
		router: NewRouter(handler, NewHealthHandler(), cfg),
		source: source,
		kv:     kv,
	}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) newSession(t *testing.T) dto.SessionResponse {
	t.Helper()
	w := e.do(http.MethodPost, "/api/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeData[dto.SessionResponse](t, w)
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func rawPizza() *forkify.RawRecipe {
	return &forkify.RawRecipe{
		ID:        "47746",
		Title:     "Best Pizza Dough Ever",
		Publisher: "101 Cookbooks",
		SourceURL: "http://www.101cookbooks.com/archives/001199.html",
		ImageURL:  "http://forkify-api.herokuapp.com/images/best_pizza_dough_recipe1b20.jpg",
		Ingredients: []string{
			"4 1/2 cups (20.25 ounces) unbleached high-gluten flour",
			"1 3/4 teaspoons salt",
			"1-1/2 tablespoons olive oil",
			"4 eggs (beaten)",
			"Semolina for dusting",
		},
	}
}

func summaries(n int) []model.RecipeSummary {
	out := make([]model.RecipeSummary, n)
	for i := range out {
		out[i] = model.RecipeSummary{ID: string(rune('a' + i)), Title: "Pizza"}
	}
	return out
}

func TestCreateSession(t *testing.T) {
	env := newTestEnv(t)

	sess := env.newSession(t)
	assert.NotEmpty(t, sess.ClientID)
	assert.NotEmpty(t, sess.Token)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	w := env.do(http.MethodGet, "/api/sessions/current", sess.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decodeData[dto.SessionSummaryResponse](t, w)
	assert.Equal(t, sess.ClientID, summary.ClientID)
	assert.Zero(t, summary.Results)
	assert.Empty(t, summary.RecipeID)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "search without token", method: http.MethodGet, path: "/api/search?q=pizza"},
		{name: "recipe without token", method: http.MethodGet, path: "/api/recipe"},
		{name: "list with forged token", method: http.MethodGet, path: "/api/list", token: "not-a-jwt"},
		{name: "likes with forged token", method: http.MethodPost, path: "/api/likes/toggle", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Error)
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*mocks.MockRecipeSource)
		wantStatus int
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "first page",
			path: "/api/search?q=pizza",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("Search", mock.Anything, "pizza").Return(summaries(25), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				page := decodeData[model.ResultsPage](t, w)
				assert.Equal(t, "pizza", page.Query)
				assert.Equal(t, 1, page.Page)
				assert.Equal(t, 3, page.TotalPages)
				assert.Equal(t, 25, page.Total)
				assert.False(t, page.HasPrev)
				assert.True(t, page.HasNext)
				assert.Len(t, page.Results, 10)
			},
		},
		{
			name: "requested page",
			path: "/api/search?q=pizza&page=3",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("Search", mock.Anything, "pizza").Return(summaries(25), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				page := decodeData[model.ResultsPage](t, w)
				assert.Equal(t, 3, page.Page)
				assert.Len(t, page.Results, 5)
				assert.False(t, page.HasNext)
			},
		},
		{
			name:       "empty query",
			path:       "/api/search?q=%20%20",
			setup:      func(*mocks.MockRecipeSource) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid page",
			path:       "/api/search?q=pizza&page=zero",
			setup:      func(*mocks.MockRecipeSource) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "upstream failure",
			path: "/api/search?q=pizza",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("Search", mock.Anything, "pizza").
					Return(nil, &forkify.NetworkError{Op: "search", StatusCode: 500, Err: forkify.ErrUnexpectedStatus})
			},
			wantStatus: http.StatusBadGateway,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, dto.ErrCodeUpstream, decodeError(t, w).Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env.source)
			sess := env.newSession(t)

			w := env.do(http.MethodGet, tt.path, sess.Token, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
			env.source.AssertExpectations(t)
		})
	}
}

func TestSearchPage(t *testing.T) {
	env := newTestEnv(t)
	env.source.On("Search", mock.Anything, "pizza").Return(summaries(25), nil).Once()
	sess := env.newSession(t)

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/search?q=pizza", sess.Token, nil).Code)

	tests := []struct {
		name       string
		page       string
		wantStatus int
		wantPage   int
		wantLen    int
	}{
		{name: "second page", page: "2", wantStatus: http.StatusOK, wantPage: 2, wantLen: 10},
		{name: "clamped past end", page: "9", wantStatus: http.StatusOK, wantPage: 3, wantLen: 5},
		{name: "not a number", page: "x", wantStatus: http.StatusBadRequest},
		{name: "zero", page: "0", wantStatus: http.StatusBadRequest},
		{name: "largest int is clamped", page: "9223372036854775807", wantStatus: http.StatusOK, wantPage: 3, wantLen: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/api/search/pages/"+tt.page, sess.Token, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			page := decodeData[model.ResultsPage](t, w)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Len(t, page.Results, tt.wantLen)
		})
	}

	// Pages are served from the session; the upstream is hit only once.
	env.source.AssertNumberOfCalls(t, "Search", 1)
}

func TestSearchPage_NoSearchYet(t *testing.T) {
	env := newTestEnv(t)
	sess := env.newSession(t)

	w := env.do(http.MethodGet, "/api/search/pages/9223372036854775807", sess.Token, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decodeData[model.ResultsPage](t, w)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Results)
}

func TestShowRecipe(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*mocks.MockRecipeSource)
		wantStatus int
		wantCode   string
	}{
		{
			name: "loads and parses",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("GetRecipe", mock.Anything, "47746").Return(rawPizza(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown recipe",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("GetRecipe", mock.Anything, "47746").
					Return(nil, &forkify.NetworkError{Op: "get", StatusCode: 400, Err: forkify.ErrUnexpectedStatus})
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name: "network failure",
			setup: func(m *mocks.MockRecipeSource) {
				m.On("GetRecipe", mock.Anything, "47746").
					Return(nil, &forkify.NetworkError{Op: "get", Err: errors.New("connection refused")})
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   dto.ErrCodeUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.setup(env.source)
			sess := env.newSession(t)

			w := env.do(http.MethodGet, "/api/recipes/47746", sess.Token, nil)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error)
				return
			}

			recipe := decodeData[dto.RecipeResponse](t, w)
			assert.Equal(t, "47746", recipe.ID)
			assert.Equal(t, "101 Cookbooks", recipe.Author)
			assert.Equal(t, model.DefaultServings, recipe.Servings)
			assert.Equal(t, 15, recipe.EstimatedMinutes)
			assert.False(t, recipe.Liked)
			require.Len(t, recipe.Ingredients, 5)
			assert.Equal(t, model.Ingredient{Count: 4.5, Unit: "cup", Ingredient: "unbleached high-gluten flour"}, recipe.Ingredients[0])

			w = env.do(http.MethodGet, "/api/recipe", sess.Token, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "47746", decodeData[dto.RecipeResponse](t, w).ID)
		})
	}
}

func TestCurrentRecipe_NoneLoaded(t *testing.T) {
	env := newTestEnv(t)
	sess := env.newSession(t)

	w := env.do(http.MethodGet, "/api/recipe", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateServings(t *testing.T) {
	tests := []struct {
		name         string
		bodies       []string
		wantStatus   int
		wantServings int
		wantFlour    float64
	}{
		{
			name:         "increase",
			bodies:       []string{`{"direction":"inc"}`},
			wantStatus:   http.StatusOK,
			wantServings: 5,
			wantFlour:    4.5 * 5 / 4,
		},
		{
			name:         "decrease",
			bodies:       []string{`{"direction":"dec"}`},
			wantStatus:   http.StatusOK,
			wantServings: 3,
			wantFlour:    4.5 * 3 / 4,
		},
		{
			name:         "never below one",
			bodies:       []string{`{"servings":1}`, `{"direction":"dec"}`},
			wantStatus:   http.StatusOK,
			wantServings: 1,
			wantFlour:    4.5 / 4,
		},
		{
			name:         "explicit servings",
			bodies:       []string{`{"servings":8}`},
			wantStatus:   http.StatusOK,
			wantServings: 8,
			wantFlour:    9,
		},
		{
			name:       "unknown direction",
			bodies:     []string{`{"direction":"sideways"}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "both fields",
			bodies:     []string{`{"direction":"inc","servings":3}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero servings",
			bodies:     []string{`{"servings":0}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			bodies:     []string{`{"servings":`},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.source.On("GetRecipe", mock.Anything, "47746").Return(rawPizza(), nil)
			sess := env.newSession(t)
			require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/recipes/47746", sess.Token, nil).Code)

			var w *httptest.ResponseRecorder
			for _, body := range tt.bodies {
				w = env.do(http.MethodPost, "/api/recipe/servings", sess.Token, body)
			}
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			recipe := decodeData[dto.RecipeResponse](t, w)
			assert.Equal(t, tt.wantServings, recipe.Servings)
			assert.InDelta(t, tt.wantFlour, recipe.Ingredients[0].Count, 1e-9)
		})
	}
}

func TestUpdateServings_NoRecipe(t *testing.T) {
	env := newTestEnv(t)
	sess := env.newSession(t)

	w := env.do(http.MethodPost, "/api/recipe/servings", sess.Token, `{"direction":"inc"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShoppingList(t *testing.T) {
	env := newTestEnv(t)
	env.source.On("GetRecipe", mock.Anything, "47746").Return(rawPizza(), nil)
	sess := env.newSession(t)

	w := env.do(http.MethodPost, "/api/list/recipe", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no recipe loaded yet")

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/recipes/47746", sess.Token, nil).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/recipe/servings", sess.Token, `{"servings":8}`).Code)

	w = env.do(http.MethodPost, "/api/list/recipe", sess.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	added := decodeData[dto.ListResponse](t, w).Items
	require.Len(t, added, 5)
	assert.InDelta(t, 9.0, added[0].Count, 1e-9)
	assert.Equal(t, "cup", added[0].Unit)

	w = env.do(http.MethodPost, "/api/list", sess.Token, `{"ingredient":"basil"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	basil := decodeData[model.ListItem](t, w)
	assert.Equal(t, 1.0, basil.Count)
	assert.NotEmpty(t, basil.ID)

	w = env.do(http.MethodPatch, "/api/list/"+basil.ID, sess.Token, `{"count":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, decodeData[model.ListItem](t, w).Count)

	w = env.do(http.MethodDelete, "/api/list/"+added[1].ID, sess.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/api/list", sess.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeData[dto.ListResponse](t, w).Items
	require.Len(t, items, 5)
	assert.Equal(t, added[0].ID, items[0].ID)
	assert.Equal(t, basil.ID, items[4].ID)
	assert.Equal(t, 3.0, items[4].Count)

	errorCases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "missing ingredient", method: http.MethodPost, path: "/api/list", body: `{"count":1}`, wantStatus: http.StatusBadRequest},
		{name: "negative count", method: http.MethodPost, path: "/api/list", body: `{"ingredient":"x","count":-1}`, wantStatus: http.StatusBadRequest},
		{name: "update without count", method: http.MethodPatch, path: "/api/list/" + basil.ID, body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "update unknown item", method: http.MethodPatch, path: "/api/list/nope", body: `{"count":1}`, wantStatus: http.StatusNotFound},
		{name: "delete unknown item", method: http.MethodDelete, path: "/api/list/nope", wantStatus: http.StatusNotFound},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			var body interface{}
			if tt.body != "" {
				body = tt.body
			}
			w := env.do(tt.method, tt.path, sess.Token, body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLikes(t *testing.T) {
	env := newTestEnv(t)
	env.source.On("GetRecipe", mock.Anything, "47746").Return(rawPizza(), nil)
	sess := env.newSession(t)

	w := env.do(http.MethodPost, "/api/likes/toggle", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no recipe loaded yet")

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/recipes/47746", sess.Token, nil).Code)

	w = env.do(http.MethodPost, "/api/likes/toggle", sess.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	toggled := decodeData[dto.ToggleLikeResponse](t, w)
	assert.True(t, toggled.Liked)
	assert.Equal(t, 1, toggled.Count)
	assert.Equal(t, "47746", toggled.Like.ID)

	w = env.do(http.MethodGet, "/api/recipe", sess.Token, nil)
	assert.True(t, decodeData[dto.RecipeResponse](t, w).Liked)

	w = env.do(http.MethodGet, "/api/likes", sess.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	likes := decodeData[dto.LikesResponse](t, w)
	assert.Equal(t, 1, likes.Count)
	require.Len(t, likes.Likes, 1)
	assert.Equal(t, "Best Pizza Dough Ever", likes.Likes[0].Title)

	stored, err := env.kv.Get(t.Context(), store.LikesKey(sess.ClientID))
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"id":"47746"`)

	w = env.do(http.MethodDelete, "/api/likes/47746", sess.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodDelete, "/api/likes/47746", sess.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/likes", sess.Token, nil)
	assert.Equal(t, 0, decodeData[dto.LikesResponse](t, w).Count)
}

func TestLikes_StorageFailure(t *testing.T) {
	kv := new(mocks.MockKV)
	kv.On("Get", mock.Anything, mock.Anything).Return(nil, store.ErrNotFound)
	kv.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	env := newTestEnvWithKV(t, kv)
	env.source.On("GetRecipe", mock.Anything, "47746").Return(rawPizza(), nil)
	sess := env.newSession(t)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/recipes/47746", sess.Token, nil).Code)

	w := env.do(http.MethodPost, "/api/likes/toggle", sess.Token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = env.do(http.MethodGet, "/api/likes", sess.Token, nil)
	assert.Equal(t, 0, decodeData[dto.LikesResponse](t, w).Count)
}

func TestSession_RestoreFailure(t *testing.T) {
	kv := new(mocks.MockKV)
	kv.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	env := newTestEnvWithKV(t, kv)
	sess := env.newSession(t)

	w := env.do(http.MethodGet, "/api/likes", sess.Token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseIngredients(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		want       []model.Ingredient
	}{
		{
			name:       "mixed lines",
			body:       `{"lines":["2 cups flour","1-1/2 tablespoons olive oil","Salt to taste"]}`,
			wantStatus: http.StatusOK,
			want: []model.Ingredient{
				{Count: 2, Unit: "cup", Ingredient: "flour"},
				{Count: 1.5, Unit: "tbsp", Ingredient: "olive oil"},
				{Count: 1, Unit: "", Ingredient: "salt to taste"},
			},
		},
		{
			name:       "overflowing quantities fall back to one",
			body:       fmt.Sprintf(`{"lines":["%[1]s cups flour","%[1]s/%[1]s cup sugar"]}`, strings.Repeat("9", 400)),
			wantStatus: http.StatusOK,
			want: []model.Ingredient{
				{Count: 1, Unit: "cup", Ingredient: "flour"},
				{Count: 1, Unit: "cup", Ingredient: "sugar"},
			},
		},
		{
			name:       "empty list",
			body:       `{"lines":[]}`,
			wantStatus: http.StatusOK,
			want:       []model.Ingredient{},
		},
		{
			name:       "missing lines",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       `lines`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/ingredients/parse", "", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.want, decodeData[dto.IngredientsResponse](t, w).Ingredients)
			}
		})
	}
}

func TestScaleIngredients(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCounts []float64
	}{
		{
			name:       "scale up",
			body:       `{"ingredients":[{"count":2,"unit":"cup","ingredient":"flour"},{"count":0.5,"unit":"tsp","ingredient":"salt"}],"from":4,"to":6}`,
			wantStatus: http.StatusOK,
			wantCounts: []float64{3, 0.75},
		},
		{
			name:       "zero from",
			body:       `{"ingredients":[],"from":0,"to":6}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero to",
			body:       `{"ingredients":[],"from":4,"to":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative count",
			body:       `{"ingredients":[{"count":-3,"unit":"cup","ingredient":"flour"}],"from":1,"to":2}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "result too large to represent",
			body:       `{"ingredients":[{"count":1e308,"unit":"cup","ingredient":"flour"}],"from":1,"to":10}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/ingredients/scale", "", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			scaled := decodeData[dto.IngredientsResponse](t, w).Ingredients
			require.Len(t, scaled, len(tt.wantCounts))
			for i, want := range tt.wantCounts {
				assert.InDelta(t, want, scaled[i].Count, 1e-9)
			}
		})
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: dto.ErrInvalidServings, wantStatus: http.StatusBadRequest},
		{name: "empty query", err: service.ErrEmptyQuery, wantStatus: http.StatusBadRequest},
		{name: "invalid count", err: model.ErrInvalidCount, wantStatus: http.StatusBadRequest},
		{name: "count out of range", err: model.ErrCountOutOfRange, wantStatus: http.StatusBadRequest},
		{name: "no recipe", err: session.ErrNoActiveRecipe, wantStatus: http.StatusNotFound},
		{name: "list item", err: model.ErrListItemNotFound, wantStatus: http.StatusNotFound},
		{name: "stale", err: session.ErrStaleResult, wantStatus: http.StatusConflict},
		{name: "storage", err: service.ErrStorage, wantStatus: http.StatusServiceUnavailable},
		{name: "circuit open", err: fmt.Errorf("search: %w", circuitbreaker.ErrCircuitOpen), wantStatus: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("search: %w", context.DeadlineExceeded), wantStatus: http.StatusGatewayTimeout},
		{name: "upstream 404", err: &forkify.NetworkError{StatusCode: 404}, wantStatus: http.StatusNotFound},
		{name: "upstream 500", err: &forkify.NetworkError{StatusCode: 500}, wantStatus: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, key := errorStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, key)
		})
	}
}
