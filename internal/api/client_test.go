// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/forkify/pkg/types"
)

const samplePizzaJSON = `{
  "status": "success",
  "data": {
    "recipe": {
      "publisher": "My Baking Addiction",
      "ingredients": [
        {"quantity": 1, "unit": "", "description": "tbsp. canola or olive oil"},
        {"quantity": 0.5, "unit": "cup", "description": "chopped sweet onion"},
        {"quantity": null, "unit": "", "description": "salt and pepper to taste"}
      ],
      "source_url": "http://www.mybakingaddiction.com/spicy-chicken-and-pepper-jack-pizza-recipe/",
      "image_url": "http://forkify-api.herokuapp.com/images/FlatBread21of1a180.jpg",
      "title": "Spicy Chicken and Pepper Jack Pizza",
      "servings": 4,
      "cooking_time": 45,
      "id": "5ed6604591c37cdc054bc886"
    }
  }
}`

const sampleSearchJSON = `{
  "status": "success",
  "results": 2,
  "data": {
    "recipes": [
      {"publisher": "Closet Cooking", "image_url": "http://x/1.jpg", "title": "Pizza Dip", "id": "664c8f193e7aa067e94e8297"},
      {"publisher": "101 Cookbooks", "image_url": "http://x/2.jpg", "title": "Best Pizza Dough Ever", "id": "5ed6604591c37cdc054bcac4", "key": "abc"}
    ]
  }
}`

func testClient(ts *httptest.Server) *Client {
	c := New(types.HTTPConfig{BaseURL: ts.URL + "/recipes", APIKey: "test-key", Timeout: time.Second}, nil)
	c.HTTP = ts.Client()
	return c
}

func TestGetRecipe_Normalizes(t *testing.T) {
	var gotPath, gotKey, gotRequestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotRequestID = r.Header.Get("X-Request-ID")
		fmt.Fprint(w, samplePizzaJSON)
	}))
	defer ts.Close()

	r, err := testClient(ts).GetRecipe(context.Background(), "5ed6604591c37cdc054bc886")
	require.NoError(t, err)

	assert.Equal(t, "/recipes/5ed6604591c37cdc054bc886", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.NotEmpty(t, gotRequestID)

	assert.Equal(t, "5ed6604591c37cdc054bc886", r.ID)
	assert.Equal(t, "Spicy Chicken and Pepper Jack Pizza", r.Title)
	assert.Equal(t, "My Baking Addiction", r.Publisher)
	assert.Equal(t, "http://forkify-api.herokuapp.com/images/FlatBread21of1a180.jpg", r.ImageURL)
	assert.Contains(t, r.SourceURL, "mybakingaddiction.com")
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, 45, r.CookingTime)
	require.Len(t, r.Ingredients, 3)
	require.NotNil(t, r.Ingredients[1].Quantity)
	assert.Equal(t, 0.5, *r.Ingredients[1].Quantity)
	assert.Equal(t, "cup", r.Ingredients[1].Unit)
	assert.Nil(t, r.Ingredients[2].Quantity)
	assert.False(t, r.Bookmarked)
	assert.Empty(t, r.Key)
}

func TestGetRecipe_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad id is rejected with 400", http.StatusBadRequest, `{"status":"fail","message":"Invalid _id: bad-id"}`, types.ErrNotFound},
		{"missing recipe", http.StatusNotFound, `{"status":"fail","message":"not found"}`, types.ErrNotFound},
		{"server failure", http.StatusInternalServerError, `oops`, types.ErrNetwork},
		{"malformed body", http.StatusOK, `{"status":`, types.ErrParse},
		{"envelope without recipe", http.StatusOK, `{"status":"success","data":{}}`, types.ErrParse},
		{"2xx with failed envelope", http.StatusOK, `{"status":"fail","message":"quota exceeded"}`, types.ErrNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			_, err := testClient(ts).GetRecipe(context.Background(), "bad-id")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetRecipe_StatusErrorCarriesMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"status":"fail","message":"Invalid _id: bad-id"}`)
	}))
	defer ts.Close()

	_, err := testClient(ts).GetRecipe(context.Background(), "bad-id")
	var serr *types.StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.StatusCode)
	assert.Equal(t, "Invalid _id: bad-id", serr.Message)
}

func TestGetRecipe_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		fmt.Fprint(w, samplePizzaJSON)
	}))
	defer ts.Close()

	c := testClient(ts)
	c.Config.Timeout = 20 * time.Millisecond

	_, err := c.GetRecipe(context.Background(), "5ed6604591c37cdc054bc886")
	assert.ErrorIs(t, err, types.ErrTimeout)
}

func TestSearchRecipes(t *testing.T) {
	var gotSearch string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		fmt.Fprint(w, sampleSearchJSON)
	}))
	defer ts.Close()

	results, err := testClient(ts).SearchRecipes(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Equal(t, "pizza", gotSearch)
	require.Len(t, results, 2)
	assert.Equal(t, types.SearchResult{
		ID: "664c8f193e7aa067e94e8297", Title: "Pizza Dip", Publisher: "Closet Cooking", ImageURL: "http://x/1.jpg",
	}, results[0])
	assert.Equal(t, "abc", results[1].Key)
}

func TestSearchRecipes_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"success","results":0,"data":{"recipes":[]}}`)
	}))
	defer ts.Close()

	results, err := testClient(ts).SearchRecipes(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCreateRecipe_Denormalizes(t *testing.T) {
	var gotMethod, gotContentType string
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &got)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"status":"success","data":{"recipe":{
			"id":"new-1","title":"Rice Bowl","publisher":"me","source_url":"http://s","image_url":"http://i",
			"servings":2,"cooking_time":20,"key":"test-key",
			"ingredients":[{"quantity":0.5,"unit":"kg","description":"Rice"}]}}}`)
	}))
	defer ts.Close()

	q := 0.5
	in := &types.Recipe{
		ID: "ignored", Title: "Rice Bowl", Publisher: "me", SourceURL: "http://s", ImageURL: "http://i",
		Servings: 2, CookingTime: 20, Bookmarked: true,
		Ingredients: []types.Ingredient{{Quantity: &q, Unit: "kg", Description: "Rice"}},
	}

	out, err := testClient(ts).CreateRecipe(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "http://s", got["source_url"])
	assert.Equal(t, "http://i", got["image_url"])
	assert.EqualValues(t, 20, got["cooking_time"])
	assert.NotContains(t, got, "id")
	assert.NotContains(t, got, "bookmarked")

	assert.Equal(t, "new-1", out.ID)
	assert.Equal(t, "test-key", out.Key)
	require.Len(t, out.Ingredients, 1)
	assert.Equal(t, 0.5, *out.Ingredients[0].Quantity)
}

func TestEndpoint(t *testing.T) {
	c := New(types.HTTPConfig{BaseURL: "https://api.example.com/recipes/"}, nil)
	assert.Equal(t, "https://api.example.com/recipes/abc", c.endpoint("abc", nil))

	c.Config.APIKey = "k"
	assert.Equal(t, "https://api.example.com/recipes?key=k&search=pizza", c.endpoint("", map[string][]string{"search": {"pizza"}}))
}
