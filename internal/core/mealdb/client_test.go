package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		MealDB: config.MealDBConfig{
			BaseURL: server.URL,
			APIKey:  "1",
			Timeout: 5 * time.Second,
		},
	}
	return NewClient(cfg, nil), server
}

func TestSearchByIngredient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/filter.php", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "chicken" {
			t.Fatalf("expected query i=chicken, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"meals":[
			{"idMeal":"52940","strMeal":"Brown Stew Chicken","strMealThumb":"https://example.com/1.jpg"},
			{"idMeal":"52846","strMeal":"Chicken Basquaise","strMealThumb":"https://example.com/2.jpg"}
		]}`))
	})

	client, _ := newTestClient(t, mux)
	results, err := client.SearchByIngredient(context.Background(), "chicken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(results))
	}
	if results[0].ID != "52940" || results[0].Title != "Brown Stew Chicken" {
		t.Fatalf("unexpected first summary: %+v", results[0])
	}
}

func TestSearchByIngredientNoMatches(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/filter.php", func(w http.ResponseWriter, r *http.Request) {
		// 查無結果時資料來源回傳 meals: null
		w.Write([]byte(`{"meals":null}`))
	})

	client, _ := newTestClient(t, mux)
	results, err := client.SearchByIngredient(context.Background(), "unobtainium")
	if err != nil {
		t.Fatalf("no matches should not be an error, got: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestGetByIDFlattensIngredients(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":[{
			"idMeal":"52772",
			"strMeal":"Teriyaki Chicken Casserole",
			"strCategory":"Chicken",
			"strArea":"Japanese",
			"strInstructions":"Preheat oven to 350.\nCook the chicken.",
			"strMealThumb":"https://example.com/3.jpg",
			"strTags":"Meat,Casserole",
			"strYoutube":"https://youtube.com/watch?v=abc",
			"strSource":null,
			"strIngredient1":"soy sauce",
			"strIngredient2":"water",
			"strIngredient3":"",
			"strIngredient4":null,
			"strIngredient5":"chicken breasts",
			"strMeasure1":"3/4 cup",
			"strMeasure2":"1/2 cup",
			"strMeasure3":"",
			"strMeasure4":null,
			"strMeasure5":" 2 "
		}]}`))
	})

	client, _ := newTestClient(t, mux)
	candidate, err := client.GetByID(context.Background(), "52772")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if candidate.ID != "52772" || candidate.Category != "Chicken" || candidate.Area != "Japanese" {
		t.Fatalf("unexpected candidate fields: %+v", candidate)
	}
	// 空白與 null 欄位略過，順序保留
	if len(candidate.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %v", candidate.Ingredients)
	}
	if candidate.Ingredients[0].Name != "soy sauce" || candidate.Ingredients[0].Measure != "3/4 cup" {
		t.Fatalf("unexpected first ingredient: %+v", candidate.Ingredients[0])
	}
	if candidate.Ingredients[2].Name != "chicken breasts" || candidate.Ingredients[2].Measure != "2" {
		t.Fatalf("expected trimmed measure, got %+v", candidate.Ingredients[2])
	}
	if len(candidate.Tags) != 2 || candidate.Tags[0] != "Meat" || candidate.Tags[1] != "Casserole" {
		t.Fatalf("unexpected tags: %v", candidate.Tags)
	}
	if candidate.SourceURL != "" {
		t.Fatalf("null source should map to empty string, got %q", candidate.SourceURL)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	client, _ := newTestClient(t, mux)
	_, err := client.GetByID(context.Background(), "nonexistent-id")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !common.IsRecipeNotFound(err) {
		t.Fatalf("expected RECIPE_NOT_FOUND, got %v", err)
	}
}

func TestGetByIDDecodeError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	client, _ := newTestClient(t, mux)
	_, err := client.GetByID(context.Background(), "52772")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !common.IsDecodeError(err) {
		t.Fatalf("expected DECODE_ERROR, got %v", err)
	}
}

func TestGetByIDServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1/lookup.php", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, mux)
	_, err := client.GetByID(context.Background(), "52772")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !common.IsNetworkError(err) {
		t.Fatalf("expected NETWORK_ERROR, got %v", err)
	}
}

func TestSearchByIngredientNetworkError(t *testing.T) {
	cfg := &config.Config{
		MealDB: config.MealDBConfig{
			// 無人監聽的位址
			BaseURL: "http://127.0.0.1:1",
			APIKey:  "1",
			Timeout: 500 * time.Millisecond,
		},
	}
	client := NewClient(cfg, nil)

	_, err := client.SearchByIngredient(context.Background(), "chicken")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !common.IsNetworkError(err) {
		t.Fatalf("expected NETWORK_ERROR, got %v", err)
	}
}
