package model

// DefaultResultsPerPage is the page size used when none is configured.
const DefaultResultsPerPage = 10

// RecipeSummary is a single search hit.
//
// @Description Search result entry
type RecipeSummary struct {
	ID       string `json:"id" example:"47746"`
	Title    string `json:"title" example:"Best Pizza Dough Ever"`
	Author   string `json:"author" example:"101 Cookbooks"`
	ImageURL string `json:"image_url" example:"http://forkify-api.herokuapp.com/images/best_pizza_dough_recipe1b20.jpg"`
}

// ResultsPage is one page of search results.
//
// @Description A page of search results with navigation metadata
type ResultsPage struct {
	Query      string          `json:"query" example:"pizza"`
	Page       int             `json:"page" example:"1"`
	PerPage    int             `json:"per_page" example:"10"`
	TotalPages int             `json:"total_pages" example:"3"`
	Total      int             `json:"total" example:"28"`
	HasPrev    bool            `json:"has_prev" example:"false"`
	HasNext    bool            `json:"has_next" example:"true"`
	Results    []RecipeSummary `json:"results"`
}

// Paginate slices results into the requested page. Pages are 1-based and
// clamped into the valid range; an empty result set yields page 1 of 0.
func Paginate(query string, results []RecipeSummary, page, perPage int) ResultsPage {
	if perPage <= 0 {
		perPage = DefaultResultsPerPage
	}

	total := len(results)
	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	// page <= lastPage keeps start within [0, total].
	start := (page - 1) * perPage
	end := total
	if total-start > perPage {
		end = start + perPage
	}

	pageResults := make([]RecipeSummary, end-start)
	copy(pageResults, results[start:end])

	return ResultsPage{
		Query:      query,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Results:    pageResults,
	}
}
