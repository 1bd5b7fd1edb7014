// Package service contains the business logic for the recipe service.
package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Parser outcomes, used as metric labels.
const (
	ParseOutcomeUnit          = "unit"
	ParseOutcomeUnitFallback  = "unit_fallback"
	ParseOutcomeLeadingNumber = "leading_number"
	ParseOutcomePlain         = "plain"
)

var (
	// unitNormalizer rewrites long unit names to their short form. Longer
	// spellings are listed first so they win over their prefixes.
	unitNormalizer = strings.NewReplacer(
		"tablespoons", "tbsp",
		"tablespoon", "tbsp",
		"ounces", "oz",
		"ounce", "oz",
		"teaspoons", "tsp",
		"teaspoon", "tsp",
		"cups", "cup",
		"pounds", "pound",
	)

	parentheticalPattern = regexp.MustCompile(` *\([^)]*\) *`)

	// knownUnits is the unit whitelist: every short form plus kg and g.
	knownUnits = map[string]struct{}{
		"tbsp":  {},
		"oz":    {},
		"tsp":   {},
		"cup":   {},
		"pound": {},
		"kg":    {},
		"g":     {},
	}
)

// IngredientParser turns raw ingredient lines into structured ingredients.
type IngredientParser interface {
	Parse(line string) model.Ingredient
	ParseAll(lines []string) []model.Ingredient
}

// ingredientParser is the default IngredientParser.
type ingredientParser struct{}

// NewIngredientParser returns the default ingredient parser.
func NewIngredientParser() IngredientParser {
	return ingredientParser{}
}

// Parse implements IngredientParser.
func (ingredientParser) Parse(line string) model.Ingredient {
	return ParseIngredient(line)
}

// ParseAll implements IngredientParser.
func (ingredientParser) ParseAll(lines []string) []model.Ingredient {
	return ParseIngredients(lines)
}

// ParseIngredients parses every line, preserving order.
func ParseIngredients(lines []string) []model.Ingredient {
	parsed := make([]model.Ingredient, len(lines))
	for i, line := range lines {
		parsed[i] = ParseIngredient(line)
	}
	return parsed
}

// ParseIngredient parses a single ingredient line. It never fails: lines it
// cannot interpret come back with count 1, no unit and the normalized text.
func ParseIngredient(line string) model.Ingredient {
	ing, outcome := parseIngredient(line)
	metrics.RecordIngredientParsed(outcome)
	if outcome == ParseOutcomeUnitFallback {
		log.Debug().Str("line", line).Msg("Unrecognized quantity, defaulting count to 1")
	}
	return ing
}

func parseIngredient(line string) (model.Ingredient, string) {
	normalized := unitNormalizer.Replace(strings.ToLower(line))
	normalized = parentheticalPattern.ReplaceAllString(normalized, " ")
	tokens := strings.Fields(normalized)

	unitIndex := -1
	for i, tok := range tokens {
		if _, ok := knownUnits[tok]; ok {
			unitIndex = i
			break
		}
	}

	if unitIndex >= 0 {
		ing := model.Ingredient{
			Count:      1,
			Unit:       tokens[unitIndex],
			Ingredient: strings.Join(tokens[unitIndex+1:], " "),
		}
		count, ok := evaluateCountTokens(tokens[:unitIndex])
		if !ok {
			return ing, ParseOutcomeUnitFallback
		}
		ing.Count = count
		return ing, ParseOutcomeUnit
	}

	if len(tokens) > 0 {
		if n, ok := leadingInt(tokens[0]); ok {
			return model.Ingredient{
				Count:      float64(n),
				Ingredient: strings.Join(tokens[1:], " "),
			}, ParseOutcomeLeadingNumber
		}
	}

	return model.Ingredient{
		Count:      1,
		Ingredient: strings.Join(tokens, " "),
	}, ParseOutcomePlain
}

// evaluateCountTokens evaluates the tokens in front of a unit. A single token
// may use "-" as a mixed-number separator ("1-1/2"); several tokens are summed.
func evaluateCountTokens(tokens []string) (float64, bool) {
	var expr string
	switch len(tokens) {
	case 0:
		return 0, false
	case 1:
		expr = strings.Replace(tokens[0], "-", "+", 1)
	default:
		expr = strings.Join(tokens, "+")
	}
	return EvaluateQuantity(expr)
}

// leadingInt returns the positive integer formed by the leading digits of tok.
func leadingInt(tok string) (int, bool) {
	end := 0
	for end < len(tok) && isDigit(tok[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(tok[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
