// Package main is the entry point for the recipe-service application.
//
// @title           Recipe Service API
// @version         1.0.0
// @description     Recipe lookup service backed by the forkify recipe API.
//
//	Search recipes, view them with scaled servings, build a shopping list and keep liked recipes across restarts.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/recipe-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token from POST /api/sessions, sent as "Bearer <token>".
//
// @tag.name        Sessions
// @tag.description Client session operations
//
// @tag.name        Search
// @tag.description Recipe search and result pages
//
// @tag.name        Recipes
// @tag.description Recipe details and servings
//
// @tag.name        List
// @tag.description Shopping list operations
//
// @tag.name        Likes
// @tag.description Liked recipes
//
// @tag.name        Ingredients
// @tag.description Stateless ingredient parsing and scaling
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/recipe-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
