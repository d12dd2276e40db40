// Package docs SkateSpot Service API.
//
// Microservice for discovering and classifying skateboarding spots.
// Provides filtered and geospatial spot queries, photo-based spot
// classification with a deterministic fallback, a trick catalog with
// daily challenges, and user spot collections.
//
// Main capabilities:
// - Paginated spot listing with type, surface, difficulty, text and score filters
// - Radius search around a coordinate with per-spot distances
// - Spot photo analysis: type, difficulty, feature estimates and trick suggestions
// - Deterministic difficulty rating from measured obstacle features
// - User collections of favorite spots
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
