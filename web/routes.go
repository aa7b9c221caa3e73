package web

import (
	"github.com/rohanthewiz/rweb"
)

// SetupRoutes configures all HTTP routes for the server. Static API routes
// come first; the remaining patterns treat the whole URL path as a
// drive-relative path, validated by the path guard in each handler.
func SetupRoutes(s *rweb.Server) {
	// API endpoints
	s.Get("/api/app", appInfoHandler)
	s.Get("/api/activity", activityHandler)

	// Recursive name search across the drive
	s.Post("/", queryHandler)

	// Browse: directory listing (page, fragment, or JSON) or raw file bytes.
	// Drive paths nest arbitrarily deep, so these use the wildcard form.
	s.Get("/", browseHandler)
	s.Get("/*path", browseHandler)

	// Mutations: create directory or upload (PUT), delete (DELETE)
	s.Put("/", putHandler)
	s.Put("/*path", putHandler)
	s.Delete("/*path", deleteHandler)
}
