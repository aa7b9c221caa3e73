package web

import (
	"strconv"

	"rdrive/db"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// recordActivity journals one drive operation. The journal is best-effort:
// failures are logged and the originating request proceeds untouched.
func recordActivity(op, path, detail string) {
	database, err := db.GetDB()
	if err != nil {
		logger.LogErr(err, "failed to get activity journal")
		return
	}
	if err := database.RecordEvent(op, path, detail); err != nil {
		logger.LogErr(err, "failed to record activity", "op", op, "path", path)
	}
}

// activityHandler returns recent journal entries as JSON
func activityHandler(c rweb.Context) error {
	limit := 50
	if raw := c.Request().QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	database, err := db.GetDB()
	if err != nil {
		c.Response().SetStatus(500)
		return c.WriteJSON(map[string]string{"error": "activity journal unavailable"})
	}

	events, err := database.RecentEvents(limit)
	if err != nil {
		logger.LogErr(err, "failed to read activity journal")
		c.Response().SetStatus(500)
		return c.WriteJSON(map[string]string{"error": "activity journal unavailable"})
	}

	return c.WriteJSON(map[string]any{
		"events": events,
		"count":  len(events),
	})
}

// appInfoHandler returns application information
func appInfoHandler(c rweb.Context) error {
	return c.WriteJSON(map[string]any{
		"name":    "rdrive",
		"version": "0.1.0",
		"status":  "ok",
		"root":    drv.Root(),
	})
}
