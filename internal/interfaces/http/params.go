package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryDate lee un parámetro YYYY-MM-DD opcional. Ausente devuelve (nil, true).
func queryDate(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// dateRange lee desde/hasta; si falta uno se usa defDays días hacia atrás o hoy.
func dateRange(c *fiber.Ctx, defDays int) (time.Time, time.Time, bool) {
	desde, ok := queryDate(c, "desde")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	hasta, ok := queryDate(c, "hasta")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	now := time.Now()
	end := now
	if hasta != nil {
		end = *hasta
	}
	start := end.AddDate(0, 0, -defDays)
	if desde != nil {
		start = *desde
	}
	return start, end, true
}
