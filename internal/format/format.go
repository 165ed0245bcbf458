// Package format renders dates and category styles for view-ready records.
// The site audience is Ukrainian, so the labels are too.
package format

import (
	"fmt"
	"time"
)

// SuggestedCategories is the curated input affordance for the post form.
// Categories remain free-form text; anything outside this list is accepted.
var SuggestedCategories = []string{
	"Новини",
	"Політика",
	"Економіка",
	"Культура",
	"Спорт",
	"Технології",
	"Освіта",
	"Здоров'я",
	"Розваги",
	"Інше",
}

var categoryStyles = map[string]string{
	"Новини":     "border-blue-400/50 text-blue-300 bg-blue-500/10",
	"Політика":   "border-red-400/50 text-red-300 bg-red-500/10",
	"Економіка":  "border-green-400/50 text-green-300 bg-green-500/10",
	"Культура":   "border-purple-400/50 text-purple-300 bg-purple-500/10",
	"Спорт":      "border-orange-400/50 text-orange-300 bg-orange-500/10",
	"Технології": "border-cyan-400/50 text-cyan-300 bg-cyan-500/10",
	"Освіта":     "border-indigo-400/50 text-indigo-300 bg-indigo-500/10",
	"Здоров'я":   "border-pink-400/50 text-pink-300 bg-pink-500/10",
	"Розваги":    "border-yellow-400/50 text-yellow-300 bg-yellow-500/10",
	"Інше":       "border-gray-400/50 text-gray-300 bg-gray-500/10",
}

// CategoryColor maps a category to its display style. Unknown categories
// get the style of "Інше".
func CategoryColor(category string) string {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return categoryStyles["Інше"]
}

// Genitive case, as used after a day number.
var ukMonths = [...]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// RelativeDate renders t relative to now: "щойно" under a minute, then
// minutes, hours and days, and the full date once a week has passed.
func RelativeDate(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	if seconds < 60 {
		return "щойно"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d хв тому", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d год тому", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%d дн тому", days)
	}

	return FullDate(t)
}

// FullDate renders t like "1 вересня 2026 р.".
func FullDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d р.", t.Day(), ukMonths[t.Month()-1], t.Year())
}
