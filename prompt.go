// System prompt assembly for weather-aware conversations.
package main

import (
	"strings"
)

// BuildSystemPrompt constructs the system prompt from the place table.
func BuildSystemPrompt(places *PlaceTable) string {
	var sb strings.Builder
	sb.WriteString("You are a weather assistant for Japanese cities. When the user asks about the weather, first call get_place_code to resolve the place name to a forecast area code, then call get_forecast with that code, and answer from the returned document in the user's language.")
	sb.WriteString("\nIf a place is not supported, choose the nearest supported place and say which one you used.")
	sb.WriteString("\n\nSupported places: ")
	sb.WriteString(strings.Join(places.Names(), ", "))

	return strings.TrimSpace(sb.String())
}
