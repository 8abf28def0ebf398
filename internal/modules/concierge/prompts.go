package concierge

import (
	"fmt"
	"strconv"
	"strings"

	"swiftdrive/internal/domain"
)

const modelName = "gemini-3-flash-preview"

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func recommendationPrompt(criteria domain.SearchCriteria, cars []domain.Car) string {
	parts := make([]string, 0, len(cars))
	for _, c := range cars {
		parts = append(parts, fmt.Sprintf("%s %s (%s, $%s/day)", c.Brand, c.Name, c.Type, price(c.PricePerDay)))
	}
	return fmt.Sprintf(
		"Based on a rental location in %q from %s to %s, which of these cars would you recommend and why? Keep it brief and persuasive. Cars: %s",
		criteria.Location, criteria.PickupDate, criteria.ReturnDate, strings.Join(parts, ", "),
	)
}

func conciergeInstruction(cars []domain.Car) string {
	lines := make([]string, 0, len(cars))
	for _, c := range cars {
		lines = append(lines, fmt.Sprintf("%s %s - %s at $%s/day. Key features: %s",
			c.Brand, c.Name, c.Type, price(c.PricePerDay), strings.Join(c.Features, ", ")))
	}

	var b strings.Builder
	b.WriteString("You are SwiftAI, the premium concierge for SwiftDrive, a luxury car rental app.\n")
	b.WriteString("Users can browse cars, filter by price/type, and book them.\n")
	b.WriteString("Current available fleet:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nAnswer user questions professionally, helpfully, and with a touch of luxury.\n")
	b.WriteString("If they ask for suggestions, pick the best matching cars from the list above.\n")
	b.WriteString("If they ask about app features, tell them they can search, filter, and view 4-photo galleries (front, back, interior, exterior) for every car.")
	return b.String()
}
