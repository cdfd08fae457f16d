package models

// HubEntry is a card on the wiki tools menu
type HubEntry struct {
	ID          string
	Title       string
	Description string
	Available   bool
	URL         string
}

// HubEntries returns the tools listed on the wiki menu, in display order
func HubEntries() []HubEntry {
	return []HubEntry{
		{
			ID:          "drill-calculator",
			Title:       "Mineshaft Drill Calculator",
			Description: "Calculate drill depths, resource yields, and optimal configurations for the Mineshaft Drill",
			Available:   true,
			URL:         "./calculator.html",
		},
		{
			ID:          "production-calculator",
			Title:       "Production Calculator",
			Description: "Calculate ratios and optimal production chain(s) for every item or fluid",
			Available:   false,
		},
	}
}
