// internal/pricing/tickets.go
package pricing

import (
	"context"
	"fmt"
)

// ticketPrice looks up the per-person entry fee for an activity through
// general web search. The price is read from the first field that yields a
// number: the answer box, then the knowledge graph's tickets/admission entry.
// Lookup failures and missing fields both come back as 0, never an error.
func (e *Engine) ticketPrice(ctx context.Context, activityName string) float64 {
	query := fmt.Sprintf("%s ticket price", activityName)

	result, err := e.search.Search(ctx, "google", query, nil)
	if err != nil {
		e.logger.Warn("ticket lookup failed", map[string]interface{}{
			"activity": activityName,
			"error":    err.Error(),
		})
		return 0
	}

	if result.AnswerBox != nil {
		if price := parsePrice(result.AnswerBox.Price); price > 0 {
			return price
		}
	}
	if result.KnowledgeGraph != nil {
		if price := parsePrice(result.KnowledgeGraph.TicketsAdmission); price > 0 {
			return price
		}
	}
	return 0
}
