// internal/pricing/tickets_test.go
package pricing

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketPrice_AnswerBox(t *testing.T) {
	engine := newTestEngine(t, stubProvider(`{}`, `{"answer_box":{"price":"$32.50"}}`))

	price := engine.ticketPrice(context.Background(), "Sigiriya Rock")
	assert.Equal(t, 32.50, price)
}

func TestTicketPrice_KnowledgeGraphFallback(t *testing.T) {
	engine := newTestEngine(t, stubProvider(`{}`, `{
		"answer_box":{"snippet":"Opening hours 8am to 5pm"},
		"knowledge_graph":{"title":"National Museum","tickets_admission":"LKR 1500"}
	}`))

	price := engine.ticketPrice(context.Background(), "National Museum")
	assert.Equal(t, 1500.0, price)
}

func TestTicketPrice_NothingUsable(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty result", `{}`},
		{"answer box without price", `{"answer_box":{"answer":"varies by season"}}`},
		{"free admission", `{"knowledge_graph":{"tickets_admission":"Free"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, stubProvider(`{}`, tt.response))
			assert.Equal(t, 0.0, engine.ticketPrice(context.Background(), "Gregory Lake"))
		})
	}
}

func TestTicketPrice_LookupFailure(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Equal(t, 0.0, engine.ticketPrice(context.Background(), "Nine Arches Bridge"))
}

func TestTicketPrice_QueryShape(t *testing.T) {
	var gotEngine, gotQuery string

	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		gotEngine = r.URL.Query().Get("engine")
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"answer_box":{"price":"$10"}}`)
	})

	engine.ticketPrice(context.Background(), "Temple of the Tooth")
	assert.Equal(t, "google", gotEngine)
	assert.Equal(t, "Temple of the Tooth ticket price", gotQuery)
}
