// README: Slot extraction tests.
package dialog

import (
	"context"
	"testing"
	"time"

	"hestia/internal/modules/catalog"
)

func testStore() *catalog.Service {
	return catalog.NewService(catalog.NewStore(catalog.DemoOrders(), catalog.DemoNotes()))
}

func mustTime(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := time.Parse(catalog.TimeLayout, v)
	if err != nil {
		t.Fatalf("parse time %q: %v", v, err)
	}
	return ts
}

func TestExtract(t *testing.T) {
	store := testStore()
	e := NewExtractor(testIntentConfig(t).TimeTokens)
	ctx := context.Background()
	saturday := mustTime(t, "2023-11-02 14:00:00")

	cases := []struct {
		name      string
		utterance string
		intent    Intent
		wantID    string
		wantTime  time.Time
	}{
		{
			name:      "modify with id and literal date",
			utterance: "I want to modify order order_123 to 2023-11-02 14:00",
			intent:    IntentModifyOrder,
			wantID:    "order_123",
			wantTime:  saturday,
		},
		{
			name:      "modify with relative day token",
			utterance: "move order_123 to Saturday please",
			intent:    IntentModifyOrder,
			wantID:    "order_123",
			wantTime:  saturday,
		},
		{
			name:      "cancel binds id only",
			utterance: "I want to cancel order order_124",
			intent:    IntentCancelOrder,
			wantID:    "order_124",
		},
		{
			name:      "unknown id stays unbound",
			utterance: "modify order order_999 to Saturday",
			intent:    IntentModifyOrder,
			wantTime:  saturday,
		},
		{
			name:      "no slots in utterance",
			utterance: "I want to modify an order",
			intent:    IntentModifyOrder,
		},
		{
			name:      "confirm intents bind nothing from text",
			utterance: "confirm cancel order_123",
			intent:    IntentConfirmCancel,
		},
		{
			name:      "query intents bind nothing",
			utterance: "which orders do I have order_123",
			intent:    IntentQueryOrders,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ents, err := e.Extract(ctx, tc.utterance, tc.intent, store)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if ents.OrderID != tc.wantID {
				t.Errorf("OrderID = %q, want %q", ents.OrderID, tc.wantID)
			}
			if !ents.NewTime.Equal(tc.wantTime) {
				t.Errorf("NewTime = %v, want %v", ents.NewTime, tc.wantTime)
			}
		})
	}
}
