// README: Dialog core types: intents, slot entities, replies, and the store contract.
package dialog

import (
	"context"
	"time"

	"hestia/internal/modules/catalog"
)

// Intent is the closed set of things a user can ask for.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentQueryNotes      Intent = "query_notes"
	IntentQueryOrders     Intent = "query_orders"
	IntentModifyOrder     Intent = "modify_order_request"
	IntentCancelOrder     Intent = "cancel_order_request"
	IntentConfirmModify   Intent = "confirm_modify"
	IntentConfirmCancel   Intent = "confirm_cancel"
	IntentCancelOperation Intent = "cancel_operation"
	IntentUnknown         Intent = "unknown"
)

// Entities are the slot values pulled out of one utterance. Zero values mean
// unbound; the responder must then ask the user to disambiguate.
type Entities struct {
	OrderID string
	NewTime time.Time
}

// Usage mirrors the OpenAI usage block. The counts are rune counts of the
// input and output text; informational only, no semantic contract.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Reply is what one handled utterance produces.
type Reply struct {
	Text  string
	Usage Usage
}

// EntityStore is the catalog collaborator as the dialogue core consumes it.
// The core never keeps order or note copies across calls; every turn reads
// fresh state through this interface.
type EntityStore interface {
	ListOrders(ctx context.Context) ([]catalog.Order, error)
	FindOrder(ctx context.Context, id string) (catalog.Order, error)
	UpdateOrderTime(ctx context.Context, id string, t time.Time) (catalog.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListNotes(ctx context.Context, userID string, keywords []string) ([]catalog.ServiceNote, error)
	CheckModify(ctx context.Context, id string, t time.Time) (catalog.ModifyCheck, error)
}
