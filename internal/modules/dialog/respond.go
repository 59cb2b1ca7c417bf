// README: Response generator; the Intent × pending-action state machine.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hestia/internal/modules/catalog"
)

const (
	replyGreeting           = "Hello! I am Hestia, your home-services assistant. How can I help you today?"
	replyNoNotes            = "No matching service notes were found."
	replyNoOrders           = "You currently have no orders."
	replyAskTime            = "Please tell me the new service time for the order."
	replyNothingToConfirm   = "There is no pending operation to confirm."
	replyOperationCancelled = "The operation has been cancelled."
	replyStaleConfirmation  = "Sorry, the operation failed: the order no longer exists."
	replyUnknown            = "Sorry, I didn't quite understand. You can ask about your service notes, " +
		"check your orders, modify a service time, or cancel an order."
)

// Input is everything one turn needs: the classified intent, the extracted
// entities, the session's pending action (nil when absent), and the raw
// utterance for note keyword matching.
type Input struct {
	Intent    Intent
	Entities  Entities
	Pending   *PendingAction
	UserID    string
	Utterance string
}

// Result carries the reply text and the session transition. Propose replaces
// the pending action; Clear drops it; neither set leaves it untouched.
type Result struct {
	Text    string
	Propose *PendingAction
	Clear   bool
}

// Responder turns (intent, entities, pending) into a reply and a transition.
// The store is mutated in exactly one place per action kind, and only on
// confirmation, never on the initial request.
type Responder struct {
	store EntityStore
}

func NewResponder(store EntityStore) *Responder {
	return &Responder{store: store}
}

func (r *Responder) Respond(ctx context.Context, in Input) (Result, error) {
	switch in.Intent {
	case IntentGreeting:
		return Result{Text: replyGreeting}, nil
	case IntentQueryNotes:
		return r.queryNotes(ctx, in)
	case IntentQueryOrders:
		return r.queryOrders(ctx)
	case IntentModifyOrder:
		return r.modifyRequest(ctx, in)
	case IntentCancelOrder:
		return r.cancelRequest(ctx, in)
	case IntentConfirmModify:
		return r.confirmModify(ctx, in)
	case IntentConfirmCancel:
		return r.confirmCancel(ctx, in)
	case IntentCancelOperation:
		return Result{Text: replyOperationCancelled, Clear: true}, nil
	default:
		return Result{Text: replyUnknown}, nil
	}
}

func (r *Responder) queryNotes(ctx context.Context, in Input) (Result, error) {
	notes, err := r.store.ListNotes(ctx, in.UserID, strings.Fields(in.Utterance))
	if err != nil {
		return Result{}, err
	}
	if len(notes) == 0 {
		return Result{Text: replyNoNotes}, nil
	}

	var b strings.Builder
	b.WriteString("Found the following service notes:\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "- Service date: %s\n", n.ServiceDate.Format(catalog.DateLayout))
		fmt.Fprintf(&b, "  Service person: %s\n", n.ServicePerson)
		fmt.Fprintf(&b, "  Note: %s\n", truncate(n.Content, 100))
		fmt.Fprintf(&b, "  Details: [view details](%s)\n", n.ID)
	}
	b.WriteString("\n[view details] [back]")
	return Result{Text: b.String()}, nil
}

func (r *Responder) queryOrders(ctx context.Context) (Result, error) {
	orders, err := r.store.ListOrders(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(orders) == 0 {
		return Result{Text: replyNoOrders}, nil
	}

	var b strings.Builder
	b.WriteString("Here are your orders:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "- Order ID: %s\n", o.ID)
		fmt.Fprintf(&b, "  Service time: %s\n", o.ServiceTime.Format(catalog.TimeLayout))
		fmt.Fprintf(&b, "  Service type: %s\n", o.ServiceType)
		fmt.Fprintf(&b, "  Service person: %s\n", o.ServicePerson)
		fmt.Fprintf(&b, "  Status: %s\n", o.Status)
	}
	b.WriteString("\nYou can say \"modify order\" or \"cancel order\" to manage your orders.")
	return Result{Text: b.String()}, nil
}

func (r *Responder) modifyRequest(ctx context.Context, in Input) (Result, error) {
	if in.Entities.OrderID == "" {
		text, err := r.orderPicker(ctx, "Please tell me the order ID and the new service time.")
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text}, nil
	}
	if in.Entities.NewTime.IsZero() {
		return Result{Text: replyAskTime}, nil
	}

	check, err := r.store.CheckModify(ctx, in.Entities.OrderID, in.Entities.NewTime)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Result{Text: replyStaleConfirmation}, nil
		}
		return Result{}, err
	}
	if !check.OK {
		return Result{Text: fmt.Sprintf("Sorry, this order cannot be modified: %s", check.Message)}, nil
	}

	text := fmt.Sprintf(
		"I checked the order for you: %s\n\nDo you confirm changing order %s to %s?\n[confirm modify] [cancel operation]",
		check.Message, in.Entities.OrderID, in.Entities.NewTime.Format(catalog.TimeLayout),
	)
	return Result{
		Text:    text,
		Propose: &PendingAction{Kind: KindModifyOrder, OrderID: in.Entities.OrderID, NewTime: in.Entities.NewTime},
	}, nil
}

func (r *Responder) cancelRequest(ctx context.Context, in Input) (Result, error) {
	if in.Entities.OrderID == "" {
		text, err := r.orderPicker(ctx, "Please tell me the ID of the order you want to cancel.")
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text}, nil
	}

	text := fmt.Sprintf(
		"Are you sure you want to cancel order %s?\nCancellation fees may apply, please confirm.\n[confirm cancel] [cancel operation]",
		in.Entities.OrderID,
	)
	return Result{
		Text:    text,
		Propose: &PendingAction{Kind: KindCancelOrder, OrderID: in.Entities.OrderID},
	}, nil
}

// confirmModify applies the proposed reschedule. The pending action is the
// single source of truth for which order moves: an id mentioned in the
// confirmation utterance is ignored, and without a live proposal nothing is
// mutated at all.
func (r *Responder) confirmModify(ctx context.Context, in Input) (Result, error) {
	if in.Pending == nil || in.Pending.Kind != KindModifyOrder {
		return Result{Text: replyNothingToConfirm}, nil
	}

	updated, err := r.store.UpdateOrderTime(ctx, in.Pending.OrderID, in.Pending.NewTime)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			// Stale proposal: the order vanished since it was made. No retry.
			return Result{Text: replyStaleConfirmation, Clear: true}, nil
		}
		return Result{}, err
	}

	text := fmt.Sprintf("Order modified successfully! The new service time is %s.",
		updated.ServiceTime.Format(catalog.TimeLayout))
	return Result{Text: text, Clear: true}, nil
}

func (r *Responder) confirmCancel(ctx context.Context, in Input) (Result, error) {
	if in.Pending == nil || in.Pending.Kind != KindCancelOrder {
		return Result{Text: replyNothingToConfirm}, nil
	}

	if err := r.store.DeleteOrder(ctx, in.Pending.OrderID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Result{Text: replyStaleConfirmation, Clear: true}, nil
		}
		return Result{}, err
	}

	text := fmt.Sprintf("Order %s has been cancelled successfully!", in.Pending.OrderID)
	return Result{Text: text, Clear: true}, nil
}

// orderPicker lists the live orders briefly and appends an ask.
func (r *Responder) orderPicker(ctx context.Context, ask string) (string, error) {
	orders, err := r.store.ListOrders(ctx)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return replyNoOrders, nil
	}

	var b strings.Builder
	b.WriteString("Here are your orders:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "- Order ID: %s\n", o.ID)
		fmt.Fprintf(&b, "  Service time: %s\n", o.ServiceTime.Format(catalog.TimeLayout))
	}
	b.WriteString("\n")
	b.WriteString(ask)
	return b.String(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
