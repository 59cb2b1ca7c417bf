// README: Catalog aggregates: service orders and service notes.
package catalog

import (
	"errors"
	"time"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

// Order is a booked home-service visit. ServiceTime is the only field the
// dialogue flow mutates; a confirmed cancellation removes the whole record.
type Order struct {
	ID            string
	ServiceTime   time.Time
	ServiceType   string
	ServicePerson string
	Status        Status
}

// ServiceNote is a read-only record written by staff after a visit.
type ServiceNote struct {
	ID            string
	UserID        string
	ServiceDate   time.Time
	ServicePerson string
	Content       string
}

// ModifyCheck is the result of an availability check for a reschedule.
type ModifyCheck struct {
	OK             bool
	Message        string
	AvailableSlots []time.Time
}

var (
	ErrNotFound   = errors.New("order not found")
	ErrBadRequest = errors.New("bad request")
)

// TimeLayout is the wire/display format for service timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the display format for note dates.
const DateLayout = "2006-01-02"
