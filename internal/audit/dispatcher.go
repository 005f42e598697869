package audit

import "github.com/rs/zerolog/log"

// Audit actions recorded across the API.
const (
	ActionSaleCompleted     = "sale_completed"
	ActionAttendanceIn      = "attendance_check_in"
	ActionAttendanceOut     = "attendance_check_out"
	ActionCustomerCreated   = "customer_created"
	ActionCustomerUpdated   = "customer_updated"
	ActionCustomerDeleted   = "customer_deleted"
	ActionServiceCreated    = "service_created"
	ActionServiceUpdated    = "service_updated"
	ActionServiceDeleted    = "service_deleted"
	ActionUserCreated       = "user_created"
	ActionUserUpdated       = "user_updated"
	ActionUserDeleted       = "user_deleted"
	ActionNoteAdded         = "customer_note_added"
	ActionTransactionVoided = "transaction_cancelled"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks a request: a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
