package scheduling

import (
	"fmt"
	"time"

	"github.com/sudeal/Nokta-sub000/internal/domain"
)

// Action is an operation an actor can request on an appointment
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
)

// ParseAction converts a raw string into an Action
func ParseAction(raw string) (Action, bool) {
	switch a := Action(raw); a {
	case ActionAccept, ActionReject, ActionComplete, ActionDelete:
		return a, true
	default:
		return "", false
	}
}

// Transition describes the effect of a legal action on an appointment
type Transition struct {
	From   domain.AppointmentStatus
	To     domain.AppointmentStatus // empty when Delete is true
	Action Action
	Delete bool
	// RequiresConfirmation is set for destructive actions: they need a second explicit step
	RequiresConfirmation bool
}

type rule struct {
	transition Transition
	actors     []domain.ActorRole
}

var rules = []rule{
	{
		transition: Transition{From: domain.StatusPending, To: domain.StatusAccepted, Action: ActionAccept},
		actors:     []domain.ActorRole{domain.RoleBusiness},
	},
	{
		transition: Transition{From: domain.StatusPending, To: domain.StatusRejected, Action: ActionReject, RequiresConfirmation: true},
		actors:     []domain.ActorRole{domain.RoleBusiness},
	},
	{
		transition: Transition{From: domain.StatusAccepted, To: domain.StatusCompleted, Action: ActionComplete},
		actors:     []domain.ActorRole{domain.RoleBusiness},
	},
	{
		transition: Transition{From: domain.StatusAccepted, Action: ActionDelete, Delete: true, RequiresConfirmation: true},
		actors:     []domain.ActorRole{domain.RoleCustomer, domain.RoleBusiness},
	},
	{
		transition: Transition{From: domain.StatusRejected, Action: ActionDelete, Delete: true, RequiresConfirmation: true},
		actors:     []domain.ActorRole{domain.RoleBusiness},
	},
	{
		transition: Transition{From: domain.StatusCompleted, Action: ActionDelete, Delete: true, RequiresConfirmation: true},
		actors:     []domain.ActorRole{domain.RoleBusiness},
	},
}

// Resolve returns the transition for applying action to an appointment in status from
// on behalf of role. Unknown pairs yield ErrIllegalTransition.
func Resolve(from domain.AppointmentStatus, action Action, role domain.ActorRole) (Transition, error) {
	for _, r := range rules {
		if r.transition.From != from || r.transition.Action != action {
			continue
		}
		for _, allowed := range r.actors {
			if allowed == role {
				return r.transition, nil
			}
		}
		return Transition{}, fmt.Errorf("%w: %s cannot %s a %s appointment", ErrActorNotAllowed, role, action, from)
	}
	return Transition{}, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, action, from)
}

// Guard checks whether actor may perform action on appt at the moment now.
// Besides the status table it enforces ownership and the completion window:
// an appointment can be completed only on or after its calendar day.
func Guard(appt *domain.Appointment, action Action, actor *domain.Session, now time.Time) (Transition, error) {
	t, err := Resolve(appt.Status, action, actor.Role)
	if err != nil {
		return Transition{}, err
	}

	switch actor.Role {
	case domain.RoleBusiness:
		if !actor.OwnsBusiness(appt.BusinessID) {
			return Transition{}, fmt.Errorf("%w: business %s does not own appointment %s", ErrActorNotAllowed, actor.BusinessID, appt.ID)
		}
	case domain.RoleCustomer:
		if !appt.BelongsTo(actor.UserID) {
			return Transition{}, fmt.Errorf("%w: customer %s does not own appointment %s", ErrActorNotAllowed, actor.UserID, appt.ID)
		}
	}

	if action == ActionComplete && dayOf(appt.ScheduledAt).After(dayOf(now.In(appt.ScheduledAt.Location()))) {
		return Transition{}, ErrNotCompletableYet
	}

	return t, nil
}

// AllowedActions lists the actions actor may perform on appt now, in table order.
// Used to decide which buttons a client shows.
func AllowedActions(appt *domain.Appointment, actor *domain.Session, now time.Time) []Action {
	actions := make([]Action, 0, 2)
	for _, r := range rules {
		if r.transition.From != appt.Status {
			continue
		}
		if _, err := Guard(appt, r.transition.Action, actor, now); err == nil {
			actions = append(actions, r.transition.Action)
		}
	}
	return actions
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
