package clinic

import "clinica_fisio/internal/domain/entities"

var appointmentTransitions = map[entities.AppointmentStatus][]entities.AppointmentStatus{
	entities.AppointmentStatusProgramada: {entities.AppointmentStatusConfirmada, entities.AppointmentStatusCancelada},
	entities.AppointmentStatusConfirmada: {entities.AppointmentStatusEnAtencion, entities.AppointmentStatusNoAsistio, entities.AppointmentStatusCancelada},
	entities.AppointmentStatusEnAtencion: {entities.AppointmentStatusCompletada},
}

// AllowedAppointmentTransitions lists the statuses reachable from the given one.
// Terminal statuses, SEPARADA and REPROGRAMADA return an empty list.
func AllowedAppointmentTransitions(from entities.AppointmentStatus) []entities.AppointmentStatus {
	next := appointmentTransitions[from]
	out := make([]entities.AppointmentStatus, len(next))
	copy(out, next)
	return out
}

func CanTransitionAppointment(from, to entities.AppointmentStatus) bool {
	for _, s := range appointmentTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsAppointmentTerminal reports whether no transition leaves the status.
func IsAppointmentTerminal(s entities.AppointmentStatus) bool {
	switch s {
	case entities.AppointmentStatusCompletada, entities.AppointmentStatusCancelada, entities.AppointmentStatusNoAsistio:
		return true
	}
	return false
}

// TransitionAppointment validates and applies a status change on a copy of a.
//
// The reason is stored for cancellations and no-shows. actorID, when set, is
// recorded as the attending clinician once the visit starts. On failure the
// returned appointment equals the input.
func TransitionAppointment(a entities.Appointment, to entities.AppointmentStatus, reason, actorID string) (entities.Appointment, error) {
	if !CanTransitionAppointment(a.Status, to) {
		return a, &TransitionError{Entity: "appointment", From: string(a.Status), To: string(to)}
	}

	out := a
	out.Status = to
	switch to {
	case entities.AppointmentStatusCancelada, entities.AppointmentStatusNoAsistio:
		out.StatusReason = reason
	case entities.AppointmentStatusEnAtencion:
		if actorID != "" {
			out.AttendedByID = actorID
		}
	}
	return out, nil
}
