package usecase

const (
	EventJobOfferCreated      = "job_offer_created"
	EventApplicationSubmitted = "application_submitted"
	EventEmployeeApproved     = "employee_approved"
	EventObjectiveUpdated     = "objective_updated"
)

// Notifier pushes domain events to connected dashboards. Delivery is best effort.
type Notifier interface {
	Notify(event string, payload any)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, any) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
