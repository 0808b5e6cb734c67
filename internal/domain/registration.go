package domain

import "context"

// RegistrationResult reports the ids involved in a successful registration.
// swagger:model RegistrationResult
type RegistrationResult struct {
	EventID        string
	EventTitle     string
	ContactID      string
	ContactCreated bool
}

// RegistrationService orchestrates: resolve event, resolve or create contact,
// register the contact on the event. Any step's failure aborts the rest; a
// contact created along the way is never rolled back.
type RegistrationService interface {
	Register(ctx context.Context, ident EventIdentifier, learner Learner) (*RegistrationResult, error)
}
