package domain

import "context"

// Contact represents a person known to the provider. Email is the natural
// key used for lookup; ID is assigned by the provider on creation.
type Contact struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Learner is the registrant as submitted by the registration page.
// Company and Notes are accepted but not forwarded to the provider.
type Learner struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Notes     string
}

// ContactResolver looks up a contact by email, creating one under the
// configured default account when the lookup misses. Existing contacts are
// never updated: an email match short-circuits all other fields.
type ContactResolver interface {
	ResolveOrCreate(ctx context.Context, learner Learner) (contactID string, created bool, err error)
}
