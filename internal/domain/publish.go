package domain

import "context"

// PublishResult reports a published public URL and the identifiers of the
// event it was derived from.
// swagger:model PublishResult
type PublishResult struct {
	EventID   string `json:"eventId"`
	LegacyID  string `json:"legacyId"`
	Code      string `json:"code"`
	PublicURL string `json:"publicUrl"`
}

// PublisherService computes an event's canonical public URL and writes it
// into the configured custom-field slot on the event record. Repeated calls
// overwrite the field with the same computed value.
type PublisherService interface {
	Publish(ctx context.Context, ident EventIdentifier, siteBase string) (*PublishResult, error)
}
