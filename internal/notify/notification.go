// Package notify delivers account mail in the background. The dispatcher
// runs a small worker pool over a buffered queue; delivery failures are
// logged and never surface to the request that enqueued them.
package notify

import (
	"github.com/google/uuid"
)

// Notification is a single pending mail delivery.
type Notification struct {
	// ID identifies the notification in logs.
	ID uuid.UUID

	// Kind names the template that produced the body.
	Kind string

	// To is the recipient address.
	To string

	// Subject is the mail subject line.
	Subject string

	// Body is the rendered HTML body.
	Body string
}

// Notification kinds.
const (
	KindAccountCreated = "account_created"
	KindNewUserAlert   = "new_user_alert"
)
