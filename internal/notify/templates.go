package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"

	"github.com/hollis-dev/storefront-api/internal/domain"
)

const accountCreatedSubject = "Welcome! Your account has been created"

const newUserAlertSubject = "New user registered"

var accountCreatedTemplate = template.Must(template.New(KindAccountCreated).Parse(`<html>
<body>
    <p>Hello {{.Name}},</p>
    <p>Your account has been created successfully.</p>
    <p>You can now log in with your email address: <strong>{{.Email}}</strong></p>
    <p>Thank you for registering.</p>
</body>
</html>
`))

var newUserAlertTemplate = template.Must(template.New(KindNewUserAlert).Parse(`<html>
<body>
    <p>Hello {{.AdminName}},</p>
    <p>A new user has just registered:</p>
    <ul>
        <li>Name: {{.Name}}</li>
        <li>Email: {{.Email}}</li>
    </ul>
</body>
</html>
`))

// NewAccountCreated builds the welcome notification for a freshly created
// user.
func NewAccountCreated(user *domain.User) (Notification, error) {
	var body strings.Builder
	err := accountCreatedTemplate.Execute(&body, struct {
		Name  string
		Email string
	}{
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return Notification{}, fmt.Errorf("failed to render %s template: %w", KindAccountCreated, err)
	}

	return Notification{
		ID:      uuid.New(),
		Kind:    KindAccountCreated,
		To:      user.Email,
		Subject: accountCreatedSubject,
		Body:    body.String(),
	}, nil
}

// NewUserAlert builds the notification sent to a single administrator when
// a new user registers.
func NewUserAlert(admin, newUser *domain.User) (Notification, error) {
	var body strings.Builder
	err := newUserAlertTemplate.Execute(&body, struct {
		AdminName string
		Name      string
		Email     string
	}{
		AdminName: admin.Name,
		Name:      newUser.Name,
		Email:     newUser.Email,
	})
	if err != nil {
		return Notification{}, fmt.Errorf("failed to render %s template: %w", KindNewUserAlert, err)
	}

	return Notification{
		ID:      uuid.New(),
		Kind:    KindNewUserAlert,
		To:      admin.Email,
		Subject: newUserAlertSubject,
		Body:    body.String(),
	}, nil
}
