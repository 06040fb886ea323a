package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// ResetMailSubject is the subject line of every password-reset mail.
const ResetMailSubject = "Reset your Reel Keeper password"

var resetMailTemplate = template.Must(template.New("reset").Parse(`<html>
<body>
	<p>Hello {{.Name}},</p>
	<p>Someone requested a password reset for your Reel Keeper account.
	If that was you, follow the link below within one hour:</p>
	<p><a href="{{.ResetURL}}">Reset password</a></p>
	<p>If you did not request a reset, you can safely ignore this mail.
	Your password stays unchanged.</p>
</body>
</html>`))

// RenderResetMail renders the password-reset mail body for the given display
// name and reset link.
func RenderResetMail(name, resetURL string) (string, error) {
	var sb strings.Builder
	err := resetMailTemplate.Execute(&sb, struct {
		Name     string
		ResetURL string
	}{Name: name, ResetURL: resetURL})
	if err != nil {
		return "", fmt.Errorf("error rendering reset mail: %w", err)
	}

	return sb.String(), nil
}
