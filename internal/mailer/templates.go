package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var confirmAccountTmpl = template.Must(template.New("confirm").Parse(
	`<p>Hi {{.Name}}, you have created your CashTrackr account, it is almost ready.</p>
<p>Visit the following link:</p>
<a href="#">Confirm account</a>
<p>and enter the code: <b>{{.Token}}</b></p>`))

var resetPasswordTmpl = template.Must(template.New("reset").Parse(
	`<p>Hi {{.Name}}, you have requested to reset your password.</p>
<p>Visit the following link:</p>
<a href="#">Reset password</a>
<p>and enter the code: <b>{{.Token}}</b></p>`))

// Recipient identifies who a token email goes to.
type Recipient struct {
	Name  string
	Email string
	Token string
}

// ConfirmationEmail renders the account confirmation message.
func ConfirmationEmail(r Recipient) (Message, error) {
	return render(confirmAccountTmpl, "CashTrackr - Confirm your account", r)
}

// PasswordResetEmail renders the password reset message.
func PasswordResetEmail(r Recipient) (Message, error) {
	return render(resetPasswordTmpl, "CashTrackr - Reset your password", r)
}

func render(tmpl *template.Template, subject string, r Recipient) (Message, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return Message{}, fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	return Message{To: r.Email, Subject: subject, HTML: buf.String()}, nil
}
