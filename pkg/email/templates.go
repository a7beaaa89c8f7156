package email

import (
	"fmt"
)

// LinkEmailData contains the data needed for link notification templates.
type LinkEmailData struct {
	RecipientName   string
	RecipientEmail  string
	CounterpartName string
	AppName         string
	BaseURL         string
}

// BuildLinkRequestEmail notifies a user that someone requested to link
// with them.
func BuildLinkRequestEmail(data LinkEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Credvia"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("%s wants to connect with you on %s", data.CounterpartName, appName)

	textBody := fmt.Sprintf(`Hi %s,

%s sent you a link request on %s.

Once you accept, they will be able to see your shared session history.
You can accept or reject the request from your dashboard:
%s

Thanks,
The %s Team`,
		name, data.CounterpartName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p><strong>%s</strong> sent you a link request on %s.</p>
    <p>Once you accept, they will be able to see your shared session history.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Review Request</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.CounterpartName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildLinkAcceptedEmail notifies the requester that their link request
// was accepted.
func BuildLinkAcceptedEmail(data LinkEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Credvia"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("%s accepted your link request", data.CounterpartName)

	textBody := fmt.Sprintf(`Hi %s,

Good news! %s accepted your link request on %s.

You can now see each other's shared session history:
%s

Thanks,
The %s Team`,
		name, data.CounterpartName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Good news! <strong>%s</strong> accepted your link request on %s.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Open Dashboard</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.CounterpartName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// GuideEmailData contains the data for guide lifecycle notifications.
type GuideEmailData struct {
	RecipientName  string
	RecipientEmail string
	GuideNumber    string
	UnusedCredits  int
	AppName        string
}

// BuildGuideExpiredEmail notifies a patient that one of their guides
// expired with credits left on it.
func BuildGuideExpiredEmail(data GuideEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Credvia"
	}

	name := data.RecipientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Guide %s has expired", data.GuideNumber)

	textBody := fmt.Sprintf(`Hi %s,

Your guide %s reached its expiration date and is no longer usable.

Unused credits on this guide: %d

Thanks,
The %s Team`,
		name, data.GuideNumber, data.UnusedCredits, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>Your guide <strong>%s</strong> reached its expiration date and is no longer usable.</p>
    <p>Unused credits on this guide: <strong>%d</strong></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.GuideNumber, data.UnusedCredits, appName)

	return Message{
		To:       []string{data.RecipientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildOTPEmail creates an OTP verification email message.
func BuildOTPEmail(emailAddr string, code string, expiryMinutes int) Message {
	const appName = "Credvia"

	subject := "Your verification code"

	textBody := fmt.Sprintf(`Hi,

Please use the code below to verify your identity:

%s

This code is valid for %d minutes.
If you didn't request this, please ignore this email.

The %s Team`,
		code, expiryMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi,</h2>
    <p>Please use the code below to verify your identity:</p>
    <p style="background-color: #f3f4f6; padding: 14px 20px; border-radius: 4px; font-family: monospace; font-size: 24px; letter-spacing: 4px; text-align: center;">%s</p>
    <p style="color: #6b7280; font-size: 14px;"><em>This code is valid for %d minutes.</em></p>
    <p>If you didn't request this, please ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		code, expiryMinutes, appName)

	return Message{
		To:       []string{emailAddr},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
