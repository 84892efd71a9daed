package mailer

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"nigerland_backend/internals/configs"
)

var (
	client    *resend.Client
	fromAddr  string
	adminAddr string
)

// Init wires the Resend client. An empty API key disables outgoing mail;
// every send becomes a logged no-op so request flows never depend on it.
func Init(apiKey string) {
	if apiKey == "" {
		return
	}
	client = resend.NewClient(apiKey)
	fromAddr = configs.GetEnv("MAIL_FROM", "Nigerland Consult <info@nigerlandconsult.com>")
	adminAddr = configs.GetEnv("MAIL_ADMIN", "info@nigerlandconsult.com")
}

func send(to, subject, html string) {
	if client == nil {
		log.Printf("[INFO] mail disabled, skipped %q to %s", subject, to)
		return
	}
	_, err := client.Emails.Send(&resend.SendEmailRequest{
		From:    fromAddr,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		// Mail failures never fail the request that triggered them.
		log.Printf("[ERROR] mail %q to %s failed: %v", subject, to, err)
	}
}

func SendRegistrationConfirmation(to, name, conference, registrationID string) {
	send(to, fmt.Sprintf("Registration Confirmation - %s", conference),
		fmt.Sprintf("<p>Dear %s,</p><p>Your registration for <strong>%s</strong> has been received.</p><p>Registration ID: <strong>%s</strong></p><p>Nigerland Consult</p>", name, conference, registrationID))
}

func SendPaymentConfirmation(to, name, conference string, amount float64) {
	send(to, fmt.Sprintf("Payment Confirmed - %s", conference),
		fmt.Sprintf("<p>Dear %s,</p><p>Your payment of <strong>₦%.2f</strong> for <strong>%s</strong> has been confirmed.</p><p>Nigerland Consult</p>", name, amount, conference))
}

func SendContactConfirmation(to, name string) {
	send(to, "We Received Your Message",
		fmt.Sprintf("<p>Dear %s,</p><p>Thank you for contacting Nigerland Consult. We will get back to you shortly.</p>", name))
}

func SendAdminContactNotification(name, email, subject, message string) {
	send(adminAddr, fmt.Sprintf("New Contact Message: %s", subject),
		fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>", name, email, message))
}

func SendBookPurchaseConfirmation(to, name, bookTitle, downloadURL string) {
	send(to, fmt.Sprintf("Your Book Purchase - %s", bookTitle),
		fmt.Sprintf("<p>Dear %s,</p><p>Thank you for purchasing <strong>%s</strong>.</p><p><a href=%q>Download your copy</a></p><p>Nigerland Consult</p>", name, bookTitle, downloadURL))
}

func SendTrainingEnrollmentConfirmation(to, name, programTitle, enrollmentID string) {
	send(to, fmt.Sprintf("Training Enrollment: %s", programTitle),
		fmt.Sprintf("<p>Dear %s,</p><p>Your enrollment in <strong>%s</strong> has been received.</p><p>Enrollment ID: <strong>%s</strong></p>", name, programTitle, enrollmentID))
}

func SendAssessmentConfirmation(to, name, assessmentID string) {
	send(to, "MoreLife Assessment Received",
		fmt.Sprintf("<p>Dear %s,</p><p>Your MoreLife assessment has been received and is being reviewed.</p><p>Assessment ID: <strong>%s</strong></p>", name, assessmentID))
}

func SendMoreLifePaymentConfirmation(to, name string, amount float64) {
	send(to, "MoreLife Session Payment Confirmed",
		fmt.Sprintf("<p>Dear %s,</p><p>Your payment of <strong>₦%.2f</strong> for your MoreLife session has been confirmed.</p>", name, amount))
}
