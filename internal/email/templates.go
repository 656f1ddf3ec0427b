package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
}

type welcomeEmailData struct {
	baseEmailData
	UserName string
}

type bookingConfirmationEmailData struct {
	baseEmailData
	BookingEmail
	TotalFormatted string
}

type bookingStatusEmailData struct {
	baseEmailData
	BookingStatusEmail
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func renderWelcome(userName string) (string, error) {
	return renderEmailTemplate("welcome.html", welcomeEmailData{
		baseEmailData: baseEmailData{Title: "Welcome", Heading: "Welcome to Travel Booking"},
		UserName:      userName,
	})
}

func renderBookingConfirmation(booking BookingEmail) (string, error) {
	return renderEmailTemplate("booking_confirmation.html", bookingConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:      "Booking received",
			Heading:    "We received your booking",
			Subheading: booking.PackageName,
		},
		BookingEmail:   booking,
		TotalFormatted: formatPrice(booking.TotalPrice),
	})
}

func renderBookingStatus(update BookingStatusEmail) (string, error) {
	return renderEmailTemplate("booking_status.html", bookingStatusEmailData{
		baseEmailData:      baseEmailData{Title: "Booking update", Heading: "Your booking was updated"},
		BookingStatusEmail: update,
	})
}
