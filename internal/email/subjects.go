package email

const (
	subjectWelcomeFmt             = "Welcome aboard, %s"
	subjectBookingConfirmationFmt = "Your booking for %s"
	subjectBookingStatusFmt       = "Your booking is now %s"
)
