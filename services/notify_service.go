package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"scanstock-app/config"
	"scanstock-app/models"

	"gopkg.in/gomail.v2"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// AlertSeverity labels an alert against the product's own reorder threshold.
// This is independent of the HEALTHY/MONITOR/LOW display tiers.
func AlertSeverity(product models.Product) string {
	if product.Stock < product.Threshold {
		return "CRITICAL"
	}
	return "LOW STOCK"
}

// ComposeAlertMessage builds the alert text sent to the manager. The wording
// is fixed; the suggested order quantity is twice the reorder threshold.
func ComposeAlertMessage(product models.Product, settings models.AppSettings) string {
	workerName := settings.WorkerName
	if workerName == "" {
		workerName = "Staff Member"
	}

	date := time.Now().Format("1/2/2006, 3:04:05 PM")

	return fmt.Sprintf(`⚠️ INVENTORY ALERT

Product: %s
SKU: %s
Current Stock: %d units
Status: %s
Location: %s
Reorder Threshold: %d units

📋 Recommendation: Order %d units

Reported by: %s
Date: %s`,
		product.Name,
		product.SKU,
		product.Stock,
		AlertSeverity(product),
		product.Location,
		product.Threshold,
		product.Threshold*2,
		workerName,
		date,
	)
}

// GenerateWhatsAppLink builds the wa.me deep link for the manager chat. The
// phone number is reduced to digits; a malformed number just produces a link
// that resolves to nothing.
func GenerateWhatsAppLink(product models.Product, settings models.AppSettings) string {
	message := ComposeAlertMessage(product, settings)
	phone := nonDigits.ReplaceAllString(settings.ManagerPhone, "")

	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}

// SendAlertEmail mails the alert text to the configured recipient. Only used
// when the station has SMTP configured; failures are reported, not retried.
func SendAlertEmail(product models.Product, message string) error {
	if config.SMTPHost == "" || config.AlertEmailTo == "" {
		return fmt.Errorf("alert email is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", config.AlertEmailTo)
	msg.SetHeader("Subject", fmt.Sprintf("Inventory alert: %s (%s)", product.Name, AlertSeverity(product)))
	msg.SetBody("text/plain", message)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send alert email:", err)
		return err
	}

	fmt.Println("✅ Alert email sent to:", config.AlertEmailTo)
	return nil
}
