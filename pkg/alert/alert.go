package alert

import (
	"fmt"
	"sync"
	"time"

	"github.com/AzielCF/wa-cloud-bridge/config"
	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// keyLength bounds the dedup key so variants of the same failure (ids,
// timestamps in the tail of the message) collapse into one alert.
const keyLength = 100

// sendFunc delivers a composed alert. Swappable in tests.
type sendFunc func(subject, body string) error

// Notifier emails the admin about processing errors, at most once per
// error key per interval. Transport failures are logged, never returned:
// alerting must not make a failing pipeline fail harder.
type Notifier struct {
	mu       sync.Mutex
	lastSent map[string]time.Time
	interval time.Duration
	send     sendFunc
	now      func() time.Time
}

func NewNotifier(interval time.Duration) *Notifier {
	return &Notifier{
		lastSent: make(map[string]time.Time),
		interval: interval,
		send:     sendEmail,
		now:      time.Now,
	}
}

// Notify sends a throttled admin email for the given error text.
func (n *Notifier) Notify(errorText string) {
	if errorText == "" {
		return
	}

	key := errorText
	if len(key) > keyLength {
		key = key[:keyLength]
	}

	n.mu.Lock()
	if last, ok := n.lastSent[key]; ok && n.now().Sub(last) < n.interval {
		n.mu.Unlock()
		logrus.Debugf("[ALERT] suppressed repeat alert for key %q", key)
		return
	}
	n.lastSent[key] = n.now()
	n.mu.Unlock()

	subject := "WhatsApp Bot Error"
	body := fmt.Sprintf("Error occurred:\n%s\nTime: %s\n",
		errorText, n.now().Format("2006-01-02 15:04:05"))

	if err := n.send(subject, body); err != nil {
		logrus.WithError(err).Error("[ALERT] email alert failed")
	}
}

// sendEmail delivers via SMTP with STARTTLS using the configured account.
func sendEmail(subject, body string) error {
	cfg := config.Global

	msg := mail.NewMsg()
	if err := msg.From(cfg.SMTP.Email); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(cfg.Alert.AdminEmail); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	// TLSMandatory is go-mail's STARTTLS policy: plaintext connect,
	// upgrade required before auth.
	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithPort(cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.Email),
		mail.WithPassword(cfg.SMTP.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSend(msg)
}
