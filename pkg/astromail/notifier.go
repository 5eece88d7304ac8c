package astromail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/Asteroidea-tn/astrorect/pkg/astroreport"
)

var ErrNotConfigured = errors.New("mail notification not configured")

type Config struct {
	Host     string `env:"SMTP_HOST,"`
	Port     int    `env:"SMTP_PORT,587"`
	User     string `env:"SMTP_USER,"`
	Password string `env:"SMTP_PASSWORD,"`
	From     string `env:"REPORT_MAIL_FROM,astrorect@localhost"`
	To       string `env:"REPORT_MAIL_TO,"`
}

// Enabled is true when both a server and at least one recipient are set.
func (c Config) Enabled() bool {
	return c.Host != "" && len(c.recipients()) > 0
}

func (c Config) recipients() []string {
	var out []string
	for _, r := range strings.Split(c.To, ",") {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// Notifier mails run reports.
type Notifier struct {
	cfg    Config
	sender gomail.Sender
}

// NewNotifier returns a notifier that dials cfg.Host for every report.
func NewNotifier(cfg Config) *Notifier {
	return &Notifier{cfg: cfg}
}

// NewNotifierWithSender uses s instead of dialing an SMTP server.
func NewNotifierWithSender(cfg Config, s gomail.Sender) *Notifier {
	return &Notifier{cfg: cfg, sender: s}
}

// Message builds the mail for r: a plain text body with the YAML report as
// an alternative part.
func (n *Notifier) Message(r astroreport.Report) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.recipients()...)
	m.SetHeader("Subject", fmt.Sprintf("astrorect %s: part 1 %d, part 2 %d", r.Source, r.Part1, r.Part2))
	m.SetBody("text/plain", fmt.Sprintf("Run %s over %s (%d points)\n\n%s", r.RunID, r.Source, r.Points, r.String()))

	var y strings.Builder
	if err := r.Write(&y, astroreport.FormatYAML); err == nil {
		m.AddAlternative("text/yaml", y.String())
	}
	return m
}

// Notify sends r to the configured recipients.
func (n *Notifier) Notify(r astroreport.Report) error {
	if !n.cfg.Enabled() {
		return ErrNotConfigured
	}

	m := n.Message(r)
	if n.sender != nil {
		if err := gomail.Send(n.sender, m); err != nil {
			return fmt.Errorf("sending report: %w", err)
		}
	} else {
		d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
		if err := d.DialAndSend(m); err != nil {
			return fmt.Errorf("sending report via %s:%d: %w", n.cfg.Host, n.cfg.Port, err)
		}
	}

	log.Info().Str("run_id", r.RunID).Strs("to", n.cfg.recipients()).Msg("report mailed")
	return nil
}
