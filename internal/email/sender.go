package email

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/domodwyer/mailyak/v3"

	"github.com/nurpe/cleaning-estimator/internal/model"
	"github.com/nurpe/cleaning-estimator/internal/money"
)

const disabledMessage = "email disabled"

// SESAPI is the part of the SES client the sender uses.
type SESAPI interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

type Config struct {
	Enabled  bool
	From     string
	FromName string
	Region   string
}

type Sender struct {
	client SESAPI
	cfg    Config
}

// QuoteEmail is the customer-facing quote delivery.
type QuoteEmail struct {
	To              string
	ToName          string
	QuoteNumber     string
	ProjectName     string
	Total           float64
	Recommendations []string
	CompanyName     string
	PDF             []byte
}

func NewSender(client SESAPI, cfg Config) *Sender {
	return &Sender{client: client, cfg: cfg}
}

// NewSESSender loads AWS credentials from the default chain. A disabled
// config skips AWS entirely.
func NewSESSender(ctx context.Context, cfg Config) (*Sender, error) {
	if !cfg.Enabled {
		return NewSender(nil, cfg), nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSender(ses.NewFromConfig(awsCfg), cfg), nil
}

func (s *Sender) Enabled() bool {
	return s.cfg.Enabled && s.client != nil
}

// SendQuote makes a single delivery attempt. Failures are reported in the
// result rather than returned.
func (s *Sender) SendQuote(ctx context.Context, msg QuoteEmail) model.IntegrationResult {
	if !s.Enabled() {
		return model.IntegrationResult{Success: false, Message: disabledMessage}
	}
	if strings.TrimSpace(msg.To) == "" {
		return model.IntegrationResult{Success: false, Message: "recipient email is empty"}
	}

	raw, err := s.build(msg)
	if err != nil {
		return model.IntegrationResult{Success: false, Message: fmt.Sprintf("failed to build message: %v", err)}
	}

	out, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Source:       aws.String(s.cfg.From),
		Destinations: []string{msg.To},
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		return model.IntegrationResult{Success: false, Message: fmt.Sprintf("failed to send email: %v", err)}
	}

	return model.IntegrationResult{Success: true, Message: "sent " + aws.ToString(out.MessageId)}
}

func (s *Sender) build(msg QuoteEmail) ([]byte, error) {
	mail := mailyak.New("", nil)
	mail.From(s.cfg.From)
	if s.cfg.FromName != "" {
		mail.FromName(s.cfg.FromName)
	}
	mail.To(msg.To)
	mail.Subject(subject(msg))
	mail.Plain().Set(plainBody(msg))
	mail.HTML().Set(htmlBody(msg))
	if len(msg.PDF) > 0 {
		mail.AttachWithMimeType(msg.QuoteNumber+".pdf", bytes.NewReader(msg.PDF), "application/pdf")
	}

	buf, err := mail.MimeBuf()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func subject(msg QuoteEmail) string {
	if msg.ProjectName != "" {
		return fmt.Sprintf("Your cleaning quote %s: %s", msg.QuoteNumber, msg.ProjectName)
	}
	return "Your cleaning quote " + msg.QuoteNumber
}

func greeting(msg QuoteEmail) string {
	if msg.ToName == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", msg.ToName)
}

func plainBody(msg QuoteEmail) string {
	var b strings.Builder
	b.WriteString(greeting(msg) + "\n\n")
	fmt.Fprintf(&b, "Thank you for requesting a quote. Quote %s totals %s and is attached as a PDF.\n", msg.QuoteNumber, money.Format(msg.Total))
	if len(msg.Recommendations) > 0 {
		b.WriteString("\nOur recommendations:\n")
		for _, rec := range msg.Recommendations {
			b.WriteString("- " + rec + "\n")
		}
	}
	b.WriteString("\nReply to this email with any questions.\n")
	if msg.CompanyName != "" {
		b.WriteString("\n" + msg.CompanyName + "\n")
	}
	return b.String()
}

func htmlBody(msg QuoteEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(greeting(msg)))
	fmt.Fprintf(&b, "<p>Thank you for requesting a quote. Quote <strong>%s</strong> totals <strong>%s</strong> and is attached as a PDF.</p>",
		html.EscapeString(msg.QuoteNumber), html.EscapeString(money.Format(msg.Total)))
	if len(msg.Recommendations) > 0 {
		b.WriteString("<p>Our recommendations:</p><ul>")
		for _, rec := range msg.Recommendations {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(rec))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("<p>Reply to this email with any questions.</p>")
	if msg.CompanyName != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(msg.CompanyName))
	}
	return b.String()
}
