package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/andreferraz/homecare-backend/internal/business/schedule"
	"github.com/andreferraz/homecare-backend/internal/config"
	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers booking confirmation emails. Delivery failures are logged
// and never fail the booking itself.
type Sender struct {
	client *mail.Client
	logger *zap.SugaredLogger
	jobs   chan *OrderConfirmation
}

// OrderConfirmation carries everything needed to notify a customer that a
// recurring booking was scheduled.
type OrderConfirmation struct {
	To           string
	CustomerName string
	OrderID      int64
	Title        string
	Schedule     []model.TimeSlot
}

func NewSender(logger *zap.SugaredLogger) (*Sender, error) {
	client, err := mail.NewClient(config.SMTPHost(),
		mail.WithPort(config.SMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.SMTPUsername()),
		mail.WithPassword(config.SMTPPassword()),
		mail.WithSSL(),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	return &Sender{
		client: client,
		logger: logger,
		jobs:   make(chan *OrderConfirmation, 64),
	}, nil
}

// Enqueue hands a confirmation to the background sender. Drops the job with a
// log entry when the queue is full rather than blocking the request.
func (s *Sender) Enqueue(job *OrderConfirmation) {
	select {
	case s.jobs <- job:
	default:
		s.logger.Errorw("confirmation queue full, dropping job", "order_id", job.OrderID)
	}
}

func (s *Sender) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.jobs:
			if err := s.send(ctx, job); err != nil {
				s.logger.Errorw("failed to send confirmation",
					"order_id", job.OrderID,
					"err", err,
				)
			}
		}
	}
}

var confirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<p>Hello {{.CustomerName}},</p>
<p>Your booking <strong>{{.Title}}</strong> (order #{{.OrderID}}) is confirmed
for the following weekly schedule:</p>
<p>{{.RenderedSchedule}}</p>
`))

func (s *Sender) send(ctx context.Context, job *OrderConfirmation) error {
	body := &bytes.Buffer{}
	if err := confirmationTemplate.Execute(body, struct {
		*OrderConfirmation
		RenderedSchedule string
	}{
		OrderConfirmation: job,
		RenderedSchedule:  schedule.RenderScheduleLocalized(job.Schedule, config.Locale()),
	}); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	m := mail.NewMsg()
	if err := m.From(config.MailFrom()); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(job.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	m.Subject(fmt.Sprintf("Booking confirmed: %s", job.Title))
	m.SetBodyString(mail.TypeTextHTML, body.String())

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
