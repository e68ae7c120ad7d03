package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент HTTP релея почтовых форм (web3forms-совместимый API).
// Один POST — одно письмо; пайплайны отправляют пару (админу и пользователю).
type Client struct {
	url        string
	accessKey  string
	adminEmail string
	fromName   string
	fromEmail  string
	httpClient *http.Client
	log        Logger
	recorder   DispatchRecorder
}

// NewClient создает новый экземпляр клиента релея.
// Пустой accessKey допустим на этапе конструирования: ошибка ErrNotConfigured
// возникает при первой попытке отправки.
func NewClient(url, accessKey, adminEmail, fromName, fromEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:        url,
		accessKey:  accessKey,
		adminEmail: adminEmail,
		fromName:   fromName,
		fromEmail:  fromEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithRecorder подключает учет отправок (prometheus). Без recorder'а
// клиент работает так же, просто без счетчиков.
func (c *Client) WithRecorder(rec DispatchRecorder) *Client {
	c.recorder = rec
	return c
}

// Configured сообщает, задан ли ключ доступа к релею
func (c *Client) Configured() bool {
	return c.accessKey != ""
}

// SendBookingEmails отправляет пару писем о заявке на консультацию:
// уведомление админу и подтверждение пользователю. Result отражает судьбу
// каждого письма отдельно, err описывает первую фатальную ошибку.
func (c *Client) SendBookingEmails(ctx context.Context, n BookingNotification) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	adminBody, err := renderTemplate(bookingAdminTmpl, struct {
		Name, Email, Phone, Company, DateKey, TimeLabel, Message string
	}{n.Name, n.Email, n.Phone, companyOrDash(n.Company), n.DateKey, n.TimeLabel, n.Message})
	if err != nil {
		return Result{}, err
	}

	userBody, err := renderTemplate(bookingUserTmpl, struct {
		FirstName, DateKey, TimeLabel, TeamName string
	}{firstName(n.Name), n.DateKey, n.TimeLabel, c.fromName})
	if err != nil {
		return Result{}, err
	}

	subject := fmt.Sprintf("New consultation request: %s at %s", n.DateKey, n.TimeLabel)
	return c.sendPair(ctx,
		relayRequest{Subject: subject, Email: c.adminEmail, ReplyTo: n.Email, Message: adminBody},
		relayRequest{Subject: "Your consultation request is received", Email: n.Email, Message: userBody},
	)
}

// SendContactEmails отправляет пару писем по контактной форме
func (c *Client) SendContactEmails(ctx context.Context, n ContactNotification) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	adminBody, err := renderTemplate(contactAdminTmpl, struct {
		Name, Email, Subject, Message string
	}{n.Name, n.Email, n.Subject, n.Message})
	if err != nil {
		return Result{}, err
	}

	userBody, err := renderTemplate(contactUserTmpl, struct {
		FirstName, TeamName string
	}{firstName(n.Name), c.fromName})
	if err != nil {
		return Result{}, err
	}

	return c.sendPair(ctx,
		relayRequest{Subject: "New contact form message: " + n.Subject, Email: c.adminEmail, ReplyTo: n.Email, Message: adminBody},
		relayRequest{Subject: "We received your message", Email: n.Email, Message: userBody},
	)
}

// SendNewsletterEmails отправляет пару писем о подписке на рассылку
func (c *Client) SendNewsletterEmails(ctx context.Context, n NewsletterNotification) (Result, error) {
	if !c.Configured() {
		return Result{}, ErrNotConfigured
	}

	adminBody, err := renderTemplate(newsletterAdminTmpl, struct{ Email string }{n.Email})
	if err != nil {
		return Result{}, err
	}

	userBody, err := renderTemplate(newsletterUserTmpl, struct{ TeamName string }{c.fromName})
	if err != nil {
		return Result{}, err
	}

	return c.sendPair(ctx,
		relayRequest{Subject: "New newsletter subscription", Email: c.adminEmail, ReplyTo: n.Email, Message: adminBody},
		relayRequest{Subject: "Welcome to our newsletter", Email: n.Email, Message: userBody},
	)
}

// sendPair отправляет письмо админу, затем пользователю.
// Ошибка админского письма не прерывает отправку пользовательского:
// Result собирает фактическое состояние обеих доставок.
func (c *Client) sendPair(ctx context.Context, admin, user relayRequest) (Result, error) {
	var result Result
	var firstErr error

	if err := c.send(ctx, admin); err != nil {
		c.log.Error("mailrelay: admin email failed, subject=%q: %v", admin.Subject, err)
		c.record("admin", "failed")
		firstErr = err
	} else {
		result.AdminSent = true
		c.record("admin", "sent")
	}

	if err := c.send(ctx, user); err != nil {
		c.log.Error("mailrelay: user email failed, to=%s subject=%q: %v", user.Email, user.Subject, err)
		c.record("user", "failed")
		if firstErr == nil {
			firstErr = err
		}
	} else {
		result.UserSent = true
		c.record("user", "sent")
	}

	return result, firstErr
}

func (c *Client) record(recipient, outcome string) {
	if c.recorder != nil {
		c.recorder.RecordEmailDispatch(recipient, outcome)
	}
}

// send выполняет один POST к релею
func (c *Client) send(ctx context.Context, reqBody relayRequest) error {
	reqBody.AccessKey = c.accessKey
	if reqBody.FromName == "" {
		reqBody.FromName = c.fromName
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var relayResp relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !relayResp.Success {
		return fmt.Errorf("%w: %s", ErrRejected, relayResp.Message)
	}

	return nil
}
