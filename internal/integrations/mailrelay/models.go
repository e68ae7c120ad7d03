package mailrelay

// BookingNotification данные для пары писем о заявке на консультацию
type BookingNotification struct {
	Name      string
	Email     string
	Phone     string
	Company   *string
	DateKey   string
	TimeLabel string
	Message   string
}

// ContactNotification данные для пары писем по контактной форме
type ContactNotification struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewsletterNotification данные для пары писем о подписке на рассылку
type NewsletterNotification struct {
	Email string
}

// Result итог диспетчеризации пары писем. Пайплайн успешен только когда
// отправлены оба письма.
type Result struct {
	AdminSent bool
	UserSent  bool
}

// Ok сообщает, что обе стороны уведомлены
func (r Result) Ok() bool {
	return r.AdminSent && r.UserSent
}

// relayRequest тело запроса к HTTP релею форм
type relayRequest struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Email     string `json:"email"`
	ReplyTo   string `json:"replyto,omitempty"`
	Message   string `json:"message"`
}

// relayResponse тело ответа релея
type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
