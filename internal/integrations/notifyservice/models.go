package notifyservice

// NotificationType тип уведомления
type NotificationType string

const (
	TypeConfirmation NotificationType = "confirmation"
	TypeCancellation NotificationType = "cancellation"
)

// ReservationNotification модель уведомления о бронировании
type ReservationNotification struct {
	Type            NotificationType `json:"type"`
	ReservationID   int64            `json:"reservation_id"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	RestaurantName  string           `json:"restaurant_name"`
	TableNumber     string           `json:"table_number"`
	ReservationDate string           `json:"reservation_date"` // YYYY-MM-DD
	StartTime       string           `json:"start_time"`       // HH:MM
	DurationHours   float64          `json:"duration_hours"`
	PartySize       int              `json:"party_size"`
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
