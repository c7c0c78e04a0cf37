package models

// Notification categories.
const (
	CategoryNotification = "notification"
	CategoryMessage      = "message"
	CategoryEvent        = "event"
)

// NotificationItem is one entry of the message center.
type NotificationItem struct {
	ID          ID     `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Datetime    string `json:"datetime,omitempty" yaml:"datetime,omitempty"`
	Category    string `json:"category" yaml:"category"`
	Read        bool   `json:"read" yaml:"read"`
	Avatar      *Text  `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Status      *Text  `json:"status,omitempty" yaml:"status,omitempty"`
	Extra       *Text  `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// MarkRead flags the item as read. Items are never flipped back to unread.
func (n *NotificationItem) MarkRead() {
	n.Read = true
}
