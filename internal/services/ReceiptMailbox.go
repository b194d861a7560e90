package services

import (
	"holidaze/internal/models"
	"sync"
)

type ReceiptMailboxInterface interface {
	Publish(msg *models.ReceiptMessage)
	Take() *models.ReceiptMessage
}

// ReceiptMailbox holds at most one receipt message between the booking flow
// and the profile view. A newer message replaces an unread one.
type ReceiptMailbox struct {
	mu      sync.Mutex
	pending *models.ReceiptMessage
}

func NewReceiptMailbox() ReceiptMailboxInterface {
	return &ReceiptMailbox{}
}

func (rm *ReceiptMailbox) Publish(msg *models.ReceiptMessage) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.pending = msg
}

func (rm *ReceiptMailbox) Take() *models.ReceiptMessage {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	msg := rm.pending
	rm.pending = nil
	return msg
}
