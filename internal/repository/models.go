package repository

import "time"

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type WalletChallenge struct {
	Nonce     string    `gorm:"primaryKey;size:64"`
	Address   string    `gorm:"size:42;not null;index"` // lowercase 0x address
	Message   string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

type WalletSession struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Address   string    `gorm:"size:42;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

type TrackedTransaction struct {
	Hash        string    `gorm:"primaryKey;size:66"` // 0x + 64 hex chars
	Kind        string    `gorm:"size:16;not null"`
	FromAddress string    `gorm:"size:42;not null;index"`
	ItemID      *uint64   `gorm:"index"`
	Value       string    `gorm:"size:100;not null"` // wei, string to handle large numbers
	Status      string    `gorm:"size:16;not null;index"`
	BlockNumber *uint64
	GasUsed     uint64
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TransactionUpdate carries the fields a mined receipt settles.
type TransactionUpdate struct {
	Status      string
	BlockNumber uint64
	GasUsed     uint64
	ItemID      *uint64
}
