package entities

import "time"

const (
	StatusProducible    = "生産可"
	StatusNotProducible = "生産外"
	StatusCaution       = "注意"
)

type Status struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	BoarID  uint      `gorm:"index" json:"boar_id"`
	Status  string    `gorm:"size:10;not null" json:"status"`
	Reason  string    `gorm:"size:50" json:"reason"`
	StartOn time.Time `json:"start_on"`

	CreatedAt time.Time
}
