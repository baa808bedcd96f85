package entities

import "time"

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password    string `gorm:"size:150" json:"-"`
	Name        string `gorm:"size:50;not null" json:"name"`
	AiStationID uint   `gorm:"index" json:"ai_station_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
