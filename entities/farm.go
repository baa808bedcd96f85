package entities

type Farm struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Abbreviation string `gorm:"size:50;uniqueIndex" json:"abbreviation"`
	AiStationID  uint   `gorm:"index" json:"ai_station_id"`
}
