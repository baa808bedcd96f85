package entities

type AiStation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Abbreviation string `gorm:"size:50;uniqueIndex" json:"abbreviation"`
}
