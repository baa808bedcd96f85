package entities

import "time"

// Boar is the central tracked record. Tattoo is the natural key used to
// deduplicate bulk imports; a nil CullingOn means the boar is still enrolled.
type Boar struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Tattoo    string     `gorm:"size:50;uniqueIndex;not null" json:"tattoo"`
	Name      string     `gorm:"size:50;not null" json:"name"`
	BirthOn   *time.Time `json:"birth_on"`
	CullingOn *time.Time `json:"culling_on"`
	FarmID    uint       `gorm:"index" json:"farm_id"`
	LineID    uint       `gorm:"index" json:"line_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
