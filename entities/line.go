package entities

// Line is a genetic lineage. Head is the 2-letter prefix prepended to the
// numeric part of a tattoo when deriving a boar identifier on import; it is
// empty for the base (Duroc) line, whose identifiers come from the tattoo
// itself with the fixed infixes stripped.
type Line struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Code         string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name         string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Abbreviation string `gorm:"size:10;uniqueIndex" json:"abbreviation"`
	Head         string `gorm:"size:10" json:"head"`
}
