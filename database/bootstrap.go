package database

import (
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"herdbook/entities"
)

// Open connects to the database named by url. A postgres:// or postgresql://
// scheme selects the postgres driver; anything else is treated as a sqlite
// file path.
func Open(url string) *gorm.DB {
	var dialector gorm.Dialector
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	if err := SeedLookups(db); err != nil {
		log.Fatalf("seed lookups: %v", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.AiStation{},
		&entities.Farm{},
		&entities.Line{},
		&entities.User{},
		&entities.Boar{},
		&entities.Status{},
	)
}

// SeedLookups populates the reference tables when they are empty. Stations,
// farms and lines are lookup data maintained out-of-band, not through forms.
func SeedLookups(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.AiStation{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		stations := []entities.AiStation{
			{Name: "東日本AIセンター", Abbreviation: "東"},
			{Name: "西日本AIセンター", Abbreviation: "西"},
		}
		if err := db.Create(&stations).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entities.Farm{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		var east entities.AiStation
		if err := db.Order("id").First(&east).Error; err != nil {
			return err
		}
		farms := []entities.Farm{
			{Name: "GGP農場", Abbreviation: "GGP", AiStationID: east.ID},
			{Name: "第2農場", Abbreviation: "GGP2", AiStationID: east.ID},
			{Name: "東日本農場", Abbreviation: "東日本", AiStationID: east.ID},
		}
		if err := db.Create(&farms).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&entities.Line{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		lines := []entities.Line{
			{Code: "MMMM", Name: "デュロック", Abbreviation: "D", Head: ""},
			{Code: "LLLL", Name: "LLライン", Abbreviation: "LL", Head: "LL"},
			{Code: "NNNN", Name: "TLライン", Abbreviation: "TL", Head: "TL"},
			{Code: "ZZZZ", Name: "TWライン", Abbreviation: "TW", Head: "TW"},
		}
		if err := db.Create(&lines).Error; err != nil {
			return err
		}
	}
	return nil
}
