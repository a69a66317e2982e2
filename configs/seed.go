package configs

import (
	"log"

	"github.com/ALjabriOmars/SCSP/entity"
)

// สร้าง city authority ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding authority: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("authority account already exists:", email)
		return nil
	}

	admin := entity.User{
		FullName: "City Authority",
		Email:    email,
		Phone:    "",
		Role:     "authority",
	}
	if err := admin.SetPassword(pass); err != nil {
		return err
	}
	return db.Create(&admin).Error
}
