package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultPINHash es el digest SHA-256 (hex) del PIN de administración.
const DefaultPINHash = "744bcc5f5a497705b84a0061932fd2474daf38ac1b2b77ce39480146904dc991"

type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	AdminPINHash   string
	WhatsAppNumber string
	SessionKey     string
	CartDataDir    string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "jlvDisenos"),
		Port:           getEnv("PORT", "8080"),
		AdminPINHash:   getEnv("ADMIN_PIN_HASH", DefaultPINHash),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "50497007920"),
		SessionKey:     getEnv("SESSION_KEY", "jlv-dev-session-key"),
		CartDataDir:    getEnv("CART_DATA_DIR", "data/carts"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
