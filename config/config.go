// config/config.go
package config

import (
	"log"
	"os"
	"time"
)

var (
	Port          string
	MongoURI      string
	MongoDBName   string
	JWTKey        []byte
	JWTExpiration time.Duration
)

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	MongoDBName = os.Getenv("MONGO_DB")
	if MongoDBName == "" {
		MongoDBName = "org_master_db"
	}

	JWTKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTKey) == 0 {
		JWTKey = []byte("secret")
	}

	expireStr := os.Getenv("JWT_EXPIRE")
	dur := time.Hour
	if expireStr != "" {
		var err error
		dur, err = time.ParseDuration(expireStr)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRE: %s, using 1h", expireStr)
			dur = time.Hour
		}
	}
	JWTExpiration = dur
}
