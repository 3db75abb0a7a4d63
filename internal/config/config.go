package config

import (
	"log"
	"net"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type DB struct {
	DbURL             string
	DbHOST            string
	DbPORT            string
	DbUSER            string
	DbPASSWORD        string
	DbNAME            string
	DbSSLMODE         string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	RunMigrations     bool
	MigrationsVerbose bool
}

// URL returns DATABASE_URL when set, otherwise a postgres:// URL assembled
// from the discrete settings. Both lib/pq and golang-migrate accept it.
func (d DB) URL() string {
	if d.DbURL != "" {
		return d.DbURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.DbUSER, d.DbPASSWORD),
		Host:     net.JoinHostPort(d.DbHOST, d.DbPORT),
		Path:     "/" + d.DbNAME,
		RawQuery: url.Values{"sslmode": []string{d.DbSSLMODE}}.Encode(),
	}
	return u.String()
}

type MinIO struct {
	Enabled    bool
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Log struct {
	Level  string
	Format string
	File   string
}

type Config struct {
	ServerPort      int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	DB              DB
	MinIO           MinIO
	Log             Log
	BcryptCost      int
	MaxUploadSize   int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("READ_TIMEOUT", "15s")
	v.SetDefault("WRITE_TIMEOUT", "15s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "rpchat")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_RUN_MIGRATIONS", true)
	v.SetDefault("DB_MIGRATIONS_VERBOSE", false)

	v.SetDefault("MINIO_ENABLED", false)
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	v.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	v.SetDefault("MINIO_BUCKET_NAME", "avatars")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_REGION", "us-east-1")
	v.SetDefault("MINIO_PUBLIC_URL", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("MAX_UPLOAD_SIZE", 5*1024*1024)
}

func LoadDB(v *viper.Viper) DB {
	return DB{
		DbURL:             v.GetString("DATABASE_URL"),
		DbHOST:            v.GetString("DB_HOST"),
		DbPORT:            v.GetString("DB_PORT"),
		DbUSER:            v.GetString("DB_USER"),
		DbPASSWORD:        v.GetString("DB_PASSWORD"),
		DbNAME:            v.GetString("DB_NAME"),
		DbSSLMODE:         v.GetString("DB_SSLMODE"),
		MaxOpenConns:      v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:      v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime:   v.GetDuration("DB_CONN_MAX_LIFETIME"),
		RunMigrations:     v.GetBool("DB_RUN_MIGRATIONS"),
		MigrationsVerbose: v.GetBool("DB_MIGRATIONS_VERBOSE"),
	}
}

func LoadMinIO(v *viper.Viper) MinIO {
	return MinIO{
		Enabled:    v.GetBool("MINIO_ENABLED"),
		Endpoint:   v.GetString("MINIO_ENDPOINT"),
		AccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		SecretKey:  v.GetString("MINIO_SECRET_KEY"),
		BucketName: v.GetString("MINIO_BUCKET_NAME"),
		UseSSL:     v.GetBool("MINIO_USE_SSL"),
		Region:     v.GetString("MINIO_REGION"),
		PublicURL:  v.GetString("MINIO_PUBLIC_URL"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		ServerPort:      v.GetInt("SERVER_PORT"),
		ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		DB:              LoadDB(v),
		MinIO:           LoadMinIO(v),
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		},
		BcryptCost:    clampBcryptCost(v.GetInt("BCRYPT_COST")),
		MaxUploadSize: v.GetInt64("MAX_UPLOAD_SIZE"),
	}
}

func clampBcryptCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
