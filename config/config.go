package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = ""            // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""            // MySQL will be used if this is set
	SQLITE_FILE        = "tripbook.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	TMP_DIR            = "/tmp" // Used as a local staging area for S3 buckets
	DEFAULT_BUCKET_DIR = ""     // Used for creating the initial disk bucket
	PUBLIC_BASE_URL    = ""     // External base URL for serving uploaded files, e.g. "https://trips.example.com"
	PDF_LICENSE_KEY    = ""     // UniPDF metered license key (optional)
	SESSION_KEY        = "change-me-in-production"
	DEBUG_MODE         = true
	THUMB_SIZE         = 400 // Max dimension in pixels for gallery photo thumbnails
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvString("PUBLIC_BASE_URL", &PUBLIC_BASE_URL)
	readEnvString("PDF_LICENSE_KEY", &PDF_LICENSE_KEY)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
