package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Catalog  CatalogConfig
	Cart     CartConfig
	Carousel CarouselConfig
	Export   ExportConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type CatalogConfig struct {
	DataFile      string
	BackupsDir    string
	PageSize      int
	FeaturedLimit int
	Locale        string
}

type CartConfig struct {
	FreeShippingThreshold decimal.Decimal
	ShippingRate          decimal.Decimal
}

type CarouselConfig struct {
	IntervalSeconds int
	Slides          int
}

type ExportConfig struct {
	JSFile        string
	JSBackupsDir  string
	XLSXSheetName string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Catalog: CatalogConfig{
			DataFile:      getEnv("CATALOG_DATA_FILE", "products.json"),
			BackupsDir:    getEnv("CATALOG_BACKUPS_DIR", "backups/db_backups"),
			PageSize:      getEnvInt("CATALOG_PAGE_SIZE", 9),
			FeaturedLimit: getEnvInt("CATALOG_FEATURED_LIMIT", 3),
			Locale:        getEnv("CATALOG_LOCALE", "fr"),
		},
		Cart: CartConfig{
			FreeShippingThreshold: getEnvDecimal("CART_FREE_SHIPPING_THRESHOLD", "50"),
			ShippingRate:          getEnvDecimal("CART_SHIPPING_RATE", "5.00"),
		},
		Carousel: CarouselConfig{
			IntervalSeconds: getEnvInt("CAROUSEL_INTERVAL_SECONDS", 5),
			Slides:          getEnvInt("CAROUSEL_SLIDES", 3),
		},
		Export: ExportConfig{
			JSFile:        getEnv("EXPORT_JS_FILE", "web/js/products.js"),
			JSBackupsDir:  getEnv("EXPORT_JS_BACKUPS_DIR", "backups/js_backups"),
			XLSXSheetName: getEnv("EXPORT_XLSX_SHEET", "Products"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
