package app

// StorageDriver выбирает реализацию хранилища.
type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает настройки запуска портала.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       StorageDriver
	PostgresDSN         string
	PostgresAutoMigrate bool

	// SeedDemoData наполняет memory-каталог демо-товарами на старте.
	SeedDemoData bool

	// KafkaBrokers — список брокеров через запятую; пусто выключает Kafka.
	KafkaBrokers string

	// RedisAddr — адрес Redis для кэша сводки инвентаря; пусто выключает кэш.
	RedisAddr string
}

// DefaultConfig возвращает конфигурацию для локального запуска:
// memory-хранилище с демо-каталогом, без Kafka и Redis.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		SeedDemoData:        true,
	}
}
