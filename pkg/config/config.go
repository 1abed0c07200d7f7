package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez al arrancar y se pasa por referencia a quien la necesite.
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Reports ReportsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig parámetros de conexión a MySQL.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// Timeout de establecimiento de conexión; 0 deja el valor por defecto del driver.
	DialTimeout time.Duration
}

// DSN devuelve el data source name para go-sql-driver/mysql.
// parseTime=true hace que DATETIME/TIMESTAMP lleguen como time.Time.
func (c DBConfig) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Database
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Timeout = c.DialTimeout
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// JWTConfig configuración de JWT (sesión de los clientes HTTP).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportsConfig rutas y valores por defecto para reportes.
type ReportsConfig struct {
	PDFDir          string
	DefaultCurrency string // se usa si la tabla configuracion no tiene la clave "moneda"
}

// Archivos JSON que pueden sobrescribir el bloque MySQL (mismo formato que usaba la app de escritorio).
var mysqlOverrideFiles = []string{"config_mysql.json", "configuracion.json"}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Orden de prioridad para MySQL: archivo JSON > variables MYSQL_* > valores por defecto.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom es Load con un directorio base explícito para buscar archivos.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(dir, "config"))
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "nexus-coffee"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Host:        getString(v, "MYSQL_HOST", "localhost"),
			Port:        getInt(v, "MYSQL_PORT", 3306),
			User:        getString(v, "MYSQL_USER", "root"),
			Password:    getString(v, "MYSQL_PASSWORD", ""),
			Database:    getString(v, "MYSQL_DATABASE", "nexus_coffee"),
			DialTimeout: time.Duration(getInt(v, "MYSQL_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "nexus-coffee"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Reports: ReportsConfig{
			PDFDir:          getString(v, "PDF_DIR", "pdfs_generados"),
			DefaultCurrency: getString(v, "DEFAULT_CURRENCY", "S/"),
		},
	}

	if err := applyMySQLOverride(dir, &cfg.DB); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyMySQLOverride aplica el primer archivo JSON encontrado sobre cfg.
// Solo se sobrescriben las claves presentes en el archivo.
func applyMySQLOverride(dir string, cfg *DBConfig) error {
	for _, name := range mysqlOverrideFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fv := viper.New()
		fv.SetConfigFile(path)
		fv.SetConfigType("json")
		if err := fv.ReadInConfig(); err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if fv.IsSet("host") {
			cfg.Host = fv.GetString("host")
		}
		if fv.IsSet("user") {
			cfg.User = fv.GetString("user")
		}
		if fv.IsSet("password") {
			cfg.Password = fv.GetString("password")
		}
		if fv.IsSet("database") {
			cfg.Database = fv.GetString("database")
		}
		if fv.IsSet("port") {
			port, err := strconv.Atoi(fv.GetString("port"))
			if err != nil {
				return fmt.Errorf("%s: port inválido: %w", name, err)
			}
			cfg.Port = port
		}
		return nil
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
