package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde archivo TOML y env).
type Config struct {
	App   AppConfig
	Log   LogConfig
	Excel ExcelConfig
	API   APIConfig
	Auth  AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel mínimo de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// SheetNames nombres de las hojas dentro del libro de trabajo.
type SheetNames struct {
	Formulas    string
	Freights    string
	Purchases   string
	Productions string
	Sales       string
	History     string
}

// ExcelConfig rutas del libro de entrada/salida y nombres de hojas.
type ExcelConfig struct {
	InputPath  string
	OutputPath string
	Sheets     SheetNames
}

// APIConfig configuración del servidor HTTP.
type APIConfig struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int // generoso: una corrida relee y reescribe el libro completo
}

// Addr devuelve la dirección de escucha (host:port).
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig credenciales del operador y parámetros del JWT.
type AuthConfig struct {
	JWTSecret         string
	JWTIssuer         string
	JWTExpMinutes     int
	AdminUser         string
	AdminPasswordHash string // hash bcrypt, nunca la clave en claro
}

// Load lee config.toml (en . o ./config, opcional) y variables de entorno con
// prefijo COSTEO_. Las env vars tienen prioridad: excel.input_path se
// sobreescribe con COSTEO_EXCEL_INPUT_PATH, api.port con COSTEO_API_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetEnvPrefix("COSTEO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "app.env", "development"),
			Name: getString(v, "app.name", "costeo-api"),
		},
		Log: LogConfig{
			Level: getString(v, "log.level", "info"),
		},
		Excel: ExcelConfig{
			InputPath:  getString(v, "excel.input_path", "./data/entrada.xlsx"),
			OutputPath: getString(v, "excel.output_path", "./data/salida.xlsx"),
			Sheets: SheetNames{
				Formulas:    getString(v, "excel.sheets.formulas", "Fórmulas"),
				Freights:    getString(v, "excel.sheets.freights", "Fletes"),
				Purchases:   getString(v, "excel.sheets.purchases", "Compras"),
				Productions: getString(v, "excel.sheets.productions", "Producción"),
				Sales:       getString(v, "excel.sheets.sales", "Ventas"),
				History:     getString(v, "excel.sheets.history", "Historial"),
			},
		},
		API: APIConfig{
			Host:            getString(v, "api.host", "0.0.0.0"),
			Port:            getInt(v, "api.port", 8080),
			ReadTimeoutSec:  getInt(v, "api.read_timeout_sec", 15),
			WriteTimeoutSec: getInt(v, "api.write_timeout_sec", 120),
		},
		Auth: AuthConfig{
			JWTSecret:         getString(v, "auth.jwt_secret", ""),
			JWTIssuer:         getString(v, "auth.jwt_issuer", "costeo-api"),
			JWTExpMinutes:     getInt(v, "auth.jwt_exp_minutes", 60),
			AdminUser:         getString(v, "auth.admin_user", "admin"),
			AdminPasswordHash: getString(v, "auth.admin_password_hash", ""),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
