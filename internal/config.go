package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	RunAddress  = "RUN_ADDRESS"
	DatabaseURI = "DATABASE_URI"
	SecretsPath = "SECRETS_PATH"
	JWTSecret   = "JWT_SECRET"
)

const (
	defaultRunAddress  = "localhost:8080"
	defaultSecretsPath = "secrets.yaml"
	defaultJWTSecret   = "secret"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type Config struct {
	RunAddress  string
	DatabaseURI string
	SecretsPath string
	JWTSecret   string
}

func NewConfig() *Config {
	// .env is optional; flags and real env still win.
	_ = godotenv.Load()

	c := new(Config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable",
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.SecretsPath, "s", setEnvOrDefault(SecretsPath, defaultSecretsPath), "customer access file")
	flag.StringVar(&c.JWTSecret, "j", setEnvOrDefault(JWTSecret, defaultJWTSecret), "JWT signing secret")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
