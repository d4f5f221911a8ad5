package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers int

	// APITokens maps bearer tokens to the user they authenticate,
	// written as "token=userUUID,token2=userUUID2".
	APITokens string

	AMQPURL      string
	AMQPExchange string

	LogLevel string

	AverageDivisor      string
	InsightsTopCategory bool
	InsightsCurrency    string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             getEnv("PORT", "9446"),
		PostgresAddress:  getEnv("POSTGRES_ADDRESS", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5433"),
		PostgresDB:       getEnv("POSTGRES_DB", "postgres"),
		PostgresUsername: getEnv("POSTGRES_USERNAME", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "testpassword"),

		OperatorWorkers: getEnvInt("OPERATOR_WORKERS", 4),

		APITokens: getEnv("API_TOKENS", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "finance-tracker"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		AverageDivisor:      getEnv("ANALYTICS_AVERAGE_DIVISOR", "months"),
		InsightsTopCategory: getEnvBool("INSIGHTS_TOP_CATEGORY", false),
		InsightsCurrency:    getEnv("INSIGHTS_CURRENCY", "Rs."),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.PostgresAddress == "" || c.PostgresDB == "" || c.PostgresUsername == "" {
		problems = append(problems, "postgres address, database and username are required")
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if _, err := c.Tokens(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.AverageDivisor != "months" && c.AverageDivisor != "calendar" {
		problems = append(problems, fmt.Sprintf("invalid average divisor '%s': must be 'months' or 'calendar'", c.AverageDivisor))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// Tokens parses APITokens.
func (c *Config) Tokens() (map[string]uuid.UUID, error) {
	tokens := make(map[string]uuid.UUID)
	if strings.TrimSpace(c.APITokens) == "" {
		return tokens, nil
	}

	for _, pair := range strings.Split(c.APITokens, ",") {
		token, user, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || token == "" {
			return nil, fmt.Errorf("invalid API token entry '%s': must be token=userUUID", pair)
		}
		userID, err := uuid.FromString(user)
		if err != nil {
			return nil, fmt.Errorf("invalid user id for API token '%s': %w", token, err)
		}
		tokens[token] = userID
	}

	return tokens, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
