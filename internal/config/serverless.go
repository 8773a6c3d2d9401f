package config

import (
	"os"
	"sync"
)

// ServerlessConfig describes the Lambda runtime the process runs in, if any
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			Stage:        GetEnv("STAGE", "dev"),
		}
	})
	return serverlessConfig
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// AdaptConfigForServerless tunes the configuration for a Lambda deployment.
// The function filesystem is read-only outside /tmp, so local paths move to EFS
// unless a Postgres endpoint is provided.
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	if endpoint := os.Getenv("RDS_ENDPOINT"); endpoint != "" {
		config.Database.Driver = "pgx"
		config.Database.ConnectionString = buildRDSConnectionString(endpoint)
		config.Database.MaxOpenConns = 2
		config.Database.MaxIdleConns = 1
	} else if config.Database.Driver == "sqlite3" {
		config.Database.ConnectionString = GetEnv("EFS_DB_PATH", "/mnt/efs/invoicing.db")
	}

	if config.Storage.Type == "local" {
		config.Storage.LocalPath = GetEnv("EFS_FILES_PATH", "/tmp/files")
	}

	// API Gateway throttles requests itself.
	config.RateLimit.Enabled = GetEnvAsBool("RATE_LIMIT_ENABLED", false)
	config.Log.Format = "json"

	return config
}

func buildRDSConnectionString(host string) string {
	port := GetEnv("RDS_PORT", "5432")
	dbname := GetEnv("RDS_DB_NAME", "invoicing")
	user := os.Getenv("RDS_USERNAME")
	password := os.Getenv("RDS_PASSWORD")

	return "postgres://" + user + ":" + password + "@" + host + ":" + port + "/" + dbname + "?sslmode=require"
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}
	return AdaptConfigForServerless(config), nil
}
