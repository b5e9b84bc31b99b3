package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the user a request acts on behalf of.
type Scope struct {
	UserID   string
	Username string
}
