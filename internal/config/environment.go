package config

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment falls back to Development for unknown values.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}
