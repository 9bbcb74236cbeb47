package infra

import "github.com/casbin/casbin/v2"

// NewEnforcer builds a policy-less enforcer from the model file; policies
// are loaded per store from the database at enforce time.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath)
}
