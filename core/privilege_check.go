package core

import "github.com/smarty/retrace/contracts"

// PrivilegeCheck passes only when the invoking user's home directory is the
// privileged root home.
type PrivilegeCheck struct {
	environment contracts.Environment
}

func NewPrivilegeCheck(environment contracts.Environment) PrivilegeCheck {
	return PrivilegeCheck{environment: environment}
}

func (this PrivilegeCheck) Verify() error {
	home, found := this.environment.LookupEnv(contracts.HomeVariable)
	if !found || home != contracts.PrivilegedHome {
		return NotRootErr
	}
	return nil
}
