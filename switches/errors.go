package switches

import "errors"

// ErrInstantiation is returned when a Switch is used without being defined by New or Of.
var ErrInstantiation = errors.New("switch is not defined, use switches.New or switches.Of")

// ErrNoMatch is returned when every case was scanned and none was selected.
var ErrNoMatch = errors.New("no case matched")

// ErrSealed is raised when cases are added to a switch that already resolved.
var ErrSealed = errors.New("switch already evaluated")
