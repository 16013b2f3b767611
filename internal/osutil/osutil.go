package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Int returns the code as a plain int for os.Exit and cli.Exit.
func (c exitCode) Int() int {
	return int(c)
}

const DirPermission = 0o755
