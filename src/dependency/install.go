package dependency

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// InstallError reports a failed package-manager run. Command is the line the
// user can run by hand instead.
type InstallError struct {
	Command string
	Output  string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing dependencies: %v", e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// runner executes argv in dir and returns the combined output.
type runner func(ctx context.Context, dir string, argv []string) ([]byte, error)

func execRunner(ctx context.Context, dir string, argv []string) ([]byte, error) {
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	return cmd.CombinedOutput()
}

// Installer runs package-manager installs.
type Installer struct {
	run runner
}

// NewInstaller returns an installer that shells out to the package manager.
func NewInstaller() *Installer {
	return &Installer{run: execRunner}
}

// Install adds pkgs as development dependencies of the project in dir.
// Cancelling ctx kills the package manager.
func (in *Installer) Install(ctx context.Context, dir string, m Manager, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	argv := m.InstallArgs(pkgs)
	out, err := in.run(ctx, dir, argv)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return &InstallError{
			Command: m.Command(pkgs),
			Output:  strings.TrimSpace(string(out)),
			Err:     err,
		}
	}
	return nil
}

// Install is a convenience wrapper around NewInstaller().Install.
func Install(ctx context.Context, dir string, m Manager, pkgs []string) error {
	return NewInstaller().Install(ctx, dir, m, pkgs)
}
