// Package iconutil wraps Apple's iconutil command, which compiles an
// .iconset directory into a single .icns file.
package iconutil

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/Mavwarf/mkicns/internal/paths"
)

var (
	ErrUnsupportedPlatform = errors.New("iconutil is only available on macOS")
	ErrNotFound            = errors.New("iconutil not found on PATH")
	ErrCompile             = errors.New("iconutil failed")
)

// Compiler turns an iconset directory into an icns file.
type Compiler interface {
	Compile(iconsetDir, outFile string) error
}

// Check verifies that goos is the platform iconutil ships on and that
// lookPath can find it. It returns the resolved tool path.
func Check(goos string, lookPath func(string) (string, error)) (string, error) {
	if goos != "darwin" {
		return "", fmt.Errorf("%w (running on %s)", ErrUnsupportedPlatform, goos)
	}
	p, err := lookPath(paths.ToolName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return p, nil
}

// Tool runs the iconutil binary at Path.
type Tool struct {
	Path string
}

// Args returns the argument list passed to iconutil.
func Args(iconsetDir, outFile string) []string {
	return []string{"-c", "icns", iconsetDir, "-o", outFile}
}

// Compile runs iconutil and waits for it to exit. There is no timeout.
func (t Tool) Compile(iconsetDir, outFile string) error {
	cmd := exec.Command(t.Path, Args(iconsetDir, outFile)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v\n%s", ErrCompile, err, out)
	}
	return nil
}
