// mkicns builds a macOS icon (icon.icns) from a 1024×1024 source image.
// Usage: mkicns <source.png>
package main

import (
	"errors"
	"os"
	"os/exec"
	"runtime"

	"github.com/Mavwarf/mkicns/internal/console"
	"github.com/Mavwarf/mkicns/internal/iconset"
	"github.com/Mavwarf/mkicns/internal/iconutil"
	"github.com/Mavwarf/mkicns/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// env carries everything run needs from the outside world.
type env struct {
	goos        string
	lookPath    func(string) (string, error)
	newCompiler func(toolPath string) iconutil.Compiler
	out         *console.Printer
}

func main() {
	os.Exit(run(os.Args[1:], env{
		goos:        runtime.GOOS,
		lookPath:    exec.LookPath,
		newCompiler: func(p string) iconutil.Compiler { return iconutil.Tool{Path: p} },
		out:         console.NewPrinter(os.Stdout, os.Stderr),
	}))
}

// run is the single exit-code boundary: every stage returns an error
// and run maps it to a diagnostic line and a non-zero status.
func run(args []string, e env) int {
	if len(args) != 1 {
		printUsage(e.out)
		return 1
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage(e.out)
		return 0
	case "version", "-V", "--version":
		printVersion(e.out)
		return 0
	}

	if err := convert(args[0], e); err != nil {
		e.out.Fail("%s", describe(err))
		return 1
	}
	return 0
}

// convert runs Validate → Render → Package. Nothing is written before the
// source image is known to exist.
func convert(source string, e env) error {
	toolPath, err := iconutil.Check(e.goos, e.lookPath)
	if err != nil {
		return err
	}

	src, err := iconset.Load(source)
	if err != nil {
		return err
	}

	if _, err := iconset.Render(src, paths.IconsetDirName, e.out.OK); err != nil {
		return err
	}

	if err := e.newCompiler(toolPath).Compile(paths.IconsetDirName, paths.IcnsFileName); err != nil {
		return err
	}
	e.out.Done(paths.IcnsFileName)
	return nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, iconutil.ErrUnsupportedPlatform):
		return "mkicns only works on macOS: " + err.Error()
	case errors.Is(err, iconutil.ErrNotFound):
		return "iconutil not found, make sure you are running on macOS: " + err.Error()
	case errors.Is(err, iconset.ErrSourceMissing):
		return err.Error()
	case errors.Is(err, iconutil.ErrCompile):
		return "failed to create " + paths.IcnsFileName + ": " + err.Error()
	default:
		return err.Error()
	}
}

func printVersion(out *console.Printer) {
	out.Println("mkicns " + version + " (" + buildDate + ") " + runtime.GOOS + "/" + runtime.GOARCH)
}

func printUsage(out *console.Printer) {
	out.Println("mkicns " + version + " - Build a macOS icon from a 1024x1024 image")
	out.Println(`
Usage:
  mkicns <source.png>

Writes icon.iconset/ (ten rounded PNG sizes) and compiles it into
icon.icns in the current directory using iconutil.

Commands:
  version, -V, --version   Show version and build date
  help, -h, --help         Show this help message

Example:
  mkicns logo.png`)
}
