package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// uiOut receives all UI output; tests swap it for a buffer
var uiOut io.Writer = os.Stdout

func PrintInfo(format string, a ...interface{}) {
	fmt.Fprintf(uiOut, colorBlue+"ℹ "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...interface{}) {
	fmt.Fprintf(uiOut, colorGreen+"✓ "+format+colorReset+"\n", a...)
}

func PrintWarning(format string, a ...interface{}) {
	fmt.Fprintf(uiOut, colorYellow+"⚠ "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...interface{}) {
	fmt.Fprintf(uiOut, colorRed+"✗ "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Fprintf(uiOut, "\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// Command execution helpers

// checkHostile rejects arguments carrying shell injection patterns.
// '&' alone is allowed so URLs pass.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newlines or carriage returns")
		}

		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}

		dangerousPats := []string{"|", "`", "$(", "&&", "||", ">", "<"}
		for _, p := range dangerousPats {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - Generic command wrapper
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommandVerbose runs a command and pipes output to stdout/stderr
func runCommandVerbose(name string, args ...string) error {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - Generic command wrapper
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
