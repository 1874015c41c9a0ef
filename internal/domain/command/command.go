// Package command models invocations of the external build tool and the
// entry-point boilerplate written after a project is initialized.
package command

import "strings"

// ActionInit initializes (or re-initializes) a project directory.
const ActionInit = "init"

// Frameworks with a canned entry-point skeleton.
const (
	FrameworkArduino = "arduino"
	FrameworkMbed    = "mbed"
)

// MainFileName is the entry-point source file written into the source dir.
const MainFileName = "main.cpp"

// Option is a single --project-option override.
type Option struct {
	Key   string
	Value string
}

func (o Option) String() string {
	return o.Key + "=" + o.Value
}

// Request is one build-tool invocation. Board and IDE are optional; an
// empty value omits the flag.
type Request struct {
	Action     string
	ProjectDir string
	Board      string
	Options    []Option
	IDE        string
}

// Args renders the request as the flat token list passed to the runner.
func (r *Request) Args() []string {
	args := []string{r.Action, "--project-dir", r.ProjectDir}
	if r.Board != "" {
		args = append(args, "--board", r.Board)
	}
	for _, opt := range r.Options {
		args = append(args, "--project-option", opt.String())
	}
	if r.IDE != "" {
		args = append(args, "--ide", r.IDE)
	}
	return args
}

// Result is the success payload of a finished command.
type Result struct {
	Stdout string
	Stderr string
}

var arduinoMain = strings.Join([]string{
	"#include <Arduino.h>",
	"",
	"void setup() {",
	"  // put your setup code here, to run once:",
	"}",
	"",
	"void loop() {",
	"  // put your main code here, to run repeatedly:",
	"}",
}, "\n")

var mbedMain = strings.Join([]string{
	"#include <mbed.h>",
	"",
	"int main() {",
	"",
	"  // put your setup code here, to run once:",
	"",
	"  while(1) {",
	"    // put your main code here, to run repeatedly:",
	"  }",
	"}",
}, "\n")

// Boilerplate returns the entry-point skeleton for framework. The second
// result is false for frameworks without one.
func Boilerplate(framework string) (string, bool) {
	switch framework {
	case FrameworkArduino:
		return arduinoMain, true
	case FrameworkMbed:
		return mbedMain, true
	default:
		return "", false
	}
}
