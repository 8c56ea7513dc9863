// Package version reports the runbreak release version.
package version

import (
	"fmt"
	"strings"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 2
	appPatch uint = 0
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/katalvlaran/runbreak/version.appBuild=foo"'.
// It MUST only contain characters from validCharacters.
var appBuild string

// Version returns the application version as a properly formed string,
// e.g. "0.2.0" or "0.2.0-rc1" when appBuild is set.
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if build := checkAppBuild(appBuild); build != "" {
		v = fmt.Sprintf("%s-%s", v, build)
	}
	return v
}

// checkAppBuild returns str unless it contains characters outside
// validCharacters, in which case it returns "".
func checkAppBuild(str string) string {
	for _, r := range str {
		if !strings.ContainsRune(validCharacters, r) {
			return ""
		}
	}
	return str
}
