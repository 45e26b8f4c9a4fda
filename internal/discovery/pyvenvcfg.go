// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// MarkerFile is the file whose presence marks a directory as a virtualenv.
const MarkerFile = "pyvenv.cfg"

// projectEnvFile stores a project's chosen environment name (one line).
const projectEnvFile = ".venv"

// HasMarker reports whether dir contains a pyvenv.cfg marker file.
func HasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerFile))
	return err == nil && info.Mode().IsRegular()
}

// ReadPrompt returns the "prompt" value from dir's pyvenv.cfg, or "" when
// the file or the key is absent. Surrounding quotes are stripped, since
// virtualenv writes prompts both quoted and bare.
func ReadPrompt(dir string) string {
	f, err := os.Open(filepath.Join(dir, MarkerFile))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) != "prompt" {
			continue
		}
		prompt := strings.TrimSpace(value)
		prompt = strings.Trim(prompt, `'"`)
		return prompt
	}
	return ""
}

// StoredName reads the environment name a project pinned in its .venv file.
// The second return is false when the file is absent, unreadable, or is a
// directory (a common layout where .venv is itself the environment).
func StoredName(projectRoot string) (string, bool) {
	path := filepath.Join(projectRoot, projectEnvFile)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	name, _, _ := strings.Cut(string(data), "\n")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}
