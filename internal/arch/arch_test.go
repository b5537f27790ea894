// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// Lower layers must not reach up: storage and CLI plumbing stay ignorant of
// the application packages, and the application core never parses flags.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"sigchunk/internal/readsfile": {
			"sigchunk/internal/appcore", "sigchunk/internal/app", "sigchunk/internal/sampleapp",
			"sigchunk/internal/cli", "sigchunk/internal/samplecli", "sigchunk/internal/clibase",
			"sigchunk/internal/writers", "sigchunk/cmd/",
		},
		"sigchunk/internal/writers": {
			"sigchunk/internal/appcore", "sigchunk/internal/app", "sigchunk/internal/sampleapp",
			"sigchunk/internal/cli", "sigchunk/internal/samplecli", "sigchunk/internal/clibase",
			"sigchunk/internal/readsfile", "sigchunk/cmd/",
		},
		"sigchunk/internal/clibase": {
			"sigchunk/internal/appcore", "sigchunk/internal/app", "sigchunk/internal/sampleapp",
			"sigchunk/cmd/",
		},
		"sigchunk/internal/appcore": {
			"sigchunk/internal/app", "sigchunk/internal/sampleapp",
			"sigchunk/internal/cli", "sigchunk/internal/samplecli",
			"sigchunk/cmd/",
		},
		"sigchunk/internal/logging": {
			"sigchunk/internal/", "sigchunk/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "sigchunk/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "sigchunk/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
