// Package shellsetup prints the shell function that turns a pathtrack match
// into a directory change.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// DefaultFuncName is the name of the generated shell function.
const DefaultFuncName = "ptcd"

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable resolves the pathtrack binary; defaults to os.Executable.
	Executable func() (string, error)
	// FuncName overrides DefaultFuncName.
	FuncName string
}

// PrintSetup writes the integration snippet for shellOverride, or for the
// detected shell when shellOverride is empty. It returns the shell used.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) (string, error) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	executable := cfg.Executable
	if executable == nil {
		executable = os.Executable
	}
	name := cfg.FuncName
	if name == "" {
		name = DefaultFuncName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	bin, err := executable()
	if err != nil {
		bin = "pathtrack"
	}
	quoted := strconv.Quote(bin)

	var snippet string
	switch shell {
	case "fish":
		snippet = fmt.Sprintf(`function %[1]s
    set -l dest (command %[2]s dir $argv)
    or return $status
    if test -n "$dest" -a -d "$dest"
        builtin cd "$dest"
    end
end
`, name, quoted)
	case "pwsh":
		snippet = fmt.Sprintf(`function %[1]s {
    $dest = & %[2]s dir @args
    if ($LASTEXITCODE -eq 0 -and (Test-Path $dest -PathType Container)) {
        Set-Location $dest
    }
}
`, name, quoted)
	case "tcsh", "csh":
		// csh cannot nest quotes inside "`...`", so the binary is quoted
		// inside a bare substitution and the quoted variable rejoins the words.
		csh := strings.ReplaceAll(quoted, "'", `'\''`)
		snippet = fmt.Sprintf("alias %[1]s 'set %[1]s_dest = `%[2]s dir \\!*`; test -d \"$%[1]s_dest\" && cd \"$%[1]s_dest\"'\n", name, csh)
	case "cmd":
		snippet = fmt.Sprintf(`:: Save as %[1]s.cmd somewhere on PATH.
@echo off
for /f "delims=" %%%%d in ('%[2]s dir %%*') do cd /d "%%%%d"
`, name, quoted)
	default:
		shell = posixShell(shell)
		snippet = fmt.Sprintf(`%[1]s() {
    dest=$(command %[2]s dir "$@") || return $?
    if [ -n "$dest" ] && [ -d "$dest" ]; then
        cd "$dest"
    fi
}
`, name, quoted)
	}

	_, err = io.WriteString(w, snippet)
	return shell, err
}

func posixShell(shell string) string {
	switch shell {
	case "bash", "zsh", "sh", "ksh", "dash":
		return shell
	default:
		return "sh"
	}
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell != "" {
			switch shell {
			case "pwsh", "cmd":
				return shell
			}
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}
	return baseShellName(value)
}

// baseShellName reduces an executable path to a lowercase shell name
// without directory, login dash or .exe suffix.
func baseShellName(value string) string {
	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	base = strings.TrimPrefix(base, "-")
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, quote := range []string{`"`, `'`} {
		if strings.HasPrefix(value, quote) {
			value = value[1:]
			if idx := strings.Index(value, quote); idx >= 0 {
				return value[:idx]
			}
			return value
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
