// Package hugo shells out to the Hugo binary for the few operations that
// need the real generator: version probing, site scaffolding, and builds.
package hugo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
)

// DefaultTimeout bounds a single Hugo invocation.
const DefaultTimeout = 30 * time.Second

// MinVersion is the oldest Hugo release the generated site configuration
// is known to work with.
const MinVersion = "0.128.0"

// ConfigFileName is the configuration file Hugo reads at a site root.
const ConfigFileName = "hugo.toml"

var versionPattern = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)

// Runner invokes the Hugo binary at Path. A zero SiteDir runs commands
// globally; ForSite returns a copy scoped to one site tree.
type Runner struct {
	Path    string
	Timeout time.Duration
	SiteDir string
}

// New checks that the binary exists and returns a Runner. The path is used
// as given, without resolving symlinks, so wrapper scripts and snap shims
// keep working.
func New(path string, timeout time.Duration) (*Runner, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("hugo executable not found at %s", path)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{Path: path, Timeout: timeout}, nil
}

// ForSite returns a copy of the runner whose commands run against the site
// rooted at dir.
func (r *Runner) ForSite(dir string) (*Runner, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("site directory does not exist: %s", dir)
	}
	scoped := *r
	scoped.SiteDir = dir
	return &scoped, nil
}

// run executes the binary with args, appending the site scope when set,
// and returns trimmed stdout.
func (r *Runner) run(args ...string) (string, error) {
	if r.SiteDir != "" {
		args = append(args, "-s", r.SiteDir)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	cmdline := shellquote.Join(append([]string{r.Path}, args...)...)
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("hugo command timed out after %s: %s", r.Timeout, cmdline)
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("hugo command failed (%s): %s", cmdline, detail)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Version returns the installed Hugo version as a dotted string, with
// extended and deploy builds tagged, e.g. "0.148.2.extended".
func (r *Runner) Version() (string, error) {
	out, err := r.run("version")
	if err != nil {
		return "", err
	}
	return parseVersion(out)
}

// parseVersion condenses raw `hugo version` output.
func parseVersion(output string) (string, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("failed to parse hugo version from output: %q", output)
	}
	parts := strings.Split(m[1], ".")
	if strings.Contains(output, "extended") {
		parts = append(parts, "extended")
	}
	if strings.Contains(output, "deploy") {
		parts = append(parts, "deploy")
	}
	return strings.Join(parts, "."), nil
}

// CheckVersion returns a warning when the installed Hugo is older than
// MinVersion, or "" when it is recent enough.
func (r *Runner) CheckVersion() (string, error) {
	version, err := r.Version()
	if err != nil {
		return "", err
	}
	older, err := versionLess(version, MinVersion)
	if err != nil {
		return "", err
	}
	if older {
		return fmt.Sprintf("hugo %s is older than the minimum supported %s, consider upgrading", version, MinVersion), nil
	}
	return "", nil
}

// NewSite scaffolds a fresh site at dir and installs configText as its
// configuration. The skeleton comes from the binary itself so archetypes
// and layout track the installed version.
func (r *Runner) NewSite(dir string, configText []byte) error {
	if _, err := r.run("new", "site", dir, "--format", "toml"); err != nil {
		return err
	}
	configPath := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(configPath, configText, 0644); err != nil {
		return fmt.Errorf("failed to write site configuration: %w", err)
	}
	return nil
}

// Build renders the site. The runner must be scoped with ForSite first.
func (r *Runner) Build() error {
	if r.SiteDir == "" {
		return errors.New("build requires a site-scoped runner")
	}
	_, err := r.run("--gc", "--minify")
	return err
}

// versionLess compares two dotted version strings on their leading
// numeric components, ignoring trailing tags like "extended".
func versionLess(a, b string) (bool, error) {
	av, err := versionNumbers(a)
	if err != nil {
		return false, err
	}
	bv, err := versionNumbers(b)
	if err != nil {
		return false, err
	}
	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			return av[i] < bv[i], nil
		}
	}
	return false, nil
}

func versionNumbers(version string) ([3]int, error) {
	var nums [3]int
	parts := strings.Split(version, ".")
	if len(parts) < 3 {
		return nums, fmt.Errorf("malformed version string: %q", version)
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return nums, fmt.Errorf("malformed version string: %q", version)
		}
		nums[i] = n
	}
	return nums, nil
}
