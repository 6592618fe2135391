// Package screp drives the external screp binary: it builds the command
// line, runs it, decodes the JSON output into the raw match model, and
// derives the replay's identifying hash and file metadata.
package screp

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pable/go-screp-view/internal/model"
)

// DefaultBinary is the screp command name resolved via PATH.
const DefaultBinary = "screp"

// Options selects which sections screp should emit. The defaults are
// appropriate for building a match model; map resources and tiles are large
// and never needed here.
type Options struct {
	Binary      string
	UseCmds     bool
	UseComputed bool
	UseHeader   bool
	UseMap      bool
	UseMapRes   bool
	UseMapTiles bool
}

// DefaultOptions returns the standard screp invocation options.
func DefaultOptions() Options {
	return Options{
		Binary:      DefaultBinary,
		UseCmds:     true,
		UseComputed: true,
		UseHeader:   true,
		UseMap:      true,
	}
}

// args builds the screp argv for a replay path. Indentation is disabled
// since the output is machine-parsed.
func (o Options) args(path string) []string {
	var args []string
	if o.UseCmds {
		args = append(args, "-cmds")
	}
	if o.UseComputed {
		args = append(args, "-computed")
	}
	if o.UseHeader {
		args = append(args, "-header")
	}
	if o.UseMap {
		args = append(args, "-map")
	}
	if o.UseMapRes {
		args = append(args, "-mapres")
	}
	if o.UseMapTiles {
		args = append(args, "-maptiles")
	}
	args = append(args, "-indent=0", path)
	return args
}

// binary returns the configured binary, defaulted.
func (o Options) binary() string {
	if o.Binary == "" {
		return DefaultBinary
	}
	return o.Binary
}

// Available reports whether the screp binary can be found.
func Available(binary string) bool {
	if binary == "" {
		binary = DefaultBinary
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// Error is screp reporting that it could not parse a replay file. The
// binary's own message is preserved for the user.
type Error struct {
	Output string
}

func (e *Error) Error() string {
	return fmt.Sprintf("screp could not parse the file: %s", e.Output)
}

// Version identifies the installed screp build. Cached raw output is
// invalidated when this changes, since newer parsers may extract more.
type Version struct {
	Screp     string
	Parser    string
	EAPM      string
	BuiltWith string
}

// String returns the version fields in a single comparable form.
func (v Version) String() string {
	return strings.Join([]string{v.Screp, v.Parser, v.EAPM}, "/")
}

// GetVersion runs `screp -version` and parses the reported fields.
func GetVersion(ctx context.Context, binary string) (Version, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	res, err := run(ctx, binary, "-version")
	if err != nil {
		return Version{}, err
	}

	fields := map[string]string{}
	for _, line := range strings.Split(string(res.Stdout), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return Version{
		Screp:     fields["screp version"],
		Parser:    fields["parser version"],
		EAPM:      fields["eapm algorithm version"],
		BuiltWith: fields["built with"],
	}, nil
}

// Result is one successfully decoded replay file.
type Result struct {
	Raw     *model.RawMatch
	RawJSON []byte
	Hash    string
	File    model.RepFile
}

// Parse runs screp on a replay file and decodes the result.
//
// Non-JSON output means screp itself reported a parse failure; that comes
// back as *Error with screp's message. Process-level failures (binary
// missing, killed) are ordinary wrapped errors.
func Parse(ctx context.Context, path string, opts Options) (*Result, error) {
	file, err := Stat(path)
	if err != nil {
		return nil, err
	}

	res, err := run(ctx, opts.binary(), opts.args(path)...)
	if err != nil {
		return nil, err
	}

	var raw model.RawMatch
	if err := json.Unmarshal(res.Stdout, &raw); err != nil {
		out := strings.TrimSpace(string(res.Stderr) + string(res.Stdout))
		return nil, &Error{Output: out}
	}

	return &Result{
		Raw:     &raw,
		RawJSON: res.Stdout,
		Hash:    HeaderHash(&raw),
		File:    file,
	}, nil
}

// HeaderHash returns a stable SHA-1 over the replay's identifying header
// fields. This is (more than) enough to uniquely identify a replay without
// hashing the whole file.
func HeaderHash(raw *model.RawMatch) string {
	if raw.IsEmpty() {
		return ""
	}
	h := raw.Header

	players := make([][2]string, 0, len(h.Players))
	for _, p := range h.Players {
		players = append(players, [2]string{p.Name, fmt.Sprintf("%d", p.Race.ID)})
	}

	identity, _ := json.Marshal([]any{
		h.Engine.ID,
		h.StartTime.UnixMilli(),
		h.Frames,
		h.Title,
		h.Speed.ID,
		h.Type.ID,
		h.SubType,
		h.Map,
		players,
	})
	return fmt.Sprintf("%x", sha1.Sum(identity))
}

// Stat collects the file-system identity of a replay file.
func Stat(path string) (model.RepFile, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return model.RepFile{}, fmt.Errorf("stat replay: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return model.RepFile{}, fmt.Errorf("resolve replay path: %w", err)
	}
	return model.RepFile{
		Filename: filepath.Base(path),
		Dir:      filepath.Dir(abs),
		Path:     abs,
		Size:     stat.Size(),
	}, nil
}

// Source returns the search-term identifier for a replay file: its
// basename without the extension.
func Source(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
