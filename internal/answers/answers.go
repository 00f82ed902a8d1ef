// Package answers holds the build parameters collected from the user and the
// rules they have to satisfy before anything is written to disk.
package answers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Norgate-AV/scb/internal/utils"
)

// DefaultBranch is the branch a build is set live on when none is given
const DefaultBranch = "beta"

var (
	// ErrNoDepot means no platform has a depot id
	ErrNoDepot = errors.New("no depot specified")

	// ErrOverrideDeclined means the user kept the existing configuration
	ErrOverrideDeclined = errors.New("config replacement not allowed")
)

// Platform is a build target with its own depot
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Platforms lists every platform in descriptor order
var Platforms = []Platform{Windows, MacOS, Linux}

// Depot is a configured platform and its depot id
type Depot struct {
	ID       uint64
	Platform Platform
}

// Depots holds the optional depot id of each platform. Zero means unset.
type Depots struct {
	Windows uint64
	MacOS   uint64
	Linux   uint64
}

// Get returns the depot id of a platform
func (d Depots) Get(p Platform) uint64 {
	switch p {
	case Windows:
		return d.Windows
	case MacOS:
		return d.MacOS
	case Linux:
		return d.Linux
	}

	return 0
}

// Set assigns the depot id of a platform
func (d *Depots) Set(p Platform, id uint64) {
	switch p {
	case Windows:
		d.Windows = id
	case MacOS:
		d.MacOS = id
	case Linux:
		d.Linux = id
	}
}

// Configured returns the set depots in windows, macos, linux order
func (d Depots) Configured() []Depot {
	depots := make([]Depot, 0, len(Platforms))

	for _, p := range Platforms {
		if id := d.Get(p); id != 0 {
			depots = append(depots, Depot{ID: id, Platform: p})
		}
	}

	return depots
}

// Conflict returns a ValidationError when id is already the depot of a
// platform other than p
func (d Depots) Conflict(p Platform, id uint64) error {
	if id == 0 {
		return nil
	}

	for _, other := range Platforms {
		if other != p && d.Get(other) == id {
			return &ValidationError{
				Field:  "depots." + string(p),
				Reason: fmt.Sprintf("Depot %d is already used by the %s build, the %s build needs its own depot", id, other, p),
			}
		}
	}

	return nil
}

// Any reports whether at least one depot is set
func (d Depots) Any() bool {
	return d.Windows != 0 || d.MacOS != 0 || d.Linux != 0
}

// AnswerSet is everything needed to generate the build descriptors
type AnswerSet struct {
	AppID       uint64
	Description string
	Branch      string
	Depots      Depots

	// Override is only set when a configuration directory already existed
	Override *bool
}

// Validate checks the fields that are validated while prompting. The depot
// requirement is checked separately by Decide.
func (a AnswerSet) Validate() error {
	if a.AppID == 0 {
		return &ValidationError{Field: "app_id", Reason: "Please provide a numeric APP ID"}
	}

	if strings.TrimSpace(a.Branch) == "" {
		return &ValidationError{Field: "branch", Reason: "Please provide a branch name to set live after deployment"}
	}

	// Every depot descriptor is named after its id, a shared id would
	// overwrite the descriptor of the earlier platform
	var seen Depots
	for _, d := range a.Depots.Configured() {
		if err := seen.Conflict(d.Platform, d.ID); err != nil {
			return err
		}
		seen.Set(d.Platform, d.ID)
	}

	return nil
}

// ValidationError describes an answer that has to be given again
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseAppID validates a raw APP ID answer
func ParseAppID(input string) (uint64, error) {
	id, err := utils.ParseID(input)
	if err != nil {
		return 0, &ValidationError{Field: "app_id", Reason: "Please provide a numeric APP ID"}
	}

	return id, nil
}

// ParseDepotID validates a raw depot answer. An empty answer leaves the depot unset.
func ParseDepotID(p Platform, input string) (uint64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, nil
	}

	id, err := utils.ParseID(input)
	if err != nil {
		return 0, &ValidationError{Field: "depots." + string(p), Reason: "Please provide a numeric DEPOT ID"}
	}

	return id, nil
}

// ParseBranch validates a raw branch answer, falling back to def when empty
func ParseBranch(input, def string) (string, error) {
	branch := strings.TrimSpace(input)
	if branch == "" {
		branch = def
	}

	if branch == "" {
		return "", &ValidationError{Field: "branch", Reason: "Please provide a branch name to set live after deployment"}
	}

	return branch, nil
}
