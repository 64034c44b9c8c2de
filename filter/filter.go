// Package filter evaluates expressions against torrents for selecting
// which ones a command operates on.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/qbitctl/qbitctl/qbittorrent"
)

// Filter is a compiled boolean expression over torrent fields.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression such as
//
//	state == "stalledDL" and daysSince(added_on) > 7
//
// Torrent fields are available under their wire names; helper functions
// daysSince and hoursSince convert unix timestamps to ages.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // torrent fields are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source text the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one torrent.
func (f *Filter) Match(torrent qbittorrent.Torrent) (bool, error) {
	env := environment(torrent)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.expression, err)
	}

	// AsBool at compile time guarantees the assertion holds.
	return result.(bool), nil
}

// Apply returns the torrents matching the filter, preserving order.
func (f *Filter) Apply(torrents []qbittorrent.Torrent) ([]qbittorrent.Torrent, error) {
	var matched []qbittorrent.Torrent
	for _, torrent := range torrents {
		ok, err := f.Match(torrent)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, torrent)
		}
	}
	return matched, nil
}

func helperFunctions() map[string]any {
	return map[string]any{
		"daysSince": func(unix int64) float64 {
			if unix <= 0 {
				return 0
			}
			return time.Since(time.Unix(unix, 0)).Hours() / 24
		},
		"hoursSince": func(unix int64) float64 {
			if unix <= 0 {
				return 0
			}
			return time.Since(time.Unix(unix, 0)).Hours()
		},
		"hasTag": func(tags, tag string) bool {
			for _, t := range strings.Split(tags, ",") {
				if strings.EqualFold(strings.TrimSpace(t), tag) {
					return true
				}
			}
			return false
		},
	}
}

// environment exposes torrent fields under their wire names so filters
// read like the WebUI column set.
func environment(t qbittorrent.Torrent) map[string]any {
	env := helperFunctions()

	env["hash"] = t.Hash
	env["name"] = t.Name
	env["state"] = string(t.State)
	env["category"] = t.Category
	env["tags"] = t.Tags
	env["tracker"] = t.Tracker
	env["save_path"] = t.SavePath
	env["content_path"] = t.ContentPath

	env["added_on"] = t.AddedOn
	env["completion_on"] = t.CompletionOn
	env["last_activity"] = t.LastActivity
	env["seen_complete"] = t.SeenComplete
	env["seeding_time"] = t.SeedingTime
	env["time_active"] = t.TimeActive
	env["eta"] = t.ETA

	env["size"] = t.Size
	env["total_size"] = t.TotalSize
	env["completed"] = t.Completed
	env["amount_left"] = t.AmountLeft
	env["downloaded"] = t.Downloaded
	env["uploaded"] = t.Uploaded
	env["dlspeed"] = t.DlSpeed
	env["upspeed"] = t.UpSpeed
	env["dl_limit"] = t.DlLimit
	env["up_limit"] = t.UpLimit

	env["progress"] = t.Progress
	env["ratio"] = t.Ratio
	env["ratio_limit"] = t.RatioLimit
	env["availability"] = t.Availability
	env["priority"] = t.Priority
	env["num_seeds"] = t.NumSeeds
	env["num_leechs"] = t.NumLeechs
	env["num_complete"] = t.NumComplete
	env["num_incomplete"] = t.NumIncomplete

	env["auto_tmm"] = t.AutoTMM
	env["force_start"] = t.ForceStart
	env["seq_dl"] = t.SequentialDownload
	env["super_seeding"] = t.SuperSeeding

	return env
}
